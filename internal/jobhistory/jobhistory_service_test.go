package jobhistory_test

import (
	"context"
	"testing"
	"time"

	"go-hrm/internal/jobhistory"
	jobhistoryerrors "go-hrm/internal/jobhistory/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type historyKey struct {
	employeeID int
	startDate  string
}

type fakeJobHistoryRepo struct {
	records     map[historyKey]jobhistory.JobHistory
	employees   map[int]bool
	jobs        map[string]bool
	departments map[int]bool
}

func newFakeJobHistoryRepo() *fakeJobHistoryRepo {
	return &fakeJobHistoryRepo{
		records:     make(map[historyKey]jobhistory.JobHistory),
		employees:   make(map[int]bool),
		jobs:        make(map[string]bool),
		departments: make(map[int]bool),
	}
}

func key(employeeID int, startDate time.Time) historyKey {
	return historyKey{employeeID: employeeID, startDate: startDate.Format("2006-01-02")}
}

func (f *fakeJobHistoryRepo) Tx(ctx context.Context, fn func(jobhistory.Repository) error) error {
	return fn(f)
}

func (f *fakeJobHistoryRepo) Create(ctx context.Context, jh *jobhistory.JobHistory) error {
	f.records[key(jh.EmployeeID, jh.StartDate)] = *jh
	return nil
}

func (f *fakeJobHistoryRepo) FindAll(ctx context.Context) ([]jobhistory.JobHistoryDetail, error) {
	out := make([]jobhistory.JobHistoryDetail, 0, len(f.records))
	for _, jh := range f.records {
		out = append(out, jobhistory.JobHistoryDetail{JobHistory: jh})
	}
	return out, nil
}

func (f *fakeJobHistoryRepo) FindByKey(ctx context.Context, employeeID int, startDate time.Time) (*jobhistory.JobHistoryDetail, error) {
	jh, ok := f.records[key(employeeID, startDate)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &jobhistory.JobHistoryDetail{JobHistory: jh}, nil
}

func (f *fakeJobHistoryRepo) FindByEmployee(ctx context.Context, employeeID int) ([]jobhistory.JobHistoryDetail, error) {
	out := make([]jobhistory.JobHistoryDetail, 0)
	for _, jh := range f.records {
		if jh.EmployeeID == employeeID {
			out = append(out, jobhistory.JobHistoryDetail{JobHistory: jh})
		}
	}
	return out, nil
}

func (f *fakeJobHistoryRepo) Update(ctx context.Context, jh *jobhistory.JobHistory) error {
	f.records[key(jh.EmployeeID, jh.StartDate)] = *jh
	return nil
}

func (f *fakeJobHistoryRepo) Delete(ctx context.Context, employeeID int, startDate time.Time) error {
	delete(f.records, key(employeeID, startDate))
	return nil
}

func (f *fakeJobHistoryRepo) EmployeeExists(ctx context.Context, employeeID int) (bool, error) {
	return f.employees[employeeID], nil
}

func (f *fakeJobHistoryRepo) JobExists(ctx context.Context, jobID string) (bool, error) {
	return f.jobs[jobID], nil
}

func (f *fakeJobHistoryRepo) DepartmentExists(ctx context.Context, departmentID int) (bool, error) {
	return f.departments[departmentID], nil
}

func seededRepo() *fakeJobHistoryRepo {
	repo := newFakeJobHistoryRepo()
	repo.employees[102] = true
	repo.jobs["IT_PROG"] = true
	repo.jobs["AC_MGR"] = true
	repo.departments[60] = true
	return repo
}

func strPtr(s string) *string { return &s }

func TestJobHistoryService_CreateThenGet(t *testing.T) {
	repo := seededRepo()
	svc := jobhistory.NewService(repo)

	created, err := svc.Create(context.Background(), jobhistory.CreateJobHistoryRequest{
		EmployeeID: 102,
		StartDate:  "2001-01-13",
		EndDate:    strPtr("2006-07-24"),
		JobID:      "it_prog",
	})
	require.NoError(t, err)
	assert.Equal(t, "IT_PROG", created.JobID)
	require.NotNil(t, created.EndDate)
	assert.Equal(t, "2006-07-24", *created.EndDate)

	got, err := svc.GetByKey(context.Background(), 102, "2001-01-13")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestJobHistoryService_DuplicateCompositeKey(t *testing.T) {
	repo := seededRepo()
	svc := jobhistory.NewService(repo)

	req := jobhistory.CreateJobHistoryRequest{
		EmployeeID: 102,
		StartDate:  "2001-01-13",
		JobID:      "IT_PROG",
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, jobhistoryerrors.ErrHistoryAlreadyExists)
}

func TestJobHistoryService_EndBeforeStart(t *testing.T) {
	repo := seededRepo()
	svc := jobhistory.NewService(repo)

	_, err := svc.Create(context.Background(), jobhistory.CreateJobHistoryRequest{
		EmployeeID: 102,
		StartDate:  "2006-07-24",
		EndDate:    strPtr("2001-01-13"),
		JobID:      "IT_PROG",
	})
	assert.ErrorIs(t, err, jobhistoryerrors.ErrEndBeforeStart)
}

func TestJobHistoryService_ClosedRecordOnlyAcceptsCorrections(t *testing.T) {
	repo := seededRepo()
	svc := jobhistory.NewService(repo)

	_, err := svc.Create(context.Background(), jobhistory.CreateJobHistoryRequest{
		EmployeeID: 102,
		StartDate:  "2001-01-13",
		EndDate:    strPtr("2006-07-24"),
		JobID:      "IT_PROG",
	})
	require.NoError(t, err)

	// End date of a closed record is immutable.
	_, err = svc.Update(context.Background(), 102, "2001-01-13", jobhistory.UpdateJobHistoryRequest{
		EndDate: strPtr("2007-01-01"),
	})
	assert.ErrorIs(t, err, jobhistoryerrors.ErrHistoryClosed)

	// Job and department corrections stay allowed.
	deptID := 60
	updated, err := svc.Update(context.Background(), 102, "2001-01-13", jobhistory.UpdateJobHistoryRequest{
		JobID:        strPtr("AC_MGR"),
		DepartmentID: &deptID,
	})
	require.NoError(t, err)
	assert.Equal(t, "AC_MGR", updated.JobID)
	require.NotNil(t, updated.DepartmentID)
	assert.Equal(t, 60, *updated.DepartmentID)
}

func TestJobHistoryService_CreateUnknownEmployee(t *testing.T) {
	repo := seededRepo()
	svc := jobhistory.NewService(repo)

	_, err := svc.Create(context.Background(), jobhistory.CreateJobHistoryRequest{
		EmployeeID: 999,
		StartDate:  "2001-01-13",
		JobID:      "IT_PROG",
	})
	assert.ErrorIs(t, err, jobhistoryerrors.ErrEmployeeNotFound)
}

func TestJobHistoryService_GetByEmployee(t *testing.T) {
	repo := seededRepo()
	svc := jobhistory.NewService(repo)

	_, err := svc.Create(context.Background(), jobhistory.CreateJobHistoryRequest{
		EmployeeID: 102,
		StartDate:  "2001-01-13",
		JobID:      "IT_PROG",
	})
	require.NoError(t, err)

	records, err := svc.GetByEmployee(context.Background(), 102)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = svc.GetByEmployee(context.Background(), 999)
	assert.ErrorIs(t, err, jobhistoryerrors.ErrEmployeeNotFound)
}
