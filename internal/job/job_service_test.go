package job_test

import (
	"context"
	"testing"

	"go-hrm/internal/job"
	joberrors "go-hrm/internal/job/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeJobRepo struct {
	jobs          map[string]job.Job
	employeeCount map[string]int64
	historyCount  map[string]int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:          make(map[string]job.Job),
		employeeCount: make(map[string]int64),
		historyCount:  make(map[string]int64),
	}
}

func (f *fakeJobRepo) Tx(ctx context.Context, fn func(job.Repository) error) error {
	return fn(f)
}

func (f *fakeJobRepo) Create(ctx context.Context, j *job.Job) error {
	f.jobs[j.JobID] = *j
	return nil
}

func (f *fakeJobRepo) FindAll(ctx context.Context) ([]job.Job, error) {
	out := make([]job.Job, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobRepo) FindByID(ctx context.Context, id string) (*job.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &j, nil
}

func (f *fakeJobRepo) Update(ctx context.Context, j *job.Job) error {
	f.jobs[j.JobID] = *j
	return nil
}

func (f *fakeJobRepo) Delete(ctx context.Context, id string) error {
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) CountEmployees(ctx context.Context, jobID string) (int64, error) {
	return f.employeeCount[jobID], nil
}

func (f *fakeJobRepo) CountHistory(ctx context.Context, jobID string) (int64, error) {
	return f.historyCount[jobID], nil
}

func fl(v float64) *float64 { return &v }

func TestJobService_CreateNormalizesID(t *testing.T) {
	repo := newFakeJobRepo()
	svc := job.NewService(repo)

	created, err := svc.Create(context.Background(), job.CreateJobRequest{
		JobID:     " it_prog ",
		JobTitle:  "Programmer",
		MinSalary: fl(4000),
		MaxSalary: fl(10000),
	})
	require.NoError(t, err)
	assert.Equal(t, "IT_PROG", created.JobID)

	got, err := svc.GetByID(context.Background(), "it_prog")
	require.NoError(t, err)
	assert.Equal(t, "Programmer", got.JobTitle)
}

func TestJobService_CreateInvalidSalaryRange(t *testing.T) {
	repo := newFakeJobRepo()
	svc := job.NewService(repo)

	_, err := svc.Create(context.Background(), job.CreateJobRequest{
		JobID:     "AC_MGR",
		JobTitle:  "Accounting Manager",
		MinSalary: fl(20000),
		MaxSalary: fl(8000),
	})
	assert.ErrorIs(t, err, joberrors.ErrInvalidSalaryRange)
}

func TestJobService_UpdateRevalidatesMergedRange(t *testing.T) {
	repo := newFakeJobRepo()
	svc := job.NewService(repo)

	_, err := svc.Create(context.Background(), job.CreateJobRequest{
		JobID:     "FI_MGR",
		JobTitle:  "Finance Manager",
		MinSalary: fl(8200),
		MaxSalary: fl(16000),
	})
	require.NoError(t, err)

	// Raising min above the stored max must fail even though the request on
	// its own looks fine.
	_, err = svc.Update(context.Background(), "FI_MGR", job.UpdateJobRequest{MinSalary: fl(17000)})
	assert.ErrorIs(t, err, joberrors.ErrInvalidSalaryRange)
}

func TestJobService_DeleteGuards(t *testing.T) {
	repo := newFakeJobRepo()
	svc := job.NewService(repo)

	_, err := svc.Create(context.Background(), job.CreateJobRequest{JobID: "ST_CLERK", JobTitle: "Stock Clerk"})
	require.NoError(t, err)

	repo.employeeCount["ST_CLERK"] = 3
	err = svc.Delete(context.Background(), "ST_CLERK")
	assert.ErrorIs(t, err, joberrors.ErrJobHasEmployees)

	repo.employeeCount["ST_CLERK"] = 0
	repo.historyCount["ST_CLERK"] = 1
	err = svc.Delete(context.Background(), "ST_CLERK")
	assert.ErrorIs(t, err, joberrors.ErrJobHasHistory)

	repo.historyCount["ST_CLERK"] = 0
	require.NoError(t, svc.Delete(context.Background(), "ST_CLERK"))

	_, err = svc.GetByID(context.Background(), "ST_CLERK")
	assert.ErrorIs(t, err, joberrors.ErrJobNotFound)
}
