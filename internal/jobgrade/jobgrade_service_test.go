package jobgrade_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-hrm/internal/jobgrade"
	jobgradeerrors "go-hrm/internal/jobgrade/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeJobGradeRepo struct {
	grades       map[string]jobgrade.JobGrade
	findAllCalls int
}

func newFakeJobGradeRepo() *fakeJobGradeRepo {
	return &fakeJobGradeRepo{grades: make(map[string]jobgrade.JobGrade)}
}

func (f *fakeJobGradeRepo) Tx(ctx context.Context, fn func(jobgrade.Repository) error) error {
	return fn(f)
}

func (f *fakeJobGradeRepo) Create(ctx context.Context, g *jobgrade.JobGrade) error {
	f.grades[g.GradeLevel] = *g
	return nil
}

func (f *fakeJobGradeRepo) FindAll(ctx context.Context) ([]jobgrade.JobGrade, error) {
	f.findAllCalls++
	out := make([]jobgrade.JobGrade, 0, len(f.grades))
	for _, g := range f.grades {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeJobGradeRepo) FindByLevel(ctx context.Context, level string) (*jobgrade.JobGrade, error) {
	g, ok := f.grades[level]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &g, nil
}

func (f *fakeJobGradeRepo) Update(ctx context.Context, g *jobgrade.JobGrade) error {
	f.grades[g.GradeLevel] = *g
	return nil
}

func (f *fakeJobGradeRepo) Delete(ctx context.Context, level string) error {
	delete(f.grades, level)
	return nil
}

func intPtr(v int) *int {
	return &v
}

func TestJobGradeService_CreateNormalizesLevel(t *testing.T) {
	repo := newFakeJobGradeRepo()
	svc := jobgrade.NewService(repo, nil)

	created, err := svc.Create(context.Background(), jobgrade.CreateJobGradeRequest{
		GradeLevel: " a ",
		LowestSal:  intPtr(1000),
		HighestSal: intPtr(2999),
	})
	require.NoError(t, err)
	assert.Equal(t, "A", created.GradeLevel)

	got, err := svc.GetByLevel(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 1000, *got.LowestSal)
}

func TestJobGradeService_CreateInvalidSalaryBand(t *testing.T) {
	svc := jobgrade.NewService(newFakeJobGradeRepo(), nil)

	_, err := svc.Create(context.Background(), jobgrade.CreateJobGradeRequest{
		GradeLevel: "B",
		LowestSal:  intPtr(5000),
		HighestSal: intPtr(3000),
	})
	assert.ErrorIs(t, err, jobgradeerrors.ErrInvalidSalaryBand)
}

func TestJobGradeService_GetAllServesFromCache(t *testing.T) {
	repo := newFakeJobGradeRepo()
	rdb, mock := redismock.NewClientMock()
	svc := jobgrade.NewService(repo, rdb)

	cached := []jobgrade.JobGradeResponse{
		{GradeLevel: "A", LowestSal: intPtr(1000), HighestSal: intPtr(2999)},
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	mock.ExpectGet("job_grades:all").SetVal(string(payload))

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, resp)
	// Cache hit never touches the repository.
	assert.Zero(t, repo.findAllCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobGradeService_GetAllFillsCacheOnMiss(t *testing.T) {
	repo := newFakeJobGradeRepo()
	rdb, mock := redismock.NewClientMock()
	svc := jobgrade.NewService(repo, rdb)

	repo.grades["A"] = jobgrade.JobGrade{
		GradeLevel: "A",
		LowestSal:  intPtr(1000),
		HighestSal: intPtr(2999),
	}

	expected := []jobgrade.JobGradeResponse{
		{GradeLevel: "A", LowestSal: intPtr(1000), HighestSal: intPtr(2999)},
	}
	payload, err := json.Marshal(expected)
	require.NoError(t, err)

	mock.ExpectGet("job_grades:all").RedisNil()
	mock.ExpectSet("job_grades:all", payload, 30*time.Minute).SetVal("OK")

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, resp)
	assert.Equal(t, 1, repo.findAllCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobGradeService_CreateInvalidatesCache(t *testing.T) {
	repo := newFakeJobGradeRepo()
	rdb, mock := redismock.NewClientMock()
	svc := jobgrade.NewService(repo, rdb)

	mock.ExpectDel("job_grades:all").SetVal(1)

	_, err := svc.Create(context.Background(), jobgrade.CreateJobGradeRequest{
		GradeLevel: "C",
		LowestSal:  intPtr(3000),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobGradeService_UpdateRevalidatesMergedBand(t *testing.T) {
	repo := newFakeJobGradeRepo()
	svc := jobgrade.NewService(repo, nil)

	_, err := svc.Create(context.Background(), jobgrade.CreateJobGradeRequest{
		GradeLevel: "B",
		LowestSal:  intPtr(3000),
		HighestSal: intPtr(5999),
	})
	require.NoError(t, err)

	// New floor above the stored ceiling must be rejected.
	_, err = svc.Update(context.Background(), "B", jobgrade.UpdateJobGradeRequest{
		LowestSal: intPtr(7000),
	})
	assert.ErrorIs(t, err, jobgradeerrors.ErrInvalidSalaryBand)

	updated, err := svc.Update(context.Background(), "b", jobgrade.UpdateJobGradeRequest{
		HighestSal: intPtr(6500),
	})
	require.NoError(t, err)
	assert.Equal(t, 6500, *updated.HighestSal)
	assert.Equal(t, 3000, *updated.LowestSal)
}

func TestJobGradeService_DeleteMissing(t *testing.T) {
	svc := jobgrade.NewService(newFakeJobGradeRepo(), nil)

	err := svc.Delete(context.Background(), "Z")
	assert.ErrorIs(t, err, jobgradeerrors.ErrJobGradeNotFound)
}
