package department_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-hrm/internal/department"
	departmenterrors "go-hrm/internal/department/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDepartmentRepo struct {
	departments   map[int]department.Department
	nextID        int
	employees     map[int]bool
	locations     map[int]bool
	employeeCount map[int]int64
	historyCount  map[int]int64
	findAllCalls  int
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{
		departments:   make(map[int]department.Department),
		nextID:        1,
		employees:     make(map[int]bool),
		locations:     make(map[int]bool),
		employeeCount: make(map[int]int64),
		historyCount:  make(map[int]int64),
	}
}

func (f *fakeDepartmentRepo) Tx(ctx context.Context, fn func(department.Repository) error) error {
	return fn(f)
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, d *department.Department) error {
	if d.DepartmentID == 0 {
		d.DepartmentID = f.nextID
		f.nextID++
	}
	f.departments[d.DepartmentID] = *d
	return nil
}

func (f *fakeDepartmentRepo) FindAll(ctx context.Context) ([]department.DepartmentDetail, error) {
	f.findAllCalls++
	out := make([]department.DepartmentDetail, 0, len(f.departments))
	for _, d := range f.departments {
		out = append(out, department.DepartmentDetail{Department: d})
	}
	return out, nil
}

func (f *fakeDepartmentRepo) FindByID(ctx context.Context, id int) (*department.DepartmentDetail, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &department.DepartmentDetail{Department: d}, nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, d *department.Department) error {
	f.departments[d.DepartmentID] = *d
	return nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id int) error {
	delete(f.departments, id)
	return nil
}

func (f *fakeDepartmentRepo) EmployeeExists(ctx context.Context, employeeID int) (bool, error) {
	return f.employees[employeeID], nil
}

func (f *fakeDepartmentRepo) LocationExists(ctx context.Context, locationID int) (bool, error) {
	return f.locations[locationID], nil
}

func (f *fakeDepartmentRepo) CountEmployees(ctx context.Context, departmentID int) (int64, error) {
	return f.employeeCount[departmentID], nil
}

func (f *fakeDepartmentRepo) CountHistory(ctx context.Context, departmentID int) (int64, error) {
	return f.historyCount[departmentID], nil
}

func (f *fakeDepartmentRepo) FindEmployees(ctx context.Context, departmentID int) ([]department.EmployeeOption, error) {
	return nil, nil
}

func TestDepartmentService_GetAllServesFromCache(t *testing.T) {
	repo := newFakeDepartmentRepo()
	rdb, mock := redismock.NewClientMock()
	svc := department.NewService(repo, rdb)

	cached := []department.DepartmentResponse{
		{DepartmentID: 10, DepartmentName: "Administration"},
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	mock.ExpectGet("departments:all").SetVal(string(payload))

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, resp)
	// Cache hit never touches the repository.
	assert.Zero(t, repo.findAllCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentService_GetAllFillsCacheOnMiss(t *testing.T) {
	repo := newFakeDepartmentRepo()
	rdb, mock := redismock.NewClientMock()
	svc := department.NewService(repo, rdb)

	repo.departments[10] = department.Department{DepartmentID: 10, DepartmentName: "Administration"}

	expected := []department.DepartmentResponse{
		{DepartmentID: 10, DepartmentName: "Administration"},
	}
	payload, err := json.Marshal(expected)
	require.NoError(t, err)

	mock.ExpectGet("departments:all").RedisNil()
	mock.ExpectSet("departments:all", payload, 30*time.Minute).SetVal("OK")

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, resp)
	assert.Equal(t, 1, repo.findAllCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentService_CreateInvalidatesCache(t *testing.T) {
	repo := newFakeDepartmentRepo()
	rdb, mock := redismock.NewClientMock()
	svc := department.NewService(repo, rdb)

	mock.ExpectDel("departments:all").SetVal(1)

	created, err := svc.Create(context.Background(), department.CreateDepartmentRequest{
		DepartmentName: "Shipping",
	})
	require.NoError(t, err)
	assert.Equal(t, "Shipping", created.DepartmentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentService_CreateUnknownManager(t *testing.T) {
	repo := newFakeDepartmentRepo()
	svc := department.NewService(repo, nil)

	managerID := 100
	_, err := svc.Create(context.Background(), department.CreateDepartmentRequest{
		DepartmentName: "Executive",
		ManagerID:      &managerID,
	})
	assert.ErrorIs(t, err, departmenterrors.ErrManagerNotFound)
}

func TestDepartmentService_DeleteGuardedByEmployees(t *testing.T) {
	repo := newFakeDepartmentRepo()
	svc := department.NewService(repo, nil)

	created, err := svc.Create(context.Background(), department.CreateDepartmentRequest{
		DepartmentName: "IT",
	})
	require.NoError(t, err)

	repo.employeeCount[created.DepartmentID] = 5
	err = svc.Delete(context.Background(), created.DepartmentID)
	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentHasEmployees)

	repo.employeeCount[created.DepartmentID] = 0
	require.NoError(t, svc.Delete(context.Background(), created.DepartmentID))
}
