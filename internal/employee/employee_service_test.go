package employee_test

import (
	"context"
	"testing"

	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	employees    map[int]employee.Employee
	nextID       int
	departments  map[int]bool
	jobs         map[string]bool
	reports      map[int]int64
	history      map[int]int64
	managedDepts map[int]int64
	outbox       []kafka.OutboxEvent
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees:    make(map[int]employee.Employee),
		nextID:       1,
		departments:  make(map[int]bool),
		jobs:         make(map[string]bool),
		reports:      make(map[int]int64),
		history:      make(map[int]int64),
		managedDepts: make(map[int]int64),
	}
}

func (f *fakeEmployeeRepo) Tx(ctx context.Context, fn func(employee.Repository) error) error {
	return fn(f)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	if e.EmployeeID == 0 {
		e.EmployeeID = f.nextID
		f.nextID++
	}
	f.employees[e.EmployeeID] = *e
	return nil
}

func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.EmployeeDetail, error) {
	out := make([]employee.EmployeeDetail, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, employee.EmployeeDetail{Employee: e})
	}
	return out, nil
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id int) (*employee.EmployeeDetail, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &employee.EmployeeDetail{Employee: e}, nil
}

func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			found := e
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error {
	f.employees[e.EmployeeID] = *e
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) DepartmentExists(ctx context.Context, departmentID int) (bool, error) {
	return f.departments[departmentID], nil
}

func (f *fakeEmployeeRepo) JobExists(ctx context.Context, jobID string) (bool, error) {
	return f.jobs[jobID], nil
}

func (f *fakeEmployeeRepo) CountReports(ctx context.Context, managerID int) (int64, error) {
	return f.reports[managerID], nil
}

func (f *fakeEmployeeRepo) CountHistory(ctx context.Context, employeeID int) (int64, error) {
	return f.history[employeeID], nil
}

func (f *fakeEmployeeRepo) CountManagedDepartments(ctx context.Context, employeeID int) (int64, error) {
	return f.managedDepts[employeeID], nil
}

func (f *fakeEmployeeRepo) InsertOutbox(ctx context.Context, event kafka.OutboxEvent) error {
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}
	f.outbox = append(f.outbox, event)
	return nil
}

func TestEmployeeService_CreateStagesOutboxEvent(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := employee.NewService(repo)

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Steven",
		LastName:  "King",
		Email:     "SKING@example.com",
		HireDate:  "2003-06-17",
	})
	require.NoError(t, err)
	assert.Equal(t, "sking@example.com", created.Email)
	assert.Equal(t, "2003-06-17", created.HireDate)

	require.Len(t, repo.outbox, 1)
	staged := repo.outbox[0]
	assert.Equal(t, events.EmployeeCreated, staged.EventType)
	assert.Equal(t, events.EmployeeLifecycleTopic, staged.Topic)
	assert.Equal(t, kafka.OutboxStatusPending, staged.Status)
}

func TestEmployeeService_CreateDuplicateEmail(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := employee.NewService(repo)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Neena",
		LastName:  "Kochhar",
		Email:     "nkochhar@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "NKOCHHAR@example.com",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
}

func TestEmployeeService_UpdateRejectsSelfManagement(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := employee.NewService(repo)

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Lex",
		LastName:  "De Haan",
		Email:     "ldehaan@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.EmployeeID, employee.UpdateEmployeeRequest{
		ManagerID: &created.EmployeeID,
	})
	assert.ErrorIs(t, err, employeeerrors.ErrSelfManagement)
}

func TestEmployeeService_CreateUnknownReferences(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := employee.NewService(repo)

	deptID := 90
	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName:    "Den",
		LastName:     "Raphaely",
		Email:        "draphealy@example.com",
		DepartmentID: &deptID,
	})
	assert.ErrorIs(t, err, employeeerrors.ErrDepartmentNotFound)

	repo.departments[90] = true
	jobID := "PU_MAN"
	_, err = svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName:    "Den",
		LastName:     "Raphaely",
		Email:        "draphealy@example.com",
		DepartmentID: &deptID,
		JobID:        &jobID,
	})
	assert.ErrorIs(t, err, employeeerrors.ErrJobNotFound)
}

func TestEmployeeService_DeleteGuards(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := employee.NewService(repo)

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Adam",
		LastName:  "Fripp",
		Email:     "afripp@example.com",
	})
	require.NoError(t, err)
	repo.outbox = nil

	repo.reports[created.EmployeeID] = 2
	err = svc.Delete(context.Background(), created.EmployeeID)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeHasReports)

	repo.reports[created.EmployeeID] = 0
	repo.managedDepts[created.EmployeeID] = 1
	err = svc.Delete(context.Background(), created.EmployeeID)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeManagesDepartment)

	// No outbox event may be staged for a rejected delete.
	assert.Empty(t, repo.outbox)

	repo.managedDepts[created.EmployeeID] = 0
	require.NoError(t, svc.Delete(context.Background(), created.EmployeeID))

	require.Len(t, repo.outbox, 1)
	assert.Equal(t, events.EmployeeDeleted, repo.outbox[0].EventType)
}

func TestEmployeeService_InvalidHireDate(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := employee.NewService(repo)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Bad",
		LastName:  "Date",
		Email:     "baddate@example.com",
		HireDate:  "17-06-2003",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
}
