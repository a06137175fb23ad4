package employee

import (
	"context"

	"go-hrm/internal/messaging/kafka"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Tx(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]EmployeeDetail, error)
	FindByID(ctx context.Context, id int) (*EmployeeDetail, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id int) error
	DepartmentExists(ctx context.Context, departmentID int) (bool, error)
	JobExists(ctx context.Context, jobID string) (bool, error)
	CountReports(ctx context.Context, managerID int) (int64, error)
	CountHistory(ctx context.Context, employeeID int) (int64, error)
	CountManagedDepartments(ctx context.Context, employeeID int) (int64, error)
	InsertOutbox(ctx context.Context, event kafka.OutboxEvent) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Tx(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employees").
		Select(`employees.*,
			departments.department_name,
			jobs.job_title,
			managers.first_name AS manager_first_name,
			managers.last_name AS manager_last_name`).
		Joins("LEFT JOIN departments ON departments.department_id = employees.department_id").
		Joins("LEFT JOIN jobs ON jobs.job_id = employees.job_id").
		Joins("LEFT JOIN employees managers ON managers.employee_id = employees.manager_id")
}

func (r *repository) FindAll(ctx context.Context) ([]EmployeeDetail, error) {
	var employees []EmployeeDetail
	err := r.detailQuery(ctx).
		Order("employees.employee_id").
		Scan(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*EmployeeDetail, error) {
	var e EmployeeDetail
	err := r.detailQuery(ctx).
		Where("employees.employee_id = ?", id).
		First(&e).Error
	return &e, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "email = ?", email).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	// Column map keeps NULL assignments to nullable references intact.
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", e.EmployeeID).
		Updates(map[string]any{
			"first_name":     e.FirstName,
			"last_name":      e.LastName,
			"email":          e.Email,
			"phone_number":   e.PhoneNumber,
			"hire_date":      e.HireDate,
			"salary":         e.Salary,
			"commission_pct": e.CommissionPct,
			"manager_id":     e.ManagerID,
			"department_id":  e.DepartmentID,
			"job_id":         e.JobID,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "employee_id = ?", id).Error
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) JobExists(ctx context.Context, jobID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("jobs").
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CountReports(ctx context.Context, managerID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("manager_id = ?", managerID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountHistory(ctx context.Context, employeeID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("job_history").
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountManagedDepartments(ctx context.Context, employeeID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("manager_id = ?", employeeID).
		Count(&count).Error
	return count, err
}

// InsertOutbox stages a lifecycle event in the same transaction as the write
// when called from inside Tx.
func (r *repository) InsertOutbox(ctx context.Context, event kafka.OutboxEvent) error {
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&event).Error
}
