package department

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	Tx(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, d *Department) error
	FindAll(ctx context.Context) ([]DepartmentDetail, error)
	FindByID(ctx context.Context, id int) (*DepartmentDetail, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id int) error
	EmployeeExists(ctx context.Context, employeeID int) (bool, error)
	LocationExists(ctx context.Context, locationID int) (bool, error)
	CountEmployees(ctx context.Context, departmentID int) (int64, error)
	CountHistory(ctx context.Context, departmentID int) (int64, error)
	FindEmployees(ctx context.Context, departmentID int) ([]EmployeeOption, error)
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

func (r *repository) Create(ctx context.Context, d *Department) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("departments").
		Select(`departments.*,
			managers.first_name AS manager_first_name,
			managers.last_name AS manager_last_name,
			locations.city AS location_city,
			(SELECT COUNT(*) FROM employees WHERE employees.department_id = departments.department_id) AS employee_count`).
		Joins("LEFT JOIN employees managers ON managers.employee_id = departments.manager_id").
		Joins("LEFT JOIN locations ON locations.location_id = departments.location_id")
}

func (r *repository) FindAll(ctx context.Context) ([]DepartmentDetail, error) {
	var departments []DepartmentDetail
	err := r.detailQuery(ctx).
		Order("departments.department_id").
		Scan(&departments).Error
	return departments, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*DepartmentDetail, error) {
	var d DepartmentDetail
	err := r.detailQuery(ctx).
		Where("departments.department_id = ?", id).
		First(&d).Error
	return &d, err
}

func (r *repository) Update(ctx context.Context, d *Department) error {
	// Save with a map so clearing manager_id/location_id to NULL sticks.
	return r.db.WithContext(ctx).
		Model(&Department{}).
		Where("department_id = ?", d.DepartmentID).
		Updates(map[string]any{
			"department_name": d.DepartmentName,
			"manager_id":      d.ManagerID,
			"location_id":     d.LocationID,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&Department{}, "department_id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) LocationExists(ctx context.Context, locationID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("locations").
		Where("location_id = ?", locationID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CountEmployees(ctx context.Context, departmentID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountHistory(ctx context.Context, departmentID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("job_history").
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}

func (r *repository) FindEmployees(ctx context.Context, departmentID int) ([]EmployeeOption, error) {
	var employees []EmployeeOption
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employee_id, first_name, last_name, email, job_id").
		Where("department_id = ?", departmentID).
		Order("employee_id").
		Scan(&employees).Error
	return employees, err
}
