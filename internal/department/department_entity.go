package department

type Department struct {
	DepartmentID   int    `gorm:"column:department_id;primaryKey;autoIncrement"`
	DepartmentName string `gorm:"column:department_name;size:100;not null"`
	ManagerID      *int   `gorm:"column:manager_id;index"`
	LocationID     *int   `gorm:"column:location_id;index"`
}

func (Department) TableName() string {
	return "departments"
}

// DepartmentDetail carries the denormalized read-only fields resolved at
// read time.
type DepartmentDetail struct {
	Department
	ManagerFirstName string `gorm:"column:manager_first_name"`
	ManagerLastName  string `gorm:"column:manager_last_name"`
	LocationCity     string `gorm:"column:location_city"`
	EmployeeCount    int64  `gorm:"column:employee_count"`
}

// EmployeeOption is the child projection returned by
// /departments/:id/employees.
type EmployeeOption struct {
	EmployeeID int    `gorm:"column:employee_id" json:"employee_id"`
	FirstName  string `gorm:"column:first_name" json:"first_name"`
	LastName   string `gorm:"column:last_name" json:"last_name"`
	Email      string `gorm:"column:email" json:"email"`
	JobID      string `gorm:"column:job_id" json:"job_id"`
}
