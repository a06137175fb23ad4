package employee

import "time"

type Employee struct {
	EmployeeID    int       `gorm:"column:employee_id;primaryKey;autoIncrement"`
	FirstName     string    `gorm:"column:first_name;size:50;not null"`
	LastName      string    `gorm:"column:last_name;size:50;not null"`
	Email         string    `gorm:"column:email;size:120;not null;uniqueIndex:uq_employee_email"`
	PhoneNumber   string    `gorm:"column:phone_number;size:20"`
	HireDate      time.Time `gorm:"column:hire_date;type:date;not null"`
	Salary        *float64  `gorm:"column:salary"`
	CommissionPct *float64  `gorm:"column:commission_pct"`
	ManagerID     *int      `gorm:"column:manager_id;index"`
	DepartmentID  *int      `gorm:"column:department_id;index"`
	JobID         *string   `gorm:"column:job_id;size:10;index"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeDetail resolves the manager, department and job names at read
// time.
type EmployeeDetail struct {
	Employee
	DepartmentName   string `gorm:"column:department_name"`
	JobTitle         string `gorm:"column:job_title"`
	ManagerFirstName string `gorm:"column:manager_first_name"`
	ManagerLastName  string `gorm:"column:manager_last_name"`
}
