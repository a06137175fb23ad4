package employee

type CreateEmployeeRequest struct {
	EmployeeID    *int     `json:"employee_id" binding:"omitempty,gt=0"`
	FirstName     string   `json:"first_name" binding:"required,max=50"`
	LastName      string   `json:"last_name" binding:"required,max=50"`
	Email         string   `json:"email" binding:"required,email,max=120"`
	PhoneNumber   string   `json:"phone_number" binding:"omitempty,max=20"`
	HireDate      string   `json:"hire_date" binding:"omitempty"`
	Salary        *float64 `json:"salary" binding:"omitempty,gte=0"`
	CommissionPct *float64 `json:"commission_pct" binding:"omitempty,gte=0,lte=1"`
	ManagerID     *int     `json:"manager_id" binding:"omitempty,gt=0"`
	DepartmentID  *int     `json:"department_id" binding:"omitempty,gt=0"`
	JobID         *string  `json:"job_id" binding:"omitempty,max=10"`
}

type UpdateEmployeeRequest struct {
	FirstName     *string  `json:"first_name" binding:"omitempty,max=50"`
	LastName      *string  `json:"last_name" binding:"omitempty,max=50"`
	Email         *string  `json:"email" binding:"omitempty,email,max=120"`
	PhoneNumber   *string  `json:"phone_number" binding:"omitempty,max=20"`
	HireDate      *string  `json:"hire_date" binding:"omitempty"`
	Salary        *float64 `json:"salary" binding:"omitempty,gte=0"`
	CommissionPct *float64 `json:"commission_pct" binding:"omitempty,gte=0,lte=1"`
	ManagerID     *int     `json:"manager_id" binding:"omitempty,gt=0"`
	DepartmentID  *int     `json:"department_id" binding:"omitempty,gt=0"`
	JobID         *string  `json:"job_id" binding:"omitempty,max=10"`
}

type EmployeeResponse struct {
	EmployeeID     int      `json:"employee_id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	PhoneNumber    string   `json:"phone_number"`
	HireDate       string   `json:"hire_date"`
	Salary         *float64 `json:"salary"`
	CommissionPct  *float64 `json:"commission_pct"`
	ManagerID      *int     `json:"manager_id"`
	ManagerName    string   `json:"manager_name,omitempty"`
	DepartmentID   *int     `json:"department_id"`
	DepartmentName string   `json:"department_name,omitempty"`
	JobID          *string  `json:"job_id"`
	JobTitle       string   `json:"job_title,omitempty"`
}
