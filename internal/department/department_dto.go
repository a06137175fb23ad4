package department

type CreateDepartmentRequest struct {
	DepartmentID   *int   `json:"department_id" binding:"omitempty,gt=0"`
	DepartmentName string `json:"department_name" binding:"required,max=100"`
	ManagerID      *int   `json:"manager_id" binding:"omitempty,gt=0"`
	LocationID     *int   `json:"location_id" binding:"omitempty,gt=0"`
}

type UpdateDepartmentRequest struct {
	DepartmentName *string `json:"department_name" binding:"omitempty,max=100"`
	ManagerID      *int    `json:"manager_id" binding:"omitempty,gt=0"`
	LocationID     *int    `json:"location_id" binding:"omitempty,gt=0"`
}

type DepartmentResponse struct {
	DepartmentID   int    `json:"department_id"`
	DepartmentName string `json:"department_name"`
	ManagerID      *int   `json:"manager_id"`
	ManagerName    string `json:"manager_name,omitempty"`
	LocationID     *int   `json:"location_id"`
	LocationCity   string `json:"location_city,omitempty"`
	EmployeeCount  int64  `json:"employee_count"`
}
