package jobhistory

type CreateJobHistoryRequest struct {
	EmployeeID   int     `json:"employee_id" binding:"required,gt=0"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      *string `json:"end_date" binding:"omitempty"`
	JobID        string  `json:"job_id" binding:"required,max=10"`
	DepartmentID *int    `json:"department_id" binding:"omitempty,gt=0"`
}

type UpdateJobHistoryRequest struct {
	EndDate      *string `json:"end_date" binding:"omitempty"`
	JobID        *string `json:"job_id" binding:"omitempty,max=10"`
	DepartmentID *int    `json:"department_id" binding:"omitempty,gt=0"`
}

type JobHistoryResponse struct {
	EmployeeID     int     `json:"employee_id"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date"`
	JobID          string  `json:"job_id"`
	JobTitle       string  `json:"job_title,omitempty"`
	DepartmentID   *int    `json:"department_id"`
	DepartmentName string  `json:"department_name,omitempty"`
}
