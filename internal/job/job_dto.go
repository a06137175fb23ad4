package job

type CreateJobRequest struct {
	JobID     string   `json:"job_id" binding:"required,max=10"`
	JobTitle  string   `json:"job_title" binding:"required,max=100"`
	MinSalary *float64 `json:"min_salary" binding:"omitempty,gte=0"`
	MaxSalary *float64 `json:"max_salary" binding:"omitempty,gte=0"`
}

type UpdateJobRequest struct {
	JobTitle  *string  `json:"job_title" binding:"omitempty,max=100"`
	MinSalary *float64 `json:"min_salary" binding:"omitempty,gte=0"`
	MaxSalary *float64 `json:"max_salary" binding:"omitempty,gte=0"`
}

type JobResponse struct {
	JobID     string   `json:"job_id"`
	JobTitle  string   `json:"job_title"`
	MinSalary *float64 `json:"min_salary"`
	MaxSalary *float64 `json:"max_salary"`
}
