package job

type Job struct {
	JobID     string   `gorm:"column:job_id;primaryKey;size:10"`
	JobTitle  string   `gorm:"column:job_title;size:100;not null"`
	MinSalary *float64 `gorm:"column:min_salary"`
	MaxSalary *float64 `gorm:"column:max_salary"`
}

func (Job) TableName() string {
	return "jobs"
}
