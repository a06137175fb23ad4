package jobhistory

import "time"

type JobHistory struct {
	EmployeeID   int        `gorm:"column:employee_id;primaryKey"`
	StartDate    time.Time  `gorm:"column:start_date;primaryKey;type:date"`
	EndDate      *time.Time `gorm:"column:end_date;type:date"`
	JobID        string     `gorm:"column:job_id;size:10;not null"`
	DepartmentID *int       `gorm:"column:department_id"`
}

func (JobHistory) TableName() string {
	return "job_history"
}

// JobHistoryDetail carries the denormalized job and department names used by
// read paths.
type JobHistoryDetail struct {
	JobHistory
	JobTitle       string `gorm:"column:job_title"`
	DepartmentName string `gorm:"column:department_name"`
}
