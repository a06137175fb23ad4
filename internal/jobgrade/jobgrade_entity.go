package jobgrade

type JobGrade struct {
	GradeLevel string `gorm:"column:grade_level;primaryKey;size:3"`
	LowestSal  *int   `gorm:"column:lowest_sal"`
	HighestSal *int   `gorm:"column:highest_sal"`
}

func (JobGrade) TableName() string {
	return "job_grades"
}
