package jobgrade

type CreateJobGradeRequest struct {
	GradeLevel string `json:"grade_level" binding:"required,max=3"`
	LowestSal  *int   `json:"lowest_sal" binding:"omitempty,gte=0"`
	HighestSal *int   `json:"highest_sal" binding:"omitempty,gte=0"`
}

type UpdateJobGradeRequest struct {
	LowestSal  *int `json:"lowest_sal" binding:"omitempty,gte=0"`
	HighestSal *int `json:"highest_sal" binding:"omitempty,gte=0"`
}

type JobGradeResponse struct {
	GradeLevel string `json:"grade_level"`
	LowestSal  *int   `json:"lowest_sal"`
	HighestSal *int   `json:"highest_sal"`
}
