package user

type CreateUserRequest struct {
	Email     string  `json:"email" binding:"required,email,max=120"`
	Username  string  `json:"username" binding:"required,min=3,max=80"`
	FirstName *string `json:"first_name" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,max=50"`
	Password  string  `json:"password" binding:"required,min=8,max=72"`
	IsAdmin   bool    `json:"is_admin"`
}

type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=120"`
	Username  *string `json:"username" binding:"omitempty,min=3,max=80"`
	FirstName *string `json:"first_name" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,max=50"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=72"`
	IsAdmin   *bool   `json:"is_admin"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	UserID    int     `json:"user_id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	IsAdmin   bool    `json:"is_admin"`
}
