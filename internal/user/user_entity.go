package user

type User struct {
	UserID       int     `gorm:"column:user_id;primaryKey;autoIncrement"`
	Email        string  `gorm:"column:email;size:120;uniqueIndex:uq_user_email;not null"`
	Username     string  `gorm:"column:username;size:80;uniqueIndex:uq_user_username;not null"`
	FirstName    *string `gorm:"column:first_name;size:50"`
	LastName     *string `gorm:"column:last_name;size:50"`
	PasswordHash string  `gorm:"column:password_hash;size:128;not null"`
	IsAdmin      bool    `gorm:"column:is_admin;not null;default:false"`
}

func (User) TableName() string {
	return "users"
}
