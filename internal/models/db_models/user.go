package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	BaseModel
	Email        string `gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;type:text;not null"`
	Role         string `gorm:"type:text;not null;default:user;index"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
