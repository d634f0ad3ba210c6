package models

// User status values. Disabled users cannot log in or use existing tokens.
const (
	UserStatusDisabled = 0
	UserStatusEnabled  = 1
)

// UserModel is an admin account.
type UserModel struct {
	Base
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-"        gorm:"not null"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Status   int    `json:"status"   gorm:"type:tinyint;default:1"`
}

func (UserModel) TableName() string { return "users" }
