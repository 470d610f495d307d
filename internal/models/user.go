package models

import "strings"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

type User struct {
	Model
	Username string `gorm:"uniqueIndex;not null" json:"username" validate:"required"`
	Password string `gorm:"not null" json:"-" validate:"required"`
	Role     string `json:"role" validate:"oneof=admin manager viewer"`
}

func (u *User) Normalize() {
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
}

func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = RoleAdmin
	}
}

func (u *User) Validate() FieldErrors {
	return checkStruct(u)
}
