package user

import (
	"gorm.io/gorm"
)

// User is the identity record for one person inside a club (tenant).
// At least one of Email/Phone must be present; phone-only accounts may have
// no password hash at all (OTP login happens outside this service).
type User struct {
	gorm.Model
	Name     string  `json:"name"`
	Email    *string `gorm:"uniqueIndex" json:"email"`
	Phone    *string `gorm:"uniqueIndex" json:"phone"`
	Password *string `json:"-"`
	Role     string  `gorm:"default:'fan';index" json:"role"`
	IsSocio  bool    `gorm:"default:false" json:"is_socio"`
	TeamID   uint    `gorm:"index" json:"team_id"`
}

// HasPassword reports whether the account can authenticate with a password.
func (u *User) HasPassword() bool {
	return u.Password != nil && *u.Password != ""
}
