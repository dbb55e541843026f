package auth

import (
	"time"

	"github.com/meutimefc/api/internal/user"
	"github.com/meutimefc/api/pkg/permissions"
)

// Reset delivery channels.
const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
)

// PasswordReset is a single-use, time-boxed record keyed by the token
// itself. Valid iff !Used and now < ExpiresAt; consuming it flips Used
// atomically so a replay with the same link always fails.
type PasswordReset struct {
	ID        string    `gorm:"primaryKey" json:"id"` // the unguessable token
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Channel   string    `gorm:"not null" json:"channel"` // email | whatsapp
	Contact   string    `gorm:"not null" json:"contact"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type RegisterRequest struct {
	Name     string `json:"name" example:"Alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" example:"secret123"`
	TeamID   uint   `json:"teamId" example:"1"`
}

type ForgotPasswordRequest struct {
	Email   string `json:"email,omitempty" example:"alice@example.com"`
	Phone   string `json:"phone,omitempty" example:"+5511999999999"`
	Channel string `json:"channel,omitempty" example:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserResponse is the sanitized user projection. The password hash never
// leaves the server.
type UserResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Role        string   `json:"role"`
	IsSocio     bool     `json:"is_socio"`
	TeamID      uint     `json:"team_id"`
	Permissions []string `json:"permissions"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func FilterUserRecord(u *user.User) UserResponse {
	resp := UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Role:        u.Role,
		IsSocio:     u.IsSocio,
		TeamID:      u.TeamID,
		Permissions: permissions.Resolve(u.Role),
	}
	if u.Email != nil {
		resp.Email = *u.Email
	}
	if u.Phone != nil {
		resp.Phone = *u.Phone
	}
	return resp
}
