package plan

import (
	"github.com/meutimefc/api/internal/models"
	"gorm.io/gorm"
)

// Plan is a paid membership tier. Subscribing to any plan marks the user
// as a socio of their team.
type Plan struct {
	gorm.Model
	TeamID      uint               `gorm:"index" json:"team_id"`
	Name        string             `gorm:"not null" json:"name"`
	Description string             `json:"description"`
	Price       float64            `gorm:"not null" json:"price"`
	Interval    string             `gorm:"default:'monthly'" json:"interval"`
	Benefits    models.StringSlice `gorm:"type:json" json:"benefits"`
	Active      bool               `gorm:"default:true" json:"active"`
}

// Subscription links a user to the plan they pay for.
type Subscription struct {
	gorm.Model
	UserID uint   `gorm:"index" json:"user_id"`
	PlanID uint   `gorm:"index" json:"plan_id"`
	Status string `gorm:"default:'active'" json:"status"`
}

type CreatePlanRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Interval    string   `json:"interval" binding:"omitempty,oneof=monthly yearly"`
	Benefits    []string `json:"benefits"`
}

type UpdatePlanRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Interval    *string   `json:"interval" binding:"omitempty,oneof=monthly yearly"`
	Benefits    *[]string `json:"benefits"`
	Active      *bool     `json:"active"`
}
