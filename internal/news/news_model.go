package news

import (
	"time"

	"gorm.io/gorm"
)

// News is a club announcement shown on the team's public page.
type News struct {
	gorm.Model
	TeamID      uint       `gorm:"index" json:"team_id"`
	Title       string     `gorm:"not null" json:"title"`
	Body        string     `gorm:"type:text" json:"body"`
	CoverImage  string     `json:"cover_image"`
	Published   bool       `gorm:"default:false" json:"published"`
	PublishedAt *time.Time `json:"published_at"`
}

type CreateNewsRequest struct {
	Title      string `json:"title" binding:"required"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"cover_image"`
	Published  bool   `json:"published"`
}

type UpdateNewsRequest struct {
	Title      *string `json:"title"`
	Body       *string `json:"body"`
	CoverImage *string `json:"cover_image"`
	Published  *bool   `json:"published"`
}
