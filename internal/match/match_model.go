package match

import (
	"time"

	"gorm.io/gorm"
)

// Match is one fixture on a club's calendar. Scores stay nil until filled
// in after the final whistle; StreamURL feeds the live viewing page.
type Match struct {
	gorm.Model
	TeamID         uint      `gorm:"index;not null" json:"team_id"`
	Opponent       string    `gorm:"not null" json:"opponent"`
	Venue          string    `json:"venue"`
	Home           bool      `gorm:"default:true" json:"home"`
	KickoffAt      time.Time `gorm:"index;not null" json:"kickoff_at"`
	HomeScore      *int      `json:"home_score,omitempty"`
	AwayScore      *int      `json:"away_score,omitempty"`
	ChampionshipID *uint     `gorm:"index" json:"championship_id,omitempty"`
	StreamURL      string    `json:"stream_url,omitempty"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
}

type CreateMatchRequest struct {
	Opponent       string    `json:"opponent" binding:"required"`
	Venue          string    `json:"venue"`
	Home           *bool     `json:"home,omitempty"`
	KickoffAt      time.Time `json:"kickoff_at" binding:"required"`
	ChampionshipID *uint     `json:"championship_id,omitempty"`
	StreamURL      string    `json:"stream_url"`
	Notes          string    `json:"notes"`
}

type UpdateMatchRequest struct {
	Opponent       *string    `json:"opponent,omitempty"`
	Venue          *string    `json:"venue,omitempty"`
	Home           *bool      `json:"home,omitempty"`
	KickoffAt      *time.Time `json:"kickoff_at,omitempty"`
	HomeScore      *int       `json:"home_score,omitempty"`
	AwayScore      *int       `json:"away_score,omitempty"`
	ChampionshipID *uint      `json:"championship_id,omitempty"`
	StreamURL      *string    `json:"stream_url,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// ScheduleResponse is the reconciled team calendar: at most one upcoming
// fixture plus the rest sorted newest-first.
type ScheduleResponse struct {
	NextMatch   *Match  `json:"next_match"`
	LastMatches []Match `json:"last_matches"`
}
