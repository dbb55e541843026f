package team

import (
	"gorm.io/gorm"
)

// Team is one club instance - the tenant of the multi-tenant data model.
// NextMatchID is the aggregate "next match" pointer; it is only ever written
// by match reconciliation, never by team CRUD.
type Team struct {
	gorm.Model
	Name           string `gorm:"not null" json:"name"`
	Slug           string `gorm:"uniqueIndex;not null" json:"slug"`
	Crest          string `json:"crest"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Description    string `gorm:"type:text" json:"description"`
	NextMatchID    *uint  `gorm:"index" json:"next_match_id,omitempty"`
}

type CreateTeamRequest struct {
	Name           string `json:"name" binding:"required"`
	Slug           string `json:"slug" binding:"required"`
	Crest          string `json:"crest"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Description    string `json:"description"`
}

type UpdateTeamRequest struct {
	Name           *string `json:"name,omitempty"`
	Crest          *string `json:"crest,omitempty"`
	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
	Description    *string `json:"description,omitempty"`
}
