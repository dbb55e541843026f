package championship

import (
	"gorm.io/gorm"
)

// Championship is a tournament a club takes part in, with its own league
// table.
type Championship struct {
	gorm.Model
	TeamID   uint           `gorm:"index" json:"team_id"`
	Name     string         `gorm:"not null" json:"name"`
	Season   string         `json:"season"`
	Format   string         `gorm:"default:'league'" json:"format"`
	Rows     []StandingsRow `gorm:"foreignKey:ChampionshipID" json:"rows,omitempty"`
}

// StandingsRow is one line of the league table. Opposing clubs are plain
// names, not tenants of the platform.
type StandingsRow struct {
	gorm.Model
	ChampionshipID uint   `gorm:"index" json:"championship_id"`
	TeamName       string `gorm:"not null" json:"team_name"`
	Points         int    `json:"points"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
}

type CreateChampionshipRequest struct {
	Name   string `json:"name" binding:"required"`
	Season string `json:"season"`
	Format string `json:"format" binding:"omitempty,oneof=league knockout groups"`
}

type UpdateChampionshipRequest struct {
	Name   *string `json:"name"`
	Season *string `json:"season"`
	Format *string `json:"format" binding:"omitempty,oneof=league knockout groups"`
}

type UpsertStandingsRequest struct {
	Rows []StandingsRowInput `json:"rows" binding:"required,dive"`
}

type StandingsRowInput struct {
	TeamName     string `json:"team_name" binding:"required"`
	Points       int    `json:"points" binding:"gte=0"`
	Played       int    `json:"played" binding:"gte=0"`
	Wins         int    `json:"wins" binding:"gte=0"`
	Draws        int    `json:"draws" binding:"gte=0"`
	Losses       int    `json:"losses" binding:"gte=0"`
	GoalsFor     int    `json:"goals_for" binding:"gte=0"`
	GoalsAgainst int    `json:"goals_against" binding:"gte=0"`
}
