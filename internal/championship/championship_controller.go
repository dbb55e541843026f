package championship

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/pkg/utils"
	"gorm.io/gorm"
)

type ChampionshipController struct {
	repo   ChampionshipRepository
	config *config.Config
}

func NewChampionshipController(repo ChampionshipRepository, cfg *config.Config) *ChampionshipController {
	return &ChampionshipController{repo: repo, config: cfg}
}

func teamIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid team id")
		return 0, false
	}
	return uint(id), true
}

// loadForTeam fetches the championship and enforces tenant ownership.
func (cc *ChampionshipController) loadForTeam(c *gin.Context, teamID uint) (*Championship, bool) {
	champID, err := strconv.ParseUint(c.Param("championship_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid championship id")
		return nil, false
	}
	ch, err := cc.repo.GetByID(uint(champID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Championship")
			return nil, false
		}
		utils.InternalErrorJSON(c, err)
		return nil, false
	}
	if ch.TeamID != teamID {
		utils.NotFoundJSON(c, "Championship")
		return nil, false
	}
	return ch, true
}

// @Summary      List championships
// @Tags         Championships
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Success      200  {array}  Championship
// @Router       /teams/{team_id}/championships [get]
func (cc *ChampionshipController) GetChampionships(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	items, err := cc.repo.ListByTeam(teamID)
	if err != nil {
		log.Printf("championships: list for team %d failed: %v", teamID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Get championship
// @Tags         Championships
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        championship_id  path  int  true  "Championship ID"
// @Success      200  {object}  Championship
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/championships/{championship_id} [get]
func (cc *ChampionshipController) GetChampionship(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	ch, ok := cc.loadForTeam(c, teamID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ch)
}

// @Summary      League table
// @Description  Standings sorted by points, goal difference, goals scored.
// @Tags         Championships
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        championship_id  path  int  true  "Championship ID"
// @Success      200  {array}  StandingsRow
// @Router       /teams/{team_id}/championships/{championship_id}/standings [get]
func (cc *ChampionshipController) GetStandings(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	ch, ok := cc.loadForTeam(c, teamID)
	if !ok {
		return
	}
	rows, err := cc.repo.GetStandings(ch.ID)
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary      Create championship
// @Tags         Championships
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        championship  body  CreateChampionshipRequest  true  "Championship details"
// @Success      201  {object}  Championship
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/championships [post]
func (cc *ChampionshipController) CreateChampionship(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	var req CreateChampionshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	ch := &Championship{
		TeamID: teamID,
		Name:   req.Name,
		Season: req.Season,
		Format: req.Format,
	}
	if ch.Format == "" {
		ch.Format = "league"
	}

	if err := cc.repo.Create(ch); err != nil {
		log.Printf("championships: create failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, ch)
}

// @Summary      Update championship
// @Tags         Championships
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        championship_id  path  int  true  "Championship ID"
// @Param        championship  body  UpdateChampionshipRequest  true  "Fields to update"
// @Success      200  {object}  Championship
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/championships/{championship_id} [put]
func (cc *ChampionshipController) UpdateChampionship(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	ch, ok := cc.loadForTeam(c, teamID)
	if !ok {
		return
	}

	var req UpdateChampionshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	if req.Name != nil {
		ch.Name = *req.Name
	}
	if req.Season != nil {
		ch.Season = *req.Season
	}
	if req.Format != nil {
		ch.Format = *req.Format
	}

	if err := cc.repo.Update(ch); err != nil {
		log.Printf("championships: update %d failed: %v", ch.ID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// @Summary      Delete championship
// @Tags         Championships
// @Param        team_id  path  int  true  "Team ID"
// @Param        championship_id  path  int  true  "Championship ID"
// @Success      200  {object}  utils.SuccessResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/championships/{championship_id} [delete]
func (cc *ChampionshipController) DeleteChampionship(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	ch, ok := cc.loadForTeam(c, teamID)
	if !ok {
		return
	}

	if err := cc.repo.Delete(ch.ID); err != nil {
		log.Printf("championships: delete %d failed: %v", ch.ID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	utils.SuccessJSON(c, http.StatusOK, "Championship deleted successfully", nil)
}

// @Summary      Replace standings
// @Description  Swaps the whole league table in one transaction.
// @Tags         Championships
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        championship_id  path  int  true  "Championship ID"
// @Param        standings  body  UpsertStandingsRequest  true  "Full table"
// @Success      200  {array}  StandingsRow
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/championships/{championship_id}/standings [put]
func (cc *ChampionshipController) ReplaceStandings(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	ch, ok := cc.loadForTeam(c, teamID)
	if !ok {
		return
	}

	var req UpsertStandingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	rows := make([]StandingsRow, 0, len(req.Rows))
	for _, in := range req.Rows {
		rows = append(rows, StandingsRow{
			ChampionshipID: ch.ID,
			TeamName:       in.TeamName,
			Points:         in.Points,
			Played:         in.Played,
			Wins:           in.Wins,
			Draws:          in.Draws,
			Losses:         in.Losses,
			GoalsFor:       in.GoalsFor,
			GoalsAgainst:   in.GoalsAgainst,
		})
	}

	if err := cc.repo.ReplaceStandings(ch.ID, rows); err != nil {
		log.Printf("championships: replace standings for %d failed: %v", ch.ID, err)
		utils.InternalErrorJSON(c, err)
		return
	}

	out, err := cc.repo.GetStandings(ch.ID)
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
