package match

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/team"
	"github.com/meutimefc/api/pkg/utils"
	"gorm.io/gorm"
)

type MatchController struct {
	repo     MatchRepository
	teamRepo team.TeamRepository
	config   *config.Config
}

func NewMatchController(repo MatchRepository, teamRepo team.TeamRepository, cfg *config.Config) *MatchController {
	return &MatchController{repo: repo, teamRepo: teamRepo, config: cfg}
}

// reconcileTeam reloads the full match set and rewrites the aggregate
// next-match pointer. Runs after every single mutation; last write wins,
// there is no conflict detection.
func (mc *MatchController) reconcileTeam(teamID uint) (Partition, error) {
	matches, err := mc.repo.ListByTeam(teamID)
	if err != nil {
		return Partition{}, err
	}

	p := Reconcile(matches, time.Now())

	var nextID *uint
	if p.Next != nil {
		id := p.Next.ID
		nextID = &id
	}
	if err := mc.teamRepo.SetNextMatch(teamID, nextID); err != nil {
		return Partition{}, err
	}
	return p, nil
}

func teamIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid team id")
		return 0, false
	}
	return uint(id), true
}

// @Summary      Team schedule
// @Description  The reconciled calendar: next match plus past/remaining
// @Description  fixtures sorted newest-first.
// @Tags         Matches
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Success      200  {object}  ScheduleResponse
// @Router       /teams/{team_id}/schedule [get]
func (mc *MatchController) GetSchedule(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	matches, err := mc.repo.ListByTeam(teamID)
	if err != nil {
		log.Printf("matches: list for team %d failed: %v", teamID, err)
		utils.InternalErrorJSON(c, err)
		return
	}

	p := Reconcile(matches, time.Now())
	c.JSON(http.StatusOK, ScheduleResponse{NextMatch: p.Next, LastMatches: p.Last})
}

// @Summary      Live stream
// @Description  Returns the upcoming match and its stream URL for the
// @Description  public viewing page.
// @Tags         Matches
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Success      200  {object}  Match
// @Failure      404  {object}  utils.ErrorResponse "No stream scheduled"
// @Router       /teams/{team_id}/live [get]
func (mc *MatchController) GetLive(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	matches, err := mc.repo.ListByTeam(teamID)
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}

	p := Reconcile(matches, time.Now())
	if p.Next == nil || p.Next.StreamURL == "" {
		utils.NotFoundJSON(c, "Live stream")
		return
	}
	c.JSON(http.StatusOK, p.Next)
}

// @Summary      List team matches
// @Tags         Matches
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Success      200  {array}  Match
// @Router       /teams/{team_id}/matches [get]
func (mc *MatchController) GetTeamMatches(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	matches, err := mc.repo.ListByTeam(teamID)
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// @Summary      Create a match
// @Description  Persists the fixture and re-runs the next/last reconciliation.
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        match  body  CreateMatchRequest  true  "Fixture details"
// @Success      201  {object}  ScheduleResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	if _, err := mc.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Team")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	m := &Match{
		TeamID:         teamID,
		Opponent:       req.Opponent,
		Venue:          req.Venue,
		Home:           true,
		KickoffAt:      req.KickoffAt,
		ChampionshipID: req.ChampionshipID,
		StreamURL:      req.StreamURL,
		Notes:          req.Notes,
	}
	if req.Home != nil {
		m.Home = *req.Home
	}

	if err := mc.repo.Create(m); err != nil {
		log.Printf("matches: create failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	p, err := mc.reconcileTeam(teamID)
	if err != nil {
		log.Printf("matches: reconcile after create failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, ScheduleResponse{NextMatch: p.Next, LastMatches: p.Last})
}

// @Summary      Update a match
// @Description  Applies the edit and re-runs the next/last reconciliation.
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        match_id  path  int  true  "Match ID"
// @Param        match  body  UpdateMatchRequest  true  "Fields to update"
// @Success      200  {object}  ScheduleResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/matches/{match_id} [put]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid match id")
		return
	}

	m, err := mc.repo.GetByID(uint(matchID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Match")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	if m.TeamID != teamID {
		utils.NotFoundJSON(c, "Match")
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	if req.Opponent != nil {
		m.Opponent = *req.Opponent
	}
	if req.Venue != nil {
		m.Venue = *req.Venue
	}
	if req.Home != nil {
		m.Home = *req.Home
	}
	if req.KickoffAt != nil {
		m.KickoffAt = *req.KickoffAt
	}
	if req.HomeScore != nil {
		m.HomeScore = req.HomeScore
	}
	if req.AwayScore != nil {
		m.AwayScore = req.AwayScore
	}
	if req.ChampionshipID != nil {
		m.ChampionshipID = req.ChampionshipID
	}
	if req.StreamURL != nil {
		m.StreamURL = *req.StreamURL
	}
	if req.Notes != nil {
		m.Notes = *req.Notes
	}

	if err := mc.repo.Update(m); err != nil {
		log.Printf("matches: update %d failed: %v", matchID, err)
		utils.InternalErrorJSON(c, err)
		return
	}

	p, err := mc.reconcileTeam(teamID)
	if err != nil {
		log.Printf("matches: reconcile after update failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, ScheduleResponse{NextMatch: p.Next, LastMatches: p.Last})
}

// @Summary      Delete a match
// @Description  Removes the fixture and re-runs the next/last reconciliation.
// @Tags         Matches
// @Param        team_id  path  int  true  "Team ID"
// @Param        match_id  path  int  true  "Match ID"
// @Success      200  {object}  ScheduleResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/matches/{match_id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid match id")
		return
	}

	m, err := mc.repo.GetByID(uint(matchID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Match")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	if m.TeamID != teamID {
		utils.NotFoundJSON(c, "Match")
		return
	}

	if err := mc.repo.Delete(uint(matchID)); err != nil {
		log.Printf("matches: delete %d failed: %v", matchID, err)
		utils.InternalErrorJSON(c, err)
		return
	}

	p, err := mc.reconcileTeam(teamID)
	if err != nil {
		log.Printf("matches: reconcile after delete failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, ScheduleResponse{NextMatch: p.Next, LastMatches: p.Last})
}
