package team

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/pkg/utils"
	"github.com/meutimefc/api/pkg/validator"
	"gorm.io/gorm"
)

type TeamController struct {
	repo   TeamRepository
	config *config.Config
}

func NewTeamController(repo TeamRepository, cfg *config.Config) *TeamController {
	return &TeamController{repo: repo, config: cfg}
}

// @Summary      List clubs
// @Tags         Teams
// @Produce      json
// @Success      200  {array}  Team
// @Router       /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	teams, err := tc.repo.List()
	if err != nil {
		log.Printf("teams: list failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// @Summary      Get a club
// @Tags         Teams
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Success      200  {object}  Team
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid team id")
		return
	}

	t, err := tc.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Team")
			return
		}
		log.Printf("teams: lookup %d failed: %v", id, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Create a club
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        team  body  CreateTeamRequest  true  "Club details"
// @Success      201  {object}  Team
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "fields": validator.ParseError(err)})
		return
	}

	if _, err := tc.repo.GetBySlug(req.Slug); !errors.Is(err, gorm.ErrRecordNotFound) {
		if err == nil {
			utils.BadRequestJSON(c, "A club with this slug already exists")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}

	t := &Team{
		Name:           req.Name,
		Slug:           req.Slug,
		Crest:          req.Crest,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		Description:    req.Description,
	}
	if err := tc.repo.Create(t); err != nil {
		log.Printf("teams: create failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary      Update a club
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        team  body  UpdateTeamRequest  true  "Fields to update"
// @Success      200  {object}  Team
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid team id")
		return
	}

	t, err := tc.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Team")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "fields": validator.ParseError(err)})
		return
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Crest != nil {
		t.Crest = *req.Crest
	}
	if req.PrimaryColor != nil {
		t.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		t.SecondaryColor = *req.SecondaryColor
	}
	if req.Description != nil {
		t.Description = *req.Description
	}

	if err := tc.repo.Update(t); err != nil {
		log.Printf("teams: update %d failed: %v", id, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Delete a club
// @Tags         Teams
// @Param        team_id  path  int  true  "Team ID"
// @Success      200  {object}  utils.SuccessResponse
// @Router       /teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid team id")
		return
	}
	if err := tc.repo.Delete(uint(id)); err != nil {
		log.Printf("teams: delete %d failed: %v", id, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	utils.SuccessJSON(c, http.StatusOK, "Team deleted", nil)
}
