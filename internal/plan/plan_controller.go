package plan

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/middleware"
	"github.com/meutimefc/api/internal/user"
	"github.com/meutimefc/api/pkg/utils"
	"gorm.io/gorm"
)

type PlanController struct {
	repo     PlanRepository
	userRepo user.UserRepository
	config   *config.Config
}

func NewPlanController(repo PlanRepository, userRepo user.UserRepository, cfg *config.Config) *PlanController {
	return &PlanController{repo: repo, userRepo: userRepo, config: cfg}
}

func teamIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid team id")
		return 0, false
	}
	return uint(id), true
}

// @Summary      List membership plans
// @Tags         Plans
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Success      200  {array}  Plan
// @Router       /teams/{team_id}/plans [get]
func (pc *PlanController) GetPlans(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	plans, err := pc.repo.ListActive(teamID)
	if err != nil {
		log.Printf("plans: list for team %d failed: %v", teamID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// @Summary      Subscribe to a plan
// @Description  Creates the subscription and marks the user as a socio.
// @Description  The socio flag lands in the token on the next login.
// @Tags         Plans
// @Produce      json
// @Param        plan_id  path  int  true  "Plan ID"
// @Success      201  {object}  Subscription
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /plans/{plan_id}/subscribe [post]
func (pc *PlanController) Subscribe(c *gin.Context) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		utils.UnauthorizedJSON(c)
		return
	}
	planID, err := strconv.ParseUint(c.Param("plan_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid plan id")
		return
	}

	p, err := pc.repo.GetByID(uint(planID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Plan")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	if !p.Active {
		utils.BadRequestJSON(c, "Plan is no longer offered")
		return
	}

	if existing, err := pc.repo.GetActiveSubscription(claims.UserID); err == nil && existing != nil {
		utils.BadRequestJSON(c, "Already subscribed to a plan")
		return
	}

	s := &Subscription{UserID: claims.UserID, PlanID: p.ID, Status: "active"}
	if err := pc.repo.CreateSubscription(s); err != nil {
		log.Printf("plans: subscribe user %d to plan %d failed: %v", claims.UserID, p.ID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	if err := pc.userRepo.SetSocio(claims.UserID, true); err != nil {
		log.Printf("plans: set socio for user %d failed: %v", claims.UserID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// @Summary      Cancel my subscription
// @Tags         Plans
// @Produce      json
// @Success      200  {object}  utils.SuccessResponse
// @Router       /plans/subscription [delete]
func (pc *PlanController) Unsubscribe(c *gin.Context) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		utils.UnauthorizedJSON(c)
		return
	}
	if err := pc.repo.CancelSubscription(claims.UserID); err != nil {
		log.Printf("plans: cancel for user %d failed: %v", claims.UserID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	if err := pc.userRepo.SetSocio(claims.UserID, false); err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	utils.SuccessJSON(c, http.StatusOK, "Subscription cancelled", nil)
}

// @Summary      My subscription
// @Tags         Plans
// @Produce      json
// @Success      200  {object}  Subscription
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /plans/subscription [get]
func (pc *PlanController) GetMySubscription(c *gin.Context) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		utils.UnauthorizedJSON(c)
		return
	}
	s, err := pc.repo.GetActiveSubscription(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Subscription")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary      Create plan
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        plan  body  CreatePlanRequest  true  "Plan details"
// @Success      201  {object}  Plan
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/plans [post]
func (pc *PlanController) CreatePlan(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	p := &Plan{
		TeamID:      teamID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Interval:    req.Interval,
		Benefits:    req.Benefits,
		Active:      true,
	}
	if p.Interval == "" {
		p.Interval = "monthly"
	}

	if err := pc.repo.Create(p); err != nil {
		log.Printf("plans: create failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Update plan
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        plan_id  path  int  true  "Plan ID"
// @Param        plan  body  UpdatePlanRequest  true  "Fields to update"
// @Success      200  {object}  Plan
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/plans/{plan_id} [put]
func (pc *PlanController) UpdatePlan(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	planID, err := strconv.ParseUint(c.Param("plan_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid plan id")
		return
	}

	p, err := pc.repo.GetByID(uint(planID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Plan")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	if p.TeamID != teamID {
		utils.NotFoundJSON(c, "Plan")
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Interval != nil {
		p.Interval = *req.Interval
	}
	if req.Benefits != nil {
		p.Benefits = *req.Benefits
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := pc.repo.Update(p); err != nil {
		log.Printf("plans: update %d failed: %v", planID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Delete plan
// @Tags         Plans
// @Param        team_id  path  int  true  "Team ID"
// @Param        plan_id  path  int  true  "Plan ID"
// @Success      200  {object}  utils.SuccessResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/plans/{plan_id} [delete]
func (pc *PlanController) DeletePlan(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	planID, err := strconv.ParseUint(c.Param("plan_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid plan id")
		return
	}

	p, err := pc.repo.GetByID(uint(planID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Plan")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	if p.TeamID != teamID {
		utils.NotFoundJSON(c, "Plan")
		return
	}

	if err := pc.repo.Delete(uint(planID)); err != nil {
		log.Printf("plans: delete %d failed: %v", planID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	utils.SuccessJSON(c, http.StatusOK, "Plan deleted successfully", nil)
}
