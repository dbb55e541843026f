package plan

import (
	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/middleware"
	"github.com/meutimefc/api/internal/user"
	"gorm.io/gorm"
)

// PlanRoutes sets up membership routes. Tier listings are public;
// subscribing needs plans:subscribe and tier management needs plans:manage.
func PlanRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, userRepo user.UserRepository) {
	planRepo := NewGormPlanRepository(db)
	planController := NewPlanController(planRepo, userRepo, appConfig)

	router.GET("/teams/:team_id/plans", planController.GetPlans)

	subscriber := router.Group("/")
	subscriber.Use(middleware.APIAuth(appConfig), middleware.RequirePermission("plans:subscribe"))
	{
		subscriber.POST("/plans/:plan_id/subscribe", planController.Subscribe)
		subscriber.DELETE("/plans/subscription", planController.Unsubscribe)
		subscriber.GET("/plans/subscription", planController.GetMySubscription)
	}

	managed := router.Group("/")
	managed.Use(middleware.APIAuth(appConfig), middleware.RequirePermission("plans:manage"))
	{
		managed.POST("/teams/:team_id/plans", planController.CreatePlan)
		managed.PUT("/teams/:team_id/plans/:plan_id", planController.UpdatePlan)
		managed.DELETE("/teams/:team_id/plans/:plan_id", planController.DeletePlan)
	}
}
