package team

import (
	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/middleware"
	"gorm.io/gorm"
)

// TeamRoutes sets up club CRUD. Reads are public; writes require the
// teams:manage permission.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo, appConfig)

	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/teams/:team_id", teamController.GetTeamByID)

	managed := router.Group("/")
	managed.Use(middleware.APIAuth(appConfig), middleware.RequirePermission("teams:manage"))
	{
		managed.POST("/teams", teamController.CreateTeam)
		managed.PUT("/teams/:team_id", teamController.UpdateTeam)
		managed.DELETE("/teams/:team_id", teamController.DeleteTeam)
	}
}
