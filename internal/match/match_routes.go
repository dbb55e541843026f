package match

import (
	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/middleware"
	"github.com/meutimefc/api/internal/team"
	"gorm.io/gorm"
)

// MatchRoutes sets up schedule and fixture routes. Schedule and live pages
// are public; mutations require the matches:manage permission.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, teamRepo team.TeamRepository) {
	matchRepo := NewGormMatchRepository(db)
	matchController := NewMatchController(matchRepo, teamRepo, appConfig)

	router.GET("/teams/:team_id/schedule", matchController.GetSchedule)
	router.GET("/teams/:team_id/live", matchController.GetLive)
	router.GET("/teams/:team_id/matches", matchController.GetTeamMatches)

	managed := router.Group("/")
	managed.Use(middleware.APIAuth(appConfig), middleware.RequirePermission("matches:manage"))
	{
		managed.POST("/teams/:team_id/matches", matchController.CreateMatch)
		managed.PUT("/teams/:team_id/matches/:match_id", matchController.UpdateMatch)
		managed.DELETE("/teams/:team_id/matches/:match_id", matchController.DeleteMatch)
	}
}
