package championship

import (
	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/middleware"
	"gorm.io/gorm"
)

// ChampionshipRoutes sets up tournament routes. Tables are public;
// writes require the championships:manage permission.
func ChampionshipRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	champRepo := NewGormChampionshipRepository(db)
	champController := NewChampionshipController(champRepo, appConfig)

	router.GET("/teams/:team_id/championships", champController.GetChampionships)
	router.GET("/teams/:team_id/championships/:championship_id", champController.GetChampionship)
	router.GET("/teams/:team_id/championships/:championship_id/standings", champController.GetStandings)

	managed := router.Group("/")
	managed.Use(middleware.APIAuth(appConfig), middleware.RequirePermission("championships:manage"))
	{
		managed.POST("/teams/:team_id/championships", champController.CreateChampionship)
		managed.PUT("/teams/:team_id/championships/:championship_id", champController.UpdateChampionship)
		managed.DELETE("/teams/:team_id/championships/:championship_id", champController.DeleteChampionship)
		managed.PUT("/teams/:team_id/championships/:championship_id/standings", champController.ReplaceStandings)
	}
}
