package news

import (
	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/middleware"
	"gorm.io/gorm"
)

// NewsRoutes sets up announcement routes. Published items are public;
// drafts and all writes require the news:publish permission.
func NewsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	newsRepo := NewGormNewsRepository(db)
	newsController := NewNewsController(newsRepo, appConfig)

	router.GET("/teams/:team_id/news", newsController.GetPublishedNews)
	router.GET("/teams/:team_id/news/:news_id", newsController.GetNewsByID)

	managed := router.Group("/")
	managed.Use(middleware.APIAuth(appConfig), middleware.RequirePermission("news:publish"))
	{
		managed.GET("/teams/:team_id/news-admin", newsController.GetAllNews)
		managed.POST("/teams/:team_id/news", newsController.CreateNews)
		managed.PUT("/teams/:team_id/news/:news_id", newsController.UpdateNews)
		managed.DELETE("/teams/:team_id/news/:news_id", newsController.DeleteNews)
	}
}
