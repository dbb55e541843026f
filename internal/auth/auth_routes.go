package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/middleware"
	"gorm.io/gorm"
)

// RegisterAuthRoutes wires the auth endpoints. The limiter is shared across
// requests for the process lifetime.
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig, NewLoginLimiter())

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
		authPublic.POST("/forgot-password", authController.ForgotPassword)
		authPublic.POST("/reset-password", authController.ResetPassword)
		authPublic.POST("/logout", authController.Logout)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.APIAuth(appConfig))
	{
		authProtected.GET("/me", authController.Me)
	}
}
