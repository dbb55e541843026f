package shop

import (
	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/middleware"
	"gorm.io/gorm"
)

// ShopRoutes sets up storefront routes. The catalog is public; checkout
// needs an authenticated buyer with the store:purchase permission and
// catalog management needs store:manage.
func ShopRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	shopRepo := NewGormShopRepository(db)
	shopController := NewShopController(shopRepo, appConfig)

	router.GET("/teams/:team_id/products", shopController.GetProducts)
	router.GET("/teams/:team_id/products/:product_id", shopController.GetProduct)

	buyer := router.Group("/")
	buyer.Use(middleware.APIAuth(appConfig), middleware.RequirePermission("store:purchase"))
	{
		buyer.POST("/shop/checkout", shopController.Checkout)
		buyer.GET("/orders", shopController.GetMyOrders)
	}

	managed := router.Group("/")
	managed.Use(middleware.APIAuth(appConfig), middleware.RequirePermission("store:manage"))
	{
		managed.POST("/teams/:team_id/products", shopController.CreateProduct)
		managed.PUT("/teams/:team_id/products/:product_id", shopController.UpdateProduct)
		managed.DELETE("/teams/:team_id/products/:product_id", shopController.DeleteProduct)
	}
}
