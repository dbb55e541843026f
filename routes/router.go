package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/auth"
	"github.com/meutimefc/api/internal/championship"
	"github.com/meutimefc/api/internal/match"
	"github.com/meutimefc/api/internal/middleware"
	"github.com/meutimefc/api/internal/news"
	"github.com/meutimefc/api/internal/plan"
	"github.com/meutimefc/api/internal/shop"
	"github.com/meutimefc/api/internal/team"
	"github.com/meutimefc/api/internal/user"
)

func SetupRoutes(appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.Static("/public", "./public")

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>MeuTime FC</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>MeuTime FC ⚽</h1>
					<p>O clube do seu bairro, na palma da mão.</p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Role-gated page prefixes. The gate only redirects; the pages behind
	// it are served by the frontend.
	for _, prefix := range []string{"/admin", "/organizer", "/referee", "/fan"} {
		pages := r.Group(prefix)
		pages.Use(middleware.SessionGuard(appConfig))
		pages.GET("/*page", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	}

	// API routes
	api := r.Group("/api")

	teamRepo := team.NewTeamRepository(config.DB)
	userRepo := user.NewGormUserRepository(config.DB)

	auth.RegisterAuthRoutes(api, config.DB, appConfig)

	team.TeamRoutes(api, config.DB, appConfig)
	match.MatchRoutes(api, config.DB, appConfig, teamRepo)
	shop.ShopRoutes(api, config.DB, appConfig)
	news.NewsRoutes(api, config.DB, appConfig)
	plan.PlanRoutes(api, config.DB, appConfig, userRepo)
	championship.ChampionshipRoutes(api, config.DB, appConfig)

	return r
}
