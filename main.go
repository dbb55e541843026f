package main

import (
	"log"

	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/auth"
	"github.com/meutimefc/api/internal/championship"
	"github.com/meutimefc/api/internal/match"
	"github.com/meutimefc/api/internal/news"
	"github.com/meutimefc/api/internal/plan"
	"github.com/meutimefc/api/internal/shop"
	"github.com/meutimefc/api/internal/team"
	"github.com/meutimefc/api/internal/user"
	"github.com/meutimefc/api/routes"
)

// @title MeuTime FC API
// @version 1.0
// @description Multi-tenant backend for amateur football clubs: auth,
// @description schedule, store, memberships, news and championships.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &auth.PasswordReset{},
		&team.Team{}, &match.Match{},
		&shop.Product{}, &shop.Order{}, &shop.OrderItem{},
		&news.News{}, &plan.Plan{}, &plan.Subscription{},
		&championship.Championship{}, &championship.StandingsRow{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
