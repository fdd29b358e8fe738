package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scorebook/config"
	_ "github.com/DhavalSuthar-24/scorebook/docs"
	"github.com/DhavalSuthar-24/scorebook/internal/catalog"
	"github.com/DhavalSuthar-24/scorebook/internal/match"
	"github.com/DhavalSuthar-24/scorebook/routes"
)

// @title Scorebook REST API
// @version 1.0
// @description Live cricket scoring engine.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	repo, err := catalog.NewRepository(cfg.Catalog.Source, cfg.Catalog.File, config.DB)
	if err != nil {
		log.Fatalf("Failed to open player catalog: %v", err)
	}

	service, err := match.NewService(match.Rules{
		DefaultRosterSize: cfg.Match.DefaultRosterSize,
		HistoryLimit:      cfg.Match.HistoryLimit,
	}, repo)
	if err != nil {
		log.Fatalf("Failed to start match service: %v", err)
	}
	log.Printf("Match service ready (catalog: %s, undo depth: %d)", cfg.Catalog.Source, cfg.Match.HistoryLimit)

	r := routes.SetupRoutes(cfg, service, repo)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
