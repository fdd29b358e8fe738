package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/scorebook/config"
	"github.com/DhavalSuthar-24/scorebook/internal/catalog"
	"github.com/DhavalSuthar-24/scorebook/internal/match"
)

const welcomePage = `
<html>
	<head><title>Scorebook</title></head>
	<body style="text-align:center; margin-top: 40px;">
		<h1>Scorebook 🏏</h1>
		<p>Live scoring API is up. Current match: <a href="/api/match">/api/match</a></p>
		<p><a href="/swagger/index.html">swagger</a></p>
	</body>
</html>
`

func SetupRoutes(cfg *config.Config, service *match.Service, repo catalog.CatalogRepository) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(cfg.App.FrontendURL))

	r.Static("/public", cfg.App.PublicDir)

	// Scoring UI if one is shipped, welcome page otherwise
	index := filepath.Join(cfg.App.PublicDir, "index.html")
	r.GET("/", func(c *gin.Context) {
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(welcomePage))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	match.RegisterMatchRoutes(api, service)
	catalog.RegisterCatalogRoutes(api, repo)

	return r
}

func corsMiddleware(frontendURL string) gin.HandlerFunc {
	if frontendURL == "" || frontendURL == "*" {
		return cors.Default() // allows all origins, GET/POST/PUT
	}
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{frontendURL}
	return cors.New(corsCfg)
}
