package catalog

import (
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes sets up the player-name catalog routes.
func RegisterCatalogRoutes(router *gin.RouterGroup, repo CatalogRepository) {
	catalogController := NewCatalogController(repo)

	catalogRoutes := router.Group("/catalog")
	{
		catalogRoutes.GET("", catalogController.GetCatalog)
		catalogRoutes.PUT("", catalogController.ReplaceCatalog)
		catalogRoutes.POST("/players", catalogController.AddPlayer)
	}
}
