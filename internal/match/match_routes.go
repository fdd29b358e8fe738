package match

import (
	"github.com/gin-gonic/gin"
)

// RegisterMatchRoutes sets up the live-scoring routes.
func RegisterMatchRoutes(router *gin.RouterGroup, service *Service) {
	matchController := NewMatchController(service)

	matchRoutes := router.Group("/match")
	{
		matchRoutes.GET("", matchController.GetState)

		// Setup
		matchRoutes.POST("/teams", matchController.CreateTeams)
		matchRoutes.POST("/innings/start", matchController.StartInnings)
		matchRoutes.POST("/innings/end", matchController.EndInnings)

		// Ball-by-ball scoring
		matchRoutes.POST("/run", matchController.RecordRun)
		matchRoutes.POST("/extra", matchController.RecordExtra)
		matchRoutes.POST("/wicket", matchController.RecordWicket)

		// Players at the crease and the bowling crease
		matchRoutes.POST("/batsman", matchController.SelectNewBatsman)
		matchRoutes.POST("/last-man-standing", matchController.ActivateLastManStanding)
		matchRoutes.POST("/bowler", matchController.SelectBowler)
		matchRoutes.POST("/strike", matchController.ChangeStrike)

		// Recovery
		matchRoutes.POST("/undo", matchController.Undo)
		matchRoutes.POST("/reset", matchController.Reset)
	}
}
