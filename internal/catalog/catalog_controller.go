package catalog

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/scorebook/internal/match"
	"github.com/DhavalSuthar-24/scorebook/pkg/responses"
	"github.com/gin-gonic/gin"
)

// CatalogController handles API requests for the player-name catalog.
type CatalogController struct {
	repo CatalogRepository
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(repo CatalogRepository) *CatalogController {
	return &CatalogController{repo: repo}
}

// --- DTOs ---

type ReplaceCatalogRequest struct {
	TeamA []string `json:"teamA" binding:"omitempty,dive,max=100"`
	TeamB []string `json:"teamB" binding:"omitempty,dive,max=100"`
}

type AddPlayerRequest struct {
	Side string `json:"side" binding:"required,oneof=teamA teamB"`
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// GetCatalog godoc
// @Summary Get the player-name catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=match.Roster}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /catalog [get]
func (cc *CatalogController) GetCatalog(c *gin.Context) {
	roster, err := cc.repo.Load()
	if err != nil {
		responses.InternalServerError(c, "Failed to load catalog: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Catalog retrieved successfully", roster)
}

// ReplaceCatalog godoc
// @Summary Replace the player-name catalog
// @Description The new catalog is picked up by the next CreateTeams or Reset.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param catalog body ReplaceCatalogRequest true "Names per side"
// @Success 200 {object} responses.SuccessResponse{data=match.Roster}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /catalog [put]
func (cc *CatalogController) ReplaceCatalog(c *gin.Context) {
	var req ReplaceCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	if err := cc.repo.Save(match.Roster{TeamA: req.TeamA, TeamB: req.TeamB}); err != nil {
		responses.InternalServerError(c, "Failed to save catalog: "+err.Error())
		return
	}
	cc.respondWithCatalog(c, "Catalog updated successfully")
}

// AddPlayer godoc
// @Summary Add a player name to one side of the catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Param player body AddPlayerRequest true "Side and name"
// @Success 201 {object} responses.SuccessResponse{data=match.Roster}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /catalog/players [post]
func (cc *CatalogController) AddPlayer(c *gin.Context) {
	var req AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		responses.BadRequest(c, "Player name cannot be blank")
		return
	}

	if err := cc.repo.AddPlayer(match.Side(req.Side), name); err != nil {
		responses.InternalServerError(c, "Failed to add player: "+err.Error())
		return
	}
	roster, err := cc.repo.Load()
	if err != nil {
		responses.InternalServerError(c, "Failed to load catalog: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player added successfully", roster)
}

func (cc *CatalogController) respondWithCatalog(c *gin.Context, message string) {
	roster, err := cc.repo.Load()
	if err != nil {
		responses.InternalServerError(c, "Failed to load catalog: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, message, roster)
}
