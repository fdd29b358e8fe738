package match

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/scorebook/pkg/responses"
	"github.com/gin-gonic/gin"
)

// MatchController handles the live-scoring HTTP requests.
type MatchController struct {
	service *Service
}

// NewMatchController creates a new match controller
func NewMatchController(service *Service) *MatchController {
	return &MatchController{service: service}
}

// --- DTOs for requests ---

// CreateTeamsRequest defines the request payload for naming both sides
type CreateTeamsRequest struct {
	TeamA string `json:"team_a" binding:"required,max=100"`
	TeamB string `json:"team_b" binding:"required,max=100"`
}

// StartInningsRequest defines the request payload for opening an innings
type StartInningsRequest struct {
	BattingTeam string `json:"batting_team" binding:"omitempty,oneof=teamA teamB"`
	Striker     string `json:"striker" binding:"required,max=100"`
	NonStriker  string `json:"non_striker" binding:"required,max=100"`
	Bowler      string `json:"bowler" binding:"required,max=100"`
	Overs       string `json:"overs,omitempty" binding:"max=10"` // e.g. "20" or "4.3"
}

// RunRequest defines the request payload for runs off the bat
type RunRequest struct {
	Runs *int `json:"runs" binding:"required,min=0"`
}

// ExtraRequest defines the request payload for a wide or no-ball
type ExtraRequest struct {
	Type string `json:"type" binding:"required,oneof=wide noball"`
	Runs int    `json:"runs" binding:"min=0"`
}

// WicketRequest defines the request payload for a dismissal
type WicketRequest struct {
	WicketType string `json:"wicket_type" binding:"required,max=50"`
}

// PlayerRequest names a batsman or bowler
type PlayerRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// StrikeRequest defines the request payload for a manual strike change
type StrikeRequest struct {
	Action string `json:"action" binding:"required,oneof=swap set_striker set_non_striker"`
	Name   string `json:"name,omitempty" binding:"max=100"`
}

// --- Handlers ---

// GetState godoc
// @Summary Get the live match snapshot
// @Tags Match
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=View}
// @Router /match [get]
func (mc *MatchController) GetState(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Match state retrieved", mc.service.Snapshot())
}

// CreateTeams godoc
// @Summary Name both teams and start a new match
// @Tags Match
// @Accept json
// @Produce json
// @Param teams body CreateTeamsRequest true "Team names"
// @Success 200 {object} responses.EventResponse
// @Failure 400 {object} responses.EventResponse
// @Router /match/teams [post]
func (mc *MatchController) CreateTeams(c *gin.Context) {
	var req CreateTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mc.rejectPayload(c, err)
		return
	}
	mc.apply(c, CreateTeams{TeamA: req.TeamA, TeamB: req.TeamB})
}

// StartInnings godoc
// @Summary Open an innings with two batsmen and a bowler
// @Tags Match
// @Accept json
// @Produce json
// @Param innings body StartInningsRequest true "Openers, bowler and overs limit"
// @Success 200 {object} responses.EventResponse
// @Failure 400 {object} responses.EventResponse
// @Failure 409 {object} responses.EventResponse
// @Failure 412 {object} responses.EventResponse
// @Router /match/innings/start [post]
func (mc *MatchController) StartInnings(c *gin.Context) {
	var req StartInningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mc.rejectPayload(c, err)
		return
	}
	mc.apply(c, StartInnings{
		BattingTeam: Side(req.BattingTeam),
		Striker:     req.Striker,
		NonStriker:  req.NonStriker,
		Bowler:      req.Bowler,
		OversLimit:  req.Overs,
	})
}

// RecordRun godoc
// @Summary Record runs off the bat
// @Tags Scoring
// @Accept json
// @Produce json
// @Param run body RunRequest true "Runs scored"
// @Success 200 {object} responses.EventResponse
// @Failure 412 {object} responses.EventResponse
// @Router /match/run [post]
func (mc *MatchController) RecordRun(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mc.rejectPayload(c, err)
		return
	}
	mc.apply(c, RecordRun{Runs: *req.Runs})
}

// RecordExtra godoc
// @Summary Record a wide or a no-ball
// @Tags Scoring
// @Accept json
// @Produce json
// @Param extra body ExtraRequest true "Extra type and runs taken"
// @Success 200 {object} responses.EventResponse
// @Failure 412 {object} responses.EventResponse
// @Router /match/extra [post]
func (mc *MatchController) RecordExtra(c *gin.Context) {
	var req ExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mc.rejectPayload(c, err)
		return
	}
	mc.apply(c, RecordExtra{Kind: ExtraType(req.Type), ExtraRuns: req.Runs})
}

// RecordWicket godoc
// @Summary Dismiss the striker
// @Tags Scoring
// @Accept json
// @Produce json
// @Param wicket body WicketRequest true "Dismissal type"
// @Success 200 {object} responses.EventResponse
// @Failure 412 {object} responses.EventResponse
// @Router /match/wicket [post]
func (mc *MatchController) RecordWicket(c *gin.Context) {
	var req WicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mc.rejectPayload(c, err)
		return
	}
	mc.apply(c, RecordWicket{WicketType: DismissalType(req.WicketType)})
}

// SelectNewBatsman godoc
// @Summary Send in the next batsman
// @Tags Players
// @Accept json
// @Produce json
// @Param batsman body PlayerRequest true "Batsman name"
// @Success 200 {object} responses.EventResponse
// @Failure 409 {object} responses.EventResponse
// @Failure 412 {object} responses.EventResponse
// @Router /match/batsman [post]
func (mc *MatchController) SelectNewBatsman(c *gin.Context) {
	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mc.rejectPayload(c, err)
		return
	}
	mc.apply(c, SelectNewBatsman{Name: req.Name})
}

// ActivateLastManStanding godoc
// @Summary Let the remaining batsman continue alone
// @Tags Players
// @Produce json
// @Success 200 {object} responses.EventResponse
// @Failure 412 {object} responses.EventResponse
// @Router /match/last-man-standing [post]
func (mc *MatchController) ActivateLastManStanding(c *gin.Context) {
	mc.apply(c, ActivateLastManStanding{})
}

// SelectBowler godoc
// @Summary Set the current bowler
// @Tags Players
// @Accept json
// @Produce json
// @Param bowler body PlayerRequest true "Bowler name"
// @Success 200 {object} responses.EventResponse
// @Failure 409 {object} responses.EventResponse
// @Router /match/bowler [post]
func (mc *MatchController) SelectBowler(c *gin.Context) {
	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mc.rejectPayload(c, err)
		return
	}
	mc.apply(c, SelectBowler{Name: req.Name})
}

// ChangeStrike godoc
// @Summary Manually change who is on strike
// @Tags Players
// @Accept json
// @Produce json
// @Param strike body StrikeRequest true "Strike action"
// @Success 200 {object} responses.EventResponse
// @Failure 409 {object} responses.EventResponse
// @Router /match/strike [post]
func (mc *MatchController) ChangeStrike(c *gin.Context) {
	var req StrikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mc.rejectPayload(c, err)
		return
	}
	mc.apply(c, ChangeStrike{Action: StrikeAction(req.Action), Name: req.Name})
}

// EndInnings godoc
// @Summary End the first innings, or end the match during the second
// @Tags Match
// @Produce json
// @Success 200 {object} responses.EventResponse
// @Failure 412 {object} responses.EventResponse
// @Router /match/innings/end [post]
func (mc *MatchController) EndInnings(c *gin.Context) {
	mc.apply(c, EndInnings{})
}

// Undo godoc
// @Summary Undo the last accepted event
// @Tags Match
// @Produce json
// @Success 200 {object} responses.EventResponse
// @Failure 400 {object} responses.EventResponse
// @Router /match/undo [post]
func (mc *MatchController) Undo(c *gin.Context) {
	mc.apply(c, Undo{})
}

// Reset godoc
// @Summary Discard the match and reload the player catalog
// @Tags Match
// @Produce json
// @Success 200 {object} responses.EventResponse
// @Router /match/reset [post]
func (mc *MatchController) Reset(c *gin.Context) {
	mc.apply(c, Reset{})
}

func (mc *MatchController) apply(c *gin.Context, ev Event) {
	out, view, err := mc.service.Apply(ev)
	if err != nil {
		kind := KindOf(err)
		if kind == "" {
			responses.InternalServerError(c, "Failed to apply "+ev.EventName()+": "+err.Error())
			return
		}
		var ee *EngineError
		errors.As(err, &ee)
		responses.EventRejected(c, statusForKind(kind), string(kind), ee.Message, view)
		return
	}
	responses.EventAccepted(c, out.Message, out.Result, out.WarningSame, view)
}

func (mc *MatchController) rejectPayload(c *gin.Context, err error) {
	responses.EventPayloadRejected(c, string(KindValidation), err, mc.service.Snapshot())
}

// statusForKind maps an engine rejection to its HTTP status.
func statusForKind(kind ErrorKind) int {
	switch kind {
	case KindValidation, KindEmptyHistory:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindPrecondition:
		return http.StatusPreconditionFailed
	}
	return http.StatusInternalServerError
}
