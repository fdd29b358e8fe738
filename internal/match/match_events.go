package match

// Event is one scoring or control event. The set is closed: Reduce switches
// over every implementation.
type Event interface {
	EventName() string
}

// CreateTeams names both sides and clears all match progress.
// Roster overrides the stored catalog when non-empty.
type CreateTeams struct {
	TeamA   string
	TeamB   string
	Roster  Roster
	MatchID string
}

// StartInnings opens an innings. BattingTeam is only read for innings 1.
// OversLimit is "<overs>.<balls 0-5>"; "" or "0" means unlimited, and in
// innings 2 "" keeps the first innings' limit.
type StartInnings struct {
	BattingTeam Side
	Striker     string
	NonStriker  string
	Bowler      string
	OversLimit  string
}

// RecordRun scores runs off the bat on a legal delivery.
type RecordRun struct {
	Runs int
}

// RecordExtra scores a wide or a no-ball plus any runs taken off it.
type RecordExtra struct {
	Kind      ExtraType
	ExtraRuns int
}

// RecordWicket dismisses the striker.
type RecordWicket struct {
	WicketType DismissalType
}

// SelectNewBatsman fills the vacancy left by a wicket.
type SelectNewBatsman struct {
	Name string
}

// ActivateLastManStanding lets the surviving batsman continue alone.
type ActivateLastManStanding struct{}

// SelectBowler sets the current bowler.
type SelectBowler struct {
	Name string
}

// StrikeAction is the manual strike override.
type StrikeAction string

const (
	StrikeSwap          StrikeAction = "swap"
	StrikeSetStriker    StrikeAction = "set_striker"
	StrikeSetNonStriker StrikeAction = "set_non_striker"
)

// ChangeStrike manually overrides who is on strike.
type ChangeStrike struct {
	Action StrikeAction
	Name   string
}

// EndInnings closes innings 1, or force-finishes the match in innings 2.
type EndInnings struct{}

// Undo restores the state before the last accepted event.
type Undo struct{}

// Reset discards the match. Catalog is the freshly reloaded player catalog.
type Reset struct {
	Catalog Roster
}

func (CreateTeams) EventName() string             { return "create_teams" }
func (StartInnings) EventName() string            { return "start_innings" }
func (RecordRun) EventName() string               { return "record_run" }
func (RecordExtra) EventName() string             { return "record_extra" }
func (RecordWicket) EventName() string            { return "record_wicket" }
func (SelectNewBatsman) EventName() string        { return "select_new_batsman" }
func (ActivateLastManStanding) EventName() string { return "activate_last_man_standing" }
func (SelectBowler) EventName() string            { return "select_bowler" }
func (ChangeStrike) EventName() string            { return "change_strike" }
func (EndInnings) EventName() string              { return "end_innings" }
func (Undo) EventName() string                    { return "undo" }
func (Reset) EventName() string                   { return "reset" }

// Outcome summarizes an accepted event.
type Outcome struct {
	Message string
	// WarningSame flags a bowler re-selected straight after finishing the previous over.
	WarningSame bool
	// Result is set when the event finished the match.
	Result string
}
