package match

// SetupPhase is the coarse lifecycle marker of the live match.
type SetupPhase string

const (
	PhaseTeams        SetupPhase = "teams"
	PhaseXISelection  SetupPhase = "xi_selection" // Pass-through, CreateTeams moves straight to innings setup
	PhaseInningsSetup SetupPhase = "innings_setup"
	PhaseLive         SetupPhase = "live"
	PhaseFinished     SetupPhase = "finished"
)

// Side identifies one of the two teams.
type Side string

const (
	SideNone Side = ""
	TeamA    Side = "teamA"
	TeamB    Side = "teamB"
)

// Valid reports whether s names one of the two teams.
func (s Side) Valid() bool {
	return s == TeamA || s == TeamB
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case TeamA:
		return TeamB
	case TeamB:
		return TeamA
	}
	return SideNone
}

// DismissalType for cricket wickets
type DismissalType string

const (
	DismissalTypeBowled      DismissalType = "bowled"
	DismissalTypeCaught      DismissalType = "caught"
	DismissalTypeLBW         DismissalType = "lbw"
	DismissalTypeRunOut      DismissalType = "run_out"
	DismissalTypeStumped     DismissalType = "stumped"
	DismissalTypeHitWicket   DismissalType = "hit_wicket"
	DismissalTypeHandledBall DismissalType = "handled_ball"
	DismissalTypeObstructing DismissalType = "obstructing_the_field"
	DismissalTypeTimedOut    DismissalType = "timed_out"
	DismissalTypeRetiredOut  DismissalType = "retired_out"
)

// ExtraType for runs not scored off the bat. Only wides and no-balls are scored by the engine.
type ExtraType string

const (
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "noball"
)

// Team holds a display name. Rosters are not validated, players materialize lazily.
type Team struct {
	Name string `json:"name"`
}

// Teams maps both sides to their display names.
type Teams struct {
	TeamA Team `json:"teamA"`
	TeamB Team `json:"teamB"`
}

// Name returns the display name of side.
func (t Teams) Name(side Side) string {
	switch side {
	case TeamA:
		return t.TeamA.Name
	case TeamB:
		return t.TeamB.Name
	}
	return ""
}

// Roster is the candidate player names per side, as supplied by the catalog.
type Roster struct {
	TeamA []string `json:"teamA" yaml:"teamA"`
	TeamB []string `json:"teamB" yaml:"teamB"`
}

// For returns the candidate names of side.
func (r Roster) For(side Side) []string {
	switch side {
	case TeamA:
		return r.TeamA
	case TeamB:
		return r.TeamB
	}
	return nil
}

// Empty reports whether neither side has any candidate.
func (r Roster) Empty() bool {
	return len(r.TeamA) == 0 && len(r.TeamB) == 0
}

func (r Roster) clone() Roster {
	return Roster{
		TeamA: append([]string(nil), r.TeamA...),
		TeamB: append([]string(nil), r.TeamB...),
	}
}

// InningsScore is the frozen first-innings total used for the chase.
type InningsScore struct {
	Score       int  `json:"score"`
	Wickets     int  `json:"wickets"`
	Balls       int  `json:"balls"`
	BattingTeam Side `json:"batting_team"`
}

// PlayerStat tracks a batsman for the current innings.
type PlayerStat struct {
	Name        string        `json:"name"`
	Runs        int           `json:"runs"`
	BallsFaced  int           `json:"balls_faced"`
	Fours       int           `json:"fours"`
	Sixes       int           `json:"sixes"`
	Out         bool          `json:"out"`
	OutReason   DismissalType `json:"out_reason,omitempty"`
	DismissedBy string        `json:"dismissed_by,omitempty"`
}

// BowlerStat tracks a bowler for the current innings.
// TotalBalls counts legal deliveries only; Deliveries also counts wides and
// no-balls and is a display figure, never the over clock.
type BowlerStat struct {
	Name         string `json:"name"`
	TotalBalls   int    `json:"total_balls"`
	RunsConceded int    `json:"runs_conceded"`
	Wickets      int    `json:"wickets"`
	Maidens      int    `json:"maidens"`
	Wides        int    `json:"wides"`
	NoBalls      int    `json:"no_balls"`
	Deliveries   int    `json:"deliveries"`
}

// FallOfWicket records when and how a wicket fell.
type FallOfWicket struct {
	Player     string        `json:"player"`
	WicketType DismissalType `json:"wicket_type"`
	Score      int           `json:"score"`
	Wickets    int           `json:"wickets"`
	Overs      string        `json:"overs"`
}

// Extras is the breakdown of runs not scored off the bat.
type Extras struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"no_balls"`
	Total   int `json:"total"`
}

// Scorecard is the archived first innings, kept after EndInnings resets the per-innings fields.
type Scorecard struct {
	BattingTeam   Side                  `json:"batting_team"`
	Players       map[string]PlayerStat `json:"players"`
	Bowlers       []BowlerStat          `json:"bowlers"`
	BattingOrder  []string              `json:"batting_order"`
	FallOfWickets []FallOfWicket        `json:"fall_of_wickets"`
	Extras        Extras                `json:"extras"`
}

// Rules configure the engine.
type Rules struct {
	DefaultRosterSize int // Used when the catalog has no names for the batting side
	HistoryLimit      int
}

// DefaultRules mirrors the configuration defaults.
func DefaultRules() Rules {
	return Rules{DefaultRosterSize: 11, HistoryLimit: 20}
}

// MatchState is the single root aggregate of the live match.
type MatchState struct {
	MatchID      string     `json:"match_id,omitempty"`
	MatchStarted bool       `json:"match_started"`
	SetupPhase   SetupPhase `json:"setup_phase"`
	Teams        Teams      `json:"teams"`

	// Catalog survives CreateTeams and is reloaded by Reset.
	Catalog          Roster `json:"catalog"`
	AvailablePlayers Roster `json:"available_players"`

	Innings       int          `json:"innings"`
	Innings1Score InningsScore `json:"innings1_score"`
	Innings1Card  *Scorecard   `json:"innings1_card,omitempty"`
	Target        int          `json:"target"`

	MatchBallLimit int     `json:"match_ball_limit"` // 0 means unlimited overs
	FinalResult    *string `json:"final_result"`

	BattingTeam Side `json:"batting_team"`
	BowlingTeam Side `json:"bowling_team"`

	Score   int    `json:"score"`
	Wickets int    `json:"wickets"`
	Balls   int    `json:"balls"`
	Extras  Extras `json:"extras"`

	Players map[string]PlayerStat `json:"players"`
	Bowlers []BowlerStat          `json:"bowlers"`

	Striker       string `json:"striker"`
	NonStriker    string `json:"non_striker"`
	CurrentBowler string `json:"current_bowler"`

	AwaitingNewBatsman bool   `json:"awaiting_new_batsman"`
	AwaitingNewBowler  bool   `json:"awaiting_new_bowler"`
	LastOverBowler     string `json:"last_over_bowler"`
	InningsComplete    bool   `json:"innings_complete"`

	LastManStandingMode bool `json:"last_man_standing_mode"`

	CurrentOverRuns int      `json:"current_over_runs"`
	ThisOver        []string `json:"this_over"`

	BattingOrder  []string       `json:"batting_order"`
	FallOfWickets []FallOfWicket `json:"fall_of_wickets"`
	Log           []string       `json:"log"`
}

// NewMatchState returns the zero state a freshly started process holds.
func NewMatchState(catalog Roster) *MatchState {
	return &MatchState{
		SetupPhase:    PhaseTeams,
		Innings:       1,
		Catalog:       catalog.clone(),
		Players:       map[string]PlayerStat{},
		Bowlers:       []BowlerStat{},
		BattingOrder:  []string{},
		FallOfWickets: []FallOfWicket{},
		ThisOver:      []string{},
		Log:           []string{},
	}
}

// Clone copies the state for a new transition. The append-only sequences are
// shared with their capacity capped, so an append on either copy reallocates
// instead of writing into the other's backing array.
func (s *MatchState) Clone() *MatchState {
	c := *s
	c.Players = make(map[string]PlayerStat, len(s.Players))
	for k, v := range s.Players {
		c.Players[k] = v
	}
	c.Bowlers = append(make([]BowlerStat, 0, len(s.Bowlers)), s.Bowlers...)
	c.BattingOrder = s.BattingOrder[:len(s.BattingOrder):len(s.BattingOrder)]
	c.FallOfWickets = s.FallOfWickets[:len(s.FallOfWickets):len(s.FallOfWickets)]
	c.ThisOver = s.ThisOver[:len(s.ThisOver):len(s.ThisOver)]
	c.Log = s.Log[:len(s.Log):len(s.Log)]
	if s.FinalResult != nil {
		r := *s.FinalResult
		c.FinalResult = &r
	}
	return &c
}

// RosterSize is the number of players available to the batting side.
func (s *MatchState) RosterSize(rules Rules) int {
	if n := len(s.AvailablePlayers.For(s.BattingTeam)); n > 0 {
		return n
	}
	return rules.DefaultRosterSize
}

// ScoringOpen reports whether a scoring event may be applied now.
func (s *MatchState) ScoringOpen() bool {
	return s.MatchStarted && !s.AwaitingNewBatsman && !s.AwaitingNewBowler &&
		s.Striker != "" && s.CurrentBowler != ""
}

func (s *MatchState) player(name string) PlayerStat {
	if p, ok := s.Players[name]; ok {
		return p
	}
	return PlayerStat{Name: name}
}

// ensurePlayer materializes a batsman on first reference.
func (s *MatchState) ensurePlayer(name string) {
	if _, ok := s.Players[name]; !ok {
		s.Players[name] = PlayerStat{Name: name}
	}
}

func (s *MatchState) bowlerIndex(name string) int {
	for i := range s.Bowlers {
		if s.Bowlers[i].Name == name {
			return i
		}
	}
	return -1
}

// ensureBowler appends a bowler on first selection and returns its index.
func (s *MatchState) ensureBowler(name string) int {
	if i := s.bowlerIndex(name); i >= 0 {
		return i
	}
	s.Bowlers = append(s.Bowlers, BowlerStat{Name: name})
	return len(s.Bowlers) - 1
}

func (s *MatchState) addToBattingOrder(name string) {
	for _, n := range s.BattingOrder {
		if n == name {
			return
		}
	}
	s.BattingOrder = append(s.BattingOrder, name)
}

func (s *MatchState) logf(line string) {
	s.Log = append(s.Log, line)
}
