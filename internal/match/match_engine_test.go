package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squad(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return names
}

func elevens() Roster {
	return Roster{TeamA: squad("A", 11), TeamB: squad("B", 11)}
}

func mustApply(t *testing.T, e *Engine, ev Event) Outcome {
	t.Helper()
	out, err := e.Apply(ev)
	require.NoError(t, err, "event %s should be accepted", ev.EventName())
	return out
}

// newMatch returns an engine with Lions (teamA) batting first, A1 on strike,
// A2 at the other end and B1 bowling.
func newMatch(t *testing.T, roster Roster, overs string) *Engine {
	t.Helper()
	e := NewEngine(DefaultRules(), roster)
	mustApply(t, e, CreateTeams{TeamA: "Lions", TeamB: "Tigers"})
	mustApply(t, e, StartInnings{BattingTeam: TeamA, Striker: "A1", NonStriker: "A2", Bowler: "B1", OversLimit: overs})
	return e
}

// secondInnings plays the given runs in innings 1, ends it and opens the chase
// with B1/B2 batting and A1 bowling.
func secondInnings(t *testing.T, overs string, firstInnings ...int) *Engine {
	t.Helper()
	e := newMatch(t, elevens(), overs)
	for _, r := range firstInnings {
		mustApply(t, e, RecordRun{Runs: r})
	}
	mustApply(t, e, EndInnings{})
	mustApply(t, e, StartInnings{Striker: "B1", NonStriker: "B2", Bowler: "A1"})
	return e
}

func TestCreateTeams(t *testing.T) {
	e := NewEngine(DefaultRules(), elevens())
	out := mustApply(t, e, CreateTeams{TeamA: " Lions ", TeamB: "Tigers", MatchID: "m-1"})

	s := e.State()
	assert.Equal(t, "Teams created successfully", out.Message)
	assert.Equal(t, PhaseInningsSetup, s.SetupPhase)
	assert.Equal(t, "Lions", s.Teams.TeamA.Name)
	assert.Equal(t, "Tigers", s.Teams.TeamB.Name)
	assert.Equal(t, "m-1", s.MatchID)
	assert.Equal(t, elevens(), s.AvailablePlayers)
	assert.Equal(t, []string{"Teams created: Lions vs Tigers"}, s.Log)
	assert.Equal(t, 1, s.Innings)
	assert.Zero(t, s.Score)
}

func TestCreateTeams_ClearsProgress(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordRun{Runs: 4})

	mustApply(t, e, CreateTeams{TeamA: "Eagles", TeamB: "Hawks"})
	s := e.State()
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Balls)
	assert.Empty(t, s.Players)
	assert.Empty(t, s.Bowlers)
	assert.Empty(t, s.Striker)
	assert.False(t, s.MatchStarted)
	assert.Len(t, s.Log, 1)
}

func TestCreateTeams_Rejections(t *testing.T) {
	tests := []struct {
		name string
		ev   CreateTeams
		kind ErrorKind
	}{
		{"missing name", CreateTeams{TeamA: "Lions", TeamB: "  "}, KindValidation},
		{"same name", CreateTeams{TeamA: "Lions", TeamB: "lions"}, KindConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(DefaultRules(), elevens())
			_, err := e.Apply(tt.ev)
			assert.True(t, IsKind(err, tt.kind), "got %v", err)
			assert.Equal(t, PhaseTeams, e.State().SetupPhase)
		})
	}
}

func TestStartInnings(t *testing.T) {
	e := newMatch(t, elevens(), "20")
	s := e.State()

	assert.Equal(t, PhaseLive, s.SetupPhase)
	assert.True(t, s.MatchStarted)
	assert.Equal(t, TeamA, s.BattingTeam)
	assert.Equal(t, TeamB, s.BowlingTeam)
	assert.Equal(t, "A1", s.Striker)
	assert.Equal(t, "A2", s.NonStriker)
	assert.Equal(t, "B1", s.CurrentBowler)
	assert.Equal(t, 120, s.MatchBallLimit)
	assert.Equal(t, []string{"A1", "A2"}, s.BattingOrder)
	require.Len(t, s.Bowlers, 1)
	assert.Equal(t, "B1", s.Bowlers[0].Name)
	assert.True(t, s.ScoringOpen())
}

func TestStartInnings_Rejections(t *testing.T) {
	tests := []struct {
		name string
		ev   StartInnings
		kind ErrorKind
	}{
		{"missing bowler", StartInnings{BattingTeam: TeamA, Striker: "A1", NonStriker: "A2"}, KindValidation},
		{"bad side", StartInnings{BattingTeam: "teamC", Striker: "A1", NonStriker: "A2", Bowler: "B1"}, KindValidation},
		{"same opener", StartInnings{BattingTeam: TeamA, Striker: "A1", NonStriker: "A1", Bowler: "B1"}, KindConflict},
		{"bowler batting", StartInnings{BattingTeam: TeamA, Striker: "A1", NonStriker: "A2", Bowler: "A2"}, KindConflict},
		{"bad overs", StartInnings{BattingTeam: TeamA, Striker: "A1", NonStriker: "A2", Bowler: "B1", OversLimit: "2.7"}, KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(DefaultRules(), elevens())
			mustApply(t, e, CreateTeams{TeamA: "Lions", TeamB: "Tigers"})
			_, err := e.Apply(tt.ev)
			assert.True(t, IsKind(err, tt.kind), "got %v", err)
			assert.Equal(t, PhaseInningsSetup, e.State().SetupPhase)
		})
	}
}

func TestStartInnings_BeforeTeams(t *testing.T) {
	e := NewEngine(DefaultRules(), elevens())
	_, err := e.Apply(StartInnings{BattingTeam: TeamA, Striker: "A1", NonStriker: "A2", Bowler: "B1"})
	assert.True(t, IsKind(err, KindPrecondition))
}

func TestRecordRun_Boundary(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordRun{Runs: 4})

	s := e.State()
	assert.Equal(t, 4, s.Score)
	assert.Equal(t, 1, s.Balls)
	assert.Equal(t, "A1", s.Striker, "even runs keep the strike")
	assert.Equal(t, PlayerStat{Name: "A1", Runs: 4, BallsFaced: 1, Fours: 1}, s.Players["A1"])
	assert.Equal(t, 1, s.Bowlers[0].TotalBalls)
	assert.Equal(t, 4, s.Bowlers[0].RunsConceded)
	assert.Equal(t, []string{"4"}, s.ThisOver)
}

func TestRecordRun_OddRunsRotateStrike(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordRun{Runs: 3})

	s := e.State()
	assert.Equal(t, "A2", s.Striker)
	assert.Equal(t, "A1", s.NonStriker)
}

func TestRecordRun_SixSinglesCompleteTheOver(t *testing.T) {
	e := newMatch(t, elevens(), "")
	for i := 0; i < 6; i++ {
		mustApply(t, e, RecordRun{Runs: 1})
	}

	s := e.State()
	assert.Equal(t, 6, s.Score)
	assert.Equal(t, 6, s.Balls)
	assert.Equal(t, "A2", s.Striker)
	assert.Equal(t, "A1", s.NonStriker)
	assert.True(t, s.AwaitingNewBowler)
	assert.Equal(t, "B1", s.LastOverBowler)
	assert.False(t, s.MatchStarted)
	assert.Zero(t, s.Bowlers[0].Maidens)

	_, err := e.Apply(RecordRun{Runs: 1})
	assert.True(t, IsKind(err, KindPrecondition))
}

func TestRecordRun_MaidenOver(t *testing.T) {
	e := newMatch(t, elevens(), "")
	for i := 0; i < 6; i++ {
		mustApply(t, e, RecordRun{Runs: 0})
	}

	s := e.State()
	assert.Equal(t, 1, s.Bowlers[0].Maidens)
	assert.Equal(t, "A2", s.Striker, "strike changes ends at the end of the over")
}

func TestRecordRun_Rejections(t *testing.T) {
	e := newMatch(t, elevens(), "")
	_, err := e.Apply(RecordRun{Runs: -1})
	assert.True(t, IsKind(err, KindValidation))

	fresh := NewEngine(DefaultRules(), elevens())
	_, err = fresh.Apply(RecordRun{Runs: 1})
	assert.True(t, IsKind(err, KindPrecondition))
}

func TestSelectBowler_AfterOver(t *testing.T) {
	e := newMatch(t, elevens(), "")
	for i := 0; i < 6; i++ {
		mustApply(t, e, RecordRun{Runs: 1})
	}

	out := mustApply(t, e, SelectBowler{Name: "B1"})
	assert.True(t, out.WarningSame)

	s := e.State()
	assert.False(t, s.AwaitingNewBowler)
	assert.Empty(t, s.LastOverBowler)
	assert.True(t, s.MatchStarted)
	assert.Empty(t, s.ThisOver)
	assert.Zero(t, s.CurrentOverRuns)
}

func TestSelectBowler_NewBowlerNoWarning(t *testing.T) {
	e := newMatch(t, elevens(), "")
	for i := 0; i < 6; i++ {
		mustApply(t, e, RecordRun{Runs: 0})
	}

	out := mustApply(t, e, SelectBowler{Name: "B2"})
	assert.False(t, out.WarningSame)
	assert.Equal(t, "B2", e.State().CurrentBowler)
	assert.Len(t, e.State().Bowlers, 2)
}

func TestSelectBowler_Rejections(t *testing.T) {
	e := newMatch(t, elevens(), "")
	_, err := e.Apply(SelectBowler{Name: "A2"})
	assert.True(t, IsKind(err, KindConflict))

	_, err = e.Apply(SelectBowler{Name: " "})
	assert.True(t, IsKind(err, KindValidation))

	fresh := NewEngine(DefaultRules(), elevens())
	_, err = fresh.Apply(SelectBowler{Name: "B1"})
	assert.True(t, IsKind(err, KindPrecondition))
}

func TestSelectBowler_MidOverChange(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordRun{Runs: 2})
	mustApply(t, e, SelectBowler{Name: "B2"})

	s := e.State()
	assert.Equal(t, "B2", s.CurrentBowler)
	assert.True(t, s.MatchStarted)
	assert.Equal(t, []string{"2"}, s.ThisOver)
}

func TestRecordExtra_Wide(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordExtra{Kind: ExtraWide, ExtraRuns: 1})

	s := e.State()
	assert.Equal(t, 2, s.Score)
	assert.Zero(t, s.Balls, "a wide is not a legal delivery")
	assert.Equal(t, Extras{Wides: 2, Total: 2}, s.Extras)
	assert.Equal(t, "A1", s.Striker, "even total keeps the strike")
	assert.Equal(t, PlayerStat{Name: "A1"}, s.player("A1"), "wides are never credited to the batsman")

	b := s.Bowlers[0]
	assert.Equal(t, 2, b.RunsConceded)
	assert.Equal(t, 1, b.Wides)
	assert.Equal(t, 1, b.Deliveries)
	assert.Zero(t, b.TotalBalls)
	assert.Equal(t, []string{"Wd+1"}, s.ThisOver)
}

func TestRecordExtra_NoBallBoundary(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordExtra{Kind: ExtraNoBall, ExtraRuns: 4})

	s := e.State()
	assert.Equal(t, 5, s.Score)
	assert.Zero(t, s.Balls)
	assert.Equal(t, Extras{NoBalls: 1, Total: 1}, s.Extras)
	assert.Equal(t, PlayerStat{Name: "A1", Runs: 4, Fours: 1}, s.Players["A1"])
	assert.Equal(t, 5, s.Bowlers[0].RunsConceded)
	assert.Equal(t, "A2", s.Striker, "odd total rotates the strike")
	assert.Equal(t, []string{"Nb+4"}, s.ThisOver)
}

func TestRecordExtra_DoesNotCompleteOver(t *testing.T) {
	e := newMatch(t, elevens(), "")
	for i := 0; i < 5; i++ {
		mustApply(t, e, RecordRun{Runs: 0})
	}
	mustApply(t, e, RecordExtra{Kind: ExtraWide})

	s := e.State()
	assert.Equal(t, 5, s.Balls)
	assert.False(t, s.AwaitingNewBowler)
	assert.True(t, s.MatchStarted)
}

func TestRecordExtra_UnknownKind(t *testing.T) {
	e := newMatch(t, elevens(), "")
	_, err := e.Apply(RecordExtra{Kind: "bye"})
	assert.True(t, IsKind(err, KindValidation))
}

func TestRecordWicket(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordRun{Runs: 2})
	out := mustApply(t, e, RecordWicket{WicketType: DismissalTypeBowled})

	s := e.State()
	assert.Contains(t, out.Message, "A1 is out")
	assert.Equal(t, 1, s.Wickets)
	assert.Equal(t, 2, s.Balls)
	assert.Empty(t, s.Striker)
	assert.Equal(t, "A2", s.NonStriker)
	assert.True(t, s.AwaitingNewBatsman)
	assert.False(t, s.MatchStarted)

	a1 := s.Players["A1"]
	assert.True(t, a1.Out)
	assert.Equal(t, DismissalTypeBowled, a1.OutReason)
	assert.Equal(t, "B1", a1.DismissedBy)
	assert.Equal(t, 2, a1.BallsFaced)
	assert.Equal(t, 1, s.Bowlers[0].Wickets)
	assert.Equal(t, []FallOfWicket{{Player: "A1", WicketType: DismissalTypeBowled, Score: 2, Wickets: 1, Overs: "0.2"}}, s.FallOfWickets)

	_, err := e.Apply(RecordRun{Runs: 1})
	assert.True(t, IsKind(err, KindPrecondition))
}

func TestSelectNewBatsman(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordWicket{WicketType: DismissalTypeCaught})

	_, err := e.Apply(SelectNewBatsman{Name: "A1"})
	assert.True(t, IsKind(err, KindConflict), "dismissed batsman cannot return")
	_, err = e.Apply(SelectNewBatsman{Name: "B1"})
	assert.True(t, IsKind(err, KindConflict), "current bowler cannot bat")
	_, err = e.Apply(SelectNewBatsman{Name: ""})
	assert.True(t, IsKind(err, KindValidation))

	mustApply(t, e, SelectNewBatsman{Name: "A3"})
	s := e.State()
	assert.Equal(t, "A3", s.Striker)
	assert.Equal(t, "A2", s.NonStriker)
	assert.False(t, s.AwaitingNewBatsman)
	assert.True(t, s.MatchStarted)
	assert.Equal(t, []string{"A1", "A2", "A3"}, s.BattingOrder)

	_, err = e.Apply(SelectNewBatsman{Name: "A4"})
	assert.True(t, IsKind(err, KindPrecondition))
}

func TestSelectNewBatsman_PromotedNonStrikerWaitsForPartner(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordWicket{WicketType: DismissalTypeLBW})

	mustApply(t, e, SelectNewBatsman{Name: "A2"})
	s := e.State()
	assert.Equal(t, "A2", s.Striker)
	assert.Empty(t, s.NonStriker)
	assert.True(t, s.AwaitingNewBatsman, "the vacant end still needs a batsman")

	_, err := e.Apply(RecordRun{Runs: 1})
	assert.True(t, IsKind(err, KindPrecondition))

	mustApply(t, e, SelectNewBatsman{Name: "A3"})
	s = e.State()
	assert.Equal(t, "A2", s.Striker)
	assert.Equal(t, "A3", s.NonStriker)
	assert.False(t, s.AwaitingNewBatsman)
}

func TestSelectNewBatsman_WicketOnLastBallOfOver(t *testing.T) {
	e := newMatch(t, elevens(), "")
	for i := 0; i < 5; i++ {
		mustApply(t, e, RecordRun{Runs: 0})
	}
	mustApply(t, e, RecordWicket{WicketType: DismissalTypeStumped})

	s := e.State()
	assert.True(t, s.AwaitingNewBatsman)
	assert.True(t, s.AwaitingNewBowler)

	mustApply(t, e, SelectNewBatsman{Name: "A3"})
	assert.False(t, e.State().MatchStarted, "still waiting for the bowler")

	mustApply(t, e, SelectBowler{Name: "B2"})
	assert.True(t, e.State().MatchStarted)
}

func TestLastManStanding(t *testing.T) {
	roster := Roster{TeamA: []string{"A1", "A2", "A3"}, TeamB: squad("B", 3)}
	e := newMatch(t, roster, "")

	mustApply(t, e, RecordWicket{WicketType: DismissalTypeBowled})
	mustApply(t, e, SelectNewBatsman{Name: "A3"})
	mustApply(t, e, RecordWicket{WicketType: DismissalTypeCaught})

	_, err := e.Apply(ChangeStrike{Action: StrikeSwap})
	assert.True(t, IsKind(err, KindPrecondition))

	mustApply(t, e, ActivateLastManStanding{})
	s := e.State()
	assert.True(t, s.LastManStandingMode)
	assert.Equal(t, "A2", s.Striker)
	assert.Empty(t, s.NonStriker)
	assert.True(t, s.MatchStarted)

	mustApply(t, e, RecordRun{Runs: 1})
	assert.Equal(t, "A2", e.State().Striker, "no partner to rotate with")

	_, err = e.Apply(ChangeStrike{Action: StrikeSetNonStriker, Name: "A3"})
	assert.True(t, IsKind(err, KindConflict))

	out := mustApply(t, e, RecordWicket{WicketType: DismissalTypeRunOut})
	s = e.State()
	assert.Contains(t, out.Message, "innings complete")
	assert.Equal(t, 3, s.Wickets)
	assert.True(t, s.InningsComplete)
	assert.False(t, s.AwaitingNewBatsman)
	assert.Equal(t, PhaseLive, s.SetupPhase, "innings 1 waits for EndInnings")

	_, err = e.Apply(RecordRun{Runs: 1})
	assert.True(t, IsKind(err, KindPrecondition))
}

func TestLastManStanding_WicketEndsInningsBeforeAllOut(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordWicket{WicketType: DismissalTypeBowled})
	mustApply(t, e, ActivateLastManStanding{})
	mustApply(t, e, RecordWicket{WicketType: DismissalTypeBowled})

	s := e.State()
	assert.Equal(t, 2, s.Wickets)
	assert.True(t, s.InningsComplete)
	assert.Empty(t, s.Striker)
}

func TestActivateLastManStanding_RequiresWicket(t *testing.T) {
	e := newMatch(t, elevens(), "")
	_, err := e.Apply(ActivateLastManStanding{})
	assert.True(t, IsKind(err, KindPrecondition))
}

func TestChangeStrike(t *testing.T) {
	e := newMatch(t, elevens(), "")

	mustApply(t, e, ChangeStrike{Action: StrikeSwap})
	assert.Equal(t, "A2", e.State().Striker)
	assert.Equal(t, "A1", e.State().NonStriker)

	mustApply(t, e, ChangeStrike{Action: StrikeSetStriker, Name: "A1"})
	assert.Equal(t, "A1", e.State().Striker)
	assert.Equal(t, "A2", e.State().NonStriker)

	mustApply(t, e, ChangeStrike{Action: StrikeSetStriker, Name: "A5"})
	s := e.State()
	assert.Equal(t, "A5", s.Striker)
	assert.Equal(t, "A1", s.NonStriker)
	assert.Contains(t, s.BattingOrder, "A5")

	mustApply(t, e, ChangeStrike{Action: StrikeSetNonStriker, Name: "A2"})
	assert.Equal(t, "A2", e.State().NonStriker)

	_, err := e.Apply(ChangeStrike{Action: StrikeSetNonStriker, Name: "A5"})
	assert.True(t, IsKind(err, KindConflict))
	_, err = e.Apply(ChangeStrike{Action: StrikeSetStriker, Name: "B1"})
	assert.True(t, IsKind(err, KindConflict))
	_, err = e.Apply(ChangeStrike{Action: "retire"})
	assert.True(t, IsKind(err, KindValidation))
}

func TestChangeStrike_RejectsDismissedPlayer(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordWicket{WicketType: DismissalTypeBowled})
	mustApply(t, e, SelectNewBatsman{Name: "A3"})

	_, err := e.Apply(ChangeStrike{Action: StrikeSetStriker, Name: "A1"})
	assert.True(t, IsKind(err, KindConflict))
}

func TestEndInnings(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordRun{Runs: 4})
	mustApply(t, e, RecordRun{Runs: 6})
	out := mustApply(t, e, EndInnings{})

	s := e.State()
	assert.Equal(t, "Innings 1 ended, target is 11", out.Message)
	assert.Equal(t, 2, s.Innings)
	assert.Equal(t, 11, s.Target)
	assert.Equal(t, InningsScore{Score: 10, Wickets: 0, Balls: 2, BattingTeam: TeamA}, s.Innings1Score)
	assert.Equal(t, TeamB, s.BattingTeam)
	assert.Equal(t, TeamA, s.BowlingTeam)
	assert.Equal(t, PhaseInningsSetup, s.SetupPhase)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Balls)
	assert.Empty(t, s.Players)
	assert.Empty(t, s.Bowlers)
	assert.Empty(t, s.Striker)

	require.NotNil(t, s.Innings1Card)
	assert.Equal(t, 10, s.Innings1Card.Players["A1"].Runs)
	assert.Equal(t, []string{"A1", "A2"}, s.Innings1Card.BattingOrder)
}

func TestEndInnings_BeforeStart(t *testing.T) {
	e := NewEngine(DefaultRules(), elevens())
	mustApply(t, e, CreateTeams{TeamA: "Lions", TeamB: "Tigers"})
	_, err := e.Apply(EndInnings{})
	assert.True(t, IsKind(err, KindPrecondition))
}

func TestSecondInnings_KeepsOversLimit(t *testing.T) {
	e := secondInnings(t, "2", 1)
	assert.Equal(t, 12, e.State().MatchBallLimit)

	e = newMatch(t, elevens(), "2")
	mustApply(t, e, EndInnings{})
	mustApply(t, e, StartInnings{Striker: "B1", NonStriker: "B2", Bowler: "A1", OversLimit: "1"})
	assert.Equal(t, 6, e.State().MatchBallLimit)
}

func TestChase_TargetHoldsThroughSecondInnings(t *testing.T) {
	e := secondInnings(t, "", 4, 6)
	targetHolds := func() {
		t.Helper()
		s := e.State()
		assert.Equal(t, s.Innings1Score.Score+1, s.Target)
		assert.Equal(t, 11, s.Target)
	}
	targetHolds()

	mustApply(t, e, RecordRun{Runs: 2})
	targetHolds()
	mustApply(t, e, RecordExtra{Kind: ExtraNoBall, ExtraRuns: 1})
	targetHolds()
	mustApply(t, e, RecordWicket{WicketType: DismissalTypeCaught})
	targetHolds()
	mustApply(t, e, SelectNewBatsman{Name: "B3"})
	targetHolds()
	mustApply(t, e, Undo{})
	targetHolds()
	mustApply(t, e, Undo{})
	targetHolds()

	s := e.State()
	assert.Equal(t, 4, s.Score)
	assert.Zero(t, s.Wickets)
	assert.Nil(t, s.FinalResult)
}

func TestChase_WinByWickets(t *testing.T) {
	e := secondInnings(t, "", 4, 6)
	mustApply(t, e, RecordRun{Runs: 6})
	mustApply(t, e, RecordRun{Runs: 4})
	out := mustApply(t, e, RecordRun{Runs: 1})

	s := e.State()
	assert.Equal(t, "Tigers won by 11 wickets", out.Result)
	require.NotNil(t, s.FinalResult)
	assert.Equal(t, "Tigers won by 11 wickets", *s.FinalResult)
	assert.Equal(t, PhaseFinished, s.SetupPhase)
	assert.False(t, s.MatchStarted)

	_, err := e.Apply(RecordRun{Runs: 1})
	assert.True(t, IsKind(err, KindPrecondition))
	_, err = e.Apply(EndInnings{})
	assert.True(t, IsKind(err, KindPrecondition))
}

func TestChase_WinByRuns(t *testing.T) {
	e := newMatch(t, elevens(), "0.2")
	mustApply(t, e, RecordRun{Runs: 4})
	out := mustApply(t, e, RecordRun{Runs: 1})
	assert.Contains(t, out.Message, "innings complete")
	assert.True(t, e.State().InningsComplete)

	mustApply(t, e, EndInnings{})
	mustApply(t, e, StartInnings{Striker: "B1", NonStriker: "B2", Bowler: "A1"})
	assert.Equal(t, 6, e.State().Target)

	mustApply(t, e, RecordRun{Runs: 2})
	assert.Nil(t, e.State().FinalResult)
	out = mustApply(t, e, RecordRun{Runs: 1})
	assert.Equal(t, "Lions won by 2 runs", out.Result)
	assert.Equal(t, PhaseFinished, e.State().SetupPhase)
}

func TestChase_Tie(t *testing.T) {
	e := newMatch(t, elevens(), "0.2")
	mustApply(t, e, RecordRun{Runs: 4})
	mustApply(t, e, RecordRun{Runs: 1})
	mustApply(t, e, EndInnings{})
	mustApply(t, e, StartInnings{Striker: "B1", NonStriker: "B2", Bowler: "A1"})

	mustApply(t, e, RecordRun{Runs: 4})
	out := mustApply(t, e, RecordRun{Runs: 1})
	assert.Equal(t, "Match tied", out.Result)
}

func TestChase_ExtraCanWin(t *testing.T) {
	e := secondInnings(t, "", 1)
	out := mustApply(t, e, RecordExtra{Kind: ExtraWide, ExtraRuns: 1})
	assert.Equal(t, "Tigers won by 11 wickets", out.Result)
}

func TestChase_EndedManually(t *testing.T) {
	e := secondInnings(t, "", 4)
	out := mustApply(t, e, EndInnings{})
	assert.Equal(t, "Match ended manually", out.Result)
	assert.Equal(t, PhaseFinished, e.State().SetupPhase)
}

func TestReduce_RejectionLeavesStateUntouched(t *testing.T) {
	e := newMatch(t, elevens(), "")
	mustApply(t, e, RecordRun{Runs: 2})
	st := e.State()
	before := st.Clone()

	next, _, err := Reduce(st, SelectBowler{Name: "A1"}, DefaultRules())
	require.Error(t, err)
	assert.Same(t, st, next)
	assert.Equal(t, before, st)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	e := newMatch(t, elevens(), "")
	st := e.State()
	before := st.Clone()

	next, _, err := Reduce(st, RecordRun{Runs: 1}, DefaultRules())
	require.NoError(t, err)
	assert.NotSame(t, st, next)
	assert.Equal(t, before, st)
	assert.Equal(t, 1, next.Score)
}

type unknownEvent struct{}

func (unknownEvent) EventName() string { return "unknown" }

func TestReduce_HandlesEveryEvent(t *testing.T) {
	events := []Event{
		CreateTeams{}, StartInnings{}, RecordRun{}, RecordExtra{}, RecordWicket{},
		SelectNewBatsman{}, ActivateLastManStanding{}, SelectBowler{}, ChangeStrike{},
		EndInnings{}, Undo{}, Reset{},
	}
	for _, ev := range events {
		t.Run(ev.EventName(), func(t *testing.T) {
			_, _, err := Reduce(NewMatchState(Roster{}), ev, DefaultRules())
			if err != nil {
				assert.NotContains(t, err.Error(), "unknown event")
			}
		})
	}

	_, _, err := Reduce(NewMatchState(Roster{}), unknownEvent{}, DefaultRules())
	assert.True(t, IsKind(err, KindValidation))
	_, _, err = Reduce(NewMatchState(Roster{}), nil, DefaultRules())
	assert.True(t, IsKind(err, KindValidation))
}

func TestRosterSize(t *testing.T) {
	rules := DefaultRules()
	s := NewMatchState(Roster{})
	assert.Equal(t, 11, s.RosterSize(rules))

	s.AvailablePlayers = Roster{TeamA: squad("A", 6)}
	s.BattingTeam = TeamA
	assert.Equal(t, 6, s.RosterSize(rules))
	s.BattingTeam = TeamB
	assert.Equal(t, 11, s.RosterSize(rules))
}
