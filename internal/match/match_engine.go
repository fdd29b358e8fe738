package match

import (
	"fmt"
	"strings"
)

// reducer applies one event to a private copy of the state.
type reducer struct {
	s     *MatchState
	rules Rules
}

// Reduce applies ev to st and returns the next state. st itself is never
// modified, so on error the caller still holds the unchanged state and on
// success it may keep st as the undo snapshot. Undo and Reset need the
// history and are applied by Engine.
func Reduce(st *MatchState, ev Event, rules Rules) (*MatchState, Outcome, error) {
	r := &reducer{s: st.Clone(), rules: rules}

	var (
		out Outcome
		err error
	)
	switch ev := ev.(type) {
	case CreateTeams:
		out, err = r.createTeams(ev)
	case StartInnings:
		out, err = r.startInnings(ev)
	case RecordRun:
		out, err = r.recordRun(ev)
	case RecordExtra:
		out, err = r.recordExtra(ev)
	case RecordWicket:
		out, err = r.recordWicket(ev)
	case SelectNewBatsman:
		out, err = r.selectNewBatsman(ev)
	case ActivateLastManStanding:
		out, err = r.activateLastManStanding()
	case SelectBowler:
		out, err = r.selectBowler(ev)
	case ChangeStrike:
		out, err = r.changeStrike(ev)
	case EndInnings:
		out, err = r.endInnings()
	case Undo, Reset:
		err = preconditionf("%s must be applied through the engine", ev.EventName())
	case nil:
		err = validationf("event is required")
	default:
		err = validationf("unknown event %T", ev)
	}
	if err != nil {
		return st, Outcome{}, err
	}
	return r.s, out, nil
}

func (r *reducer) createTeams(ev CreateTeams) (Outcome, error) {
	teamA := strings.TrimSpace(ev.TeamA)
	teamB := strings.TrimSpace(ev.TeamB)
	if teamA == "" || teamB == "" {
		return Outcome{}, validationf("both team names are required")
	}
	if strings.EqualFold(teamA, teamB) {
		return Outcome{}, conflictf("team names must differ")
	}

	// A roster supplied with the event is the newest catalog.
	roster := r.s.Catalog
	if !ev.Roster.Empty() {
		roster = ev.Roster
	}

	fresh := NewMatchState(roster)
	fresh.MatchID = ev.MatchID
	fresh.Teams = Teams{TeamA: Team{Name: teamA}, TeamB: Team{Name: teamB}}
	fresh.AvailablePlayers = roster.clone()
	fresh.SetupPhase = PhaseInningsSetup
	*r.s = *fresh

	r.s.logf(fmt.Sprintf("Teams created: %s vs %s", teamA, teamB))
	return Outcome{Message: "Teams created successfully"}, nil
}

func (r *reducer) startInnings(ev StartInnings) (Outcome, error) {
	s := r.s
	if s.SetupPhase != PhaseInningsSetup {
		return Outcome{}, preconditionf("innings can only be started during innings setup (phase is %s)", s.SetupPhase)
	}
	striker := strings.TrimSpace(ev.Striker)
	nonStriker := strings.TrimSpace(ev.NonStriker)
	bowler := strings.TrimSpace(ev.Bowler)
	if striker == "" || nonStriker == "" || bowler == "" {
		return Outcome{}, validationf("striker, non-striker and bowler are required")
	}
	if s.Innings == 1 && !ev.BattingTeam.Valid() {
		return Outcome{}, validationf("batting team must be %q or %q", TeamA, TeamB)
	}
	if striker == nonStriker {
		return Outcome{}, conflictf("striker and non-striker must be different players")
	}
	if bowler == striker || bowler == nonStriker {
		return Outcome{}, conflictf("%s cannot bowl while batting", bowler)
	}

	limit := s.MatchBallLimit
	if s.Innings == 1 || strings.TrimSpace(ev.OversLimit) != "" {
		var err error
		if limit, err = ParseOversLimit(ev.OversLimit); err != nil {
			return Outcome{}, err
		}
	}

	if s.Innings == 1 {
		s.BattingTeam = ev.BattingTeam
		s.BowlingTeam = ev.BattingTeam.Opponent()
	}
	s.MatchBallLimit = limit
	s.ensurePlayer(striker)
	s.ensurePlayer(nonStriker)
	s.addToBattingOrder(striker)
	s.addToBattingOrder(nonStriker)
	s.Striker = striker
	s.NonStriker = nonStriker
	s.ensureBowler(bowler)
	s.CurrentBowler = bowler

	s.AwaitingNewBatsman = false
	s.AwaitingNewBowler = false
	s.LastOverBowler = ""
	s.LastManStandingMode = false
	s.InningsComplete = false
	s.CurrentOverRuns = 0
	s.ThisOver = []string{}
	s.MatchStarted = true
	s.SetupPhase = PhaseLive

	overs := "unlimited overs"
	if limit > 0 {
		overs = FormatOvers(limit) + " overs"
	}
	s.logf(fmt.Sprintf("Innings %d started: %s batting, %s and %s opening, %s to bowl (%s)",
		s.Innings, s.Teams.Name(s.BattingTeam), striker, nonStriker, bowler, overs))
	return Outcome{Message: fmt.Sprintf("Innings %d started", s.Innings)}, nil
}

func (r *reducer) selectNewBatsman(ev SelectNewBatsman) (Outcome, error) {
	s := r.s
	if !s.AwaitingNewBatsman {
		return Outcome{}, preconditionf("not awaiting a new batsman")
	}
	name := strings.TrimSpace(ev.Name)
	if name == "" {
		return Outcome{}, validationf("batsman name is required")
	}

	// Promoting the non-striker moves the vacancy to the non-striker's end.
	// The await flag stays set so the batting side is never left without a
	// striker; the next selection fills the other end.
	if name == s.NonStriker && s.Striker == "" {
		s.Striker, s.NonStriker = s.NonStriker, ""
		s.logf(fmt.Sprintf("%s takes strike", name))
		return Outcome{Message: fmt.Sprintf("%s takes strike, select the incoming batsman", name)}, nil
	}
	if name == s.Striker || name == s.NonStriker {
		return Outcome{}, conflictf("%s is already at the crease", name)
	}
	if s.player(name).Out {
		return Outcome{}, conflictf("%s is already out", name)
	}
	if name == s.CurrentBowler {
		return Outcome{}, conflictf("%s is the current bowler", name)
	}

	s.ensurePlayer(name)
	s.addToBattingOrder(name)
	if s.Striker == "" {
		s.Striker = name
	} else {
		s.NonStriker = name
	}
	s.AwaitingNewBatsman = false
	s.MatchStarted = !s.AwaitingNewBowler

	s.logf(fmt.Sprintf("New batsman: %s", name))
	return Outcome{Message: fmt.Sprintf("%s comes to the crease", name)}, nil
}

func (r *reducer) activateLastManStanding() (Outcome, error) {
	s := r.s
	if !s.AwaitingNewBatsman {
		return Outcome{}, preconditionf("last man standing can only be activated after a wicket")
	}
	remaining := s.Striker
	if remaining == "" {
		remaining = s.NonStriker
	}
	if remaining == "" || (s.Striker != "" && s.NonStriker != "") {
		return Outcome{}, preconditionf("exactly one batsman must remain at the crease")
	}

	s.Striker = remaining
	s.NonStriker = ""
	s.LastManStandingMode = true
	s.AwaitingNewBatsman = false
	s.MatchStarted = !s.AwaitingNewBowler

	s.logf(fmt.Sprintf("Last man standing: %s bats alone", remaining))
	return Outcome{Message: fmt.Sprintf("Last man standing activated for %s", remaining)}, nil
}

func (r *reducer) selectBowler(ev SelectBowler) (Outcome, error) {
	s := r.s
	if s.SetupPhase != PhaseLive || s.InningsComplete {
		return Outcome{}, preconditionf("no innings in progress")
	}
	name := strings.TrimSpace(ev.Name)
	if name == "" {
		return Outcome{}, validationf("bowler name is required")
	}
	if (s.Striker != "" && name == s.Striker) || (s.NonStriker != "" && name == s.NonStriker) {
		return Outcome{}, conflictf("%s is batting and cannot bowl", name)
	}

	warningSame := s.LastOverBowler != "" && name == s.LastOverBowler
	s.ensureBowler(name)
	s.CurrentBowler = name
	if s.AwaitingNewBowler {
		s.AwaitingNewBowler = false
		s.LastOverBowler = ""
		s.CurrentOverRuns = 0
		s.ThisOver = []string{}
		s.MatchStarted = !s.AwaitingNewBatsman
	}

	s.logf(fmt.Sprintf("Bowler: %s", name))
	out := Outcome{Message: fmt.Sprintf("%s is now bowling", name), WarningSame: warningSame}
	if warningSame {
		out.Message += " (same bowler as the previous over)"
	}
	return out, nil
}

func (r *reducer) changeStrike(ev ChangeStrike) (Outcome, error) {
	s := r.s
	if !s.MatchStarted {
		return Outcome{}, preconditionf("strike can only be changed during play")
	}
	name := strings.TrimSpace(ev.Name)

	switch ev.Action {
	case StrikeSwap:
		if s.Striker == "" || s.NonStriker == "" {
			return Outcome{}, conflictf("two batsmen are needed to swap strike")
		}
		s.swapStrike()
	case StrikeSetStriker:
		if err := r.checkIncomingBatsman(name); err != nil {
			return Outcome{}, err
		}
		switch {
		case name == s.Striker:
		case name == s.NonStriker:
			s.swapStrike()
		case s.LastManStandingMode:
			s.Striker = name
		default:
			s.NonStriker = s.Striker
			s.Striker = name
		}
	case StrikeSetNonStriker:
		if s.LastManStandingMode {
			return Outcome{}, conflictf("there is no non-striker in last man standing mode")
		}
		if err := r.checkIncomingBatsman(name); err != nil {
			return Outcome{}, err
		}
		if name == s.Striker {
			return Outcome{}, conflictf("%s is already on strike", name)
		}
		s.NonStriker = name
	default:
		return Outcome{}, validationf("unknown strike action %q", ev.Action)
	}

	if name != "" && ev.Action != StrikeSwap {
		s.ensurePlayer(name)
		s.addToBattingOrder(name)
	}
	s.logf(fmt.Sprintf("Strike changed: %s on strike, %s at the other end", s.Striker, orDash(s.NonStriker)))
	return Outcome{Message: "Strike updated"}, nil
}

func (r *reducer) checkIncomingBatsman(name string) error {
	if name == "" {
		return validationf("player name is required")
	}
	if r.s.player(name).Out {
		return conflictf("%s is already out", name)
	}
	if name == r.s.CurrentBowler {
		return conflictf("%s is the current bowler", name)
	}
	return nil
}

func (r *reducer) endInnings() (Outcome, error) {
	s := r.s
	if s.Innings == 2 {
		if s.SetupPhase == PhaseFinished {
			return Outcome{}, preconditionf("match is already finished")
		}
		r.finish("Match ended manually")
		return Outcome{Message: "Match ended", Result: *s.FinalResult}, nil
	}
	if s.SetupPhase != PhaseLive {
		return Outcome{}, preconditionf("innings 1 is not in progress")
	}

	s.Innings1Score = InningsScore{
		Score:       s.Score,
		Wickets:     s.Wickets,
		Balls:       s.Balls,
		BattingTeam: s.BattingTeam,
	}
	s.Innings1Card = &Scorecard{
		BattingTeam:   s.BattingTeam,
		Players:       s.Players,
		Bowlers:       s.Bowlers,
		BattingOrder:  s.BattingOrder,
		FallOfWickets: s.FallOfWickets,
		Extras:        s.Extras,
	}
	s.Target = s.Score + 1
	s.Innings = 2
	s.BattingTeam, s.BowlingTeam = s.BowlingTeam, s.BattingTeam

	s.Score, s.Wickets, s.Balls = 0, 0, 0
	s.Extras = Extras{}
	s.Players = map[string]PlayerStat{}
	s.Bowlers = []BowlerStat{}
	s.BattingOrder = []string{}
	s.FallOfWickets = []FallOfWicket{}
	s.Striker, s.NonStriker, s.CurrentBowler = "", "", ""
	s.AwaitingNewBatsman = false
	s.AwaitingNewBowler = false
	s.LastOverBowler = ""
	s.LastManStandingMode = false
	s.InningsComplete = false
	s.CurrentOverRuns = 0
	s.ThisOver = []string{}
	s.MatchStarted = false
	s.SetupPhase = PhaseInningsSetup

	s.logf(fmt.Sprintf("End of innings 1: %s %d/%d (%s). %s need %d to win",
		s.Teams.Name(s.Innings1Score.BattingTeam), s.Innings1Score.Score, s.Innings1Score.Wickets,
		FormatOvers(s.Innings1Score.Balls), s.Teams.Name(s.BattingTeam), s.Target))
	return Outcome{Message: fmt.Sprintf("Innings 1 ended, target is %d", s.Target)}, nil
}

func orDash(name string) string {
	if name == "" {
		return "-"
	}
	return name
}
