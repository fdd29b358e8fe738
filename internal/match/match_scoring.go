package match

import (
	"fmt"
	"strconv"
	"strings"
)

func (r *reducer) guardScoring() error {
	s := r.s
	switch {
	case s.SetupPhase == PhaseFinished:
		return preconditionf("match is finished")
	case s.SetupPhase != PhaseLive:
		return preconditionf("no innings in progress")
	case s.InningsComplete:
		return preconditionf("innings is complete, end the innings to continue")
	case s.AwaitingNewBatsman:
		return preconditionf("awaiting new batsman")
	case s.AwaitingNewBowler:
		return preconditionf("awaiting new bowler")
	case !s.ScoringOpen():
		return preconditionf("striker and bowler must be set before scoring")
	}
	return nil
}

func (r *reducer) recordRun(ev RecordRun) (Outcome, error) {
	if err := r.guardScoring(); err != nil {
		return Outcome{}, err
	}
	if ev.Runs < 0 {
		return Outcome{}, validationf("runs must be a non-negative integer")
	}
	s := r.s
	runs := ev.Runs
	batsman := s.Striker

	p := s.player(batsman)
	p.Runs += runs
	p.BallsFaced++
	switch runs {
	case 4:
		p.Fours++
	case 6:
		p.Sixes++
	}
	s.Players[batsman] = p

	b := &s.Bowlers[s.ensureBowler(s.CurrentBowler)]
	b.TotalBalls++
	b.Deliveries++
	b.RunsConceded += runs

	s.Score += runs
	s.Balls++
	s.CurrentOverRuns += runs
	s.ThisOver = append(s.ThisOver, strconv.Itoa(runs))
	s.logf(fmt.Sprintf("%s: %s scored %s off %s", FormatOvers(s.Balls), batsman, plural(runs, "run"), s.CurrentBowler))

	if runs%2 == 1 && !s.LastManStandingMode {
		s.swapStrike()
	}

	out := Outcome{Message: fmt.Sprintf("%s added", plural(runs, "run"))}
	r.settle(true, true, &out)
	return out, nil
}

func (r *reducer) recordExtra(ev RecordExtra) (Outcome, error) {
	if err := r.guardScoring(); err != nil {
		return Outcome{}, err
	}
	if ev.Kind != ExtraWide && ev.Kind != ExtraNoBall {
		return Outcome{}, validationf("extra type must be %q or %q", ExtraWide, ExtraNoBall)
	}
	if ev.ExtraRuns < 0 {
		return Outcome{}, validationf("extra runs must be a non-negative integer")
	}
	s := r.s
	total := 1 + ev.ExtraRuns

	b := &s.Bowlers[s.ensureBowler(s.CurrentBowler)]
	b.RunsConceded += total
	b.Deliveries++

	label := "Wd"
	if ev.Kind == ExtraWide {
		b.Wides++
		s.Extras.Wides += total
		s.Extras.Total += total
	} else {
		label = "Nb"
		b.NoBalls++
		s.Extras.NoBalls++
		s.Extras.Total++
		p := s.player(s.Striker)
		p.Runs += ev.ExtraRuns
		switch ev.ExtraRuns {
		case 4:
			p.Fours++
		case 6:
			p.Sixes++
		}
		s.Players[s.Striker] = p
	}
	if ev.ExtraRuns > 0 {
		label += "+" + strconv.Itoa(ev.ExtraRuns)
	}

	s.Score += total
	s.CurrentOverRuns += total
	s.ThisOver = append(s.ThisOver, label)
	s.logf(fmt.Sprintf("%s: %s by %s, %s", FormatOvers(s.Balls), ev.Kind, s.CurrentBowler, plural(total, "run")))

	if total%2 == 1 && !s.LastManStandingMode {
		s.swapStrike()
	}

	out := Outcome{Message: fmt.Sprintf("%s: %s added", ev.Kind, plural(total, "run"))}
	r.settle(false, false, &out)
	return out, nil
}

func (r *reducer) recordWicket(ev RecordWicket) (Outcome, error) {
	if err := r.guardScoring(); err != nil {
		return Outcome{}, err
	}
	wicketType := DismissalType(strings.TrimSpace(string(ev.WicketType)))
	if wicketType == "" {
		return Outcome{}, validationf("wicket type is required")
	}
	s := r.s
	batsman := s.Striker

	p := s.player(batsman)
	p.Out = true
	p.OutReason = wicketType
	p.DismissedBy = s.CurrentBowler
	p.BallsFaced++
	s.Players[batsman] = p

	b := &s.Bowlers[s.ensureBowler(s.CurrentBowler)]
	b.Wickets++
	b.TotalBalls++
	b.Deliveries++

	s.Wickets++
	s.Balls++
	s.ThisOver = append(s.ThisOver, "W")
	s.FallOfWickets = append(s.FallOfWickets, FallOfWicket{
		Player:     batsman,
		WicketType: wicketType,
		Score:      s.Score,
		Wickets:    s.Wickets,
		Overs:      FormatOvers(s.Balls),
	})
	s.logf(fmt.Sprintf("%s: WICKET! %s %s (%d/%d)", FormatOvers(s.Balls), batsman, wicketType, s.Score, s.Wickets))
	s.Striker = ""

	out := Outcome{Message: fmt.Sprintf("%s is out (%s)", batsman, wicketType)}
	if !r.settle(true, false, &out) {
		s.AwaitingNewBatsman = true
		s.MatchStarted = false
		out.Message += ", select the next batsman"
	}
	return out, nil
}

// settle runs after every scoring mutation: it closes the over, the innings
// or the match. It reports whether the innings or the match was closed.
func (r *reducer) settle(legal, rotateAtOverEnd bool, out *Outcome) bool {
	s := r.s
	overDone := legal && s.Balls > 0 && s.Balls%6 == 0
	if overDone && s.CurrentOverRuns == 0 {
		if i := s.bowlerIndex(s.CurrentBowler); i >= 0 {
			s.Bowlers[i].Maidens++
		}
	}

	if s.Innings == 2 {
		if result := r.matchResult(); result != "" {
			r.finish(result)
			out.Result = result
			out.Message = result
			return true
		}
	}
	if r.inningsOver() {
		s.InningsComplete = true
		s.MatchStarted = false
		s.AwaitingNewBatsman = false
		s.AwaitingNewBowler = false
		s.LastOverBowler = ""
		s.logf(fmt.Sprintf("Innings %d complete: %d/%d (%s), awaiting end of innings",
			s.Innings, s.Score, s.Wickets, FormatOvers(s.Balls)))
		out.Message += ", innings complete"
		return true
	}

	if overDone {
		if rotateAtOverEnd && !s.LastManStandingMode {
			s.swapStrike()
		}
		s.AwaitingNewBowler = true
		s.LastOverBowler = s.CurrentBowler
		s.MatchStarted = false
		s.logf(fmt.Sprintf("End of over %d: %d/%d", s.Balls/6, s.Score, s.Wickets))
		out.Message += ", over complete"
	}
	return false
}

// inningsOver reports whether the batting side can no longer continue.
func (r *reducer) inningsOver() bool {
	s := r.s
	if s.Wickets >= s.RosterSize(r.rules) {
		return true
	}
	if s.MatchBallLimit > 0 && s.Balls >= s.MatchBallLimit {
		return true
	}
	return s.LastManStandingMode && s.Striker == "" && s.NonStriker == ""
}

// matchResult is the shared second-innings end check. It returns "" while the
// chase is still open.
func (r *reducer) matchResult() string {
	s := r.s
	if s.Score >= s.Target {
		left := s.RosterSize(r.rules) - s.Wickets
		return fmt.Sprintf("%s won by %s", s.Teams.Name(s.BattingTeam), plural(left, "wicket"))
	}
	if !r.inningsOver() {
		return ""
	}
	short := s.Target - 1 - s.Score
	if short == 0 {
		return "Match tied"
	}
	return fmt.Sprintf("%s won by %s", s.Teams.Name(s.BowlingTeam), plural(short, "run"))
}

func (r *reducer) finish(result string) {
	s := r.s
	s.FinalResult = &result
	s.MatchStarted = false
	s.SetupPhase = PhaseFinished
	s.AwaitingNewBatsman = false
	s.AwaitingNewBowler = false
	s.InningsComplete = true
	s.logf("Match over: " + result)
}

func (s *MatchState) swapStrike() {
	s.Striker, s.NonStriker = s.NonStriker, s.Striker
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
