package match

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatOvers renders a legal-ball count as "<overs>.<balls>".
func FormatOvers(balls int) string {
	return fmt.Sprintf("%d.%d", balls/6, balls%6)
}

// ParseOversLimit converts "<overs>.<balls 0-5>" into a legal-ball count.
// An empty string or zero means unlimited and yields 0.
func ParseOversLimit(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	whole, part, hasPart := strings.Cut(s, ".")
	overs, err := strconv.Atoi(whole)
	if err != nil || overs < 0 {
		return 0, validationf("invalid overs limit %q", s)
	}
	if overs > (math.MaxInt-5)/6 {
		return 0, validationf("invalid overs limit %q: too many overs", s)
	}
	balls := 0
	if hasPart {
		balls, err = strconv.Atoi(part)
		if err != nil || balls < 0 || balls > 5 {
			return 0, validationf("invalid overs limit %q: balls must be between 0 and 5", s)
		}
	}
	return overs*6 + balls, nil
}

// StrikeRate is runs per hundred balls, "0.00" before the first ball.
func StrikeRate(runs, balls int) string {
	if balls == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(runs)/float64(balls)*100)
}

// Economy is runs conceded per six legal balls, "0.00" before the first ball.
func Economy(runs, balls int) string {
	if balls == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(runs)/(float64(balls)/6))
}

// BattingLine is a PlayerStat with its display figures.
type BattingLine struct {
	PlayerStat
	StrikeRate string `json:"strike_rate"`
	OnStrike   bool   `json:"on_strike"`
	AtCrease   bool   `json:"at_crease"`
}

// BowlingLine is a BowlerStat with its display figures.
type BowlingLine struct {
	BowlerStat
	Overs   string `json:"overs"`
	Economy string `json:"economy"`
}

// Chase is the second-innings equation.
type Chase struct {
	Target          int    `json:"target"`
	RunsNeeded      int    `json:"runs_needed"`
	BallsRemaining  *int   `json:"balls_remaining,omitempty"`
	RequiredRunRate string `json:"required_run_rate,omitempty"`
}

// View is the snapshot returned by the query operation: the full state plus
// derived display values.
type View struct {
	*MatchState
	Overs        string        `json:"overs"`
	RunRate      string        `json:"run_rate"`
	RosterSize   int           `json:"roster_size"`
	Batting      []BattingLine `json:"batting"`
	Bowling      []BowlingLine `json:"bowling"`
	Chase        *Chase        `json:"chase,omitempty"`
	HistoryDepth int           `json:"history_depth"`
}

// NewView projects s for display.
func NewView(s *MatchState, rules Rules, historyDepth int) View {
	v := View{
		MatchState:   s,
		Overs:        FormatOvers(s.Balls),
		RunRate:      Economy(s.Score, s.Balls),
		RosterSize:   s.RosterSize(rules),
		Batting:      make([]BattingLine, 0, len(s.BattingOrder)),
		Bowling:      make([]BowlingLine, 0, len(s.Bowlers)),
		HistoryDepth: historyDepth,
	}
	for _, name := range s.BattingOrder {
		p := s.player(name)
		v.Batting = append(v.Batting, BattingLine{
			PlayerStat: p,
			StrikeRate: StrikeRate(p.Runs, p.BallsFaced),
			OnStrike:   name == s.Striker,
			AtCrease:   name == s.Striker || name == s.NonStriker,
		})
	}
	for _, b := range s.Bowlers {
		v.Bowling = append(v.Bowling, BowlingLine{
			BowlerStat: b,
			Overs:      FormatOvers(b.TotalBalls),
			Economy:    Economy(b.RunsConceded, b.TotalBalls),
		})
	}
	if s.Innings == 2 {
		c := &Chase{Target: s.Target, RunsNeeded: max(s.Target-s.Score, 0)}
		if s.MatchBallLimit > 0 {
			left := max(s.MatchBallLimit-s.Balls, 0)
			c.BallsRemaining = &left
			if left > 0 {
				c.RequiredRunRate = Economy(c.RunsNeeded, left)
			}
		}
		v.Chase = c
	}
	return v
}
