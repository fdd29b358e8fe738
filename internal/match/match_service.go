package match

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// RosterSource supplies the external player-name catalog.
type RosterSource interface {
	Load() (Roster, error)
}

// Service is the single writer of the live match. Events are applied one at
// a time under a mutex so every event sees the result of the previous one.
type Service struct {
	mu     sync.Mutex
	engine *Engine
	source RosterSource
}

// NewService loads the catalog and starts an engine at the zero state.
func NewService(rules Rules, source RosterSource) (*Service, error) {
	roster, err := source.Load()
	if err != nil {
		return nil, err
	}
	return &Service{
		engine: NewEngine(rules, roster),
		source: source,
	}, nil
}

// Apply applies one event and returns its outcome together with the
// post-event view. On error the view shows the unchanged state.
func (s *Service) Apply(ev Event) (Outcome, View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e := ev.(type) {
	case CreateTeams:
		if e.MatchID == "" {
			e.MatchID = uuid.NewString()
		}
		if e.Roster.Empty() {
			if roster, err := s.source.Load(); err != nil {
				log.Printf("catalog load failed, using the stored catalog: %v", err)
			} else {
				e.Roster = roster
			}
		}
		ev = e
	case Reset:
		if roster, err := s.source.Load(); err != nil {
			log.Printf("catalog reload failed, keeping the previous catalog: %v", err)
			e.Catalog = s.engine.State().Catalog
		} else {
			e.Catalog = roster
		}
		ev = e
	}

	out, err := s.engine.Apply(ev)
	return out, s.engine.View(), err
}

// Snapshot returns the current view.
func (s *Service) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.View()
}
