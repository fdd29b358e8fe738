package match

// History is a bounded stack of prior states. Pushing past the limit evicts
// the oldest entry.
type History struct {
	limit int
	items []*MatchState
}

// NewHistory creates a history holding at most limit snapshots.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit, items: make([]*MatchState, 0, limit)}
}

// Push records a snapshot.
func (h *History) Push(s *MatchState) {
	if len(h.items) == h.limit {
		copy(h.items, h.items[1:])
		h.items[len(h.items)-1] = nil
		h.items = h.items[:len(h.items)-1]
	}
	h.items = append(h.items, s)
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (*MatchState, bool) {
	if len(h.items) == 0 {
		return nil, false
	}
	last := h.items[len(h.items)-1]
	h.items[len(h.items)-1] = nil
	h.items = h.items[:len(h.items)-1]
	return last, true
}

// Len returns the number of snapshots held.
func (h *History) Len() int {
	return len(h.items)
}

// Clear drops every snapshot.
func (h *History) Clear() {
	clear(h.items)
	h.items = h.items[:0]
}

// Engine owns the live state and its undo history. It is not safe for
// concurrent use; Service serializes access.
type Engine struct {
	rules   Rules
	state   *MatchState
	history *History
}

// NewEngine starts an engine at the zero state with the given catalog.
func NewEngine(rules Rules, catalog Roster) *Engine {
	return &Engine{
		rules:   rules,
		state:   NewMatchState(catalog),
		history: NewHistory(rules.HistoryLimit),
	}
}

// State returns the current state. States are never modified after they are
// published, so the caller may keep it but must not mutate it.
func (e *Engine) State() *MatchState {
	return e.state
}

// HistoryLen returns the number of undoable events.
func (e *Engine) HistoryLen() int {
	return e.history.Len()
}

// Apply applies ev, pushing the prior state onto the history when it is accepted.
func (e *Engine) Apply(ev Event) (Outcome, error) {
	switch ev := ev.(type) {
	case Undo:
		prev, ok := e.history.Pop()
		if !ok {
			return Outcome{}, ErrEmptyHistory
		}
		e.state = prev
		return Outcome{Message: "Last action undone"}, nil
	case Reset:
		e.state = NewMatchState(ev.Catalog)
		e.history.Clear()
		return Outcome{Message: "Match reset"}, nil
	}

	next, out, err := Reduce(e.state, ev, e.rules)
	if err != nil {
		return Outcome{}, err
	}
	e.history.Push(e.state)
	e.state = next
	return out, nil
}

// View returns the read projection of the current state.
func (e *Engine) View() View {
	return NewView(e.state, e.rules, e.history.Len())
}
