package game

// Session is the match control surface used by the presentation layer
// At most one match is live; Init replaces it, Teardown drops it
type Session struct {
	rng   Random
	match *Match
}

// NewSession creates an idle session drawing randomness from rng
func NewSession(rng Random) *Session {
	return &Session{rng: rng}
}

// Init starts a new match in the given mode, discarding any previous one
func (s *Session) Init(mode Mode) *Match {
	s.match = NewMatch(mode, s.rng)
	return s.match
}

// Restart starts a new match in the mode of the current one
// Returns nil when no match was ever started
func (s *Session) Restart() *Match {
	if s.match == nil {
		return nil
	}
	return s.Init(s.match.Mode())
}

// Update ticks the live match; no-op without one
func (s *Session) Update(in Input) []Event {
	if s.match == nil {
		return nil
	}
	return s.match.Update(in)
}

// Teardown releases the live match
func (s *Session) Teardown() {
	s.match = nil
}

// Active reports whether a match is live
func (s *Session) Active() bool {
	return s.match != nil
}

// Match returns the live match or nil
func (s *Session) Match() *Match {
	return s.match
}
