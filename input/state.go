package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/game"
)

// KeyState tracks held actions
// Terminals report key presses and auto-repeats but no releases, so an action
// counts as held until a deadline set by its most recent press. A first press
// holds for the repeat delay, covering the gap before auto-repeat starts;
// each repeat then extends the hold by the shorter repeat window.
type KeyState struct {
	delay time.Duration
	hold  time.Duration
	until [actionCount]time.Time
}

// NewKeyState creates a KeyState; delay below hold is raised to hold
func NewKeyState(delay, hold time.Duration) *KeyState {
	return &KeyState{delay: max(delay, hold), hold: hold}
}

// Press records a press (or auto-repeat) of an action
func (s *KeyState) Press(a Action, at time.Time) {
	if a == ActionNone || a >= actionCount {
		return
	}
	if s.Active(a, at) {
		s.until[a] = at.Add(s.hold)
		return
	}
	s.until[a] = at.Add(s.delay)
}

// Release forgets an action immediately
func (s *KeyState) Release(a Action) {
	if a >= actionCount {
		return
	}
	s.until[a] = time.Time{}
}

// Reset releases all actions
func (s *KeyState) Reset() {
	s.until = [actionCount]time.Time{}
}

// Active reports whether the action is held at now
func (s *KeyState) Active(a Action, now time.Time) bool {
	if a == ActionNone || a >= actionCount {
		return false
	}
	return now.Before(s.until[a])
}

// Direction resolves an up/down action pair, up wins when both are held
func (s *KeyState) Direction(up, down Action, now time.Time) game.Direction {
	switch {
	case s.Active(up, now):
		return game.DirUp
	case s.Active(down, now):
		return game.DirDown
	default:
		return game.DirNone
	}
}

// PaddleInput builds the per-tick paddle input from held actions
func (s *KeyState) PaddleInput(now time.Time) game.Input {
	return game.Input{
		Left:  s.Direction(ActionLeftUp, ActionLeftDown, now),
		Right: s.Direction(ActionRightUp, ActionRightDown, now),
	}
}

// MouseState tracks pointer position and primary button edges
type MouseState struct {
	X, Y     int
	Down     bool
	released bool
	moved    bool
}

// Update applies a mouse event
func (m *MouseState) Update(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if x != m.X || y != m.Y {
		m.moved = true
	}
	m.X, m.Y = x, y

	down := ev.Buttons()&tcell.Button1 != 0
	if m.Down && !down {
		m.released = true
	}
	m.Down = down
}

// Released reports a primary button release since the last EndFrame
func (m *MouseState) Released() bool {
	return m.released
}

// Moved reports pointer movement since the last EndFrame
func (m *MouseState) Moved() bool {
	return m.moved
}

// EndFrame clears per-frame edges
func (m *MouseState) EndFrame() {
	m.released = false
	m.moved = false
}
