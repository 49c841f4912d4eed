package ui

import (
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Action is what a menu button does when activated
type Action uint8

const (
	ActionNone Action = iota
	ActionOnePlayer
	ActionTwoPlayers
	ActionPlayAgain
	ActionBackToMenu
)

func (a Action) String() string {
	switch a {
	case ActionOnePlayer:
		return "one-player"
	case ActionTwoPlayers:
		return "two-players"
	case ActionPlayAgain:
		return "play-again"
	case ActionBackToMenu:
		return "back-to-menu"
	default:
		return "none"
	}
}

// Sounds is the audio surface the presentation layer drives
type Sounds interface {
	PlayHit(pitch float64)
	PlayButtonPress()
	PlayButtonRelease()
}

// Button is a labelled menu entry centered on Pos
type Button struct {
	Label  string
	Pos    vmath.Vec2
	Size   float64
	State  render.ButtonState
	Action Action
}

// Frame returns the button's cells on a width x height screen
func (b *Button) Frame(width, height int) render.Rect {
	return render.ButtonFrame(b.Label, b.Pos.X, b.Pos.Y, b.Size, width, height)
}

// Menu is a vertical list of buttons driven by mouse and keyboard
type Menu struct {
	Buttons []Button
	focus   int // keyboard focus, -1 for none
	pending int // keyboard-pressed button released on the next update, -1 for none
}

// NewMenu creates a menu with no focus
func NewMenu(buttons ...Button) *Menu {
	m := &Menu{Buttons: buttons}
	m.Reset()
	return m
}

// Reset clears focus, pending presses and button states
func (m *Menu) Reset() {
	m.focus = -1
	m.pending = -1
	for i := range m.Buttons {
		m.Buttons[i].State = render.ButtonInactive
	}
}

// Focus returns the focused button index, -1 for none
func (m *Menu) Focus() int {
	return m.focus
}

// MoveFocus moves keyboard focus by delta with wraparound
// With no focus, down lands on the first button and up on the last
func (m *Menu) MoveFocus(delta int) {
	n := len(m.Buttons)
	if n == 0 {
		return
	}
	if m.focus < 0 {
		if delta > 0 {
			m.focus = 0
		} else {
			m.focus = n - 1
		}
	} else {
		m.focus = ((m.focus+delta)%n + n) % n
	}
	m.syncFocus()
}

// Select presses the focused button; it releases and fires on the next Update
func (m *Menu) Select(sfx Sounds) {
	if m.focus < 0 || m.pending >= 0 {
		return
	}
	m.pending = m.focus
	m.Buttons[m.focus].State = render.ButtonPressing
	sfx.PlayButtonPress()
}

// Update applies the frame's mouse state and returns the fired action, if any
// A button fires when the primary button is released over it
func (m *Menu) Update(mouse *input.MouseState, width, height int, sfx Sounds) (Action, bool) {
	if m.pending >= 0 {
		b := &m.Buttons[m.pending]
		m.pending = -1
		b.State = render.ButtonActive
		sfx.PlayButtonRelease()
		return b.Action, true
	}

	for i := range m.Buttons {
		b := &m.Buttons[i]
		if !b.Frame(width, height).Contains(mouse.X, mouse.Y) {
			if i == m.focus {
				b.State = render.ButtonActive
			} else {
				b.State = render.ButtonInactive
			}
			continue
		}

		if mouse.Moved() {
			m.focus = i
		}

		switch {
		case mouse.Released():
			b.State = render.ButtonInactive
			sfx.PlayButtonRelease()
			return b.Action, true
		case mouse.Down:
			if b.State != render.ButtonPressing {
				sfx.PlayButtonPress()
			}
			b.State = render.ButtonPressing
		default:
			b.State = render.ButtonActive
		}
	}

	return ActionNone, false
}

// Draw renders every button
func (m *Menu) Draw(r *render.Renderer) {
	for i := range m.Buttons {
		b := &m.Buttons[i]
		r.DrawButton(b.Label, b.Pos.X, b.Pos.Y, b.Size, b.State)
	}
}

func (m *Menu) syncFocus() {
	for i := range m.Buttons {
		b := &m.Buttons[i]
		if b.State == render.ButtonPressing {
			continue
		}
		if i == m.focus {
			b.State = render.ButtonActive
		} else {
			b.State = render.ButtonInactive
		}
	}
}
