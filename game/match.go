package game

import (
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Match owns both paddles and the ball and advances one tick per frame
// Single-threaded: Update and the query methods must not run concurrently
type Match struct {
	mode    Mode
	rng     Random
	paddles [2]Paddle
	ball    Ball
	ended   bool
	winner  Side
	tick    uint64
	events  []Event
}

// NewMatch creates a fresh match: paddles centered, scores zero, ball at center
func NewMatch(mode Mode, rng Random) *Match {
	left := ControllerHuman
	if mode == ModeVsAI {
		left = ControllerAI
	}
	return &Match{
		mode:    mode,
		rng:     rng,
		paddles: [2]Paddle{newPaddle(left), newPaddle(ControllerHuman)},
		ball:    NewBall(),
		events:  make([]Event, 0, 4),
	}
}

// Update runs one tick: paddle movement, ball update, win check
// The returned slice is reused and valid until the next Update
// Ended is advisory; the ball keeps moving if the caller keeps ticking
func (m *Match) Update(in Input) []Event {
	m.events = m.events[:0]
	m.tick++

	left := &m.paddles[SideLeft]
	if left.IsAI() {
		left.UpdateAI(m.ball, m.rng)
	} else {
		left.ApplyMove(in.Left)
	}
	m.paddles[SideRight].ApplyMove(in.Right)

	m.events = m.ball.update(&m.paddles, m.rng, m.events)

	if !m.ended {
		for _, side := range [2]Side{SideLeft, SideRight} {
			if m.paddles[side].Score >= parameter.WinningScore {
				m.ended = true
				m.winner = side
				m.events = append(m.events, Event{
					Type:  EventMatchEnd,
					Side:  side,
					Score: m.paddles[side].Score,
				})
				break
			}
		}
	}

	return m.events
}

// Mode returns the mode the match was created with
func (m *Match) Mode() Mode {
	return m.mode
}

// Ended reports whether a paddle has reached the winning score
func (m *Match) Ended() bool {
	return m.ended
}

// Winner returns the first side to reach the winning score
func (m *Match) Winner() (Side, bool) {
	return m.winner, m.ended
}

// Paddle returns a copy of one side's paddle
func (m *Match) Paddle(side Side) Paddle {
	return m.paddles[side]
}

// Ball returns a copy of the ball
func (m *Match) Ball() Ball {
	return m.ball
}

// Tick returns the number of completed updates
func (m *Match) Tick() uint64 {
	return m.tick
}

// PaddleView is the render-facing part of a paddle
type PaddleView struct {
	Y     float64
	Score int
	AI    bool
}

// Snapshot is an immutable copy of everything the render path reads
type Snapshot struct {
	Tick    uint64
	Mode    Mode
	Paddles [2]PaddleView
	Ball    vmath.Vec2
	Ended   bool
	Winner  Side
}

// Snapshot copies the current state for rendering
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   m.tick,
		Mode:   m.mode,
		Ball:   m.ball.Pos,
		Ended:  m.ended,
		Winner: m.winner,
	}
	for i := range m.paddles {
		s.Paddles[i] = PaddleView{
			Y:     m.paddles[i].Y,
			Score: m.paddles[i].Score,
			AI:    m.paddles[i].IsAI(),
		}
	}
	return s
}
