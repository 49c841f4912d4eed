// Package game implements the pong simulation core: paddles, the CPU
// controller, ball collision and scoring, and the match state machine
// It has no rendering, input device or audio dependencies; the presentation
// layer feeds it resolved directions and consumes its snapshot and events
package game

// Side identifies a paddle; values index Match paddles
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name for logs
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	return 1 - s
}

// Direction is a resolved movement command for one tick
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// Mode selects who controls the left paddle
type Mode uint8

const (
	// ModeVsAI puts the CPU on the left paddle and a human on the right
	ModeVsAI Mode = iota
	// ModeTwoPlayer puts humans on both paddles
	ModeTwoPlayer
)

// String returns the mode name for logs
func (m Mode) String() string {
	if m == ModeVsAI {
		return "vs-ai"
	}
	return "two-player"
}

// Input carries the per-tick directions for human-controlled paddles
// Left is ignored when the left paddle is CPU-controlled
type Input struct {
	Left  Direction
	Right Direction
}
