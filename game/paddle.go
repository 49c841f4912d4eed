package game

import (
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Paddle travel limits keep the whole band inside the field
const (
	PaddleMinY = parameter.BoardHeight / 2
	PaddleMaxY = 1 - parameter.BoardHeight/2
)

// ControllerKind tags the paddle controller variant
type ControllerKind uint8

const (
	ControllerHuman ControllerKind = iota
	ControllerAI
)

// Paddle is one side's board; AI state is held by value and only
// meaningful when Controller is ControllerAI
type Paddle struct {
	Controller ControllerKind
	AI         AIState
	Score      int
	Y          float64
}

func newPaddle(controller ControllerKind) Paddle {
	return Paddle{
		Controller: controller,
		Y:          0.5,
	}
}

// IsAI reports whether the CPU drives this paddle
func (p Paddle) IsAI() bool {
	return p.Controller == ControllerAI
}

// ApplyMove moves one fixed step in the given direction and clamps to the field
func (p *Paddle) ApplyMove(dir Direction) {
	switch dir {
	case DirUp:
		p.Y -= parameter.PaddleStep
	case DirDown:
		p.Y += parameter.PaddleStep
	}
	p.clamp()
}

// Band returns the vertical interval used for collision testing
func (p *Paddle) Band() (top, bottom float64) {
	return p.Y - parameter.BoardHeight/2, p.Y + parameter.BoardHeight/2
}

func (p *Paddle) clamp() {
	p.Y = vmath.Clamp(p.Y, PaddleMinY, PaddleMaxY)
}
