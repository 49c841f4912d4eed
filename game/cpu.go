package game

import (
	"math"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Offset is an optional aiming error; the zero value is unset
type Offset struct {
	Value float64
	Valid bool
}

// AIState is the CPU controller's memory between ticks
type AIState struct {
	// ChanceOffset is redrawn lazily after every rebound off the CPU paddle
	ChanceOffset Offset
}

// Reset forces a fresh aiming error on the next decision
func (s *AIState) Reset() {
	s.ChanceOffset = Offset{}
}

// ensureOffset draws the aiming error if unset and returns it
func (s *AIState) ensureOffset(rng Random) float64 {
	if !s.ChanceOffset.Valid {
		hi := int(math.Round(parameter.CPUChaseOffset * parameter.CPUOffsetResolution))
		s.ChanceOffset = Offset{
			Value: float64(rng.IntRange(0, hi)) / parameter.CPUOffsetResolution,
			Valid: true,
		}
	}
	return s.ChanceOffset.Value
}

// Target returns the y the CPU aims for: the ball height biased by the aiming
// error toward the side the ball's velocity angle points at
func (s *AIState) Target(ball Ball, rng Random) float64 {
	offset := s.ensureOffset(rng)
	ballDir := -1.0
	if ball.Vel.Angle() > 0 {
		ballDir = 1.0
	}
	return ball.Pos.Y + offset*ballDir
}

// cpuStepLimit is the largest move allowed this tick; tracking slows once the
// ball is deep in the field regardless of its direction
func cpuStepLimit(ball Ball) float64 {
	if ball.Pos.X > parameter.CPUSlowMovingDistance {
		return parameter.PaddleStep * parameter.CPUSlowMovingFactor
	}
	return parameter.PaddleStep
}

// UpdateAI moves the paddle one CPU step toward its target and clamps it
// No movement when the target is already within one step
func (p *Paddle) UpdateAI(ball Ball, rng Random) {
	target := p.AI.Target(ball, rng)
	step := cpuStepLimit(ball)
	dist := target - p.Y

	switch {
	case dist > step:
		p.Y += step
	case dist < -step:
		p.Y -= step
	}
	p.clamp()
}
