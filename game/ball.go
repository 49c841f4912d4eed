package game

import (
	"math"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Ball position may transiently leave [0,1] on x; that is how scoring is detected
type Ball struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// NewBall returns the opening ball: centered, drifting slowly left
func NewBall() Ball {
	return Ball{
		Pos: vmath.Vec2{X: 0.5, Y: 0.5},
		Vel: vmath.Vec2{X: -parameter.BallSpeedSlow, Y: 0},
	}
}

// Speed returns the velocity magnitude
func (b *Ball) Speed() float64 {
	return b.Vel.Length()
}

// serve recenters the ball at a random height and relaunches it rightward at
// slow speed; towardLeft mirrors the launch after the left paddle concedes
func (b *Ball) serve(rng Random, towardLeft bool) {
	b.Pos = vmath.Vec2{
		X: 0.5,
		Y: float64(rng.IntRange(parameter.ServeYMin, parameter.ServeYMax)) / 10,
	}
	b.resetVel(rng)
	if towardLeft {
		b.Vel.X = -b.Vel.X
	}
}

// resetVel maps an integer angle draw in [110, 135] to a y slope in
// [0.222, 0.5] against a unit x component, scaled to slow speed
func (b *Ball) resetVel(rng Random) {
	angle := float64(rng.IntRange(parameter.ServeAngleMin, parameter.ServeAngleMax))*2/180 - 1
	b.Vel = vmath.Vec2{X: 1, Y: angle}.Normalize().Scale(parameter.BallSpeedSlow)
}

// update advances the ball one tick in fixed order: out-of-bounds, paddle
// collision, wall bounce, integration. Events are appended to events
func (b *Ball) update(paddles *[2]Paddle, rng Random, events []Event) []Event {
	events = b.checkOutOfBounds(paddles, rng, events)
	events = b.checkPaddleCollision(paddles, events)
	b.checkWallCollision()
	b.Pos = b.Pos.Add(b.Vel)
	return events
}

// checkOutOfBounds scores and serves when the ball has left the field
// Exiting right scores for the left paddle, exiting left for the right one
func (b *Ball) checkOutOfBounds(paddles *[2]Paddle, rng Random, events []Event) []Event {
	var scorer Side
	switch {
	case b.Pos.X > 1:
		scorer = SideLeft
	case b.Pos.X < 0:
		scorer = SideRight
	default:
		return events
	}

	paddles[scorer].Score++
	b.serve(rng, scorer == SideRight)

	return append(events, Event{
		Type:  EventScore,
		Side:  scorer,
		Score: paddles[scorer].Score,
	})
}

// collidesWith tests direction gating and band overlap on both axes
func (b *Ball) collidesWith(side Side, p *Paddle) bool {
	var movingToward bool
	var bandLeft, bandRight float64
	if side == SideLeft {
		movingToward = b.Vel.X < 0
		bandLeft = parameter.PaddleLeftX - parameter.BoardHalfWidth/2
		bandRight = parameter.PaddleLeftX + parameter.BoardHalfWidth
	} else {
		movingToward = b.Vel.X > 0
		bandLeft = parameter.PaddleRightX - parameter.BoardHalfWidth
		bandRight = parameter.PaddleRightX + parameter.BoardHalfWidth/2
	}
	if !movingToward {
		return false
	}

	half := parameter.BallWidth / 2
	if !vmath.RangesOverlap(b.Pos.X-half, b.Pos.X+half, bandLeft, bandRight) {
		return false
	}
	top, bottom := p.Band()
	return vmath.RangesOverlap(b.Pos.Y-half, b.Pos.Y+half, top, bottom)
}

// checkPaddleCollision rebounds off at most one paddle, left first
func (b *Ball) checkPaddleCollision(paddles *[2]Paddle, events []Event) []Event {
	for _, side := range [2]Side{SideLeft, SideRight} {
		p := &paddles[side]
		if !b.collidesWith(side, p) {
			continue
		}

		b.rebound(side, p)
		if side == SideLeft && p.IsAI() {
			p.AI.Reset()
		}

		return append(events, Event{
			Type:  EventHit,
			Side:  side,
			Pitch: hitPitch(b.Vel),
		})
	}
	return events
}

// rebound sends the ball back at normal speed; the further from the paddle
// center it hit, the steeper the return
func (b *Ball) rebound(side Side, p *Paddle) {
	relative := (b.Pos.Y - p.Y) / parameter.BoardHeight
	x := 1.0
	if side == SideRight {
		x = -1.0
	}
	b.Vel = vmath.Vec2{X: x, Y: relative * parameter.BounceSteepness}.
		Normalize().
		Scale(parameter.BallSpeedNormal)
}

// hitPitch derives the hit sound pitch multiplier from the post-rebound speed
// The speed is pinned to BallSpeedNormal, so this stays near 1
func hitPitch(vel vmath.Vec2) float64 {
	return math.Exp((vel.Length() - parameter.BallSpeedNormal) * parameter.HitPitchSensitivity)
}

// checkWallCollision reflects vertically when the next position would leave [0,1]
func (b *Ball) checkWallCollision() {
	next := b.Pos.Add(b.Vel)
	if !vmath.InRange(next.Y, 0, 1) {
		b.Vel.Y = -b.Vel.Y
	}
}
