package game

import (
	"testing"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

func newTestPaddles(left ControllerKind) *[2]Paddle {
	return &[2]Paddle{newPaddle(left), newPaddle(ControllerHuman)}
}

func TestNewBallStartsCenteredDriftingLeft(t *testing.T) {
	b := NewBall()

	if b.Pos != (vmath.Vec2{X: 0.5, Y: 0.5}) {
		t.Errorf("Expected ball at center, got %+v", b.Pos)
	}
	if b.Vel.X >= 0 || b.Vel.Y != 0 {
		t.Errorf("Expected flat leftward velocity, got %+v", b.Vel)
	}
	if !approxEqual(b.Speed(), parameter.BallSpeedSlow) {
		t.Errorf("Expected slow speed %v, got %v", parameter.BallSpeedSlow, b.Speed())
	}
}

func TestOutOfBoundsScoringSides(t *testing.T) {
	tests := []struct {
		name       string
		x          float64
		scorer     Side
		wantLeftVX bool
	}{
		{"Exit right scores for left paddle", 1.01, SideLeft, false},
		{"Exit left scores for right paddle", -0.01, SideRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddles := newTestPaddles(ControllerHuman)
			b := Ball{Pos: vmath.Vec2{X: tt.x, Y: 0.5}, Vel: vmath.Vec2{X: 0.014}}
			rng := newScriptedRandom(6, 120)

			events := b.checkOutOfBounds(paddles, rng, nil)

			if paddles[tt.scorer].Score != 1 || paddles[tt.scorer.Opponent()].Score != 0 {
				t.Errorf("Expected only %s to score, got scores %d/%d",
					tt.scorer, paddles[SideLeft].Score, paddles[SideRight].Score)
			}
			if len(events) != 1 || events[0].Type != EventScore || events[0].Side != tt.scorer || events[0].Score != 1 {
				t.Errorf("Expected one score event for %s, got %+v", tt.scorer, events)
			}
			if b.Pos.X != 0.5 || !approxEqual(b.Pos.Y, 0.6) {
				t.Errorf("Expected serve position (0.5, 0.6), got %+v", b.Pos)
			}
			if (b.Vel.X < 0) != tt.wantLeftVX {
				t.Errorf("Expected leftward serve=%v, got vel %+v", tt.wantLeftVX, b.Vel)
			}
			if !approxEqual(b.Speed(), parameter.BallSpeedSlow) {
				t.Errorf("Expected serve speed %v, got %v", parameter.BallSpeedSlow, b.Speed())
			}
		})
	}
}

func TestInBoundsDoesNotScore(t *testing.T) {
	paddles := newTestPaddles(ControllerHuman)
	for _, x := range []float64{0, 0.5, 1} {
		b := Ball{Pos: vmath.Vec2{X: x, Y: 0.5}}
		if events := b.checkOutOfBounds(paddles, newScriptedRandom(), nil); len(events) != 0 {
			t.Errorf("Expected no score at x=%v, got %+v", x, events)
		}
	}
}

func TestServeDrawRanges(t *testing.T) {
	rng := newScriptedRandom(4, 135)
	var b Ball
	b.serve(rng, false)

	if len(rng.calls) != 2 {
		t.Fatalf("Expected 2 draws, got %d", len(rng.calls))
	}
	if rng.calls[0] != [2]int{parameter.ServeYMin, parameter.ServeYMax} {
		t.Errorf("Expected serve y draw over [4, 6], got %v", rng.calls[0])
	}
	if rng.calls[1] != [2]int{parameter.ServeAngleMin, parameter.ServeAngleMax} {
		t.Errorf("Expected angle draw over [110, 135], got %v", rng.calls[1])
	}
	if !approxEqual(b.Pos.Y, 0.4) {
		t.Errorf("Expected serve y 0.4, got %v", b.Pos.Y)
	}
}

func TestServeAngleSlope(t *testing.T) {
	tests := []struct {
		angle int
		slope float64
	}{
		{110, 110.0*2/180 - 1},
		{135, 0.5},
	}

	for _, tt := range tests {
		var b Ball
		b.serve(newScriptedRandom(5, tt.angle), false)

		if b.Vel.X <= 0 {
			t.Errorf("Expected rightward serve for angle %d, got %+v", tt.angle, b.Vel)
		}
		if got := b.Vel.Y / b.Vel.X; !approxEqual(got, tt.slope) {
			t.Errorf("Expected slope %v for angle %d, got %v", tt.slope, tt.angle, got)
		}
	}
}

func TestPaddleCollisionRebound(t *testing.T) {
	tests := []struct {
		name     string
		side     Side
		pos      vmath.Vec2
		vel      vmath.Vec2
		wantVelX float64
	}{
		{"Left paddle center", SideLeft, vmath.Vec2{X: 0.1, Y: 0.5}, vmath.Vec2{X: -0.01}, 1},
		{"Left paddle low", SideLeft, vmath.Vec2{X: 0.1, Y: 0.55}, vmath.Vec2{X: -0.01, Y: 0.003}, 1},
		{"Right paddle high", SideRight, vmath.Vec2{X: 0.9, Y: 0.44}, vmath.Vec2{X: 0.01, Y: -0.004}, -1},
		{"Right paddle edge", SideRight, vmath.Vec2{X: 0.895, Y: 0.5 + parameter.BoardHeight/2 + 0.005}, vmath.Vec2{X: 0.01}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddles := newTestPaddles(ControllerHuman)
			b := Ball{Pos: tt.pos, Vel: tt.vel}

			events := b.checkPaddleCollision(paddles, nil)

			if len(events) != 1 || events[0].Type != EventHit || events[0].Side != tt.side {
				t.Fatalf("Expected one hit event on %s, got %+v", tt.side, events)
			}
			if (b.Vel.X > 0) != (tt.wantVelX > 0) {
				t.Errorf("Expected x direction %v, got %+v", tt.wantVelX, b.Vel)
			}
			if !approxEqual(b.Speed(), parameter.BallSpeedNormal) {
				t.Errorf("Expected speed %v after hit, got %v", parameter.BallSpeedNormal, b.Speed())
			}
			relative := (tt.pos.Y - 0.5) / parameter.BoardHeight
			if got := b.Vel.Y / b.Vel.X * tt.wantVelX; !approxEqual(got, relative*parameter.BounceSteepness) {
				t.Errorf("Expected slope %v, got %v", relative*parameter.BounceSteepness, got)
			}
			if !approxEqual(events[0].Pitch, 1) {
				t.Errorf("Expected neutral pitch, got %v", events[0].Pitch)
			}
		})
	}
}

func TestPaddleCollisionRequiresApproach(t *testing.T) {
	tests := []struct {
		name string
		pos  vmath.Vec2
		vel  vmath.Vec2
	}{
		{"Leaving left paddle", vmath.Vec2{X: 0.1, Y: 0.5}, vmath.Vec2{X: 0.01}},
		{"Leaving right paddle", vmath.Vec2{X: 0.9, Y: 0.5}, vmath.Vec2{X: -0.01}},
		{"Above left paddle", vmath.Vec2{X: 0.1, Y: 0.3}, vmath.Vec2{X: -0.01}},
		{"Behind left band", vmath.Vec2{X: 0.08, Y: 0.5}, vmath.Vec2{X: -0.01}},
		{"Midfield", vmath.Vec2{X: 0.5, Y: 0.5}, vmath.Vec2{X: -0.01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddles := newTestPaddles(ControllerHuman)
			b := Ball{Pos: tt.pos, Vel: tt.vel}

			if events := b.checkPaddleCollision(paddles, nil); len(events) != 0 {
				t.Errorf("Expected no collision, got %+v", events)
			}
			if b.Vel != tt.vel {
				t.Errorf("Expected velocity unchanged, got %+v", b.Vel)
			}
		})
	}
}

func TestAsymmetricHorizontalBands(t *testing.T) {
	// Left band spans [0.095, 0.11]; ball half width is 0.01
	paddles := newTestPaddles(ControllerHuman)
	inner := Ball{Pos: vmath.Vec2{X: 0.119, Y: 0.5}, Vel: vmath.Vec2{X: -0.01}}
	if len(inner.checkPaddleCollision(paddles, nil)) != 1 {
		t.Error("Expected hit on the inner side of the left band")
	}
	outer := Ball{Pos: vmath.Vec2{X: 0.084, Y: 0.5}, Vel: vmath.Vec2{X: -0.01}}
	if len(outer.checkPaddleCollision(paddles, nil)) != 0 {
		t.Error("Expected miss behind the left band")
	}
}

func TestLeftHitUnsetsAIOffset(t *testing.T) {
	paddles := newTestPaddles(ControllerAI)
	paddles[SideLeft].AI.ChanceOffset = Offset{Value: 0.02, Valid: true}
	b := Ball{Pos: vmath.Vec2{X: 0.1, Y: 0.5}, Vel: vmath.Vec2{X: -0.01}}

	b.checkPaddleCollision(paddles, nil)

	if paddles[SideLeft].AI.ChanceOffset.Valid {
		t.Error("Expected AI offset to be unset after hitting the AI paddle")
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name    string
		pos     vmath.Vec2
		vel     vmath.Vec2
		flipped bool
	}{
		{"Bottom wall", vmath.Vec2{X: 0.5, Y: 0.995}, vmath.Vec2{X: 0.01, Y: 0.01}, true},
		{"Top wall", vmath.Vec2{X: 0.5, Y: 0.005}, vmath.Vec2{X: 0.01, Y: -0.01}, true},
		{"Lands exactly on edge", vmath.Vec2{X: 0.5, Y: 0.75}, vmath.Vec2{X: 0.25, Y: 0.25}, false},
		{"Midfield", vmath.Vec2{X: 0.5, Y: 0.5}, vmath.Vec2{X: 0.01, Y: 0.01}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{Pos: tt.pos, Vel: tt.vel}
			b.checkWallCollision()

			if flipped := b.Vel.Y == -tt.vel.Y; flipped != tt.flipped {
				t.Errorf("Expected flipped=%v, got vel %+v", tt.flipped, b.Vel)
			}
			if b.Vel.X != tt.vel.X {
				t.Errorf("Expected x velocity untouched, got %v", b.Vel.X)
			}
		})
	}
}

func TestScenarioBallExitsRight(t *testing.T) {
	m := NewMatch(ModeTwoPlayer, newScriptedRandom(5, 120))
	m.ball = Ball{Pos: vmath.Vec2{X: 0.95, Y: 0.5}, Vel: vmath.Vec2{X: 0.014}}

	var scored []Event
	for i := 0; i < 10 && len(scored) == 0; i++ {
		for _, ev := range m.Update(Input{}) {
			if ev.Type == EventScore {
				scored = append(scored, ev)
			}
		}
	}

	if len(scored) != 1 || scored[0].Side != SideLeft {
		t.Fatalf("Expected the left paddle to score, got %+v", scored)
	}
	if m.Paddle(SideLeft).Score != 1 || m.Paddle(SideRight).Score != 0 {
		t.Errorf("Expected scores 1/0, got %d/%d", m.Paddle(SideLeft).Score, m.Paddle(SideRight).Score)
	}
}
