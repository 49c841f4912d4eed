package parameter

// Playfield geometry in normalized [0,1]x[0,1] space
const (
	// PaddleLeftX is the fixed horizontal center of the left paddle
	PaddleLeftX = 0.1

	// PaddleRightX is the fixed horizontal center of the right paddle
	PaddleRightX = 0.9

	// PaddleStep is the vertical distance a paddle moves per tick
	PaddleStep = 0.015

	// BoardHalfWidth is half the horizontal thickness of a paddle
	BoardHalfWidth = 0.01

	// BoardHeight is the vertical extent of a paddle
	BoardHeight = 0.15

	// BallWidth is the side length of the square ball
	BallWidth = BoardHalfWidth * 2
)

// Ball speeds, normalized units per tick
const (
	BallSpeedSlow   = 0.007
	BallSpeedNormal = BallSpeedSlow * 2
)

// Serve
const (
	// ServeAngleMin and ServeAngleMax bound the integer angle draw on serve
	ServeAngleMin = 110
	ServeAngleMax = 135

	// ServeYMin and ServeYMax bound the serve height draw, in tenths
	ServeYMin = 4
	ServeYMax = 6

	// BounceSteepness scales the impact offset into the rebound y component
	BounceSteepness = 4.0
)

// CPU difficulty
const (
	// CPUChaseOffset is the upper bound of the random aiming error
	CPUChaseOffset = BoardHeight / 4

	// CPUSlowMovingDistance is the ball x beyond which the CPU slows down
	CPUSlowMovingDistance = 0.8

	// CPUSlowMovingFactor scales the CPU step once the ball is past CPUSlowMovingDistance
	CPUSlowMovingFactor = 0.5

	// CPUOffsetResolution is the integer scale of the aiming error draw
	CPUOffsetResolution = 100000.0
)

// Match rules
const (
	WinningScore = 11

	// HitPitchSensitivity scales the speed delta in the hit pitch multiplier
	HitPitchSensitivity = 150.0
)
