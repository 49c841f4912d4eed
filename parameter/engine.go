package parameter

import "time"

// Game Loop Timing
const (
	// DefaultFPS matches the fixed simulation rate: one tick per rendered frame
	DefaultFPS = 60

	// MaxFPS caps the configurable frame rate
	MaxFPS = 240

	// EventChannelSize buffers terminal events between the poller and the loop
	EventChannelSize = 256
)

// Input
const (
	// DefaultKeyHold is how long a terminal key press counts as held
	// Terminals report presses and repeats only, never releases
	DefaultKeyHold = 150 * time.Millisecond

	// DefaultKeyDelay is how long a first press counts as held, spanning the
	// terminal's auto-repeat delay
	DefaultKeyDelay = 500 * time.Millisecond
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-pong.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Configuration
const (
	// EnvPrefix prefixes every environment variable read by the game
	EnvPrefix = "PONG_"
)
