package audio

import "github.com/lixenwraith/vi-pong/parameter"

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit           SoundType = iota // Ball meets paddle
	SoundButtonPress                    // Menu button pressed
	SoundButtonRelease                  // Menu button released
	soundTypeCount
)

// AudioConfig holds audio settings, overridable from the environment
// MasterPercent is 0-100; effect volumes are linear 0.0-1.0
type AudioConfig struct {
	Enabled       bool    `env:"AUDIO_ENABLED"`
	MasterPercent int     `env:"MASTER_VOLUME"`
	SampleRate    int     `env:"SAMPLE_RATE"`
	HitVolume     float64 `env:"HIT_VOLUME"`
	ButtonVolume  float64 `env:"BUTTON_VOLUME"`
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:       true,
		MasterPercent: int(parameter.DefaultMasterVolume * 100),
		SampleRate:    parameter.AudioSampleRate,
		HitVolume:     parameter.DefaultHitVolume,
		ButtonVolume:  parameter.DefaultButtonVolume,
	}
}

// MasterVolume returns the master volume as a linear factor
func (c *AudioConfig) MasterVolume() float64 {
	return float64(c.MasterPercent) / 100.0
}

// EffectVolume returns the linear volume for a sound type, master volume included
func (c *AudioConfig) EffectVolume(st SoundType) float64 {
	switch st {
	case SoundHit:
		return c.HitVolume * c.MasterVolume()
	case SoundButtonPress:
		return c.ButtonVolume * parameter.ButtonPressVolume * c.MasterVolume()
	case SoundButtonRelease:
		return c.ButtonVolume * parameter.ButtonReleaseVolume * c.MasterVolume()
	default:
		return 0
	}
}
