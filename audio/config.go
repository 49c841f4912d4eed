package audio

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/vi-pong/parameter"
)

// LoadAudioConfig loads audio configuration from environment variables
// Unset variables keep their defaults; out-of-range values are clamped
func LoadAudioConfig() (*AudioConfig, error) {
	cfg := DefaultAudioConfig()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: parameter.EnvPrefix}); err != nil {
		return DefaultAudioConfig(), fmt.Errorf("audio config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *AudioConfig) normalize() {
	if c.MasterPercent < 0 {
		c.MasterPercent = 0
	}
	if c.MasterPercent > 100 {
		c.MasterPercent = 100
	}

	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}

	c.HitVolume = clampVolume(c.HitVolume)
	c.ButtonVolume = clampVolume(c.ButtonVolume)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
