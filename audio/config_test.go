package audio

import (
	"testing"

	"github.com/lixenwraith/vi-pong/parameter"
)

// TestDefaultAudioConfig verifies defaults come from parameter
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("Expected sample rate %d, got %d", parameter.AudioSampleRate, cfg.SampleRate)
	}
	if cfg.MasterVolume() != parameter.DefaultMasterVolume {
		t.Errorf("Expected master volume %f, got %f", parameter.DefaultMasterVolume, cfg.MasterVolume())
	}
}

// TestLoadAudioConfigEnabled verifies loading enabled flag
func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("PONG_AUDIO_ENABLED", tc.value)
			cfg, err := LoadAudioConfig()
			if err != nil {
				t.Fatalf("LoadAudioConfig failed: %v", err)
			}

			if cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for value %s, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

// TestLoadAudioConfigMasterVolume verifies percent conversion and clamping
func TestLoadAudioConfigMasterVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"75", 0.75},
		{"100", 1.0},
		{"150", 1.0},
		{"-20", 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("PONG_MASTER_VOLUME", tc.value)
			cfg, err := LoadAudioConfig()
			if err != nil {
				t.Fatalf("LoadAudioConfig failed: %v", err)
			}

			if cfg.MasterVolume() != tc.expected {
				t.Errorf("Expected MasterVolume=%f for value %s, got %f", tc.expected, tc.value, cfg.MasterVolume())
			}
		})
	}
}

// TestLoadAudioConfigSampleRate verifies non-positive rates fall back to default
func TestLoadAudioConfigSampleRate(t *testing.T) {
	testCases := []struct {
		value    string
		expected int
	}{
		{"48000", 48000},
		{"0", parameter.AudioSampleRate},
		{"-1", parameter.AudioSampleRate},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("PONG_SAMPLE_RATE", tc.value)
			cfg, err := LoadAudioConfig()
			if err != nil {
				t.Fatalf("LoadAudioConfig failed: %v", err)
			}
			if cfg.SampleRate != tc.expected {
				t.Errorf("Expected SampleRate=%d, got %d", tc.expected, cfg.SampleRate)
			}
		})
	}
}

// TestLoadAudioConfigEffectVolumes verifies effect volumes clamp to [0, 1]
func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	t.Setenv("PONG_HIT_VOLUME", "2.5")
	t.Setenv("PONG_BUTTON_VOLUME", "0.25")

	cfg, err := LoadAudioConfig()
	if err != nil {
		t.Fatalf("LoadAudioConfig failed: %v", err)
	}
	if cfg.HitVolume != 1.0 {
		t.Errorf("Expected HitVolume clamped to 1.0, got %f", cfg.HitVolume)
	}
	if cfg.ButtonVolume != 0.25 {
		t.Errorf("Expected ButtonVolume 0.25, got %f", cfg.ButtonVolume)
	}
}

// TestLoadAudioConfigInvalid verifies a malformed value reports an error and keeps defaults
func TestLoadAudioConfigInvalid(t *testing.T) {
	t.Setenv("PONG_MASTER_VOLUME", "loud")

	cfg, err := LoadAudioConfig()
	if err == nil {
		t.Fatal("Expected error for malformed volume")
	}
	if cfg == nil {
		t.Fatal("Expected default config alongside error")
	}
	if cfg.MasterPercent != DefaultAudioConfig().MasterPercent {
		t.Errorf("Expected default master volume, got %d", cfg.MasterPercent)
	}
}

// TestEffectVolume verifies per-effect volume includes master and button scaling
func TestEffectVolume(t *testing.T) {
	cfg := &AudioConfig{MasterPercent: 100, HitVolume: 0.5, ButtonVolume: 1.0}

	if got := cfg.EffectVolume(SoundHit); got != 0.5 {
		t.Errorf("Expected hit volume 0.5, got %f", got)
	}
	if got := cfg.EffectVolume(SoundButtonPress); got != parameter.ButtonPressVolume {
		t.Errorf("Expected press volume %f, got %f", parameter.ButtonPressVolume, got)
	}
	if got := cfg.EffectVolume(SoundButtonRelease); got != parameter.ButtonReleaseVolume {
		t.Errorf("Expected release volume %f, got %f", parameter.ButtonReleaseVolume, got)
	}
	if got := cfg.EffectVolume(soundTypeCount); got != 0 {
		t.Errorf("Expected unknown sound volume 0, got %f", got)
	}
}
