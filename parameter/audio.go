package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond

	// AudioResampleQuality is the beep resampler quality for pitch shifting
	AudioResampleQuality = 4
)

// Default volumes, linear 0.0-1.0
const (
	DefaultMasterVolume = 0.5
	DefaultHitVolume    = 1.0
	DefaultButtonVolume = 0.8
)

// Hit Sound
const (
	HitSoundFrequency = 440.0
	HitSoundDuration  = 70 * time.Millisecond
	HitSoundAttack    = 2 * time.Millisecond
	HitSoundRelease   = 40 * time.Millisecond
)

// Button Sounds
const (
	ButtonPressPitch    = 0.7
	ButtonPressVolume   = 0.7
	ButtonReleasePitch  = 0.6
	ButtonReleaseVolume = 0.5
)

// Click Sound, base for button press and release
const (
	ClickSoundFrequency = 1200.0
	ClickSoundDuration  = 35 * time.Millisecond
	ClickSoundAttack    = 1 * time.Millisecond
	ClickSoundRelease   = 25 * time.Millisecond
)
