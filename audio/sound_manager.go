package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// SoundManager plays game sound effects through a single long-lived mixer
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool

	// Read from the speaker goroutine via callbacks, hence atomics
	hitsPlaying atomic.Int32
	hitPitch    status.AtomicFloat
}

// NewSoundManager creates a sound manager; a nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	sm.setHitPitch(1.0)
	return sm
}

// Initialize opens the audio device and starts the mixer
// Disabled audio is not an error; the manager stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.hitsPlaying.Store(0)
	sm.setHitPitch(1.0)
	// beep has no speaker close; clearing leaves the device idle
	sm.initialized = false
}

// Initialized reports whether the device is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayHit plays the paddle hit sound shifted by pitch
func (sm *SoundManager) PlayHit(pitch float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if pitch <= 0 || math.IsNaN(pitch) || math.IsInf(pitch, 0) {
		pitch = 1.0
	}

	sm.setHitPitch(pitch)
	sm.hitsPlaying.Add(1)

	s := beep.Seq(
		pitched(CreateHitSound(sm.cfg), pitch),
		beep.Callback(func() {
			sm.hitsPlaying.Add(-1)
		}),
	)
	sm.add(s)
}

// PlayButtonPress plays the button press click
func (sm *SoundManager) PlayButtonPress() {
	sm.playEffect(SoundButtonPress)
}

// PlayButtonRelease plays the button release click
func (sm *SoundManager) PlayButtonRelease() {
	sm.playEffect(SoundButtonRelease)
}

// HitPlaying reports whether a hit sound is still audible
func (sm *SoundManager) HitPlaying() bool {
	return sm.hitsPlaying.Load() > 0
}

// PitchMultiplier returns the pitch of the latest hit sound, 1 when none is playing
func (sm *SoundManager) PitchMultiplier() float64 {
	if !sm.HitPlaying() {
		return 1.0
	}
	return sm.hitPitch.Get()
}

func (sm *SoundManager) playEffect(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}
	sm.add(pitched(s, soundPitch(st)))
}

// add hands a streamer to the mixer under the speaker lock
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) setHitPitch(p float64) {
	sm.hitPitch.Set(p)
}

// pitched resamples s so it plays pitch times faster (and higher)
func pitched(s beep.Streamer, pitch float64) beep.Streamer {
	if pitch == 1.0 {
		return s
	}
	return beep.ResampleRatio(parameter.AudioResampleQuality, pitch, s)
}
