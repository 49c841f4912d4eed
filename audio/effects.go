package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-pong/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq      float64
	phase     float64
	remaining int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates an oscillator that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:      freq,
		remaining: rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.remaining <= 0 {
		return 0, false
	}

	for i := range samples {
		if o.remaining <= 0 {
			return i, true
		}

		val := o.sample()
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.remaining--
	}
	return len(samples), true
}

func (o *oscillator) sample() float64 {
	switch o.wave {
	case WaveSquare:
		if o.phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (o.phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

// NewEnvelope wraps s with an attack/sustain/release gain curve over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = max(total-att, 0)
	}

	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: total - rel,
		release:      rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		gain := e.gain()
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}

	return n, ok
}

func (e *envelope) gain() float64 {
	switch {
	case e.attack > 0 && e.position < e.attack:
		return float64(e.position) / float64(e.attack)
	case e.release > 0 && e.position >= e.releaseStart:
		return math.Max(float64(e.total-e.position)/float64(e.release), 0)
	default:
		return 1.0
	}
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear factor
// math.Log2(0) is -Inf, so zero volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// shapedTone is an enveloped oscillator
func shapedTone(freq float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateHitSound generates the paddle hit blip, a sine with a square overtone
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := shapedTone(parameter.HitSoundFrequency, WaveSine,
		parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	over := shapedTone(parameter.HitSoundFrequency*2, WaveSquare,
		parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.8),
		newVolume(over, 0.1),
	)

	return newVolume(mixed, cfg.EffectVolume(SoundHit))
}

// clickVoices layer the button click: a sine tone, a saw body an octave
// below and a short noise tick
var clickVoices = []struct {
	freq    float64
	wave    WaveType
	vol     float64
	release time.Duration
}{
	{parameter.ClickSoundFrequency, WaveSine, 0.5, parameter.ClickSoundRelease},
	{parameter.ClickSoundFrequency / 2, WaveSaw, 0.2, parameter.ClickSoundRelease},
	{0, WaveNoise, 0.2, parameter.ClickSoundRelease / 2},
}

// CreateClickSound generates the button click; press and release differ only in volume here,
// pitch is applied by the caller
func CreateClickSound(cfg *AudioConfig, st SoundType) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	layers := make([]beep.Streamer, 0, len(clickVoices))
	for _, v := range clickVoices {
		tone := shapedTone(v.freq, v.wave,
			parameter.ClickSoundDuration, parameter.ClickSoundAttack, v.release, rate)
		layers = append(layers, newVolume(tone, v.vol))
	}

	return newVolume(beep.Mix(layers...), cfg.EffectVolume(st))
}

// GetSoundEffect returns the unpitched streamer for the given type
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundButtonPress, SoundButtonRelease:
		return CreateClickSound(cfg, st)
	default:
		return nil
	}
}

// soundPitch returns the fixed pitch multiplier for button sounds
func soundPitch(st SoundType) float64 {
	switch st {
	case SoundButtonPress:
		return parameter.ButtonPressPitch
	case SoundButtonRelease:
		return parameter.ButtonReleasePitch
	default:
		return 1.0
	}
}
