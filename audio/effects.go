package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/spellmatch/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if rem := e.totalSamples - e.position; len(samples) > rem {
		samples = samples[:rem]
	}

	n, ok = e.streamer.Stream(samples)

	releaseStart := e.attackSamples + e.sustainSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain, 0 is silent
// math.Log2(0) is -Inf, so zero volume uses Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sineTone returns a sine of fixed length, falling back to the oscillator when the generator rejects freq
func sineTone(rate beep.SampleRate, freq float64, duration time.Duration) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, duration, WaveSine, rate)
	}
	return beep.Take(rate.N(duration), tone)
}

// Sound effect generators

// CreateFlipSound generates a short click for a card turning over
func CreateFlipSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.FlipSoundFreq, constants.FlipSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.FlipSoundDuration, constants.FlipSoundAttack, constants.FlipSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundFlip))
}

// CreateMismatchSound generates a low saw buzz for a failed pair
func CreateMismatchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.MismatchSoundFreq, constants.MismatchSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.MismatchSoundDuration, constants.MismatchSoundAttack, constants.MismatchSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundMismatch))
}

// CreateMatchSound generates a bell with one octave overtone
func CreateMatchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := sineTone(rate, constants.MatchSoundFundamental, constants.MatchSoundDuration)
	fundShaped := NewEnvelope(fund, constants.MatchSoundDuration, constants.MatchSoundAttack, constants.MatchSoundFundamentalRelease, rate)

	over := sineTone(rate, constants.MatchSoundOvertone, constants.MatchSoundDuration)
	overShaped := NewEnvelope(over, constants.MatchSoundDuration, constants.MatchSoundAttack, constants.MatchSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.volume(SoundMatch))
}

// CreateVictorySound generates a rising major arpeggio, the last note held
func CreateVictorySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(constants.VictoryNotes))
	last := len(constants.VictoryNotes) - 1
	for i, freq := range constants.VictoryNotes {
		dur, rel := constants.VictoryNoteDuration, constants.VictoryNoteRelease
		if i == last {
			dur, rel = constants.VictoryLastDuration, constants.VictoryLastRelease
		}
		notes = append(notes, NewEnvelope(sineTone(rate, freq, dur), dur, constants.VictoryNoteAttack, rel, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.volume(SoundVictory))
}

// GetSoundEffect returns the streamer for the given sound type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundFlip:
		return CreateFlipSound(cfg)
	case SoundMatch:
		return CreateMatchSound(cfg)
	case SoundMismatch:
		return CreateMismatchSound(cfg)
	case SoundVictory:
		return CreateVictorySound(cfg)
	default:
		return nil
	}
}
