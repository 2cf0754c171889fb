package constants

import "time"

// Audio device
const (
	AudioSampleRate     = 44100
	AudioMasterVolume   = 0.6
	AudioBufferDuration = 100 * time.Millisecond
)

// Flip tick
const (
	FlipSoundFreq     = 1200.0
	FlipSoundDuration = 40 * time.Millisecond
	FlipSoundAttack   = 2 * time.Millisecond
	FlipSoundRelease  = 30 * time.Millisecond
)

// Mismatch buzz
const (
	MismatchSoundFreq     = 110.0
	MismatchSoundDuration = 160 * time.Millisecond
	MismatchSoundAttack   = 5 * time.Millisecond
	MismatchSoundRelease  = 60 * time.Millisecond
)

// Match bell
const (
	MatchSoundFundamental        = 880.0
	MatchSoundOvertone           = 1760.0
	MatchSoundDuration           = 600 * time.Millisecond
	MatchSoundAttack             = 5 * time.Millisecond
	MatchSoundFundamentalRelease = 550 * time.Millisecond
	MatchSoundOvertoneRelease    = 200 * time.Millisecond
)

// Victory arpeggio
const (
	VictoryNoteDuration = 120 * time.Millisecond
	VictoryLastDuration = 480 * time.Millisecond
	VictoryNoteAttack   = 5 * time.Millisecond
	VictoryNoteRelease  = 60 * time.Millisecond
	VictoryLastRelease  = 400 * time.Millisecond
)

// VictoryNotes is C5 E5 G5 C6
var VictoryNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}
