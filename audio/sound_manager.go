// @focus: #sys { audio } #game { events }
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/spellmatch/card"
	"github.com/lixenwraith/spellmatch/constants"
)

// SoundManager plays game sounds through a single speaker mixer
// It satisfies session.Listener, so gameplay events map directly to sounds
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	muted  atomic.Bool
	played atomic.Uint64

	// Overridable for tests
	output func(beep.Streamer)
}

// NewSoundManager creates a sound manager, nil cfg selects the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	sm.output = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	return sm
}

// Initialize opens the speaker and starts the mixer
// A disabled config skips the device entirely
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play queues a sound, returns false when it was dropped
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	ready := sm.initialized
	sm.mu.Unlock()

	if !ready || sm.muted.Load() {
		return false
	}

	s := GetSoundEffect(st, sm.config)
	if s == nil {
		return false
	}
	sm.output(s)
	sm.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if sound is now audible
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	return !muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns the number of sounds queued since creation
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}

// Session events

func (sm *SoundManager) OnFlip(*card.Entity) { sm.Play(SoundFlip) }

func (sm *SoundManager) OnMatch(*card.Entity, *card.Entity) { sm.Play(SoundMatch) }

func (sm *SoundManager) OnMismatch(*card.Entity, *card.Entity) { sm.Play(SoundMismatch) }

func (sm *SoundManager) OnWin(int, int) { sm.Play(SoundVictory) }

func (sm *SoundManager) OnRestart() {}
