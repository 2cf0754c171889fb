package audio

import "github.com/lixenwraith/spellmatch/constants"

// AudioConfig holds audio system configuration
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the standard mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.AudioMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundFlip:     0.4,
			SoundMatch:    0.8,
			SoundMismatch: 0.5,
			SoundVictory:  0.9,
		},
	}
}

// volume returns the effective gain of a sound
func (c *AudioConfig) volume(st SoundType) float64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[st] * c.MasterVolume
}
