package config

// Config holds all game configuration, grouped by concern
type Config struct {
	Board   BoardConfig   `mapstructure:"board" validate:"required"`
	Timing  TimingConfig  `mapstructure:"timing" validate:"required"`
	Scoring ScoringConfig `mapstructure:"scoring" validate:"required"`
	Effects EffectsConfig `mapstructure:"effects"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Display DisplayConfig `mapstructure:"display" validate:"required"`
}

// BoardConfig sets the grid size; the cell count must be even
type BoardConfig struct {
	Rows int `mapstructure:"rows" validate:"required,gt=0,lte=8"`
	Cols int `mapstructure:"cols" validate:"required,gt=0,lte=8"`
}

// TimingConfig holds gameplay and loop timings
type TimingConfig struct {
	DwellMS           int `mapstructure:"dwell_ms" validate:"required,gt=0,lte=10000"`
	EntranceStaggerMS int `mapstructure:"entrance_stagger_ms" validate:"gte=0,lte=1000"`
	FrameHz           int `mapstructure:"frame_hz" validate:"required,gte=10,lte=240"`
}

// ScoringConfig holds the per-match bonus
type ScoringConfig struct {
	MatchBonus int `mapstructure:"match_bonus" validate:"required,gt=0"`
}

// EffectsConfig sizes the decorative effect fields
// An ambient target of zero turns the background field off
type EffectsConfig struct {
	AmbientTarget int     `mapstructure:"ambient_target" validate:"gte=0,lte=1000"`
	SparkleChance float64 `mapstructure:"sparkle_chance" validate:"gte=0,lte=1"`
	MatchBurst    int     `mapstructure:"match_burst" validate:"gte=0,lte=500"`
	VictoryBurst  int     `mapstructure:"victory_burst" validate:"gte=0,lte=2000"`
}

// AudioConfig controls sound synthesis
type AudioConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	MasterVolume float64 `mapstructure:"master_volume" validate:"gte=0,lte=1"`
	SampleRate   int     `mapstructure:"sample_rate" validate:"oneof=22050 44100 48000"`
}

// DisplayConfig controls terminal output
type DisplayConfig struct {
	Color string `mapstructure:"color" validate:"required,oneof=auto truecolor 256"`
	Mouse bool   `mapstructure:"mouse"`
}
