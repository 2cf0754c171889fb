package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/lixenwraith/spellmatch/constants"
)

// EnvPrefix is prepended to every environment override, e.g. SPELLMATCH_BOARD_ROWS
const EnvPrefix = "SPELLMATCH"

// Load reads defaults, then the optional file at path, then environment overrides
// Environment variables take precedence over the file
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if (cfg.Board.Rows*cfg.Board.Cols)%2 != 0 {
		return nil, fmt.Errorf("config validation failed: board %dx%d has an odd cell count",
			cfg.Board.Rows, cfg.Board.Cols)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board.rows", constants.DefaultRows)
	v.SetDefault("board.cols", constants.DefaultCols)

	v.SetDefault("timing.dwell_ms", constants.RevealDwell.Milliseconds())
	v.SetDefault("timing.entrance_stagger_ms", constants.EntranceStagger.Milliseconds())
	v.SetDefault("timing.frame_hz", constants.FrameRate)

	v.SetDefault("scoring.match_bonus", constants.MatchBonus)

	v.SetDefault("effects.ambient_target", constants.AmbientTarget)
	v.SetDefault("effects.sparkle_chance", constants.MatchedSparkleChance)
	v.SetDefault("effects.match_burst", constants.MatchBurstCount)
	v.SetDefault("effects.victory_burst", constants.VictoryBurstCount)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.master_volume", constants.AudioMasterVolume)
	v.SetDefault("audio.sample_rate", constants.AudioSampleRate)

	v.SetDefault("display.color", "auto")
	v.SetDefault("display.mouse", true)
}
