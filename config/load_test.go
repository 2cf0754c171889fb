package config

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/spellmatch/card"
	"github.com/lixenwraith/spellmatch/constants"
	"github.com/lixenwraith/spellmatch/effects"
	"github.com/lixenwraith/spellmatch/session"
)

// writeConfig writes content to a temporary file with the given extension
func writeConfig(t *testing.T, ext, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spellmatch"+ext)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write config file")
	return path
}

// TestLoadDefaults verifies Load with no file and no environment yields the built-in game
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err, "Load() should not fail with defaults")
	require.NotNil(t, cfg)
	assert.Equal(t, constants.DefaultRows, cfg.Board.Rows)
	assert.Equal(t, constants.DefaultCols, cfg.Board.Cols)
	assert.Equal(t, int(constants.RevealDwell.Milliseconds()), cfg.Timing.DwellMS)
	assert.Equal(t, constants.FrameRate, cfg.Timing.FrameHz)
	assert.Equal(t, constants.MatchBonus, cfg.Scoring.MatchBonus)
	assert.Equal(t, constants.AmbientTarget, cfg.Effects.AmbientTarget)
	assert.InDelta(t, constants.MatchedSparkleChance, cfg.Effects.SparkleChance, 1e-9)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, "auto", cfg.Display.Color)
	assert.True(t, cfg.Display.Mouse)
}

// TestLoadFromFile verifies file values override defaults
func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, ".toml", `
[board]
rows = 2
cols = 4

[timing]
dwell_ms = 900

[audio]
enabled = false

[display]
color = "256"
`)

	cfg, err := Load(path)

	require.NoError(t, err, "Load() should accept a valid TOML file")
	assert.Equal(t, 2, cfg.Board.Rows)
	assert.Equal(t, 4, cfg.Board.Cols)
	assert.Equal(t, 900, cfg.Timing.DwellMS)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, "256", cfg.Display.Color)
	assert.Equal(t, constants.MatchBonus, cfg.Scoring.MatchBonus, "Unset keys keep their defaults")
}

// TestLoadFromEnv verifies environment variables take precedence over the file
func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, ".yaml", "board:\n  rows: 2\n  cols: 2\n")
	t.Setenv("SPELLMATCH_BOARD_ROWS", "4")
	t.Setenv("SPELLMATCH_SCORING_MATCH_BONUS", "100")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Board.Rows, "Environment should override the file")
	assert.Equal(t, 2, cfg.Board.Cols)
	assert.Equal(t, 100, cfg.Scoring.MatchBonus)
}

// TestLoadAmbientDisabled verifies a zero ambient target is accepted and yields an empty field
func TestLoadAmbientDisabled(t *testing.T) {
	t.Setenv("SPELLMATCH_EFFECTS_AMBIENT_TARGET", "0")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Effects.AmbientTarget)

	amb := effects.NewAmbient(rand.New(rand.NewSource(1)), cfg.Effects.AmbientTarget)
	amb.Seed(effects.Area{Width: 80, Height: 24})
	assert.Zero(t, amb.Pool().Len(), "Ambient field should stay empty")
}

// TestLoadValidationErrors verifies invalid values are rejected
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name:           "Zero rows",
			envVars:        map[string]string{"SPELLMATCH_BOARD_ROWS": "0"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Odd board",
			envVars:        map[string]string{"SPELLMATCH_BOARD_ROWS": "3", "SPELLMATCH_BOARD_COLS": "3"},
			errorSubstring: "odd cell count",
		},
		{
			name:           "Sparkle chance above one",
			envVars:        map[string]string{"SPELLMATCH_EFFECTS_SPARKLE_CHANCE": "1.5"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Unknown color mode",
			envVars:        map[string]string{"SPELLMATCH_DISPLAY_COLOR": "sixteen"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Unsupported sample rate",
			envVars:        map[string]string{"SPELLMATCH_AUDIO_SAMPLE_RATE": "8000"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Frame rate too low",
			envVars:        map[string]string{"SPELLMATCH_TIMING_FRAME_HZ": "1"},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load("")

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.errorSubstring)
		})
	}
}

// TestLoadMissingFile verifies an explicit path must exist
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

// TestSessionConfig verifies the gameplay rules derived from the loaded values
func TestSessionConfig(t *testing.T) {
	t.Setenv("SPELLMATCH_TIMING_DWELL_MS", "1200")
	t.Setenv("SPELLMATCH_EFFECTS_SPARKLE_CHANCE", "0.5")
	cfg, err := Load("")
	require.NoError(t, err)

	sc, err := cfg.SessionConfig(session.Categories(6), nil)

	require.NoError(t, err)
	assert.Equal(t, 1200*time.Millisecond, sc.Dwell)
	assert.Equal(t, constants.EntranceStagger, sc.EntranceStagger)
	assert.Equal(t, constants.MatchBonus, sc.MatchBonus)
	require.NotNil(t, sc.SparklePolicy)
	assert.Equal(t, 0.5, sc.SparklePolicy(card.Matched, time.Time{}))
	assert.Equal(t, 0.0, sc.SparklePolicy(card.Hidden, time.Time{}))
	assert.Equal(t, time.Second/time.Duration(constants.FrameRate), cfg.FrameInterval())
}

// TestSessionConfigTooFewCategories verifies a board larger than the category pool is rejected
func TestSessionConfigTooFewCategories(t *testing.T) {
	t.Setenv("SPELLMATCH_BOARD_ROWS", "4")
	t.Setenv("SPELLMATCH_BOARD_COLS", "4")
	cfg, err := Load("")
	require.NoError(t, err)

	_, err = cfg.SessionConfig(session.Categories(6), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrNotEnoughCategories)
}
