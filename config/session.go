package config

import (
	"time"

	"github.com/lixenwraith/spellmatch/card"
	"github.com/lixenwraith/spellmatch/session"
)

// SessionConfig derives the gameplay rules from the loaded configuration
// categories is the deck pool, colors resolves celebration colors
func (c *Config) SessionConfig(categories []card.Category, colors session.ColorFunc) (session.Config, error) {
	sc := session.Config{
		Rows:            c.Board.Rows,
		Cols:            c.Board.Cols,
		Categories:      categories,
		Dwell:           time.Duration(c.Timing.DwellMS) * time.Millisecond,
		MatchBonus:      c.Scoring.MatchBonus,
		EntranceStagger: time.Duration(c.Timing.EntranceStaggerMS) * time.Millisecond,
		MatchBurst:      c.Effects.MatchBurst,
		VictoryBurst:    c.Effects.VictoryBurst,
		Colors:          colors,
		SparklePolicy:   card.MatchedRate(c.Effects.SparkleChance),
	}
	if err := sc.Validate(); err != nil {
		return session.Config{}, err
	}
	return sc, nil
}

// FrameInterval returns the update loop period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Timing.FrameHz)
}
