package card

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/spellmatch/constants"
)

// SpawnPolicy maps a card state to the per-tick probability of spawning a sparkle
type SpawnPolicy func(state State, now time.Time) float64

// SparkleProbability is the default policy: matched cards sparkle at a fixed rate, others never
func SparkleProbability(state State, _ time.Time) float64 {
	if state == Matched {
		return constants.MatchedSparkleChance
	}
	return 0
}

// Roll draws once from rng and reports whether an event of probability p fires
func Roll(rng *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}

// MatchedRate returns a policy that sparkles matched cards with probability p per tick
func MatchedRate(p float64) SpawnPolicy {
	return func(state State, _ time.Time) float64 {
		if state == Matched {
			return p
		}
		return 0
	}
}
