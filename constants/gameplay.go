// @focus: #constants { gameplay }
package constants

import "time"

// Pair Resolution
const (
	// RevealDwell is how long each card of a pending pair stays face up
	// before the pair may be resolved
	RevealDwell = 1800 * time.Millisecond

	// MatchBonus is added to the score for every matched pair
	MatchBonus = 250
)

// Entrance Cascade
const (
	// EntranceStagger is the per-index delay before a card appears
	EntranceStagger = 60 * time.Millisecond

	// EntranceDrop is how many rows below its slot a card starts
	EntranceDrop = 9.0

	// EntranceScale is the initial scale of an entering card
	EntranceScale = 0.5
)

// Card Animation
const (
	// FlipStep is the linear flip progress change per tick
	FlipStep = 0.18

	// PositionEase is the fraction of remaining distance covered per tick
	PositionEase = 0.18

	// ScaleEase is the fraction of remaining scale delta covered per tick
	ScaleEase = 0.18

	// HoverScale is the target scale of a hovered, unmatched card
	HoverScale = 1.08

	// PositionEpsilon snaps position to target below this distance
	PositionEpsilon = 0.05

	// ScaleEpsilon snaps scale to target below this delta
	ScaleEpsilon = 0.002

	// MatchedSparkleChance is the per-tick sparkle spawn probability of a matched card
	MatchedSparkleChance = 0.15
)
