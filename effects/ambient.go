package effects

import (
	"math/rand"

	"github.com/lixenwraith/spellmatch/constants"
)

// Area is the rectangle in which ambient sparkles appear
type Area struct {
	X, Y          float64
	Width, Height float64
}

// Ambient keeps a background sparkle field near a target population
// Spawns are skipped once the pool reaches the target
type Ambient struct {
	pool   *Pool
	rng    *rand.Rand
	target int
	batch  int
}

// NewAmbient creates an ambient field with the given soft maximum
// A target of zero disables the field
func NewAmbient(rng *rand.Rand, target int) *Ambient {
	if target < 0 {
		target = 0
	}
	return &Ambient{
		pool:   NewSparklePool(rng),
		rng:    rng,
		target: target,
		batch:  constants.AmbientBatch,
	}
}

// Pool exposes the underlying sparkle pool
func (a *Ambient) Pool() *Pool {
	return a.pool
}

// Target returns the soft maximum
func (a *Ambient) Target() int {
	return a.target
}

// Seed fills the field to its target at once
func (a *Ambient) Seed(area Area) {
	for a.pool.Len() < a.target {
		a.spawnIn(area)
	}
}

// Replenish adds one batch when below target, returning the number spawned
func (a *Ambient) Replenish(area Area) int {
	if a.pool.Len() >= a.target {
		return 0
	}
	for i := 0; i < a.batch; i++ {
		a.spawnIn(area)
	}
	return a.batch
}

// Tick advances the field, then tops it up
func (a *Ambient) Tick(area Area) {
	a.pool.Tick()
	a.Replenish(area)
}

func (a *Ambient) spawnIn(area Area) {
	x := area.X + a.rng.Float64()*area.Width
	y := area.Y + a.rng.Float64()*area.Height
	a.pool.Spawn(x, y, RGB{})
}
