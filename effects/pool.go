package effects

import (
	"math/rand"

	"github.com/lixenwraith/spellmatch/constants"
)

// SparkleColors is the palette used by sparkles spawned without a color hint
var SparkleColors = []RGB{
	{255, 255, 255},
	{255, 215, 0},
	{255, 192, 203},
	{173, 216, 230},
	{144, 238, 144},
	{221, 160, 221},
}

// Pool owns a dynamically sized set of effects of one kind
// The pool never caps its size; callers bound their spawn rate
type Pool struct {
	kind    Kind
	rng     *rand.Rand
	effects []Effect
}

// NewPool creates an empty pool of the given kind drawing randomness from rng
func NewPool(kind Kind, rng *rand.Rand) *Pool {
	return &Pool{
		kind: kind,
		rng:  rng,
	}
}

// NewSparklePool creates a pool of drifting sparkles
func NewSparklePool(rng *rand.Rand) *Pool {
	return NewPool(KindSparkle, rng)
}

// NewParticlePool creates a pool of gravity-bound celebration particles
func NewParticlePool(rng *rand.Rand) *Pool {
	return NewPool(KindParticle, rng)
}

// Kind returns the motion model of the pool
func (p *Pool) Kind() Kind {
	return p.kind
}

// Len returns the number of live effects
func (p *Pool) Len() int {
	return len(p.effects)
}

// Clear removes all effects, keeping capacity
func (p *Pool) Clear() {
	p.effects = p.effects[:0]
}

// Spawn appends one effect at (x, y)
// A zero hint lets sparkles pick a palette color; particles use the hint as given
func (p *Pool) Spawn(x, y float64, hint RGB) {
	var e Effect
	e.X, e.Y = x, y

	switch p.kind {
	case KindSparkle:
		e.Life = p.between(constants.SparkleLifeMin, constants.SparkleLifeMax)
		e.Size = p.between(constants.SparkleSizeMin, constants.SparkleSizeMax)
		e.VX = p.between(-constants.SparkleDriftX, constants.SparkleDriftX)
		e.VY = p.between(constants.SparkleDriftYMin, constants.SparkleDriftYMax)
		e.Twinkle = p.between(constants.SparkleTwinkleMin, constants.SparkleTwinkleMax)
		if hint.IsZero() {
			hint = SparkleColors[p.rng.Intn(len(SparkleColors))]
		}
	case KindParticle:
		e.Life = constants.ParticleLife
		e.Size = p.between(constants.ParticleSizeMin, constants.ParticleSizeMax)
		e.VX = p.between(-constants.ParticleVelX, constants.ParticleVelX)
		e.VY = p.between(constants.ParticleVelYMin, constants.ParticleVelYMax)
		e.Spin = p.between(-constants.ParticleSpinRange, constants.ParticleSpinRange)
	}

	e.MaxLife = e.Life
	e.Color = hint
	p.effects = append(p.effects, e)
}

// Burst spawns n effects scattered uniformly within ±spreadX, ±spreadY of (x, y)
func (p *Pool) Burst(x, y, spreadX, spreadY float64, n int, hint RGB) {
	for i := 0; i < n; i++ {
		p.Spawn(
			x+p.between(-spreadX, spreadX),
			y+p.between(-spreadY, spreadY),
			hint,
		)
	}
}

// Tick advances every effect one step and prunes the expired ones in place
func (p *Pool) Tick() {
	live := p.effects[:0]
	for i := range p.effects {
		e := p.effects[i]
		e.X += e.VX
		e.Y += e.VY
		if p.kind == KindParticle {
			e.VY += constants.ParticleGravity
			e.Rotation += e.Spin
		}
		e.Life -= constants.LifeDecay
		if e.Life > 0 {
			live = append(live, e)
		}
	}
	p.effects = live
}

// Each calls fn for every live effect in spawn order
func (p *Pool) Each(fn func(e *Effect)) {
	for i := range p.effects {
		fn(&p.effects[i])
	}
}

// Views appends a render view of each live effect to dst and returns it
func (p *Pool) Views(dst []View) []View {
	for i := range p.effects {
		e := &p.effects[i]
		dst = append(dst, View{
			Kind:     p.kind,
			X:        e.X,
			Y:        e.Y,
			Fraction: e.Progress(),
			Size:     e.Size,
			Rotation: e.Rotation,
			Twinkle:  e.Twinkle,
			Color:    e.Color,
		})
	}
	return dst
}

func (p *Pool) between(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}
