// @focus: #constants { vfx }
package constants

// Distances are in terminal cells, lives in ticks

// Sparkle Effects
const (
	SparkleLifeMin    = 40.0
	SparkleLifeMax    = 80.0
	SparkleSizeMin    = 1.0
	SparkleSizeMax    = 4.0
	SparkleDriftX     = 0.06
	SparkleDriftYMin  = -0.075
	SparkleDriftYMax  = -0.025
	SparkleTwinkleMin = 0.08
	SparkleTwinkleMax = 0.2
)

// Celebration Particles
const (
	ParticleLife      = 60.0
	ParticleVelX      = 0.375
	ParticleVelYMin   = -0.25
	ParticleVelYMax   = -0.0625
	ParticleGravity   = 0.005
	ParticleSizeMin   = 3.0
	ParticleSizeMax   = 8.0
	ParticleSpinRange = 8.0
)

// LifeDecay is the life removed from every effect per tick
const LifeDecay = 1.5

// Burst Sizes
const (
	// MatchBurstCount is the number of particles spawned at each matched card
	MatchBurstCount = 30

	// MatchBurstSpreadX is the horizontal scatter of a match burst
	MatchBurstSpreadX = 6.0

	// MatchBurstSpreadY is the vertical scatter of a match burst
	MatchBurstSpreadY = 3.0

	// VictoryBurstCount is the number of particles in the win explosion
	VictoryBurstCount = 200

	// VictoryBurstSpreadX is the horizontal scatter of the win explosion
	VictoryBurstSpreadX = 50.0

	// VictoryBurstSpreadY is the vertical scatter of the win explosion
	VictoryBurstSpreadY = 25.0
)

// Ambient Field
const (
	// AmbientTarget is the soft maximum of background sparkles
	AmbientTarget = 100

	// AmbientBatch is the number of sparkles added per replenish while below target
	AmbientBatch = 3
)
