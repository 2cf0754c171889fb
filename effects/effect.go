// @focus: #vfx { effects } #lifecycle { pool }
package effects

// RGB is a 24-bit color carried by an effect for the renderer
type RGB struct {
	R, G, B uint8
}

// IsZero reports whether no color was given
func (c RGB) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Kind selects the motion model of a pool
type Kind uint8

const (
	// KindSparkle drifts without gravity and twinkles
	KindSparkle Kind = iota
	// KindParticle is launched with a velocity, falls under gravity and spins
	KindParticle
)

// Effect is a single short-lived visual element
type Effect struct {
	X, Y     float64 // Position in cells
	VX, VY   float64 // Velocity in cells per tick
	Life     float64 // Remaining life in ticks
	MaxLife  float64
	Size     float64
	Rotation float64 // Degrees, particles only
	Spin     float64 // Degrees per tick
	Twinkle  float64 // Twinkle frequency, sparkles only
	Color    RGB
}

// Progress returns remaining life as a fraction in [0,1]
func (e *Effect) Progress() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	p := e.Life / e.MaxLife
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// View is the render-facing copy of an effect
type View struct {
	Kind     Kind
	X, Y     float64
	Fraction float64 // Remaining life / max life
	Size     float64
	Rotation float64
	Twinkle  float64
	Color    RGB
}
