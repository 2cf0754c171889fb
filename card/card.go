// @focus: #game { card } #vfx { flip, sparkle }
package card

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/spellmatch/constants"
	"github.com/lixenwraith/spellmatch/effects"
)

// Params describes a card at setup
type Params struct {
	Index    int
	Category Category

	// Slot is the unscaled cell the card settles into
	Slot Rect

	// SetupTime and Stagger place the entrance deadline at SetupTime + Index*Stagger
	SetupTime time.Time
	Stagger   time.Duration

	// Policy overrides the sparkle spawn policy, nil selects SparkleProbability
	Policy SpawnPolicy
}

// Entity is one tile of the board with its own animation state and sparkle pool
// Entities are owned by the session and mutated only from the update loop
type Entity struct {
	index    int
	category Category
	state    State

	// Top-left of the unscaled card, eased toward the slot
	x, y             float64
	targetX, targetY float64
	width, height    float64

	scale       float64
	targetScale float64
	hovered     bool

	flipProgress float64

	revealedAt       time.Time
	entranceDeadline time.Time

	effects *effects.Pool
	policy  SpawnPolicy
	rng     *rand.Rand
}

// New creates a hidden card below its slot, ready for its entrance cascade
func New(p Params, rng *rand.Rand) *Entity {
	policy := p.Policy
	if policy == nil {
		policy = SparkleProbability
	}
	return &Entity{
		index:            p.Index,
		category:         p.Category,
		state:            Hidden,
		x:                p.Slot.X,
		y:                p.Slot.Y + constants.EntranceDrop,
		targetX:          p.Slot.X,
		targetY:          p.Slot.Y,
		width:            p.Slot.Width,
		height:           p.Slot.Height,
		scale:            constants.EntranceScale,
		targetScale:      1.0,
		entranceDeadline: p.SetupTime.Add(time.Duration(p.Index) * p.Stagger),
		effects:          effects.NewSparklePool(rng),
		policy:           policy,
		rng:              rng,
	}
}

// Index returns the grid position
func (c *Entity) Index() int { return c.index }

// Category returns the matching key
func (c *Entity) Category() Category { return c.category }

// State returns the reveal state
func (c *Entity) State() State { return c.state }

// FlipProgress returns the reveal animation progress in [0,1]
func (c *Entity) FlipProgress() float64 { return c.flipProgress }

// Scale returns the current uniform scale
func (c *Entity) Scale() float64 { return c.scale }

// TargetScale returns the scale the card is easing toward
func (c *Entity) TargetScale() float64 { return c.targetScale }

// Position returns the current top-left of the unscaled card
func (c *Entity) Position() (float64, float64) { return c.x, c.y }

// Target returns the slot the card is easing toward
func (c *Entity) Target() (float64, float64) { return c.targetX, c.targetY }

// RevealedAt returns when the card entered Revealing, zero when not revealed
func (c *Entity) RevealedAt() time.Time { return c.revealedAt }

// EntranceDeadline returns the time before which the card is invisible and inert
func (c *Entity) EntranceDeadline() time.Time { return c.entranceDeadline }

// Effects returns the card's sparkle pool
func (c *Entity) Effects() *effects.Pool { return c.effects }

// Visible reports whether the entrance deadline has passed
func (c *Entity) Visible(now time.Time) bool {
	return !now.Before(c.entranceDeadline)
}

// IsInteractable reports whether a click may reveal the card
func (c *Entity) IsInteractable(now time.Time) bool {
	return c.Visible(now) && c.state == Hidden
}

// Reveal starts flipping a hidden card face up
func (c *Entity) Reveal(now time.Time) bool {
	if c.state != Hidden {
		return false
	}
	c.state = Revealing
	c.revealedAt = now
	return true
}

// Settle completes a reveal, Revealing becomes Revealed
func (c *Entity) Settle() bool {
	if c.state != Revealing {
		return false
	}
	c.state = Revealed
	return true
}

// MarkMatched locks a revealed card as matched for the rest of the session
func (c *Entity) MarkMatched() bool {
	if c.state != Revealed {
		return false
	}
	c.state = Matched
	c.hovered = false
	return true
}

// ResetToHidden turns a revealed, unmatched card back over
func (c *Entity) ResetToHidden() bool {
	if c.state != Revealed {
		return false
	}
	c.state = Hidden
	c.revealedAt = time.Time{}
	return true
}

// SetHovered records pointer hover, ignored for matched cards
func (c *Entity) SetHovered(hovered bool) {
	c.hovered = hovered && c.state != Matched
}

// Hovered reports whether the pointer is over the card
func (c *Entity) Hovered() bool { return c.hovered }

// SetSlot moves the card's target to a new slot, keeping state and animation
func (c *Entity) SetSlot(slot Rect) {
	c.targetX, c.targetY = slot.X, slot.Y
	c.width, c.height = slot.Width, slot.Height
}

// Bounds returns the current on-screen rectangle, scaled around the card center
func (c *Entity) Bounds() Rect {
	w := c.width * c.scale
	h := c.height * c.scale
	return Rect{
		X:      c.x + (c.width-w)/2,
		Y:      c.y + (c.height-h)/2,
		Width:  w,
		Height: h,
	}
}

// Contains reports whether the point hits the card
func (c *Entity) Contains(x, y float64) bool {
	return c.Bounds().Contains(x, y)
}

// Center returns the center of the current bounds
func (c *Entity) Center() (float64, float64) {
	return c.Bounds().Center()
}

// Tick advances flip, easing, hover and sparkles by one frame
func (c *Entity) Tick(now time.Time) {
	if !c.Visible(now) {
		c.effects.Tick()
		return
	}

	if c.state.FaceUp() {
		c.flipProgress = clamp01(c.flipProgress + constants.FlipStep)
		if c.flipProgress >= 1 {
			c.Settle()
		}
	} else {
		c.flipProgress = clamp01(c.flipProgress - constants.FlipStep)
	}

	if c.hovered && c.state != Matched {
		c.targetScale = constants.HoverScale
	} else {
		c.targetScale = 1.0
	}

	c.x = ease(c.x, c.targetX, constants.PositionEase, constants.PositionEpsilon)
	c.y = ease(c.y, c.targetY, constants.PositionEase, constants.PositionEpsilon)
	c.scale = ease(c.scale, c.targetScale, constants.ScaleEase, constants.ScaleEpsilon)

	if Roll(c.rng, c.policy(c.state, now)) {
		r := c.Bounds()
		cx, cy := r.Center()
		c.effects.Spawn(
			cx+(c.rng.Float64()*2-1)*r.Width/3,
			cy+(c.rng.Float64()*2-1)*r.Height/3,
			effects.RGB{},
		)
	}

	c.effects.Tick()
}

// View is the render-facing snapshot of a card
type View struct {
	Index        int
	Category     Category
	State        State
	Bounds       Rect
	Scale        float64
	FlipProgress float64
	Visible      bool
	Hovered      bool
	Sparkles     []effects.View
}

// Snapshot fills v with the card's current state, reusing v.Sparkles
func (c *Entity) Snapshot(now time.Time, v *View) {
	v.Index = c.index
	v.Category = c.category
	v.State = c.state
	v.Bounds = c.Bounds()
	v.Scale = c.scale
	v.FlipProgress = c.flipProgress
	v.Visible = c.Visible(now)
	v.Hovered = c.hovered
	v.Sparkles = c.effects.Views(v.Sparkles[:0])
}
