package render

import (
	"github.com/lixenwraith/spellmatch/card"
	"github.com/lixenwraith/spellmatch/effects"
)

// Swatch is the visual identity of one category
type Swatch struct {
	Name  string
	Glyph rune
	Color effects.RGB
}

// Palette maps categories to swatches by index
type Palette []Swatch

// DefaultPalette holds the six spell categories
var DefaultPalette = Palette{
	{Name: "Rose Spell", Glyph: '❀', Color: effects.RGB{R: 255, G: 20, B: 147}},
	{Name: "Purple Magic", Glyph: '✧', Color: effects.RGB{R: 138, G: 43, B: 226}},
	{Name: "Sky Potion", Glyph: '☂', Color: effects.RGB{R: 0, G: 191, B: 255}},
	{Name: "Forest Brew", Glyph: '♣', Color: effects.RGB{R: 50, G: 205, B: 50}},
	{Name: "Pumpkin Glow", Glyph: '✹', Color: effects.RGB{R: 255, G: 165, B: 0}},
	{Name: "Golden Charm", Glyph: '★', Color: effects.RGB{R: 255, G: 215, B: 0}},
}

// Categories returns one category per swatch
func (p Palette) Categories() []card.Category {
	out := make([]card.Category, len(p))
	for i := range p {
		out[i] = card.Category(i)
	}
	return out
}

// Swatch returns the swatch of cat, or a neutral swatch when out of range
func (p Palette) Swatch(cat card.Category) Swatch {
	if int(cat) < 0 || int(cat) >= len(p) {
		return Swatch{Name: "?", Glyph: '?', Color: effects.RGB{R: 200, G: 200, B: 200}}
	}
	return p[cat]
}

// Color resolves the effect color of cat; usable as session.ColorFunc
func (p Palette) Color(cat card.Category) effects.RGB {
	return p.Swatch(cat).Color
}
