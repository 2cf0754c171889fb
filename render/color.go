package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/spellmatch/effects"
)

// Scene colors
var (
	RgbBackground  = effects.RGB{R: 12, G: 8, B: 32}
	RgbCardBack    = effects.RGB{R: 60, G: 30, B: 110}
	RgbCardPattern = effects.RGB{R: 95, G: 60, B: 160}
	RgbCardBorder  = effects.RGB{R: 180, G: 150, B: 230}
	RgbHover       = effects.RGB{R: 255, G: 240, B: 200}
	RgbText        = effects.RGB{R: 235, G: 225, B: 255}
	RgbTextDim     = effects.RGB{R: 150, G: 140, B: 190}
	RgbStar        = effects.RGB{R: 255, G: 255, B: 230}
	RgbMoon        = effects.RGB{R: 250, G: 240, B: 190}
	RgbOverlay     = effects.RGB{R: 30, G: 15, B: 60}
	RgbGold        = effects.RGB{R: 255, G: 215, B: 0}
)

// toColorful converts an effect color to the colorful space
func toColorful(c effects.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// fromColorful converts back, clamping out-of-gamut results
func fromColorful(c colorful.Color) effects.RGB {
	r, g, b := c.Clamped().RGB255()
	return effects.RGB{R: r, G: g, B: b}
}

// Blend mixes a toward b by t in [0,1] in RGB space
func Blend(a, b effects.RGB, t float64) effects.RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return fromColorful(toColorful(a).BlendRgb(toColorful(b), t))
}

// Fade dims c toward the background by the remaining alpha
func Fade(c effects.RGB, alpha float64) effects.RGB {
	return Blend(RgbBackground, c, alpha)
}

// Brighten lifts c toward white by t, keeping hue in Lab space
func Brighten(c effects.RGB, t float64) effects.RGB {
	if t <= 0 {
		return c
	}
	if t > 1 {
		t = 1
	}
	return fromColorful(toColorful(c).BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t))
}

// Tcell converts an effect color to a terminal color
func Tcell(c effects.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style returns a style with fg over bg
func Style(fg, bg effects.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(Tcell(fg)).Background(Tcell(bg))
}
