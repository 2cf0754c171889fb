// @focus: #render { board, hud, overlay } #vfx { glow }
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/spellmatch/card"
	"github.com/lixenwraith/spellmatch/constants"
	"github.com/lixenwraith/spellmatch/effects"
	"github.com/lixenwraith/spellmatch/session"
)

// Frame is everything drawn in one refresh
type Frame struct {
	Session *session.Snapshot
	Ambient []effects.View
	Now     time.Time
	Paused  bool
	Muted   bool
	Debug   []string // nil hides the debug overlay
}

// Renderer draws frames onto a tcell screen
type Renderer struct {
	screen  tcell.Screen
	palette Palette
	scenery *Scenery
	width   int
	height  int
}

// NewRenderer creates a renderer sized to the current screen
func NewRenderer(screen tcell.Screen, palette Palette, scenery *Scenery) *Renderer {
	w, h := screen.Size()
	r := &Renderer{screen: screen, palette: palette, scenery: scenery}
	r.Resize(w, h)
	return r
}

// Resize updates the drawable area and regenerates the sky
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	if r.scenery != nil {
		r.scenery.Resize(width, height)
	}
}

// Draw renders a full frame and shows it
func (r *Renderer) Draw(f *Frame) {
	bg := Style(RgbText, RgbBackground)
	r.screen.Fill(' ', bg)

	ms := float64(f.Now.UnixMilli() % 1_000_000)

	if r.scenery != nil {
		r.scenery.Draw(r.screen, f.Now)
	}
	for i := range f.Ambient {
		r.drawEffect(&f.Ambient[i], ms)
	}

	snap := f.Session
	if snap != nil {
		for i := range snap.Cards {
			r.drawCard(&snap.Cards[i], ms)
		}
		for i := range snap.Cards {
			for j := range snap.Cards[i].Sparkles {
				r.drawEffect(&snap.Cards[i].Sparkles[j], ms)
			}
		}
		for i := range snap.Particles {
			r.drawEffect(&snap.Particles[i], ms)
		}

		r.drawHUD(snap, f.Muted)
		if snap.Won {
			r.drawVictory(snap, ms)
		} else if snap.MatchedPairs == 0 {
			drawCentered(r.screen, r.width/2, r.height-1, constants.InstructionText, Style(RgbTextDim, RgbBackground))
		}
	}

	if f.Paused {
		drawCentered(r.screen, r.width/2, r.height/2, constants.PausedText, Style(RgbBackground, RgbGold).Bold(true))
	}
	if f.Debug != nil {
		r.drawDebug(f.Debug)
	}

	r.screen.Show()
}

// drawCard renders the back or face squeezed horizontally by the flip
func (r *Renderer) drawCard(v *card.View, ms float64) {
	if !v.Visible {
		return
	}
	x0 := int(math.Round(v.Bounds.X))
	y0 := int(math.Round(v.Bounds.Y))
	w := int(math.Round(v.Bounds.Width))
	h := int(math.Round(v.Bounds.Height))
	if w < 1 || h < 1 {
		return
	}

	// Edge-on at flip 0.5, face visible past it
	squeeze := math.Abs(math.Cos(v.FlipProgress * math.Pi))
	fw := max(1, int(math.Round(float64(w)*squeeze)))
	fx := x0 + (w-fw)/2
	midY := y0 + h/2

	if v.FlipProgress < 0.5 {
		border := RgbCardBorder
		if v.Hovered {
			border = RgbHover
		}
		fillRect(r.screen, fx, y0, fw, h, '░', Style(RgbCardPattern, RgbCardBack))
		drawBox(r.screen, fx, y0, fw, h, Style(border, RgbCardBack))
		if fw >= 3 {
			r.screen.SetContent(fx+fw/2, midY, '✦', nil, Style(RgbGold, RgbCardBack))
		}
		return
	}

	sw := r.palette.Swatch(v.Category)
	face := Blend(RgbCardBack, sw.Color, 0.35)
	border := sw.Color
	if v.State == card.Matched {
		glow := constants.MatchGlowBase + constants.MatchGlowAmp*math.Sin(ms*constants.MatchGlowSpeed)
		border = Brighten(sw.Color, glow*0.6)
		face = Blend(face, sw.Color, glow*0.3)
	}

	fillRect(r.screen, fx, y0, fw, h, ' ', Style(RgbText, face))
	drawBox(r.screen, fx, y0, fw, h, Style(border, face))
	if fw < 3 {
		return
	}
	glyphStyle := Style(Brighten(sw.Color, 0.2), face).Bold(true)
	if h >= 4 && fw-2 >= constants.FaceLabelMinSize {
		r.screen.SetContent(fx+fw/2, midY-1, sw.Glyph, nil, glyphStyle)
		drawCentered(r.screen, fx+fw/2, midY, fitText(sw.Name, fw-2), Style(RgbText, face))
	} else {
		r.screen.SetContent(fx+fw/2, midY, sw.Glyph, nil, glyphStyle)
	}
}

var (
	sparkleGlyphs  = []rune{'·', '*', '✦', '✧'}
	particleGlyphs = []rune{'+', '×', '*', '•'}
)

// drawEffect renders one sparkle or particle, faded by remaining life
func (r *Renderer) drawEffect(e *effects.View, ms float64) {
	x, y := int(math.Round(e.X)), int(math.Round(e.Y))
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}

	alpha := e.Fraction
	var glyph rune
	switch e.Kind {
	case effects.KindSparkle:
		ticks := ms / float64(constants.FrameUpdateInterval.Milliseconds())
		alpha *= 0.6 + 0.4*math.Sin(ticks*e.Twinkle)
		glyph = sparkleGlyphs[min(len(sparkleGlyphs)-1, max(0, int(e.Size)-1))]
	default:
		idx := int(math.Floor(e.Rotation/45)) % len(particleGlyphs)
		if idx < 0 {
			idx += len(particleGlyphs)
		}
		glyph = particleGlyphs[idx]
	}
	if alpha <= 0.05 {
		return
	}

	// Keep whatever background is under the effect
	_, _, under, _ := r.screen.GetContent(x, y)
	_, bg, _ := under.Decompose()
	color := e.Color
	if color.IsZero() {
		color = RgbGold
	}
	r.screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Foreground(Tcell(Fade(color, alpha))).Background(bg))
}

// drawHUD renders the title and counters
func (r *Renderer) drawHUD(snap *session.Snapshot, muted bool) {
	title := fmt.Sprintf("✨ %s %d/%d ✨", constants.TitleText, snap.MatchedPairs, snap.TotalPairs)
	drawCentered(r.screen, r.width/2, 0, title, Style(RgbGold, RgbBackground).Bold(true))

	counters := fmt.Sprintf("%s: %d    %s: %d", constants.MovesLabel, snap.Moves, constants.ScoreLabel, snap.Score)
	if muted {
		counters += "    ♪ off"
	}
	drawCentered(r.screen, r.width/2, 1, counters, Style(RgbText, RgbBackground))
}

// drawVictory renders the centered win box
func (r *Renderer) drawVictory(snap *session.Snapshot, ms float64) {
	lines := []string{
		"✨ " + constants.VictoryTitle + " ✨",
		"",
		fmt.Sprintf("Final %s: %d", constants.ScoreLabel, snap.Score),
		fmt.Sprintf("%s: %d", constants.MovesLabel, snap.Moves),
		"",
		constants.VictoryHint,
	}

	w := constants.VictoryBoxWidth
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l)+4)
	}
	h := len(lines) + 2
	x0 := (r.width - w) / 2
	y0 := (r.height - h) / 2

	pulse := 0.5 + 0.5*math.Sin(ms*constants.MatchGlowSpeed)
	fillRect(r.screen, x0, y0, w, h, ' ', Style(RgbText, RgbOverlay))
	drawBox(r.screen, x0, y0, w, h, Style(Brighten(RgbGold, pulse*0.5), RgbOverlay))
	for i, l := range lines {
		style := Style(RgbText, RgbOverlay)
		if i == 0 {
			style = Style(RgbGold, RgbOverlay).Bold(true)
		}
		drawCentered(r.screen, x0+w/2, y0+1+i, l, style)
	}
}

// drawDebug renders metric lines in the top-left corner
func (r *Renderer) drawDebug(lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	style := Style(RgbText, RgbOverlay)
	fillRect(r.screen, 0, 0, w+2, len(lines)+2, ' ', style)
	drawBox(r.screen, 0, 0, w+2, len(lines)+2, Style(RgbTextDim, RgbOverlay))
	drawText(r.screen, 2, 0, " DEBUG ", style.Bold(true))
	for i, l := range lines {
		drawText(r.screen, 1, 1+i, l, style)
	}
}
