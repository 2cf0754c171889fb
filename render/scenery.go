// @focus: #vfx { scenery }
package render

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spellmatch/constants"
)

type star struct {
	x, y  int
	phase float64
	speed float64
	glyph rune
}

// Scenery is the decorative night sky behind the board
// It reads only the clock and never touches gameplay
type Scenery struct {
	rng           *rand.Rand
	width, height int
	stars         []star
}

var starGlyphs = []rune{'.', '·', '*', '+'}

// NewScenery scatters stars over a width x height screen
func NewScenery(rng *rand.Rand, width, height int) *Scenery {
	s := &Scenery{rng: rng}
	s.Resize(width, height)
	return s
}

// Resize regenerates the star field for new screen dimensions
func (s *Scenery) Resize(width, height int) {
	s.width, s.height = width, height
	n := int(float64(width*height) * constants.StarDensity)
	s.stars = s.stars[:0]
	for i := 0; i < n; i++ {
		s.stars = append(s.stars, star{
			x:     s.rng.Intn(max(width, 1)),
			y:     s.rng.Intn(max(height, 1)),
			phase: s.rng.Float64() * 2 * math.Pi,
			speed: constants.StarTwinkleMin + s.rng.Float64()*(constants.StarTwinkleMax-constants.StarTwinkleMin),
			glyph: starGlyphs[s.rng.Intn(len(starGlyphs))],
		})
	}
}

// Stars returns the number of stars
func (s *Scenery) Stars() int { return len(s.stars) }

// Draw paints stars and the moon
func (s *Scenery) Draw(screen tcell.Screen, now time.Time) {
	ms := float64(now.UnixMilli() % 1_000_000)

	for _, st := range s.stars {
		b := 0.5 + 0.5*math.Sin(ms*st.speed+st.phase)
		screen.SetContent(st.x, st.y, st.glyph, nil, Style(Fade(RgbStar, 0.25+0.75*b), RgbBackground))
	}

	s.drawMoon(screen, ms)
}

// moon is drawn at the top right, one row below the HUD
var moon = []string{
	" ▄██▄ ",
	"██████",
	" ▀██▀ ",
}

func (s *Scenery) drawMoon(screen tcell.Screen, ms float64) {
	w := len([]rune(moon[0]))
	x0 := s.width - w - 3
	y0 := constants.HUDHeight
	if x0 < 0 || y0+len(moon) > s.height {
		return
	}
	pulse := 0.8 + 0.2*math.Sin(ms*constants.MoonPulseSpeed)
	style := Style(Fade(RgbMoon, pulse), RgbBackground)
	for dy, line := range moon {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				screen.SetContent(x0+dx, y0+dy, r, nil, style)
			}
			dx++
		}
	}
}
