package render

import (
	"math"

	"github.com/lixenwraith/spellmatch/constants"
	"github.com/lixenwraith/spellmatch/session"
)

// ComputeLayout fits a rows x cols board into the screen below the HUD and centers it
// Cards shrink to the minimum size on small terminals and may then overflow
func ComputeLayout(screenW, screenH, rows, cols int) session.BoardLayout {
	mx, my := float64(constants.CardMarginX), float64(constants.CardMarginY)

	availW := float64(screenW - 2*constants.BoardPaddingX)
	availH := float64(screenH - constants.HUDHeight - constants.FooterHeight)

	w := math.Floor((availW - float64(cols-1)*mx) / float64(cols))
	h := math.Floor((availH - float64(rows-1)*my) / float64(rows))

	w = math.Min(w, constants.MaxCardWidth)
	h = math.Min(h, constants.MaxCardHeight)

	// Keep the card roughly as tall as it is wide on screen
	if w > h*constants.CardAspect {
		w = math.Floor(h * constants.CardAspect)
	} else if h > w/constants.CardAspect+1 {
		h = math.Ceil(w / constants.CardAspect)
	}

	w = math.Max(w, constants.MinCardWidth)
	h = math.Max(h, constants.MinCardHeight)

	l := session.BoardLayout{CardW: w, CardH: h, MarginX: mx, MarginY: my}
	bw, bh := l.Size(rows, cols)
	l.OriginX = math.Floor((float64(screenW) - bw) / 2)
	l.OriginY = float64(constants.HUDHeight) + math.Floor((availH-bh)/2)
	if l.OriginX < 0 {
		l.OriginX = 0
	}
	if l.OriginY < constants.HUDHeight {
		l.OriginY = constants.HUDHeight
	}
	return l
}
