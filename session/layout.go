package session

import "github.com/lixenwraith/spellmatch/card"

// BoardLayout is the pixel-free geometry of the board in terminal cells
// Computed by the host on resize and handed to the session, never derived by it
type BoardLayout struct {
	OriginX, OriginY float64 // Top-left of the first card slot
	CardW, CardH     float64
	MarginX, MarginY float64 // Gap between adjacent slots
}

// Slot returns the rectangle of the card at index in a grid of cols columns, row-major
func (l BoardLayout) Slot(index, cols int) card.Rect {
	row, col := index/cols, index%cols
	return card.Rect{
		X:      l.OriginX + float64(col)*(l.CardW+l.MarginX),
		Y:      l.OriginY + float64(row)*(l.CardH+l.MarginY),
		Width:  l.CardW,
		Height: l.CardH,
	}
}

// Size returns the total width and height covered by a rows x cols grid
func (l BoardLayout) Size(rows, cols int) (float64, float64) {
	if rows <= 0 || cols <= 0 {
		return 0, 0
	}
	w := float64(cols)*(l.CardW+l.MarginX) - l.MarginX
	h := float64(rows)*(l.CardH+l.MarginY) - l.MarginY
	return w, h
}

// Center returns the center of a rows x cols grid
func (l BoardLayout) Center(rows, cols int) (float64, float64) {
	w, h := l.Size(rows, cols)
	return l.OriginX + w/2, l.OriginY + h/2
}
