package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at (x, y), advancing by display width
// Returns the column after the last rune
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// drawCentered writes s centered on column cx
func drawCentered(screen tcell.Screen, cx, y int, s string, style tcell.Style) {
	drawText(screen, cx-runewidth.StringWidth(s)/2, y, s, style)
}

// fitText truncates s to at most width display columns
func fitText(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// fillRect paints a rectangle with r
func fillRect(screen tcell.Screen, x, y, w, h int, r rune, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

// drawBox draws a rounded border around the rectangle
func drawBox(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for dx := 1; dx < w-1; dx++ {
		screen.SetContent(x+dx, y, '─', nil, style)
		screen.SetContent(x+dx, y+h-1, '─', nil, style)
	}
	for dy := 1; dy < h-1; dy++ {
		screen.SetContent(x, y+dy, '│', nil, style)
		screen.SetContent(x+w-1, y+dy, '│', nil, style)
	}
	screen.SetContent(x, y, '╭', nil, style)
	screen.SetContent(x+w-1, y, '╮', nil, style)
	screen.SetContent(x, y+h-1, '╰', nil, style)
	screen.SetContent(x+w-1, y+h-1, '╯', nil, style)
}
