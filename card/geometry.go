package card

// Rect is an axis-aligned rectangle in cell coordinates
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle, right and bottom edges exclusive
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// ease moves v toward target by fraction k and snaps once within eps
func ease(v, target, k, eps float64) float64 {
	v += (target - v) * k
	if d := target - v; d < eps && d > -eps {
		return target
	}
	return v
}

// clamp01 limits v to [0,1]
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
