package card

// Category is the opaque matching key shared by exactly two cards
type Category int

// State is the reveal state of a card
type State uint8

const (
	// Hidden cards show their back and accept clicks once entered
	Hidden State = iota
	// Revealing cards are flipping face up after a click
	Revealing
	// Revealed cards are face up and wait for pair resolution
	Revealed
	// Matched is terminal
	Matched
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealing:
		return "revealing"
	case Revealed:
		return "revealed"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// FaceUp reports whether the flip animation should move toward the face side
func (s State) FaceUp() bool {
	return s == Revealing || s == Revealed || s == Matched
}

// Unresolved reports whether the card is part of a pending pair
func (s State) Unresolved() bool {
	return s == Revealing || s == Revealed
}
