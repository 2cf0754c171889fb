package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundFlip     SoundType = iota // Card turned face up
	SoundMatch                     // Pair matched
	SoundMismatch                  // Pair turned back over
	SoundVictory                   // Board cleared
	soundTypeCount
)

// String returns the string representation of a SoundType
func (s SoundType) String() string {
	switch s {
	case SoundFlip:
		return "flip"
	case SoundMatch:
		return "match"
	case SoundMismatch:
		return "mismatch"
	case SoundVictory:
		return "victory"
	default:
		return "unknown"
	}
}
