package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Esc, q, Ctrl+C
	IntentResize      // Terminal resize event
	IntentPause       // p
	IntentToggleMute  // m
	IntentToggleDebug // F1

	// Game intents
	IntentRestart // r, honored only after a win

	// Mouse
	IntentClick // Left button pressed
	IntentHover // Pointer moved
)

// String returns the string representation of an IntentType
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentPause:
		return "pause"
	case IntentToggleMute:
		return "mute"
	case IntentToggleDebug:
		return "debug"
	case IntentRestart:
		return "restart"
	case IntentClick:
		return "click"
	case IntentHover:
		return "hover"
	default:
		return "none"
	}
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType
	X, Y int // Screen cell for mouse intents and new size for resize
}
