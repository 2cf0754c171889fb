package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameRate is the target number of frames per second
	FrameRate = 75

	// FrameUpdateInterval is the frame interval at FrameRate (~13.3ms)
	FrameUpdateInterval = time.Second / FrameRate

	// EventChannelSize is the buffer for terminal events forwarded to the loop
	EventChannelSize = 256
)

// Board Defaults
const (
	// DefaultRows is the number of card rows in a new game
	DefaultRows = 3

	// DefaultCols is the number of card columns in a new game
	DefaultCols = 4
)
