package constants

// Board layout in terminal cells
const (
	HUDHeight        = 2 // Title line and counters
	FooterHeight     = 2 // Instruction line and padding
	BoardPaddingX    = 2
	CardMarginX      = 2
	CardMarginY      = 1
	MaxCardWidth     = 18
	MaxCardHeight    = 8
	MinCardWidth     = 6
	MinCardHeight    = 3
	CardAspect       = 2.2 // Cell width per cell height for a square-looking card
	FaceLabelMinSize = 10  // Narrower faces show only the glyph
)

// HUD text
const (
	TitleText       = "Spell Pairs"
	MovesLabel      = "Magic Moves"
	ScoreLabel      = "Enchant Score"
	InstructionText = "Click two cards to find matching spell pairs"
	VictoryTitle    = "Victory!"
	VictoryHint     = "Press R to cast again"
	PausedText      = " PAUSED "
)

// Scenery
const (
	StarDensity     = 0.012 // Stars per screen cell
	StarTwinkleMin  = 0.0015
	StarTwinkleMax  = 0.004
	MoonPulseSpeed  = 0.002
	MatchGlowBase   = 0.5
	MatchGlowAmp    = 0.3
	MatchGlowSpeed  = 0.008
	VictoryBoxWidth = 34
)
