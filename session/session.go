// @focus: #game { session, scoring } #vfx { burst }
package session

import (
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/spellmatch/card"
	"github.com/lixenwraith/spellmatch/constants"
	"github.com/lixenwraith/spellmatch/effects"
)

// Phase is the session lifecycle stage
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseWon
)

// String returns the string representation of a Phase
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// ColorFunc resolves the effect color of a category for celebration bursts
// Gameplay never reads colors; they only flow into effects
type ColorFunc func(card.Category) effects.RGB

// Config holds the rules and effect sizes of a session
type Config struct {
	Rows, Cols int

	// Categories available to the deal; the first Rows*Cols/2 are used
	Categories []card.Category

	Dwell           time.Duration
	MatchBonus      int
	EntranceStagger time.Duration

	MatchBurst   int
	VictoryBurst int

	Colors        ColorFunc
	SparklePolicy card.SpawnPolicy
}

// DefaultConfig returns the standard 3x4 board with six categories
func DefaultConfig() Config {
	return Config{
		Rows:            constants.DefaultRows,
		Cols:            constants.DefaultCols,
		Categories:      Categories(constants.DefaultRows * constants.DefaultCols / 2),
		Dwell:           constants.RevealDwell,
		MatchBonus:      constants.MatchBonus,
		EntranceStagger: constants.EntranceStagger,
		MatchBurst:      constants.MatchBurstCount,
		VictoryBurst:    constants.VictoryBurstCount,
	}
}

// Validate checks the setup preconditions
func (c Config) Validate() error {
	cells := c.Rows * c.Cols
	var err error
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		err = ErrEmptyGrid
	case cells%2 != 0:
		err = ErrOddGrid
	case len(c.Categories) == 0:
		err = ErrNoCategories
	case len(c.Categories) < cells/2:
		err = ErrNotEnoughCategories
	default:
		seen := make(map[card.Category]struct{}, len(c.Categories))
		for _, cat := range c.Categories {
			if _, dup := seen[cat]; dup {
				err = ErrDuplicateCategory
				break
			}
			seen[cat] = struct{}{}
		}
	}
	if err != nil {
		return &ConfigError{Rows: c.Rows, Cols: c.Cols, Err: err}
	}
	return nil
}

// Session is one game of matching pairs on a fixed grid
// All methods must be called from the update loop
type Session struct {
	cfg      Config
	layout   BoardLayout
	rng      *rand.Rand
	listener Listener

	id    uuid.UUID
	phase Phase

	cards   []*card.Entity
	pending []*card.Entity

	matchedPairs int
	totalPairs   int
	moves        int
	score        int
	won          bool

	particles *effects.Pool
}

// New validates cfg and deals the first game
func New(cfg Config, layout BoardLayout, now time.Time, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:       cfg,
		layout:    layout,
		rng:       rng,
		listener:  nopListener{},
		pending:   make([]*card.Entity, 0, 2),
		particles: effects.NewParticlePool(rng),
	}
	s.setup(now)
	return s, nil
}

// SetListener registers the gameplay event listener, nil disables notifications
func (s *Session) SetListener(l Listener) {
	if l == nil {
		l = nopListener{}
	}
	s.listener = l
}

// setup deals a fresh deck and rebuilds every card
func (s *Session) setup(now time.Time) {
	s.phase = PhaseSetup
	s.id = uuid.New()

	s.totalPairs = s.cfg.Rows * s.cfg.Cols / 2
	deck := Deal(s.cfg.Categories, s.totalPairs, s.rng)

	s.cards = make([]*card.Entity, len(deck))
	for i, cat := range deck {
		s.cards[i] = card.New(card.Params{
			Index:     i,
			Category:  cat,
			Slot:      s.layout.Slot(i, s.cfg.Cols),
			SetupTime: now,
			Stagger:   s.cfg.EntranceStagger,
			Policy:    s.cfg.SparklePolicy,
		}, s.rng)
	}
	s.pending = s.pending[:0]

	log.Printf("[SESSION %s] dealt %dx%d board, %d pairs", s.id, s.cfg.Rows, s.cfg.Cols, s.totalPairs)
	s.phase = PhasePlaying
}

// Restart discards the board and all effects and deals a new game
func (s *Session) Restart(now time.Time) {
	prev := s.id
	s.matchedPairs = 0
	s.moves = 0
	s.score = 0
	s.won = false
	s.particles.Clear()
	for _, c := range s.cards {
		c.Effects().Clear()
	}
	s.setup(now)
	log.Printf("[SESSION %s] restarted from %s", s.id, prev)
	s.listener.OnRestart()
}

// Relayout retargets every card to its slot in the new layout
// Card states, counters and effects are preserved
func (s *Session) Relayout(layout BoardLayout) {
	s.layout = layout
	for i, c := range s.cards {
		c.SetSlot(layout.Slot(i, s.cfg.Cols))
	}
}

// HandleClick reveals the card under (x, y) if the rules allow it
// Returns false when the click was ignored
func (s *Session) HandleClick(x, y float64, now time.Time) bool {
	if s.won || len(s.pending) >= 2 {
		return false
	}
	c := s.cardAt(x, y, now)
	if c == nil || !c.IsInteractable(now) {
		return false
	}
	if !c.Reveal(now) {
		return false
	}
	c.SetHovered(false)
	s.pending = append(s.pending, c)
	if len(s.pending) == 2 {
		s.moves++
	}
	s.listener.OnFlip(c)
	return true
}

// HandlePointerMove updates hover on the card under the pointer
func (s *Session) HandlePointerMove(x, y float64, now time.Time) {
	hit := s.cardAt(x, y, now)
	for _, c := range s.cards {
		c.SetHovered(c == hit && c.IsInteractable(now) && !s.won)
	}
}

// HandleKey applies a recognized key; restart is honored only after a win
func (s *Session) HandleKey(key Key, now time.Time) KeyResult {
	switch key {
	case KeyRestart:
		if !s.won {
			return ResultIgnored
		}
		s.Restart(now)
		return ResultRestarted
	case KeyQuit:
		return ResultQuit
	default:
		return ResultIgnored
	}
}

// Tick resolves a pending pair whose dwell has elapsed, then advances cards and particles
func (s *Session) Tick(now time.Time) {
	s.resolve(now)
	for _, c := range s.cards {
		c.Tick(now)
	}
	s.particles.Tick()
}

// resolve settles the pending pair once both cards have individually dwelled
func (s *Session) resolve(now time.Time) {
	if len(s.pending) != 2 {
		return
	}
	a, b := s.pending[0], s.pending[1]

	if a == b {
		log.Printf("[SESSION %s] invalid pending pair on card %d, discarded", s.id, a.Index())
		a.Settle()
		a.ResetToHidden()
		s.pending = s.pending[:0]
		return
	}

	if now.Sub(a.RevealedAt()) < s.cfg.Dwell || now.Sub(b.RevealedAt()) < s.cfg.Dwell {
		return
	}

	a.Settle()
	b.Settle()

	if a.Category() == b.Category() {
		a.MarkMatched()
		b.MarkMatched()
		s.matchedPairs++
		s.score += s.cfg.MatchBonus

		for _, c := range [2]*card.Entity{a, b} {
			cx, cy := c.Center()
			s.particles.Burst(cx, cy, constants.MatchBurstSpreadX, constants.MatchBurstSpreadY,
				s.cfg.MatchBurst, s.color(c.Category()))
		}
		s.listener.OnMatch(a, b)

		if s.matchedPairs == s.totalPairs {
			s.won = true
			s.phase = PhaseWon
			s.victoryBurst()
			log.Printf("[SESSION %s] won: score=%d moves=%d", s.id, s.score, s.moves)
			s.listener.OnWin(s.score, s.moves)
		}
	} else {
		a.ResetToHidden()
		b.ResetToHidden()
		s.listener.OnMismatch(a, b)
	}

	s.pending = s.pending[:0]
}

// victoryBurst scatters particles of random deck colors around the board center
func (s *Session) victoryBurst() {
	cx, cy := s.layout.Center(s.cfg.Rows, s.cfg.Cols)
	used := s.cfg.Categories[:s.totalPairs]
	for i := 0; i < s.cfg.VictoryBurst; i++ {
		cat := used[s.rng.Intn(len(used))]
		s.particles.Burst(cx, cy, constants.VictoryBurstSpreadX, constants.VictoryBurstSpreadY, 1, s.color(cat))
	}
}

func (s *Session) color(cat card.Category) effects.RGB {
	if s.cfg.Colors == nil {
		return effects.RGB{}
	}
	return s.cfg.Colors(cat)
}

// cardAt returns the visible card whose bounds contain the point
func (s *Session) cardAt(x, y float64, now time.Time) *card.Entity {
	for _, c := range s.cards {
		if c.Visible(now) && c.Contains(x, y) {
			return c
		}
	}
	return nil
}

// ID returns the identifier of the current deal
func (s *Session) ID() uuid.UUID { return s.id }

// Phase returns the lifecycle stage
func (s *Session) Phase() Phase { return s.phase }

// Won reports whether every pair has been matched
func (s *Session) Won() bool { return s.won }

// Score returns the accumulated match bonus
func (s *Session) Score() int { return s.score }

// Moves returns the number of completed pair attempts
func (s *Session) Moves() int { return s.moves }

// MatchedPairs returns the number of matched pairs
func (s *Session) MatchedPairs() int { return s.matchedPairs }

// TotalPairs returns the number of pairs on the board
func (s *Session) TotalPairs() int { return s.totalPairs }

// Cards returns the board in row-major order; callers must not mutate it
func (s *Session) Cards() []*card.Entity { return s.cards }

// Pending returns the number of cards awaiting resolution
func (s *Session) Pending() int { return len(s.pending) }

// Particles returns the celebration particle pool
func (s *Session) Particles() *effects.Pool { return s.particles }

// Layout returns the current board layout
func (s *Session) Layout() BoardLayout { return s.layout }

// Config returns the session configuration
func (s *Session) Config() Config { return s.cfg }
