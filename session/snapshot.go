package session

import (
	"time"

	"github.com/lixenwraith/spellmatch/card"
	"github.com/lixenwraith/spellmatch/effects"
)

// Snapshot is the read-only view of a session consumed by the renderer once per frame
// It is filled between ticks and may be handed to another goroutine
type Snapshot struct {
	ID           string
	Phase        Phase
	Won          bool
	Moves        int
	Score        int
	MatchedPairs int
	TotalPairs   int
	Pending      int
	Cards        []card.View
	Particles    []effects.View
}

// Snapshot fills dst with the current state, reusing its slices
func (s *Session) Snapshot(now time.Time, dst *Snapshot) {
	dst.ID = s.id.String()
	dst.Phase = s.phase
	dst.Won = s.won
	dst.Moves = s.moves
	dst.Score = s.score
	dst.MatchedPairs = s.matchedPairs
	dst.TotalPairs = s.totalPairs
	dst.Pending = len(s.pending)

	if cap(dst.Cards) < len(s.cards) {
		cards := make([]card.View, len(s.cards))
		copy(cards, dst.Cards)
		dst.Cards = cards
	}
	dst.Cards = dst.Cards[:len(s.cards)]
	for i, c := range s.cards {
		c.Snapshot(now, &dst.Cards[i])
	}

	dst.Particles = s.particles.Views(dst.Particles[:0])
}

// EffectCount returns the number of live particles and sparkles across the board
func (s *Snapshot) EffectCount() int {
	n := len(s.Particles)
	for i := range s.Cards {
		n += len(s.Cards[i].Sparkles)
	}
	return n
}
