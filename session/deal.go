package session

import (
	"math/rand"

	"github.com/lixenwraith/spellmatch/card"
)

// Categories returns n sequential categories starting at zero
func Categories(n int) []card.Category {
	out := make([]card.Category, n)
	for i := range out {
		out[i] = card.Category(i)
	}
	return out
}

// Deal selects the first pairs categories, duplicates each and shuffles them uniformly
// The result is assigned to grid positions row-major
func Deal(categories []card.Category, pairs int, rng *rand.Rand) []card.Category {
	if pairs > len(categories) {
		pairs = len(categories)
	}
	deck := make([]card.Category, 0, pairs*2)
	for _, c := range categories[:pairs] {
		deck = append(deck, c, c)
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}
