package session

import "github.com/lixenwraith/spellmatch/card"

// Key is a host key mapped to a session command
type Key uint8

const (
	KeyNone Key = iota
	KeyRestart
	KeyQuit
)

// KeyResult tells the host what a key did
type KeyResult uint8

const (
	ResultIgnored KeyResult = iota
	ResultRestarted
	ResultQuit
)

// Listener receives gameplay notifications, used by the host for audio
// Callbacks run synchronously on the update loop and must not call back into the session
type Listener interface {
	OnFlip(c *card.Entity)
	OnMatch(a, b *card.Entity)
	OnMismatch(a, b *card.Entity)
	OnWin(score, moves int)
	OnRestart()
}

type nopListener struct{}

func (nopListener) OnFlip(*card.Entity) {}

func (nopListener) OnMatch(*card.Entity, *card.Entity) {}

func (nopListener) OnMismatch(*card.Entity, *card.Entity) {}

func (nopListener) OnWin(int, int) {}

func (nopListener) OnRestart() {}
