// @focus: #input { keys, mouse }
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine turns raw terminal events into intents
// It tracks the left button so a held button yields one click
type Machine struct {
	keys     *KeyTable
	leftDown bool
	lastX    int
	lastY    int
}

// NewMachine creates a machine with the given bindings, nil selects the defaults
func NewMachine(keys *KeyTable) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{keys: keys, lastX: -1, lastY: -1}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no meaning to the game
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, X: w, Y: h}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		if t, ok := m.keys.Runes[unicode.ToLower(ev.Rune())]; ok {
			return &Intent{Type: t}
		}
		return nil
	}
	if t, ok := m.keys.SpecialKeys[ev.Key()]; ok {
		return &Intent{Type: t}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	if pressed && !m.leftDown {
		m.leftDown = true
		m.lastX, m.lastY = x, y
		return &Intent{Type: IntentClick, X: x, Y: y}
	}
	m.leftDown = pressed

	if x == m.lastX && y == m.lastY {
		return nil
	}
	m.lastX, m.lastY = x, y
	return &Intent{Type: IntentHover, X: x, Y: y}
}
