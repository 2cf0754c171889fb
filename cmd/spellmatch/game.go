// @focus: #game { loop } #sys { debug }
package main

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spellmatch/config"
	"github.com/lixenwraith/spellmatch/effects"
	"github.com/lixenwraith/spellmatch/engine"
	"github.com/lixenwraith/spellmatch/input"
	"github.com/lixenwraith/spellmatch/render"
	"github.com/lixenwraith/spellmatch/session"
	"github.com/lixenwraith/spellmatch/status"
)

// muter is the part of the sound manager the loop controls
type muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// game owns every piece of loop state; all methods run on the loop goroutine
type game struct {
	cfg      *config.Config
	screen   tcell.Screen
	clock    *engine.PausableClock
	session  *session.Session
	ambient  *effects.Ambient
	renderer *render.Renderer
	machine  *input.Machine
	sound    muter

	width, height int
	debug         bool

	// Last pointer cell, hover is re-evaluated against it every tick
	pointerX, pointerY float64
	hasPointer         bool

	snap         session.Snapshot
	ambientViews []effects.View

	reg       *status.Registry
	fps       *status.AtomicFloat
	ticks     *atomic.Int64
	particles *atomic.Int64
	sparkles  *atomic.Int64
	ambientN  *atomic.Int64
	phase     *status.AtomicString
	paused    *atomic.Bool

	frames     int
	fpsWindow  time.Time
	tickNumber int64
}

func newGame(cfg *config.Config, screen tcell.Screen, clock *engine.PausableClock, sess *session.Session,
	ambient *effects.Ambient, renderer *render.Renderer, sound muter) *game {
	reg := status.NewRegistry()
	w, h := screen.Size()
	g := &game{
		cfg:       cfg,
		screen:    screen,
		clock:     clock,
		session:   sess,
		ambient:   ambient,
		renderer:  renderer,
		machine:   input.NewMachine(nil),
		sound:     sound,
		width:     w,
		height:    h,
		reg:       reg,
		fps:       reg.Floats.Get("loop.fps"),
		ticks:     reg.Ints.Get("loop.ticks"),
		particles: reg.Ints.Get("fx.particles"),
		sparkles:  reg.Ints.Get("fx.sparkles"),
		ambientN:  reg.Ints.Get("fx.ambient"),
		phase:     reg.Strings.Get("session.phase"),
		paused:    reg.Bools.Get("clock.paused"),
		fpsWindow: clock.RealTime(),
	}
	g.ambient.Seed(g.area())
	return g
}

// area is the full screen, where ambient sparkles live
func (g *game) area() effects.Area {
	return effects.Area{Width: float64(g.width), Height: float64(g.height)}
}

// handle applies one terminal event, returning false to quit
func (g *game) handle(ev tcell.Event) bool {
	intent := g.machine.Process(ev)
	if intent == nil {
		return true
	}
	now := g.clock.Now()

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		g.width, g.height = intent.X, intent.Y
		g.renderer.Resize(g.width, g.height)
		g.session.Relayout(render.ComputeLayout(g.width, g.height, g.cfg.Board.Rows, g.cfg.Board.Cols))
		g.ambient.Pool().Clear()
		g.ambient.Seed(g.area())
		g.screen.Sync()

	case input.IntentPause:
		paused := g.clock.Toggle()
		log.Printf("[LOOP] paused=%v", paused)

	case input.IntentToggleMute:
		if g.sound != nil {
			g.sound.ToggleMute()
		}

	case input.IntentToggleDebug:
		g.debug = !g.debug

	case input.IntentRestart:
		if g.clock.IsPaused() {
			break
		}
		if g.session.HandleKey(session.KeyRestart, now) == session.ResultRestarted {
			g.ambient.Pool().Clear()
			g.ambient.Seed(g.area())
		}

	case input.IntentClick:
		g.trackPointer(intent)
		if g.clock.IsPaused() {
			break
		}
		g.session.HandleClick(g.pointerX, g.pointerY, now)

	case input.IntentHover:
		g.trackPointer(intent)
		if g.clock.IsPaused() {
			break
		}
		g.session.HandlePointerMove(g.pointerX, g.pointerY, now)
	}
	return true
}

// update advances the simulation by one frame unless paused
func (g *game) update() {
	if g.clock.IsPaused() {
		return
	}
	now := g.clock.Now()
	g.session.Tick(now)
	if g.hasPointer {
		g.session.HandlePointerMove(g.pointerX, g.pointerY, now)
	}
	g.ambient.Tick(g.area())
	g.tickNumber++
}

// trackPointer records the hit-test point at the center of the intent's cell
func (g *game) trackPointer(intent *input.Intent) {
	g.pointerX = float64(intent.X) + 0.5
	g.pointerY = float64(intent.Y) + 0.5
	g.hasPointer = true
}

// draw snapshots the session, publishes metrics and renders
func (g *game) draw() {
	now := g.clock.Now()
	g.session.Snapshot(now, &g.snap)
	g.ambientViews = g.ambient.Pool().Views(g.ambientViews[:0])

	g.publish()

	frame := render.Frame{
		Session: &g.snap,
		Ambient: g.ambientViews,
		Now:     now,
		Paused:  g.clock.IsPaused(),
	}
	if g.sound != nil {
		frame.Muted = g.sound.IsMuted()
	}
	if g.debug {
		frame.Debug = g.reg.Lines()
	}
	g.renderer.Draw(&frame)
}

// publish writes loop metrics to the registry
func (g *game) publish() {
	g.frames++
	wall := g.clock.RealTime()
	if elapsed := wall.Sub(g.fpsWindow); elapsed >= time.Second {
		g.fps.Store(float64(g.frames) / elapsed.Seconds())
		g.frames = 0
		g.fpsWindow = wall
	}

	g.ticks.Store(g.tickNumber)
	g.particles.Store(int64(len(g.snap.Particles)))
	g.sparkles.Store(int64(g.snap.EffectCount() - len(g.snap.Particles)))
	g.ambientN.Store(int64(len(g.ambientViews)))
	g.phase.Store(g.snap.Phase.String())
	g.paused.Store(g.clock.IsPaused())
}
