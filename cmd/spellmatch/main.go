package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/spellmatch/audio"
	"github.com/lixenwraith/spellmatch/config"
	"github.com/lixenwraith/spellmatch/constants"
	"github.com/lixenwraith/spellmatch/effects"
	"github.com/lixenwraith/spellmatch/engine"
	"github.com/lixenwraith/spellmatch/render"
	"github.com/lixenwraith/spellmatch/session"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML or YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/spellmatch.log")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	seedFlag   = flag.Int64("seed", 0, "Shuffle seed, 0 picks one from the clock")
)

func main() {
	flag.Parse()
	os.Exit(realMain(run))
}

// realMain runs the game with logging set up and returns the process exit code
// The log file is closed on every return path, before the caller exits
func realMain(runGame func() error) int {
	logFile := setupLogging(*debugFlag)

	err := runGame()
	if err != nil {
		log.Printf("[MAIN] exiting: %v", err)
	}
	if logFile != nil {
		log.SetOutput(io.Discard)
		logFile.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "spellmatch: %v\n", err)
		return 1
	}
	return 0
}

func run() (err error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *colorFlag != "" {
		cfg.Display.Color = *colorFlag
	}
	applyColorMode(cfg.Display.Color)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("[MAIN] seed=%d board=%dx%d", seed, cfg.Board.Rows, cfg.Board.Cols)

	palette := render.DefaultPalette
	sessionCfg, err := cfg.SessionConfig(palette.Categories(), palette.Color)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSPELLMATCH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("crashed: %v", r)
		}
	}()

	screen.SetStyle(render.Style(render.RgbText, render.RgbBackground))
	screen.HideCursor()
	if cfg.Display.Mouse {
		screen.EnableMouse(tcell.MouseMotionEvents)
	}

	sound := audio.NewSoundManager(&audio.AudioConfig{
		Enabled:       cfg.Audio.Enabled,
		MasterVolume:  cfg.Audio.MasterVolume,
		SampleRate:    cfg.Audio.SampleRate,
		EffectVolumes: audio.DefaultAudioConfig().EffectVolumes,
	})
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("[AUDIO] initialization failed: %v", err)
	} else {
		defer sound.Cleanup()
	}

	clock := engine.NewPausableClock(engine.NewMonotonicClock())
	w, h := screen.Size()
	layout := render.ComputeLayout(w, h, cfg.Board.Rows, cfg.Board.Cols)

	sess, err := session.New(sessionCfg, layout, clock.Now(), rng)
	if err != nil {
		return err
	}
	sess.SetListener(sound)

	scenery := render.NewScenery(rng, w, h)
	renderer := render.NewRenderer(screen, palette, scenery)
	ambient := effects.NewAmbient(rng, cfg.Effects.AmbientTarget)

	g := newGame(cfg, screen, clock, sess, ambient, renderer, sound)
	loop(g, screen, cfg.FrameInterval())
	return nil
}

// loop polls terminal events on a goroutine and runs update and draw on the ticker
func loop(g *game, screen tcell.Screen, interval time.Duration) {
	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	g.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handle(ev) {
				return
			}
		case <-ticker.C:
			g.update()
			g.draw()
		}
	}
}

// applyColorMode steers tcell's color detection through its environment variables
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	}
}
