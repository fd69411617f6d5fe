package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/diamond-run/config"
	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/engine"
	"github.com/lixenwraith/diamond-run/render"
)

var (
	seedFlag   = flag.Uint64("seed", 0, "Level seed, 0 uses the config seed or the clock")
	configFlag = flag.String("config", "", "Path to a YAML settings file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/diamond-run.log")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}
	if logFile == nil && settings.Debug {
		logFile = setupLogging(true)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	seed := settings.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	colorName := settings.Color
	if *colorFlag != "" {
		colorName = *colorFlag
	}

	g, err := newGame(settings, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	// Silent mode on failure; the game never depends on audio
	if err := g.sound.Initialize(); err != nil {
		log.Printf("[AUDIO] running silent: %v", err)
	}
	defer g.sound.Cleanup()
	if *muteFlag {
		g.sound.SetMuted(true)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the crash
	core.SetCrashRestore(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ui := render.NewUI(render.Palette{Mode: render.ResolveColorMode(colorName)}, g.registry)
	ui.AudioLabel = g.audioLabel
	ui.Sync(g.loop.Snapshot())

	app := tview.NewApplication().SetScreen(screen)
	app.SetRoot(ui.Root(), true)
	// Every key is consumed here; primitives never see input
	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if g.handleKey(ev) {
			app.Stop()
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := engine.NewTickerSource(func(fn func()) {
		app.QueueUpdateDraw(fn)
	})
	core.Go(func() {
		err := ticker.Run(ctx, func(elapsed time.Duration) {
			ui.Sync(g.loop.Tick(elapsed))
		})
		log.Printf("[DEBUG] tick source stopped: %v", err)
	})

	log.Printf("[PHASE] %s, seed %d", g.loop.Snapshot().Phase, seed)
	if err := app.Run(); err != nil {
		cancel()
		log.Printf("[ERROR] application: %v", err)
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		return
	}
	cancel()

	for _, line := range g.registry.Lines() {
		log.Printf("[STATUS] %s", line)
	}
}
