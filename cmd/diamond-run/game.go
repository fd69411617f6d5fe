package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/diamond-run/audio"
	"github.com/lixenwraith/diamond-run/config"
	"github.com/lixenwraith/diamond-run/engine"
	"github.com/lixenwraith/diamond-run/input"
	"github.com/lixenwraith/diamond-run/level"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/status"
)

// game holds everything below the terminal: simulation, input and audio
type game struct {
	seed     uint64
	registry *status.Registry
	metrics  *status.GameMetrics
	sound    *audio.SoundManager
	keys     *input.KeyState
	handler  *input.Handler
	loop     *engine.Loop
}

func newGame(settings *config.Settings, seed uint64) (*game, error) {
	tables, err := settings.Tables()
	if err != nil {
		return nil, fmt.Errorf("level tables: %w", err)
	}
	keyTable, err := settings.KeyTable()
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}

	reg := status.NewRegistry()
	metrics := status.NewGameMetrics(reg)
	sound := audio.NewSoundManager(&settings.Audio, reg)

	// Steering draws from its own stream so layouts depend on the seed alone
	machine := engine.NewMachine(engine.MachineConfig{
		Generator: level.NewGenerator(seed, tables),
		Themes:    tables.Themes,
		SteerSeed: seed + 1,
		Cues:      sound,
		Metrics:   metrics,
	})

	keys := input.NewKeyState(parameter.KeyHoldTimeout)
	g := &game{
		seed:     seed,
		registry: reg,
		metrics:  metrics,
		sound:    sound,
		keys:     keys,
		handler:  input.NewHandler(keyTable, keys, nil),
		loop:     engine.NewLoop(machine, keys, nil, metrics),
	}
	log.Printf("[CONFIG] seed %d, %d themes, %d levels", seed, len(tables.Themes), parameter.MaxLevel)
	return g, nil
}

// handleKey feeds one key event to the input state; returns true on quit
func (g *game) handleKey(ev *tcell.EventKey) bool {
	switch g.handler.HandleEvent(ev) {
	case input.ActionQuit:
		return true
	case input.ActionToggleMute:
		if _, err := g.sound.ToggleMute(); err != nil {
			log.Printf("[AUDIO] mute toggle ignored: %v", err)
		}
	}
	return false
}

// audioLabel is the HUD prefix for the audio state
func (g *game) audioLabel() string {
	switch {
	case !g.sound.Enabled():
		return ""
	case g.sound.Muted():
		return "muted  "
	default:
		return "♪  "
	}
}
