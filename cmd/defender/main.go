// Command defender runs the game in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/johndunne/defender-game/config"
	"github.com/johndunne/defender-game/constants"
	"github.com/johndunne/defender-game/engine"
	"github.com/johndunne/defender-game/input"
	"github.com/johndunne/defender-game/render"
	"github.com/johndunne/defender-game/systems"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (default: built-in)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal().Err(err).Msg("terminal init failed")
	}
	if err := screen.Init(); err != nil {
		logger.Fatal().Err(err).Msg("terminal init failed")
	}

	// The screen must be released before any panic reaches the default
	// handler, or the terminal is left unusable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()

	score := run(cfg, screen)

	screen.Fini()
	logger.Info().Int64("score", score).Msg("session over")
	fmt.Printf("%s: %s\n", constants.ScoreLabel, render.FormatScore(score))
}

func run(cfg *config.Config, screen tcell.Screen) int64 {
	ctx := engine.NewGameContext(cfg)
	systems.RegisterSystems(ctx, nil)
	systems.InitializeWorld(ctx)

	latch := &input.Latch{}
	go pollEvents(screen, latch)

	renderer := render.NewTerminalRenderer(screen, cfg.Game.Width, cfg.Game.Height)
	meshes := render.BuildMeshes(cfg)

	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	for range ticker.C {
		snap := latch.Take()
		ctx.SetInput(snap)
		ctx.World.Update(constants.TickInterval)

		renderer.BeginFrame()
		render.DrawWorld(ctx, meshes, renderer)
		renderer.EndFrame()

		// Quit is honored after the tick so the final state is consistent
		if snap.Quit {
			break
		}
	}

	return ctx.State.Score()
}

// pollEvents translates terminal events into latched game actions. It runs
// until the screen is finalized, which unblocks PollEvent with a nil event.
func pollEvents(screen tcell.Screen, latch *input.Latch) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			latch.Press(mapKey(ev))
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// mapKey binds keys to actions: arrows or hl to rotate, space to fire,
// escape or q to quit.
func mapKey(ev *tcell.EventKey) input.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.ActionRotateLeft
	case tcell.KeyRight:
		return input.ActionRotateRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return input.ActionRotateLeft
		case 'l':
			return input.ActionRotateRight
		case ' ':
			return input.ActionFire
		case 'q':
			return input.ActionQuit
		}
	}
	return input.ActionNone
}
