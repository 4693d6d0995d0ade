// Command defender-win runs the game in a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/johndunne/defender-game/config"
	"github.com/johndunne/defender-game/constants"
	"github.com/johndunne/defender-game/render"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (default: built-in)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	ebiten.SetWindowSize(int(cfg.Game.Width), int(cfg.Game.Height))
	ebiten.SetWindowTitle("Defender")

	game := NewGame(cfg)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game loop failed")
	}

	score := game.ctx.State.Score()
	logger.Info().Int64("score", score).Msg("session over")
	fmt.Printf("%s: %s\n", constants.ScoreLabel, render.FormatScore(score))
}
