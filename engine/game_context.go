package engine

import (
	"math/rand"
	"time"

	"github.com/johndunne/defender-game/config"
	"github.com/johndunne/defender-game/core"
	"github.com/johndunne/defender-game/input"
)

// GameContext bundles the world with everything the systems read each tick:
// the immutable configuration, the session state, the seeded random source,
// and the input snapshot for the current tick. Dependencies are passed here
// explicitly; nothing reaches for ambient globals.
type GameContext struct {
	World  *World
	Config *config.Config
	State  *GameState
	Rng    *rand.Rand

	// Player is the session's single player entity, set during world setup
	Player core.Entity

	// in is written by the host loop before each Update and read by the
	// player system; the loop is single-threaded so a plain field suffices
	in input.Snapshot
}

// NewGameContext creates a context around a fresh world. The random source
// is seeded from config for reproducible sessions; seed 0 falls back to the
// clock.
func NewGameContext(cfg *config.Config) *GameContext {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &GameContext{
		World:  NewWorld(),
		Config: cfg,
		State:  NewGameState(),
		Rng:    rand.New(rand.NewSource(seed)),
	}
}

// SetInput installs the key snapshot for the next tick.
func (g *GameContext) SetInput(snap input.Snapshot) {
	g.in = snap
}

// Input returns the key snapshot for the current tick.
func (g *GameContext) Input() input.Snapshot {
	return g.in
}

// InBounds reports whether a point lies inside the arena.
func (g *GameContext) InBounds(x, y float64) bool {
	return x >= -g.Config.ArenaHalfWidth() && x <= g.Config.ArenaHalfWidth() &&
		y >= -g.Config.ArenaHalfHeight() && y <= g.Config.ArenaHalfHeight()
}
