// Package config is the immutable configuration store. It is loaded once
// before world initialization and read-only afterwards; a load or validation
// failure aborts startup before any game state exists.
package config

import (
	_ "embed"
	"os"

	"github.com/rotisserie/eris"

	"github.com/johndunne/defender-game/toml"
)

//go:embed default.toml
var defaultTOML []byte

// GameConfig holds the session-wide parameters.
type GameConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	EnemyCount int     `toml:"enemy_count"`
	Seed       int64   `toml:"seed"` // 0 = seed from the clock
}

// PlayerConfig describes the player ship archetype.
type PlayerConfig struct {
	Dimensions    [2]float64 `toml:"dimensions"`
	Color         [4]float64 `toml:"color"`
	RotationSpeed float64    `toml:"rotation_speed"` // radians per second
}

// EnemyConfig describes the enemy archetype.
type EnemyConfig struct {
	Dimensions [2]float64 `toml:"dimensions"`
	Color      [4]float64 `toml:"color"`
}

// BulletConfig describes the bullet archetype.
type BulletConfig struct {
	Dimensions [2]float64 `toml:"dimensions"`
	Color      [4]float64 `toml:"color"`
	Speed      float64    `toml:"speed"`    // arena units per second
	Cooldown   float64    `toml:"cooldown"` // seconds between shots
	Lifetime   float64    `toml:"lifetime"` // seconds before forced despawn
}

// Config is the full archetype set.
type Config struct {
	Game   GameConfig   `toml:"game"`
	Player PlayerConfig `toml:"player"`
	Enemy  EnemyConfig  `toml:"enemy"`
	Bullet BulletConfig `toml:"bullet"`
}

// Load reads and validates a configuration. An empty path loads the embedded
// default. Any missing or out-of-range field is an error; there are no silent
// fallbacks for gameplay-affecting values.
func Load(path string) (*Config, error) {
	data := defaultTOML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "read config %q", path)
		}
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, eris.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every archetype field against its valid range.
func (c *Config) Validate() error {
	if c.Game.Width <= 0 || c.Game.Height <= 0 {
		return eris.Errorf("game: window dimensions must be positive, got %gx%g", c.Game.Width, c.Game.Height)
	}
	if c.Game.EnemyCount < 0 {
		return eris.Errorf("game: enemy_count must be non-negative, got %d", c.Game.EnemyCount)
	}

	if err := validateArchetype("player", c.Player.Dimensions, c.Player.Color); err != nil {
		return err
	}
	if c.Player.RotationSpeed <= 0 {
		return eris.Errorf("player: rotation_speed must be positive, got %g", c.Player.RotationSpeed)
	}

	if err := validateArchetype("enemy", c.Enemy.Dimensions, c.Enemy.Color); err != nil {
		return err
	}

	if err := validateArchetype("bullet", c.Bullet.Dimensions, c.Bullet.Color); err != nil {
		return err
	}
	if c.Bullet.Speed <= 0 {
		return eris.Errorf("bullet: speed must be positive, got %g", c.Bullet.Speed)
	}
	if c.Bullet.Cooldown <= 0 {
		return eris.Errorf("bullet: cooldown must be positive, got %g", c.Bullet.Cooldown)
	}
	if c.Bullet.Lifetime <= 0 {
		return eris.Errorf("bullet: lifetime must be positive, got %g", c.Bullet.Lifetime)
	}

	return nil
}

func validateArchetype(name string, dims [2]float64, color [4]float64) error {
	if dims[0] <= 0 || dims[1] <= 0 {
		return eris.Errorf("%s: dimensions must be positive, got %v", name, dims)
	}
	for i, ch := range color {
		if ch < 0 || ch > 1 {
			return eris.Errorf("%s: color channel %d out of [0,1]: %g", name, i, ch)
		}
	}
	return nil
}

// ArenaHalfWidth returns half the playable width; spawn positions and
// boundary checks clamp or test against this.
func (c *Config) ArenaHalfWidth() float64 {
	return c.Game.Width / 2
}

// ArenaHalfHeight returns half the playable height.
func (c *Config) ArenaHalfHeight() float64 {
	return c.Game.Height / 2
}
