package systems

import (
	"github.com/johndunne/defender-game/components"
	"github.com/johndunne/defender-game/core"
	"github.com/johndunne/defender-game/engine"
	"github.com/johndunne/defender-game/vmath"
)

// InitializeWorld stands up the session's starting entities: the player ship
// centered at the origin and the configured number of enemies at random
// positions inside the arena.
func InitializeWorld(ctx *engine.GameContext) {
	ctx.Player = SpawnPlayer(ctx)
	SpawnEnemies(ctx, ctx.Config.Game.EnemyCount)
}

// SpawnPlayer creates the player entity at the arena origin facing angle 0.
func SpawnPlayer(ctx *engine.GameContext) core.Entity {
	e := ctx.World.CreateEntity()
	ctx.World.Positions.Add(e, components.PositionComponent{X: 0, Y: 0})
	ctx.World.Players.Add(e, components.PlayerComponent{
		Direction:      0,
		WeaponCooldown: 0,
	})
	return e
}

// SpawnEnemies creates count enemies at positions drawn from the context's
// seeded random source, clamped into arena bounds.
func SpawnEnemies(ctx *engine.GameContext, count int) {
	cfg := ctx.Config
	halfW := cfg.ArenaHalfWidth()
	halfH := cfg.ArenaHalfHeight()

	for i := 0; i < count; i++ {
		x := vmath.Clamp(ctx.Rng.Float64()*cfg.Game.Width-halfW, -halfW, halfW)
		y := vmath.Clamp(ctx.Rng.Float64()*cfg.Game.Height-halfH, -halfH, halfH)
		SpawnEnemy(ctx, x, y)
	}
}

// SpawnEnemy creates a single enemy at the given position.
func SpawnEnemy(ctx *engine.GameContext, x, y float64) core.Entity {
	e := ctx.World.CreateEntity()
	ctx.World.Positions.Add(e, components.PositionComponent{X: x, Y: y})
	ctx.World.Enemies.Add(e, components.EnemyComponent{
		HalfWidth:  ctx.Config.Enemy.Dimensions[0] / 2,
		HalfHeight: ctx.Config.Enemy.Dimensions[1] / 2,
	})
	return e
}

// SpawnBullet creates a bullet at the given position traveling in the given
// direction at the configured speed.
func SpawnBullet(ctx *engine.GameContext, x, y, direction float64) core.Entity {
	cfg := ctx.Config.Bullet
	vel := vmath.UnitVector(direction).Scale(cfg.Speed)

	e := ctx.World.CreateEntity()
	ctx.World.Positions.Add(e, components.PositionComponent{X: x, Y: y})
	ctx.World.Bullets.Add(e, components.BulletComponent{
		VelX:       vel.X,
		VelY:       vel.Y,
		Lifetime:   cfg.Lifetime,
		HalfWidth:  cfg.Dimensions[0] / 2,
		HalfHeight: cfg.Dimensions[1] / 2,
	})
	return e
}
