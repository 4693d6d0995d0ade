package systems

import (
	"time"

	"github.com/johndunne/defender-game/components"
	"github.com/johndunne/defender-game/constants"
	"github.com/johndunne/defender-game/engine"
)

// BulletSystem integrates bullet positions and marks for destruction any
// bullet that leaves the arena or exhausts its lifetime. Marking instead of
// destroying keeps the registry stable for the collision phase.
type BulletSystem struct {
	ctx *engine.GameContext
}

// NewBulletSystem creates the bullet system.
func NewBulletSystem(ctx *engine.GameContext) *BulletSystem {
	return &BulletSystem{ctx: ctx}
}

// Priority returns the system's priority.
func (s *BulletSystem) Priority() int {
	return constants.PriorityBullet
}

// Update runs the bullet phase of the tick.
func (s *BulletSystem) Update(world *engine.World, dt time.Duration) {
	sec := dt.Seconds()

	for _, e := range world.Bullets.All() {
		bullet, ok := world.Bullets.Get(e)
		if !ok {
			continue
		}
		pos, ok := world.Positions.Get(e)
		if !ok {
			continue
		}

		pos.X += bullet.VelX * sec
		pos.Y += bullet.VelY * sec
		world.Positions.Add(e, pos)

		bullet.Lifetime -= sec
		world.Bullets.Add(e, bullet)

		// Strict exit test, no clamping: a bullet on the boundary is alive,
		// one past it is gone before the next tick starts
		if !s.ctx.InBounds(pos.X, pos.Y) || bullet.Lifetime <= 0 {
			world.Deaths.Add(e, components.MarkedForDeathComponent{})
		}
	}
}
