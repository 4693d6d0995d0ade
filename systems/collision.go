package systems

import (
	"time"

	"github.com/johndunne/defender-game/components"
	"github.com/johndunne/defender-game/constants"
	"github.com/johndunne/defender-game/engine"
	"github.com/johndunne/defender-game/vmath"
)

// CollisionSystem tests every live bullet against every live enemy. A hit
// marks both for death and records it for the scoring phase. Each bullet
// kills at most one enemy and each enemy dies at most once per tick, in
// spawn order, so the outcome is deterministic.
type CollisionSystem struct {
	ctx *engine.GameContext
}

// NewCollisionSystem creates the collision system.
func NewCollisionSystem(ctx *engine.GameContext) *CollisionSystem {
	return &CollisionSystem{ctx: ctx}
}

// Priority returns the system's priority.
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update runs the collision phase of the tick.
func (s *CollisionSystem) Update(world *engine.World, dt time.Duration) {
	bullets := world.Bullets.All()
	enemies := world.Enemies.All()

	for _, be := range bullets {
		if world.Deaths.Has(be) {
			continue
		}
		bullet, ok := world.Bullets.Get(be)
		if !ok {
			continue
		}
		bpos, ok := world.Positions.Get(be)
		if !ok {
			continue
		}
		bbox := vmath.AABB{
			X:          bpos.X,
			Y:          bpos.Y,
			HalfWidth:  bullet.HalfWidth,
			HalfHeight: bullet.HalfHeight,
		}

		for _, ee := range enemies {
			if world.Deaths.Has(ee) {
				continue
			}
			enemy, ok := world.Enemies.Get(ee)
			if !ok {
				continue
			}
			epos, ok := world.Positions.Get(ee)
			if !ok {
				continue
			}
			ebox := vmath.AABB{
				X:          epos.X,
				Y:          epos.Y,
				HalfWidth:  enemy.HalfWidth,
				HalfHeight: enemy.HalfHeight,
			}

			if bbox.Overlaps(ebox) {
				world.Deaths.Add(be, components.MarkedForDeathComponent{})
				world.Deaths.Add(ee, components.MarkedForDeathComponent{})
				s.ctx.State.AddTickHits(1)
				break
			}
		}
	}
}
