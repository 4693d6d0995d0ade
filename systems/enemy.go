package systems

import (
	"time"

	"github.com/johndunne/defender-game/components"
	"github.com/johndunne/defender-game/constants"
	"github.com/johndunne/defender-game/core"
	"github.com/johndunne/defender-game/engine"
	"github.com/johndunne/defender-game/vmath"
)

// MovementPolicy decides how enemies move. It is a strategy so behavior can
// change without touching collision or scoring.
type MovementPolicy interface {
	// Move returns the enemy's next position after dt seconds
	Move(e core.Entity, pos components.PositionComponent, dt float64) components.PositionComponent
}

// StaticPolicy keeps enemies where they spawned.
type StaticPolicy struct{}

// Move returns the position unchanged.
func (StaticPolicy) Move(e core.Entity, pos components.PositionComponent, dt float64) components.PositionComponent {
	return pos
}

// DriftPolicy moves every enemy with a constant velocity.
type DriftPolicy struct {
	VelX, VelY float64
}

// Move translates the position by the drift velocity.
func (p DriftPolicy) Move(e core.Entity, pos components.PositionComponent, dt float64) components.PositionComponent {
	pos.X += p.VelX * dt
	pos.Y += p.VelY * dt
	return pos
}

// EnemySystem applies the movement policy to every enemy and clamps the
// result into arena bounds.
type EnemySystem struct {
	ctx    *engine.GameContext
	policy MovementPolicy
}

// NewEnemySystem creates the enemy system with the given movement policy.
// A nil policy means static enemies.
func NewEnemySystem(ctx *engine.GameContext, policy MovementPolicy) *EnemySystem {
	if policy == nil {
		policy = StaticPolicy{}
	}
	return &EnemySystem{ctx: ctx, policy: policy}
}

// Priority returns the system's priority.
func (s *EnemySystem) Priority() int {
	return constants.PriorityEnemy
}

// Update runs the enemy phase of the tick.
func (s *EnemySystem) Update(world *engine.World, dt time.Duration) {
	sec := dt.Seconds()
	halfW := s.ctx.Config.ArenaHalfWidth()
	halfH := s.ctx.Config.ArenaHalfHeight()

	for _, e := range world.Enemies.All() {
		pos, ok := world.Positions.Get(e)
		if !ok {
			continue
		}

		next := s.policy.Move(e, pos, sec)
		next.X = vmath.Clamp(next.X, -halfW, halfW)
		next.Y = vmath.Clamp(next.Y, -halfH, halfH)

		if next != pos {
			world.Positions.Add(e, next)
		}
	}
}
