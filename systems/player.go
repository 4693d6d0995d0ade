package systems

import (
	"time"

	"github.com/johndunne/defender-game/constants"
	"github.com/johndunne/defender-game/engine"
	"github.com/johndunne/defender-game/vmath"
)

// PlayerSystem resolves input intent into player state: rotation at the
// configured angular rate, weapon cooldown aging, and cooldown-gated fire.
type PlayerSystem struct {
	ctx *engine.GameContext
}

// NewPlayerSystem creates the player system.
func NewPlayerSystem(ctx *engine.GameContext) *PlayerSystem {
	return &PlayerSystem{ctx: ctx}
}

// Priority returns the system's priority.
func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

// Update runs the player phase of the tick.
func (s *PlayerSystem) Update(world *engine.World, dt time.Duration) {
	player, ok := world.Players.Get(s.ctx.Player)
	if !ok {
		return
	}

	sec := dt.Seconds()
	in := s.ctx.Input()

	// Opposite keys held together cancel out
	if in.RotateLeft {
		player.Direction += s.ctx.Config.Player.RotationSpeed * sec
	}
	if in.RotateRight {
		player.Direction -= s.ctx.Config.Player.RotationSpeed * sec
	}
	player.Direction = vmath.WrapAngle(player.Direction)

	player.WeaponCooldown -= sec
	if player.WeaponCooldown < 0 {
		player.WeaponCooldown = 0
	}

	if in.Fire && player.WeaponCooldown == 0 {
		pos, _ := world.Positions.Get(s.ctx.Player)
		SpawnBullet(s.ctx, pos.X, pos.Y, player.Direction)
		player.WeaponCooldown = s.ctx.Config.Bullet.Cooldown
	}

	// The ship never translates in this game, but the position invariant is
	// enforced here so a future movement policy cannot escape the arena
	if pos, ok := world.Positions.Get(s.ctx.Player); ok {
		halfW := s.ctx.Config.ArenaHalfWidth()
		halfH := s.ctx.Config.ArenaHalfHeight()
		pos.X = vmath.Clamp(pos.X, -halfW, halfW)
		pos.Y = vmath.Clamp(pos.Y, -halfH, halfH)
		world.Positions.Add(s.ctx.Player, pos)
	}

	world.Players.Add(s.ctx.Player, player)
}
