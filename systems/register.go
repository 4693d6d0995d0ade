package systems

import "github.com/johndunne/defender-game/engine"

// RegisterSystems installs the full tick pipeline on the context's world in
// phase order: player, bullet, enemy, collision, cull, score.
func RegisterSystems(ctx *engine.GameContext, policy MovementPolicy) {
	ctx.World.AddSystem(NewPlayerSystem(ctx))
	ctx.World.AddSystem(NewBulletSystem(ctx))
	ctx.World.AddSystem(NewEnemySystem(ctx, policy))
	ctx.World.AddSystem(NewCollisionSystem(ctx))
	ctx.World.AddSystem(NewCullSystem())
	ctx.World.AddSystem(NewScoreSystem(ctx))
}
