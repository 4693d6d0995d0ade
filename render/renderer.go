package render

import (
	"fmt"

	"github.com/johndunne/defender-game/constants"
	"github.com/johndunne/defender-game/engine"
)

// Renderer is the device boundary. Implementations draw a positioned,
// rotated mesh and overlay text; DrawWorld supplies world coordinates with
// +Y up and the origin at arena center.
type Renderer interface {
	RenderEntity(kind EntityKind, x, y, direction float64, mesh Mesh)
	RenderText(label, content string)
}

// FormatScore renders the running score as the fixed-width HUD string.
func FormatScore(score int64) string {
	return fmt.Sprintf("%0*d", constants.ScoreDigits, score)
}

// DrawWorld walks the live entities and issues one draw call each, then the
// score line. It only reads; calling it between ticks never perturbs the
// simulation.
func DrawWorld(ctx *engine.GameContext, meshes map[EntityKind]Mesh, r Renderer) {
	world := ctx.World

	for _, e := range world.Enemies.All() {
		if pos, ok := world.Positions.Get(e); ok {
			r.RenderEntity(KindEnemy, pos.X, pos.Y, 0, meshes[KindEnemy])
		}
	}
	for _, e := range world.Bullets.All() {
		if pos, ok := world.Positions.Get(e); ok {
			r.RenderEntity(KindBullet, pos.X, pos.Y, 0, meshes[KindBullet])
		}
	}
	if player, ok := world.Players.Get(ctx.Player); ok {
		if pos, ok := world.Positions.Get(ctx.Player); ok {
			r.RenderEntity(KindPlayer, pos.X, pos.Y, player.Direction, meshes[KindPlayer])
		}
	}

	r.RenderText(constants.ScoreLabel, FormatScore(ctx.State.Score()))
}
