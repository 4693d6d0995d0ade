// Package render turns world state into draw calls. The simulation never
// imports this package; frontends implement Renderer over their device and
// feed it through DrawWorld after each tick.
package render

import (
	"github.com/johndunne/defender-game/config"
	"github.com/johndunne/defender-game/vmath"
)

// EntityKind selects the mesh and color used to draw an entity.
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindBullet
)

// Mesh is a flat triangle list in model space, centered at the origin, plus
// its RGBA color. Meshes are built once from config and shared by every
// entity of the same kind.
type Mesh struct {
	Vertices []vmath.Vec2
	Color    [4]float64
}

// HalfExtents returns the mesh's model-space half width and half height.
func (m Mesh) HalfExtents() (float64, float64) {
	var maxX, maxY float64
	for _, v := range m.Vertices {
		if x := v.X; x > maxX {
			maxX = x
		} else if -x > maxX {
			maxX = -x
		}
		if y := v.Y; y > maxY {
			maxY = y
		} else if -y > maxY {
			maxY = -y
		}
	}
	return maxX, maxY
}

// BuildMeshes constructs the per-kind meshes from the archetype config.
// The player is a triangle with its apex on +X so facing angle 0 points
// right; enemies and bullets are rectangles.
func BuildMeshes(cfg *config.Config) map[EntityKind]Mesh {
	return map[EntityKind]Mesh{
		KindPlayer: {
			Vertices: vmath.GenerateTriangleVertices(0, 0, cfg.Player.Dimensions[0]/2, cfg.Player.Dimensions[1]/2),
			Color:    cfg.Player.Color,
		},
		KindEnemy: {
			Vertices: vmath.GenerateRectangleVertices(0, 0, cfg.Enemy.Dimensions[0]/2, cfg.Enemy.Dimensions[1]/2),
			Color:    cfg.Enemy.Color,
		},
		KindBullet: {
			Vertices: vmath.GenerateRectangleVertices(0, 0, cfg.Bullet.Dimensions[0]/2, cfg.Bullet.Dimensions[1]/2),
			Color:    cfg.Bullet.Color,
		},
	}
}
