package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/johndunne/defender-game/config"
	"github.com/johndunne/defender-game/constants"
	"github.com/johndunne/defender-game/engine"
	"github.com/johndunne/defender-game/input"
	"github.com/johndunne/defender-game/render"
	"github.com/johndunne/defender-game/systems"
	"github.com/johndunne/defender-game/vmath"
)

// Game drives one simulation tick per Update call. Ebiten's fixed 60 TPS
// matches the tick interval, and unlike the terminal it reports held keys
// directly, so no latch sits between input and the tick.
type Game struct {
	ctx    *engine.GameContext
	meshes map[render.EntityKind]render.Mesh
}

// NewGame builds a ready-to-run session from config.
func NewGame(cfg *config.Config) *Game {
	ctx := engine.NewGameContext(cfg)
	systems.RegisterSystems(ctx, nil)
	systems.InitializeWorld(ctx)

	return &Game{
		ctx:    ctx,
		meshes: render.BuildMeshes(cfg),
	}
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.ctx.SetInput(input.Snapshot{
		RotateLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		RotateRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:        ebiten.IsKeyPressed(ebiten.KeySpace),
	})
	g.ctx.World.Update(constants.TickInterval)
	return nil
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x18, 0xff})

	r := &windowRenderer{
		screen: screen,
		cfg:    g.ctx.Config,
	}
	render.DrawWorld(g.ctx, g.meshes, r)
}

// Layout renders at arena resolution and lets the engine scale the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.ctx.Config.Game.Width), int(g.ctx.Config.Game.Height)
}

// windowRenderer draws meshes onto the frame's target image. World
// coordinates put the origin at arena center with +Y up; screen coordinates
// put it top-left with +Y down.
type windowRenderer struct {
	screen *ebiten.Image
	cfg    *config.Config
}

func (r *windowRenderer) RenderEntity(kind render.EntityKind, x, y, direction float64, mesh render.Mesh) {
	clr := rgba(mesh.Color)

	// Triangle lists arrive in groups of three; each is drawn by stroking
	// its edges, which reads fine at these mesh sizes
	for i := 0; i+3 <= len(mesh.Vertices); i += 3 {
		a := r.project(mesh.Vertices[i].Rotate(direction), x, y)
		b := r.project(mesh.Vertices[i+1].Rotate(direction), x, y)
		c := r.project(mesh.Vertices[i+2].Rotate(direction), x, y)

		vector.StrokeLine(r.screen, a.X, a.Y, b.X, b.Y, 2, clr, true)
		vector.StrokeLine(r.screen, b.X, b.Y, c.X, c.Y, 2, clr, true)
		vector.StrokeLine(r.screen, c.X, c.Y, a.X, a.Y, 2, clr, true)
	}
}

func (r *windowRenderer) RenderText(label, content string) {
	ebitenutil.DebugPrintAt(r.screen, fmt.Sprintf("%s: %s", label, content), 8, 8)
}

type screenPoint struct {
	X, Y float32
}

func (r *windowRenderer) project(v vmath.Vec2, worldX, worldY float64) screenPoint {
	return screenPoint{
		X: float32(worldX + v.X + r.cfg.ArenaHalfWidth()),
		Y: float32(r.cfg.ArenaHalfHeight() - (worldY + v.Y)),
	}
}

func rgba(c [4]float64) color.RGBA {
	to := func(v float64) uint8 {
		return uint8(vmath.Clamp(v, 0, 1) * 255)
	}
	return color.RGBA{to(c[0]), to(c[1]), to(c[2]), to(c[3])}
}
