package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// TerminalRenderer draws the arena into a tcell screen. World coordinates
// are scaled to whatever cell grid the terminal offers, with the top row
// reserved for the HUD. Cells are roughly twice as tall as wide, so the
// vertical scale is derived independently rather than kept square.
type TerminalRenderer struct {
	screen tcell.Screen

	arenaWidth  float64
	arenaHeight float64
}

// NewTerminalRenderer creates a renderer over an initialized screen.
func NewTerminalRenderer(screen tcell.Screen, arenaWidth, arenaHeight float64) *TerminalRenderer {
	return &TerminalRenderer{
		screen:      screen,
		arenaWidth:  arenaWidth,
		arenaHeight: arenaHeight,
	}
}

// BeginFrame clears the backing buffer.
func (r *TerminalRenderer) BeginFrame() {
	r.screen.Clear()
}

// EndFrame flushes the frame to the terminal.
func (r *TerminalRenderer) EndFrame() {
	r.screen.Show()
}

// RenderEntity draws one entity as a filled block of cells covering its
// footprint. The player additionally gets a facing rune at its center.
func (r *TerminalRenderer) RenderEntity(kind EntityKind, x, y, direction float64, mesh Mesh) {
	w, h := r.screen.Size()
	if w <= 0 || h <= 1 {
		return
	}
	gridH := h - 1 // row 0 is the HUD

	col, row := r.project(x, y, w, gridH)
	halfW, halfH := mesh.HalfExtents()
	cellsW := int(halfW / r.arenaWidth * float64(w))
	cellsH := int(halfH / r.arenaHeight * float64(gridH))

	style := tcell.StyleDefault.Background(rgbColor(mesh.Color))
	for dy := -cellsH; dy <= cellsH; dy++ {
		for dx := -cellsW; dx <= cellsW; dx++ {
			cx, cy := col+dx, row+dy
			if cx < 0 || cx >= w || cy < 1 || cy > gridH {
				continue
			}
			r.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}

	if kind == KindPlayer {
		fg := tcell.StyleDefault.Foreground(rgbColor(mesh.Color))
		if row >= 1 && row <= gridH && col >= 0 && col < w {
			r.screen.SetContent(col, row, facingRune(direction), nil, fg)
		}
	}
}

// RenderText writes "label: content" into the HUD row.
func (r *TerminalRenderer) RenderText(label, content string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	col := 1
	for _, ch := range label + ": " + content {
		r.screen.SetContent(col, 0, ch, nil, style)
		col++
	}
}

// project maps arena coordinates (origin center, +Y up) to a cell in the
// playfield grid below the HUD row.
func (r *TerminalRenderer) project(x, y float64, w, gridH int) (int, int) {
	col := int((x/r.arenaWidth + 0.5) * float64(w))
	row := int((0.5 - y/r.arenaHeight) * float64(gridH))
	if col < 0 {
		col = 0
	} else if col >= w {
		col = w - 1
	}
	if row < 0 {
		row = 0
	} else if row >= gridH {
		row = gridH - 1
	}
	return col, row + 1
}

// facingRune picks an arrow for the nearest compass octant of direction.
func facingRune(direction float64) rune {
	octant := int(math.Round(direction/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}[octant]
}

func rgbColor(c [4]float64) tcell.Color {
	return tcell.NewRGBColor(channel(c[0]), channel(c[1]), channel(c[2]))
}

func channel(v float64) int32 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return int32(v * 255)
}
