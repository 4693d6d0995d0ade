package constants

import "time"

// TickInterval is the fixed simulation step (~60 Hz).
const TickInterval = 16 * time.Millisecond

// System priorities. Lower values run first; the tick pipeline depends on
// this exact order: player fires before bullets move, collisions resolve
// before culling, and scoring sees the final tick state.
const (
	PriorityPlayer    = 10
	PriorityBullet    = 20
	PriorityEnemy     = 30
	PriorityCollision = 40
	PriorityCull      = 90
	PriorityScore     = 100
)

// ScoreLabel is the UI label the score text renders under.
const ScoreLabel = "Score"

// ScoreDigits is the zero-padded width of the rendered score value.
const ScoreDigits = 5
