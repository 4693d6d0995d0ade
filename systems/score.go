package systems

import (
	"time"

	"github.com/johndunne/defender-game/constants"
	"github.com/johndunne/defender-game/engine"
)

// ScoreSystem folds the tick's hit count into the session score. It runs
// last so the score a renderer reads after the tick already includes this
// tick's kills.
type ScoreSystem struct {
	ctx *engine.GameContext
}

// NewScoreSystem creates the score system.
func NewScoreSystem(ctx *engine.GameContext) *ScoreSystem {
	return &ScoreSystem{ctx: ctx}
}

// Priority returns the system's priority.
func (s *ScoreSystem) Priority() int {
	return constants.PriorityScore
}

// Update applies this tick's hits to the score.
func (s *ScoreSystem) Update(world *engine.World, dt time.Duration) {
	s.ctx.State.AddScore(s.ctx.State.TakeTickHits())
}
