package systems

import (
	"time"

	"github.com/johndunne/defender-game/constants"
	"github.com/johndunne/defender-game/engine"
)

// CullSystem destroys every entity marked for death this tick. It runs after
// collision so every earlier phase sees a consistent registry.
type CullSystem struct{}

// NewCullSystem creates the cull system.
func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

// Priority returns the system's priority.
func (s *CullSystem) Priority() int {
	return constants.PriorityCull
}

// Update destroys all marked entities.
func (s *CullSystem) Update(world *engine.World, dt time.Duration) {
	for _, e := range world.Deaths.All() {
		world.DestroyEntity(e)
	}
}
