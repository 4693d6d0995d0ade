package engine

import "time"

// System is one phase of the tick pipeline.
type System interface {
	// Update advances the system by the elapsed fixed step
	Update(world *World, dt time.Duration)
	// Priority orders systems within a tick; lower values run first
	Priority() int
}
