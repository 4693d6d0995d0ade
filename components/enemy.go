package components

// EnemyComponent tags an enemy and carries its archetype-derived collision
// half-extents.
type EnemyComponent struct {
	HalfWidth, HalfHeight float64
}
