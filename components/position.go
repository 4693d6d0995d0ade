package components

// PositionComponent is an entity's center in arena units. The arena origin is
// the window center; +X right, +Y up.
type PositionComponent struct {
	X, Y float64
}
