package components

// BulletComponent carries a bullet's velocity, remaining lifetime, and
// collision half-extents.
type BulletComponent struct {
	// VelX and VelY are arena units per second
	VelX, VelY float64
	// Lifetime is seconds remaining before forced despawn
	Lifetime              float64
	HalfWidth, HalfHeight float64
}
