package components

// PlayerComponent holds the ship's facing and weapon state. Exactly one
// entity carries this component for the duration of a session.
type PlayerComponent struct {
	// Direction is the facing angle in radians, kept in [0, 2π)
	Direction float64
	// WeaponCooldown is seconds until the weapon may fire again, floored at 0
	WeaponCooldown float64
}
