package vmath

// AABB is an axis-aligned bounding box described by its center and half-extents.
type AABB struct {
	X, Y                  float64
	HalfWidth, HalfHeight float64
}

// Overlaps reports whether two boxes intersect.
// Touching edges do not count as overlap, so a box sitting exactly on
// another's edge resolves as a miss.
func (a AABB) Overlaps(b AABB) bool {
	if a.X+a.HalfWidth <= b.X-b.HalfWidth || b.X+b.HalfWidth <= a.X-a.HalfWidth {
		return false
	}
	if a.Y+a.HalfHeight <= b.Y-b.HalfHeight || b.Y+b.HalfHeight <= a.Y-a.HalfHeight {
		return false
	}
	return true
}

// Contains reports whether point (px, py) lies inside the box.
func (a AABB) Contains(px, py float64) bool {
	return px >= a.X-a.HalfWidth && px <= a.X+a.HalfWidth &&
		py >= a.Y-a.HalfHeight && py <= a.Y+a.HalfHeight
}
