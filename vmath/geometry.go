package vmath

// GenerateRectangleVertices produces the two triangles covering a rectangle
// centered at (cx, cy) with the given half-extents. Vertices are emitted
// counter-clockwise, six per rectangle.
func GenerateRectangleVertices(cx, cy, halfWidth, halfHeight float64) []Vec2 {
	left := cx - halfWidth
	right := cx + halfWidth
	bottom := cy - halfHeight
	top := cy + halfHeight

	return []Vec2{
		{left, bottom},
		{right, bottom},
		{right, top},

		{left, bottom},
		{right, top},
		{left, top},
	}
}

// GenerateTriangleVertices produces an isosceles triangle centered at (cx, cy)
// with its apex on +X, so a ship facing angle 0 points right. Vertices are
// emitted counter-clockwise.
func GenerateTriangleVertices(cx, cy, halfWidth, halfHeight float64) []Vec2 {
	return []Vec2{
		{cx + halfWidth, cy},
		{cx - halfWidth, cy + halfHeight},
		{cx - halfWidth, cy - halfHeight},
	}
}
