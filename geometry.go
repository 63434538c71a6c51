package gridkit

import "math"

// geometryEpsilon is the relative tolerance of the area-sum test.
const geometryEpsilon = 1e-6

// TriangleArea returns the unsigned area of the triangle (p1, p2, p3).
func TriangleArea(p1, p2, p3 Vec2) float64 {
	cross := p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y)
	return math.Abs(cross) / 2
}

// PointInTriangle reports whether p lies inside or on the edge of the
// triangle (p1, p2, p3). The three sub-triangles formed by p and each edge
// must sum to the area of the whole triangle.
func PointInTriangle(p1, p2, p3, p Vec2) bool {
	area := TriangleArea(p1, p2, p3)
	sum := TriangleArea(p, p2, p3) + TriangleArea(p1, p, p3) + TriangleArea(p1, p2, p)
	tol := geometryEpsilon * math.Max(area, 1)
	return math.Abs(sum-area) <= tol
}
