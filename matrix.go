package gridkit

import "errors"

// ErrSingularMatrix is returned when a matrix with a zero determinant is
// inverted or solved against.
var ErrSingularMatrix = errors.New("gridkit: singular matrix")

// Matrix is a 2x2 integer linear map.
//
//	| A  B |
//	| C  D |
type Matrix struct {
	A, B, C, D int
}

// Det returns the determinant AD - BC.
func (m Matrix) Det() int {
	return m.A*m.D - m.B*m.C
}

// Adjugate returns the adjugate matrix (D, -B, -C, A). For an invertible
// matrix this is the inverse scaled by the determinant.
func (m Matrix) Adjugate() Matrix {
	return Matrix{m.D, -m.B, -m.C, m.A}
}

// Apply returns m * v.
func (m Matrix) Apply(v Vector2) Vector2 {
	return Vector2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// Solve returns x such that m * x == v, truncated toward zero. The adjugate
// is applied first and the determinant divided out last, so integer
// truncation happens once. Solve(Apply(v)) == v holds for every v.
func (m Matrix) Solve(v Vector2) (Vector2, error) {
	det := m.Det()
	if det == 0 {
		return Vector2{}, ErrSingularMatrix
	}
	adj := m.Adjugate().Apply(v)
	return Vector2{adj.X / det, adj.Y / det}, nil
}

// InvertMatrix returns (D/det, -B/det, -C/det, A/det) using truncating
// integer division. A matrix whose determinant is zero yields
// ErrSingularMatrix.
//
// Entries smaller than the determinant truncate to zero, so transforms that
// must round-trip use Solve instead.
func InvertMatrix(m Matrix) (Matrix, error) {
	det := m.Det()
	if det == 0 {
		return Matrix{}, ErrSingularMatrix
	}
	return Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
	}, nil
}
