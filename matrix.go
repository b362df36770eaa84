package geom3

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 homogeneous transform, indexed as m[row][col].
//
// Points are treated as column vectors (x, y, z, 1), so the translation lives
// in the last column and composition reads right to left:
//
//	(A * B) * p == A * (B * p)
//
// The zero value is the zero matrix, not the identity. Use [Identity] or
// [Mat4.SetIdentity] to start from the identity.
type Mat4 [4][4]float32

// Identity is the identity transform.
var Identity = Mat4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// NewMat4 creates a matrix from rows. Alternatively, you can convert a
// [4][4]float32 to [Mat4] directly.
func NewMat4(rows [4][4]float32) Mat4 {
	return Mat4(rows)
}

// Rows returns the matrix's cells in row-major order.
func (m Mat4) Rows() [4][4]float32 {
	return m
}

// SetRows overwrites every cell of the matrix.
func (m *Mat4) SetRows(rows [4][4]float32) {
	*m = rows
}

// SetIdentity resets m to the identity.
func (m *Mat4) SetIdentity() {
	*m = Identity
}

// ColumnMajor returns the cells in column-major order, which is the layout
// OpenGL-style APIs expect for uniform upload.
func (m Mat4) ColumnMajor() [16]float32 {
	var out [16]float32
	for col := range 4 {
		for row := range 4 {
			out[col*4+row] = m[row][col]
		}
	}
	return out
}

// Mul returns the matrix product m * o. When applied to a point, o takes
// effect first, followed by m.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for i := range 4 {
		for j := range 4 {
			var sum float32
			for k := range 4 {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// MulInPlace sets m to m * o.
func (m *Mat4) MulInPlace(o Mat4) {
	*m = m.Mul(o)
}

// Then creates m followed by o.
//
// Equivalent to "o * m"
func (m Mat4) Then(o Mat4) Mat4 {
	return o.Mul(m)
}

// ThenTranslate creates m followed by a translation of v.
//
// Equivalent to "Translate(v) * m"
func (m Mat4) ThenTranslate(v Vec3) Mat4 {
	return Translate(v).Mul(m)
}

// ThenScale creates m followed by a scale of (x, y, z).
//
// Equivalent to "Scale(x, y, z) * m"
func (m Mat4) ThenScale(x, y, z float32) Mat4 {
	return Scale(x, y, z).Mul(m)
}

// ThenRotateZ creates m followed by a rotation of th radians about the z axis.
//
// Equivalent to "RotateZ(th) * m"
func (m Mat4) ThenRotateZ(th float32) Mat4 {
	return RotateZ(th).Mul(m)
}

// Apply transforms pt by m.
//
// The point is promoted to (x, y, z, 1) and multiplied by m. If the resulting
// w is nonzero, x, y, and z are divided by it. If w is zero, the divide is
// skipped and w is treated as 1.
func (m Mat4) Apply(pt Point) Point {
	in := [4]float32{pt.X, pt.Y, pt.Z, 1}
	var out [4]float32
	for i := range 4 {
		for j := range 4 {
			out[i] += m[i][j] * in[j]
		}
	}

	wInv := float32(1)
	if out[3] != 0 {
		wInv = 1 / out[3]
	}
	return Point{
		X: out[0] * wInv,
		Y: out[1] * wInv,
		Z: out[2] * wInv,
	}
}

// Transpose returns m with rows and columns swapped.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for i := range 4 {
		for j := range 4 {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Translation returns the translation component of m.
func (m Mat4) Translation() Vec3 {
	return Vec3{
		X: m[0][3],
		Y: m[1][3],
		Z: m[2][3],
	}
}

func (m Mat4) IsInf() bool {
	for i := range 4 {
		for j := range 4 {
			if math32.IsInf(m[i][j], 0) {
				return true
			}
		}
	}
	return false
}

func (m Mat4) IsNaN() bool {
	for i := range 4 {
		for j := range 4 {
			if math32.IsNaN(m[i][j]) {
				return true
			}
		}
	}
	return false
}

func (m Mat4) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "| %g %g %g %g |", row[0], row[1], row[2], row[3])
	}
	return sb.String()
}
