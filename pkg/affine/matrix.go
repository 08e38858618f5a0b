package affine

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a 4×4 row-major transformation matrix using the row-vector
// convention: a point p is transformed as p·M, so Multiply(a, b) applies a
// first and b second.
type Matrix [4][4]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product a·b.
func Multiply(a, b Matrix) Matrix {
	var m Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			m[i][j] = sum
		}
	}
	return m
}

// Translation returns a matrix translating by (x, y, z).
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[3][0], m[3][1], m[3][2] = x, y, z
	return m
}

// Scaling returns a matrix scaling by (x, y, z).
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m[0][0], m[1][1], m[2][2] = x, y, z
	return m
}

// RotationX returns a matrix rotating by angle radians about the x axis.
func RotationX(angle float64) Matrix {
	s, c := math.Sincos(angle)
	m := Identity()
	m[1][1], m[1][2] = c, s
	m[2][1], m[2][2] = -s, c
	return m
}

// RotationY returns a matrix rotating by angle radians about the y axis.
func RotationY(angle float64) Matrix {
	s, c := math.Sincos(angle)
	m := Identity()
	m[0][0], m[0][2] = c, -s
	m[2][0], m[2][2] = s, c
	return m
}

// RotationZ returns a matrix rotating by angle radians about the z axis.
func RotationZ(angle float64) Matrix {
	s, c := math.Sincos(angle)
	m := Identity()
	m[0][0], m[0][1] = c, s
	m[1][0], m[1][1] = -s, c
	return m
}

// TransformPoint returns (x, y, z, 1)·m, divided by w when w is not 1.
func (m Matrix) TransformPoint(x, y, z float64) (float64, float64, float64) {
	in := [4]float64{x, y, z, 1}
	var out [4]float64
	for j := 0; j < 4; j++ {
		for k := 0; k < 4; k++ {
			out[j] += in[k] * m[k][j]
		}
	}
	if out[3] != 0 && out[3] != 1 {
		return out[0] / out[3], out[1] / out[3], out[2] / out[3]
	}
	return out[0], out[1], out[2]
}

// ApproxEqual reports whether every element of m and o differs by at most eps.
func (m Matrix) ApproxEqual(o Matrix, eps float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(m[i][j]-o[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether m is the identity within a small tolerance.
func (m Matrix) IsIdentity() bool {
	return m.ApproxEqual(Identity(), 1e-12)
}

// Rows returns the matrix formatted row by row with the given precision.
func (m Matrix) Rows(prec int) []string {
	rows := make([]string, 4)
	for i := range m {
		cells := make([]string, 4)
		for j, v := range m[i] {
			if math.Abs(v) < 0.5*math.Pow10(-prec) {
				v = 0 // avoid "-0.00"
			}
			cells[j] = fmt.Sprintf("%.*f", prec, v)
		}
		rows[i] = strings.Join(cells, " ")
	}
	return rows
}

// String formats the matrix on a single line.
func (m Matrix) String() string {
	return "[" + strings.Join(m.Rows(3), "; ") + "]"
}
