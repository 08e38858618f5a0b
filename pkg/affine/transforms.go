package affine

import (
	"math"

	"github.com/matzehuels/xformstack/pkg/xform"
)

// Algebra is the matrix operand algebra: identity matrix and matrix product.
type Algebra struct{}

// Identity returns the identity matrix.
func (Algebra) Identity() Matrix { return Identity() }

// Combine returns a·b.
func (Algebra) Combine(a, b Matrix) Matrix { return Multiply(a, b) }

var _ xform.Algebra[Matrix] = Algebra{}

// Transformation is a matrix transformation.
type Transformation = xform.Transformation[Matrix]

// NewGroup returns an empty matrix group.
func NewGroup() *xform.Group[Matrix] { return xform.NewGroup[Matrix](Algebra{}) }

// NewStack returns an empty matrix stack.
func NewStack() *xform.Stack[Matrix] { return xform.NewStack[Matrix](Algebra{}) }

// NewFixed returns a transformation with a fixed, settable matrix.
func NewFixed(m Matrix) *xform.Value[Matrix] { return xform.NewValue[Matrix](Algebra{}, m) }

// Axis names a rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// ParseAxis parses "x", "y" or "z" (case-insensitive).
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "x", "X":
		return AxisX, true
	case "y", "Y":
		return AxisY, true
	case "z", "Z":
		return AxisZ, true
	}
	return AxisZ, false
}

// Translate is a translation whose matrix is rebuilt lazily from its offsets.
type Translate struct {
	*xform.Lazy[Matrix]
	x, y, z float64
}

// NewTranslate returns a translation by (x, y, z).
func NewTranslate(x, y, z float64) *Translate {
	t := &Translate{x: x, y: y, z: z}
	t.Lazy = xform.NewLazy[Matrix](Algebra{}, func() Matrix {
		return Translation(t.x, t.y, t.z)
	})
	t.OnSet(func(m Matrix) {
		t.x, t.y, t.z = m[3][0], m[3][1], m[3][2]
	})
	return t
}

// Offset returns the translation offsets.
func (t *Translate) Offset() (x, y, z float64) { return t.x, t.y, t.z }

// SetOffset changes the offsets; the matrix is rebuilt on the next read.
func (t *Translate) SetOffset(x, y, z float64) {
	t.x, t.y, t.z = x, y, z
	t.Invalidate()
}

// Rotate is a rotation about one axis whose matrix is rebuilt lazily.
type Rotate struct {
	*xform.Lazy[Matrix]
	axis  Axis
	angle float64
}

// NewRotate returns a rotation by angle radians about axis.
func NewRotate(axis Axis, angle float64) *Rotate {
	r := &Rotate{axis: axis, angle: angle}
	r.Lazy = xform.NewLazy[Matrix](Algebra{}, func() Matrix {
		switch r.axis {
		case AxisX:
			return RotationX(r.angle)
		case AxisY:
			return RotationY(r.angle)
		default:
			return RotationZ(r.angle)
		}
	})
	r.OnSet(func(m Matrix) {
		switch r.axis {
		case AxisX:
			r.angle = math.Atan2(m[1][2], m[1][1])
		case AxisY:
			r.angle = math.Atan2(m[2][0], m[0][0])
		default:
			r.angle = math.Atan2(m[0][1], m[0][0])
		}
	})
	return r
}

// Axis returns the rotation axis.
func (r *Rotate) Axis() Axis { return r.axis }

// Angle returns the rotation angle in radians.
func (r *Rotate) Angle() float64 { return r.angle }

// SetAngle changes the angle; the matrix is rebuilt on the next read.
func (r *Rotate) SetAngle(angle float64) {
	r.angle = angle
	r.Invalidate()
}

// Scale is a scaling whose matrix is rebuilt lazily from its factors.
type Scale struct {
	*xform.Lazy[Matrix]
	x, y, z float64
}

// NewScale returns a scaling by (x, y, z).
func NewScale(x, y, z float64) *Scale {
	s := &Scale{x: x, y: y, z: z}
	s.Lazy = xform.NewLazy[Matrix](Algebra{}, func() Matrix {
		return Scaling(s.x, s.y, s.z)
	})
	s.OnSet(func(m Matrix) {
		s.x, s.y, s.z = m[0][0], m[1][1], m[2][2]
	})
	return s
}

// Factors returns the scale factors.
func (s *Scale) Factors() (x, y, z float64) { return s.x, s.y, s.z }

// SetFactors changes the factors; the matrix is rebuilt on the next read.
func (s *Scale) SetFactors(x, y, z float64) {
	s.x, s.y, s.z = x, y, z
	s.Invalidate()
}
