package io

import (
	"fmt"
	"math"

	"github.com/matzehuels/xformstack/pkg/affine"
	"github.com/matzehuels/xformstack/pkg/xform"
)

// TypeOf returns the document type name of t, or "transform" for
// transformations no document can express directly.
func TypeOf(t affine.Transformation) string {
	switch t := t.(type) {
	case *affine.Translate:
		return TypeTranslate
	case *affine.Rotate:
		return TypeRotate
	case *affine.Scale:
		return TypeScale
	case *xform.Value[affine.Matrix]:
		return TypeMatrix
	case Chain:
		return kindOf(t)
	}
	return "transform"
}

// Describe summarises the parameters of t on one line.
func Describe(t affine.Transformation) string {
	switch t := t.(type) {
	case *affine.Translate:
		x, y, z := t.Offset()
		return fmt.Sprintf("translate(%g, %g, %g)", x, y, z)
	case *affine.Rotate:
		return fmt.Sprintf("rotate %s %g°", t.Axis(), round(t.Angle()*180/math.Pi))
	case *affine.Scale:
		x, y, z := t.Factors()
		return fmt.Sprintf("scale(%g, %g, %g)", x, y, z)
	case Chain:
		return fmt.Sprintf("%s %q (%d)", kindOf(t), t.Label(), t.Len())
	}
	return TypeOf(t)
}

func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
