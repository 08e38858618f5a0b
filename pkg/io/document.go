package io

import (
	"fmt"

	errs "github.com/matzehuels/xformstack/pkg/errors"
)

// Chain kinds.
const (
	KindGroup = "group"
	KindStack = "stack"
)

// Transform types.
const (
	TypeTranslate = "translate"
	TypeRotate    = "rotate"
	TypeScale     = "scale"
	TypeMatrix    = "matrix"
	TypeGroup     = "group"
	TypeStack     = "stack"
)

// Document is a scene document: a named chain of transforms.
// An empty Kind means [KindStack].
type Document struct {
	Kind       string      `toml:"kind" json:"kind"`
	Label      string      `toml:"label,omitempty" json:"label,omitempty"`
	Transforms []Transform `toml:"transform" json:"transforms"`
}

// Transform is one named entry of a document. Which fields apply depends
// on Type:
//
//   - translate: X, Y, Z offsets (default 0)
//   - rotate: Axis and Degrees
//   - scale: X, Y, Z factors (default 1)
//   - matrix: Matrix, 4 rows of 4 values
//   - group, stack: nested Transforms and an optional Label
type Transform struct {
	Name       string      `toml:"name" json:"name"`
	Type       string      `toml:"type" json:"type"`
	Label      string      `toml:"label,omitempty" json:"label,omitempty"`
	X          *float64    `toml:"x,omitempty" json:"x,omitempty"`
	Y          *float64    `toml:"y,omitempty" json:"y,omitempty"`
	Z          *float64    `toml:"z,omitempty" json:"z,omitempty"`
	Axis       string      `toml:"axis,omitempty" json:"axis,omitempty"`
	Degrees    float64     `toml:"degrees,omitempty" json:"degrees,omitempty"`
	Matrix     [][]float64 `toml:"matrix,omitempty" json:"matrix,omitempty"`
	Transforms []Transform `toml:"transform,omitempty" json:"transforms,omitempty"`
}

// Validate checks the whole document tree and returns the first problem
// as an INVALID_DOCUMENT error naming the offending transform.
func (d *Document) Validate() error {
	switch d.Kind {
	case "", KindGroup, KindStack:
	default:
		return errs.New(errs.ErrCodeInvalidDocument, "unknown kind %q (want group or stack)", d.Kind)
	}
	return validateTransforms("transform", d.Transforms)
}

// Count returns the number of transforms in the tree, nested ones included.
func (d *Document) Count() int {
	return count(d.Transforms)
}

func count(ts []Transform) int {
	n := len(ts)
	for _, t := range ts {
		n += count(t.Transforms)
	}
	return n
}

func validateTransforms(path string, ts []Transform) error {
	for i, t := range ts {
		at := fmt.Sprintf("%s[%d]", path, i)
		if err := t.validate(at); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transform) validate(at string) error {
	if err := errs.ValidateEntryName(t.Name); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidDocument, err, "%s: bad name", at)
	}
	at = fmt.Sprintf("%s (%s)", at, t.Name)

	switch t.Type {
	case TypeTranslate, TypeScale:
	case TypeRotate:
		if err := errs.ValidateAxis(t.Axis); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidDocument, err, "%s: bad axis", at)
		}
	case TypeMatrix:
		if len(t.Matrix) != 4 {
			return errs.New(errs.ErrCodeInvalidDocument, "%s: matrix needs 4 rows, got %d", at, len(t.Matrix))
		}
		for r, row := range t.Matrix {
			if len(row) != 4 {
				return errs.New(errs.ErrCodeInvalidDocument, "%s: matrix row %d needs 4 values, got %d", at, r, len(row))
			}
		}
	case TypeGroup, TypeStack:
		return validateTransforms(at+".transform", t.Transforms)
	case "":
		return errs.New(errs.ErrCodeInvalidDocument, "%s: missing type", at)
	default:
		return errs.New(errs.ErrCodeInvalidDocument, "%s: unknown type %q", at, t.Type)
	}

	if len(t.Transforms) > 0 {
		return errs.New(errs.ErrCodeInvalidDocument, "%s: only group and stack transforms may nest", at)
	}
	return nil
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
