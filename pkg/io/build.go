package io

import (
	"math"

	"github.com/matzehuels/xformstack/pkg/affine"
	"github.com/matzehuels/xformstack/pkg/xform"
)

// Chain is a matrix group or stack as seen by tooling.
type Chain interface {
	affine.Transformation
	ID() string
	Label() string
	SetLabel(string)
	Len() int
	Snapshot() []xform.EntryInfo[affine.Matrix]
}

// Scene is a built document: a live chain of matrix transformations.
type Scene struct {
	Kind  string
	Root  Chain
	count int
}

// Build validates doc and instantiates its transforms.
func Build(doc *Document) (*Scene, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	kind := doc.Kind
	if kind == "" {
		kind = KindStack
	}
	return &Scene{
		Kind:  kind,
		Root:  buildChain(kind, doc.Label, doc.Transforms),
		count: doc.Count(),
	}, nil
}

// Label returns the root chain's label.
func (s *Scene) Label() string { return s.Root.Label() }

// Count returns the number of transforms in the scene, nested ones included.
func (s *Scene) Count() int { return s.count }

// Operand returns the composed matrix of the whole scene.
func (s *Scene) Operand() affine.Matrix { return s.Root.Operand() }

// Stack returns the root as a stack, or nil when the root is a group.
func (s *Scene) Stack() *xform.Stack[affine.Matrix] {
	st, _ := s.Root.(*xform.Stack[affine.Matrix])
	return st
}

// Release tears down the scene, nested chains and primitives included.
func (s *Scene) Release() { release(s.Root) }

func release(c Chain) {
	for _, e := range c.Snapshot() {
		if nested, ok := e.Transformation.(Chain); ok {
			release(nested)
		} else {
			e.Transformation.Release()
		}
	}
	c.Release()
}

func buildChain(kind, label string, ts []Transform) Chain {
	var (
		c   Chain
		add func(string, affine.Transformation)
	)
	if kind == KindGroup {
		g := affine.NewGroup()
		c, add = g, g.Add
	} else {
		st := affine.NewStack()
		c, add = st, st.Push
	}
	if label != "" {
		c.SetLabel(label)
	}
	for _, t := range ts {
		add(t.Name, t.build())
	}
	return c
}

// build assumes t has been validated.
func (t *Transform) build() affine.Transformation {
	switch t.Type {
	case TypeTranslate:
		return affine.NewTranslate(valueOr(t.X, 0), valueOr(t.Y, 0), valueOr(t.Z, 0))
	case TypeScale:
		return affine.NewScale(valueOr(t.X, 1), valueOr(t.Y, 1), valueOr(t.Z, 1))
	case TypeRotate:
		axis, _ := affine.ParseAxis(t.Axis)
		return affine.NewRotate(axis, t.Degrees*math.Pi/180)
	case TypeMatrix:
		var m affine.Matrix
		for r := range m {
			copy(m[r][:], t.Matrix[r])
		}
		return affine.NewFixed(m)
	default:
		label := t.Label
		if label == "" {
			label = t.Name
		}
		return buildChain(t.Type, label, t.Transforms)
	}
}
