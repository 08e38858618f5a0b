package xform

import (
	errs "github.com/matzehuels/xformstack/pkg/errors"
)

// ErrEmptyStack is returned by [Stack.Pop] on an empty stack.
var ErrEmptyStack = errs.New(errs.ErrCodeEmptyStack, "empty transformation stack was popped")

// Stack is a chain addressed by depth from the top: depth 0 is the most
// recently pushed entry. Name lookups resolve to the topmost match, so a
// later push shadows earlier entries with the same name.
type Stack[O any] struct {
	Chain[O]
}

// NewStack returns an empty stack composing with alg.
func NewStack[O any](alg Algebra[O]) *Stack[O] {
	return &Stack[O]{Chain: newChain(alg)}
}

// position converts a depth to a chain index, panicking when out of range.
func (s *Stack[O]) position(depth int) int {
	n := len(s.entries)
	if depth < 0 || depth >= n {
		panic(errs.OutOfRange("depth", depth, n))
	}
	return n - depth - 1
}

// Push places t under name on top of the stack.
func (s *Stack[O]) Push(name string, t Transformation[O]) {
	s.add(newEntry(&s.Chain, name, t))
}

// Pop removes the top entry and returns its transformation.
// It returns [ErrEmptyStack] if the stack has no entries; the stack stays usable.
func (s *Stack[O]) Pop() (Transformation[O], error) {
	top := s.last()
	if top == nil {
		return nil, ErrEmptyStack
	}
	t := top.t
	s.removeLast()
	return t, nil
}

// RemoveTop removes the top entry. It does nothing on an empty stack.
func (s *Stack[O]) RemoveTop() {
	s.removeLast()
}

// Top returns the transformation on top of the stack.
func (s *Stack[O]) Top() (Transformation[O], bool) {
	top := s.last()
	if top == nil {
		return nil, false
	}
	return top.t, true
}

// Depth returns the depth of the topmost entry named name, or [NotFound].
func (s *Stack[O]) Depth(name string) int {
	i := s.lastIndexOf(name)
	if i == NotFound {
		return NotFound
	}
	return len(s.entries) - i - 1
}

// Get returns the transformation of the topmost entry named name.
func (s *Stack[O]) Get(name string) (Transformation[O], bool) {
	i := s.lastIndexOf(name)
	if i == NotFound {
		return nil, false
	}
	return s.entries[i].t, true
}

// At returns the transformation at depth. It panics if depth is out of range.
func (s *Stack[O]) At(depth int) Transformation[O] {
	return s.entries[s.position(depth)].t
}

// ReplaceAt replaces the transformation at depth, keeping the entry's name.
// It panics if depth is out of range.
func (s *Stack[O]) ReplaceAt(depth int, t Transformation[O]) {
	s.entries[s.position(depth)].setTransformation(t)
}

// Replace replaces the transformation of the topmost entry named name.
func (s *Stack[O]) Replace(name string, t Transformation[O]) error {
	i := s.lastIndexOf(name)
	if i == NotFound {
		return notFound(name)
	}
	s.entries[i].setTransformation(t)
	return nil
}

// InsertAt inserts t under name so that it ends up at depth.
// Depth 0 is equivalent to Push. It panics unless 0 <= depth <= Len().
func (s *Stack[O]) InsertAt(depth int, name string, t Transformation[O]) {
	n := len(s.entries)
	if depth < 0 || depth > n {
		panic(errs.OutOfRange("depth", depth, n+1))
	}
	s.insertAt(n-depth, newEntry(&s.Chain, name, t))
}

// Names returns the entry names from the top of the stack down.
func (s *Stack[O]) Names() []string {
	n := len(s.entries)
	names := make([]string, n)
	for i, e := range s.entries {
		names[n-i-1] = e.name
	}
	return names
}

// Bookmark captures the current top of the stack. See [Bookmark.Recall].
func (s *Stack[O]) Bookmark() *Bookmark[O] {
	return &Bookmark[O]{stack: s, entry: s.last()}
}
