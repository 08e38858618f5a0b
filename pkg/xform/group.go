package xform

import "iter"

// Group is a chain addressed by insertion index (0 = earliest) or by name,
// where names resolve to the first match. Insertion order is composition
// order: the group's operand is the composed operand of the last inserted
// entry.
type Group[O any] struct {
	Chain[O]
}

// NewGroup returns an empty group composing with alg.
func NewGroup[O any](alg Algebra[O]) *Group[O] {
	return &Group[O]{Chain: newChain(alg)}
}

// Add appends t under name.
func (g *Group[O]) Add(name string, t Transformation[O]) {
	g.add(newEntry(&g.Chain, name, t))
}

// InsertAt inserts t under name so that it ends up at index i.
// It panics unless 0 <= i <= Len().
func (g *Group[O]) InsertAt(i int, name string, t Transformation[O]) {
	g.insertAt(i, newEntry(&g.Chain, name, t))
}

// Remove removes the first entry named name.
func (g *Group[O]) Remove(name string) error {
	i := g.firstIndexOf(name)
	if i == NotFound {
		return notFound(name)
	}
	g.removeAt(i)
	return nil
}

// RemoveAt removes the entry at index i. It panics if i is out of range.
func (g *Group[O]) RemoveAt(i int) {
	g.removeAt(i)
}

// IndexOf returns the index of the first entry named name, or [NotFound].
func (g *Group[O]) IndexOf(name string) int {
	return g.firstIndexOf(name)
}

// Get returns the transformation of the first entry named name.
func (g *Group[O]) Get(name string) (Transformation[O], bool) {
	i := g.firstIndexOf(name)
	if i == NotFound {
		return nil, false
	}
	return g.entries[i].t, true
}

// At returns the transformation at index i. It panics if i is out of range.
func (g *Group[O]) At(i int) Transformation[O] {
	return g.entryAt(i).t
}

// Set replaces the transformation of the first entry named name, keeping
// the entry's position and name.
func (g *Group[O]) Set(name string, t Transformation[O]) error {
	i := g.firstIndexOf(name)
	if i == NotFound {
		return notFound(name)
	}
	g.entries[i].setTransformation(t)
	return nil
}

// SetAt replaces the transformation at index i. It panics if i is out of range.
func (g *Group[O]) SetAt(i int, t Transformation[O]) {
	g.entryAt(i).setTransformation(t)
}

// Names returns the entry names in insertion order.
func (g *Group[O]) Names() []string {
	names := make([]string, len(g.entries))
	for i, e := range g.entries {
		names[i] = e.name
	}
	return names
}

// All iterates over name/transformation pairs in insertion order. The
// sequence is taken from a snapshot, so the group may be modified during
// iteration without affecting it.
func (g *Group[O]) All() iter.Seq2[string, Transformation[O]] {
	type pair struct {
		name string
		t    Transformation[O]
	}
	snapshot := make([]pair, len(g.entries))
	for i, e := range g.entries {
		snapshot[i] = pair{e.name, e.t}
	}
	return func(yield func(string, Transformation[O]) bool) {
		for _, p := range snapshot {
			if !yield(p.name, p.t) {
				return
			}
		}
	}
}
