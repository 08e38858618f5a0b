package xform

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/xformstack/pkg/observability"
)

// Chain is an ordered sequence of named entries whose composed operand is
// recalculated lazily. Chain is the shared base of [Group] and [Stack]; it
// has no public mutation API of its own.
//
// A chain is itself a [Transformation] and can be nested in other chains.
type Chain[O any] struct {
	Notifier
	alg     Algebra[O]
	entries []*entry[O]
	dirty   bool
	id      string
	label   string
}

func newChain[O any](alg Algebra[O]) Chain[O] {
	if alg == nil {
		panic("xform: nil algebra")
	}
	return Chain[O]{alg: alg, id: uuid.NewString()}
}

// ID returns the chain's unique instance identifier.
func (c *Chain[O]) ID() string { return c.id }

// Label returns the human-readable label, or the ID if none was set.
func (c *Chain[O]) Label() string {
	if c.label == "" {
		return c.id
	}
	return c.label
}

// SetLabel sets a human-readable label used by tooling.
func (c *Chain[O]) SetLabel(label string) { c.label = label }

// Len returns the number of entries.
func (c *Chain[O]) Len() int { return len(c.entries) }

// Algebra returns the operand algebra the chain composes with.
func (c *Chain[O]) Algebra() Algebra[O] { return c.alg }

// Dirty reports whether the next read will run a recalculation pass.
func (c *Chain[O]) Dirty() bool { return c.dirty }

// Operand returns the composed operand of the whole chain: the identity
// when empty, otherwise the composed operand of the last entry.
func (c *Chain[O]) Operand() O {
	if len(c.entries) == 0 {
		return c.alg.Identity()
	}
	c.recalculate()
	return c.entries[len(c.entries)-1].composed
}

// Combine returns Combine(c.Operand(), other). An empty chain returns other
// unchanged.
func (c *Chain[O]) Combine(other O) O {
	if len(c.entries) == 0 {
		return other
	}
	c.recalculate()
	return c.alg.Combine(c.entries[len(c.entries)-1].composed, other)
}

// Release releases every entry, then detaches the chain's own subscribers.
// The transformations themselves are not released; their owners keep them.
func (c *Chain[O]) Release() {
	for _, e := range c.entries {
		e.release()
	}
	c.entries = nil
	c.dirty = false
	c.Notifier.Release()
}

// EntryInfo describes one entry of a chain.
type EntryInfo[O any] struct {
	Name           string
	Transformation Transformation[O]
	Local          O
	Composed       O
}

// Snapshot recalculates the chain and describes every entry in chain order.
func (c *Chain[O]) Snapshot() []EntryInfo[O] {
	c.recalculate()
	out := make([]EntryInfo[O], len(c.entries))
	for i, e := range c.entries {
		out[i] = EntryInfo[O]{
			Name:           e.name,
			Transformation: e.t,
			Local:          e.t.Operand(),
			Composed:       e.composed,
		}
	}
	return out
}

// invalidate marks the whole chain stale and tells dependers.
func (c *Chain[O]) invalidate() {
	c.dirty = true
	observability.Chain().OnInvalidate(c.id)
	c.Notify()
}

// recalculate brings every composed operand up to date. Entries before the
// first dirty entry keep their cache; every entry from there on is rebuilt
// from its predecessor.
func (c *Chain[O]) recalculate() {
	if !c.dirty {
		return
	}
	start := time.Now()

	recompute := false
	recomputed := 0
	for i, e := range c.entries {
		if !recompute && !e.dirty {
			continue
		}
		recompute = true
		if i == 0 {
			e.composed = e.t.Operand()
		} else {
			e.composed = e.t.Combine(c.entries[i-1].composed)
		}
		e.dirty = false
		recomputed++
	}
	c.dirty = false

	observability.Chain().OnRecalculate(c.id, recomputed, len(c.entries), time.Since(start))
}

// entry binds a name to a transformation occupying one slot of a chain.
type entry[O any] struct {
	chain    *Chain[O]
	name     string
	t        Transformation[O]
	sub      *Subscription
	composed O
	dirty    bool
}

func newEntry[O any](c *Chain[O], name string, t Transformation[O]) *entry[O] {
	if t == nil {
		panic("xform: nil transformation")
	}
	e := &entry[O]{chain: c, name: name, t: t, dirty: true}
	e.sub = t.Subscribe(e.changed)
	return e
}

// setTransformation swaps the transformation in place. The effect on caches
// is the same as a change of the old transformation's operand.
func (e *entry[O]) setTransformation(t Transformation[O]) {
	if t == nil {
		panic("xform: nil transformation")
	}
	e.sub.Cancel()
	e.t = t
	e.sub = t.Subscribe(e.changed)
	e.dirty = true
	e.chain.invalidate()
}

// release cancels the subscription and drops references.
func (e *entry[O]) release() {
	e.sub.Cancel()
	e.sub = nil
	e.t = nil
	e.chain = nil
}

func (e *entry[O]) changed() {
	e.dirty = true
	e.chain.invalidate()
}
