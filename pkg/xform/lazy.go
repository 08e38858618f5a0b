package xform

// Lazy is a transformation whose operand depends on external state and is
// recomputed only when read after an invalidation.
//
// The operand starts stale, so the first read always recomputes. Assigning
// an operand with [Lazy.Set] bypasses recomputation entirely.
type Lazy[O any] struct {
	Notifier
	alg       Algebra[O]
	v         O
	stale     bool
	recompute func() O
	extract   func(O)
	watches   []*Subscription
}

// NewLazy returns a lazy transformation that obtains its operand from recompute.
func NewLazy[O any](alg Algebra[O], recompute func() O) *Lazy[O] {
	if recompute == nil {
		panic("xform: nil recompute function")
	}
	return &Lazy[O]{
		alg:       alg,
		v:         alg.Identity(),
		stale:     true,
		recompute: recompute,
	}
}

// OnSet registers fn to derive external parameters from an operand
// assigned through Set. Only one callback is kept.
func (l *Lazy[O]) OnSet(fn func(O)) {
	l.extract = fn
}

// Operand returns the operand, recomputing it first if stale.
func (l *Lazy[O]) Operand() O {
	l.refresh()
	return l.v
}

// Combine returns Combine(l.Operand(), other).
func (l *Lazy[O]) Combine(other O) O {
	l.refresh()
	return l.alg.Combine(l.v, other)
}

// Set assigns the operand directly, marks it fresh and notifies subscribers.
func (l *Lazy[O]) Set(v O) {
	l.v = v
	if l.extract != nil {
		l.extract(v)
	}
	l.stale = false
	l.Notify()
}

// Invalidate marks the operand stale and notifies subscribers.
// Recomputation is deferred until the next read.
func (l *Lazy[O]) Invalidate() {
	l.stale = true
	l.Notify()
}

// Stale reports whether the next read will recompute the operand.
func (l *Lazy[O]) Stale() bool { return l.stale }

// Watch invalidates l whenever src changes. The subscription is cancelled
// by Release.
func (l *Lazy[O]) Watch(src Source) *Subscription {
	sub := src.Subscribe(l.Invalidate)
	l.watches = append(l.watches, sub)
	return sub
}

// Release cancels every watch and detaches all subscribers.
func (l *Lazy[O]) Release() {
	for _, sub := range l.watches {
		sub.Cancel()
	}
	l.watches = nil
	l.Notifier.Release()
}

func (l *Lazy[O]) refresh() {
	if !l.stale {
		return
	}
	l.v = l.recompute()
	l.stale = false
}
