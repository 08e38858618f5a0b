package xform

// Algebra supplies the operand operations a chain needs.
//
// Combine must be associative; it need not be commutative. Identity must
// satisfy Combine(Identity(), x) == x and Combine(x, Identity()) == x.
type Algebra[O any] interface {
	Identity() O
	Combine(a, b O) O
}

// Source is anything that announces changes to subscribers.
type Source interface {
	// Subscribe registers fn to be called whenever the source changes.
	// The returned subscription must be cancelled when no longer needed.
	Subscribe(fn func()) *Subscription
}

// Transformation is a single composable node.
//
// Operand returns the operand this transformation produces. Combine returns
// this ∘ other, that is Combine(Operand(), other) under the transformation's
// algebra. Subscribers are notified whenever Operand may have changed.
// Release detaches every subscriber.
type Transformation[O any] interface {
	Source
	Operand() O
	Combine(other O) O
	Release()
}

// Value is a transformation with a fixed, settable operand.
type Value[O any] struct {
	Notifier
	alg Algebra[O]
	v   O
}

// NewValue returns a transformation producing v.
func NewValue[O any](alg Algebra[O], v O) *Value[O] {
	return &Value[O]{alg: alg, v: v}
}

// Operand returns the current operand.
func (t *Value[O]) Operand() O { return t.v }

// Combine returns Combine(t.Operand(), other).
func (t *Value[O]) Combine(other O) O { return t.alg.Combine(t.v, other) }

// Set replaces the operand and notifies subscribers.
func (t *Value[O]) Set(v O) {
	t.v = v
	t.Notify()
}
