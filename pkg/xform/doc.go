// Package xform maintains ordered chains of composable transformations and
// produces their cumulative composition on demand, recomputing only what a
// change actually affected.
//
// # Overview
//
// A [Transformation] wraps an operand (typically a matrix) and knows how to
// combine itself with another operand. Transformations announce changes to
// their subscribers through an explicit observer list ([Notifier]).
//
// A chain holds named entries, each binding a name to a transformation and
// caching that transformation's composed operand: the entry's own operand
// combined with everything before it. Chains are transformations themselves,
// so a [Group] or [Stack] can be an entry of another chain and change
// notifications climb through every level of nesting.
//
//	g := xform.NewGroup[affine.Matrix](affine.Algebra{})
//	g.Add("camera", affine.NewTranslate(0, 0, -5))
//	g.Add("spin", affine.NewRotate(affine.AxisZ, math.Pi/2))
//	m := g.Operand()
//
// # Operands
//
// The operand algebra is supplied through [Algebra]: an identity value and an
// associative, generally non-commutative combine operation. For entries
// e[0..n) of a chain the composed operands satisfy
//
//	composed(e[0]) = local(e[0])
//	composed(e[i]) = Combine(local(e[i]), composed(e[i-1]))
//
// and the chain's own operand is composed(e[n-1]), or the identity when the
// chain is empty.
//
// # Lazy Recalculation
//
// Mutations only mark flags. An entry whose transformation changed is marked
// dirty together with its chain; the next read of the chain's operand walks
// the entries from the front, skips the clean prefix, and recomputes every
// entry from the first dirty one to the end. Entries after a dirty entry are
// recomputed even when they are clean themselves, because their input changed.
//
// # Groups and Stacks
//
// [Group] addresses entries by insertion index or by name (first match).
// [Stack] addresses entries by depth from the top (0 = most recently pushed)
// and resolves names to the topmost match, mirroring stack shadowing.
//
// A [Bookmark] remembers the current top of a stack. Recalling it pops
// everything pushed since, which gives scoped push/pop symmetry:
//
//	defer s.Bookmark().Release()
//	s.Push("local", t)
//
// # Errors
//
// Popping an empty stack returns [ErrEmptyStack]. Name-addressed operations
// report a NOT_FOUND coded error, while the raw index lookups return the
// [NotFound] sentinel. Out-of-range indices and depths are programming errors
// and panic with an OUT_OF_RANGE coded error.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Notifications are
// delivered synchronously on the calling goroutine and may re-enter other
// chains; they only set flags and notify, so propagation always terminates.
package xform
