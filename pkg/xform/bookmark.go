package xform

import "github.com/matzehuels/xformstack/pkg/observability"

// Bookmark remembers the entry that was on top of a stack when it was taken
// (or that the stack was empty). It never keeps the stack or the entry alive
// on its own and must not be recalled after the stack is released.
type Bookmark[O any] struct {
	stack *Stack[O]
	entry *entry[O]
}

// Recall pops entries until the bookmarked entry is on top again or the
// stack is empty. If the bookmarked entry was already popped, recall drains
// the stack rather than failing. It returns the number of entries popped.
func (b *Bookmark[O]) Recall() int {
	if b.stack == nil {
		return 0
	}
	popped := 0
	for {
		top := b.stack.last()
		if top == nil || top == b.entry {
			break
		}
		b.stack.removeLast()
		popped++
	}
	if popped > 0 {
		observability.Chain().OnRecall(b.stack.id, popped)
	}
	return popped
}

// Release recalls the bookmark and drops its references. Calling Release
// more than once is harmless.
func (b *Bookmark[O]) Release() {
	b.Recall()
	b.stack = nil
	b.entry = nil
}
