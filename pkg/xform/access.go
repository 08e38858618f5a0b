package xform

import (
	"slices"

	errs "github.com/matzehuels/xformstack/pkg/errors"
)

// NotFound is returned by index lookups when no entry has the given name.
const NotFound = -1

// firstIndexOf returns the index of the earliest entry named name.
func (c *Chain[O]) firstIndexOf(name string) int {
	for i, e := range c.entries {
		if e.name == name {
			return i
		}
	}
	return NotFound
}

// lastIndexOf returns the index of the latest entry named name.
func (c *Chain[O]) lastIndexOf(name string) int {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].name == name {
			return i
		}
	}
	return NotFound
}

func (c *Chain[O]) add(e *entry[O]) {
	c.entries = append(c.entries, e)
	c.invalidate()
}

// insertAt places e at index i, 0 <= i <= Len().
func (c *Chain[O]) insertAt(i int, e *entry[O]) {
	if i < 0 || i > len(c.entries) {
		e.release()
		panic(errs.OutOfRange("insert index", i, len(c.entries)+1))
	}
	c.entries = slices.Insert(c.entries, i, e)
	c.invalidate()
}

// replaceAt swaps the entry at index i for e and releases the old one.
func (c *Chain[O]) replaceAt(i int, e *entry[O]) {
	c.checkIndex(i)
	old := c.entries[i]
	c.entries[i] = e
	old.release()
	c.invalidate()
}

// removeAt drops the entry at index i. The entry sliding into slot i now
// composes onto a different predecessor, so it is marked dirty.
func (c *Chain[O]) removeAt(i int) {
	c.checkIndex(i)
	old := c.entries[i]
	c.entries = slices.Delete(c.entries, i, i+1)
	old.release()
	if i < len(c.entries) {
		c.entries[i].dirty = true
	}
	c.invalidate()
}

// removeLast drops the last entry if any. No remaining cache depends on the
// last entry, so dependers are notified without marking the chain dirty.
func (c *Chain[O]) removeLast() {
	n := len(c.entries)
	if n == 0 {
		return
	}
	old := c.entries[n-1]
	c.entries[n-1] = nil
	c.entries = c.entries[:n-1]
	old.release()
	c.Notify()
}

func (c *Chain[O]) entryAt(i int) *entry[O] {
	c.checkIndex(i)
	return c.entries[i]
}

func (c *Chain[O]) last() *entry[O] {
	if len(c.entries) == 0 {
		return nil
	}
	return c.entries[len(c.entries)-1]
}

func (c *Chain[O]) checkIndex(i int) {
	if i < 0 || i >= len(c.entries) {
		panic(errs.OutOfRange("index", i, len(c.entries)))
	}
}

func notFound(name string) error {
	return errs.NotFound(name)
}
