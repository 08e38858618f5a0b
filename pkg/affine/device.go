package affine

import "fmt"

// Slot identifies one of the transform slots of a rendering device.
type Slot int

const (
	SlotWorld Slot = iota
	SlotView
	SlotProjection
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotWorld:
		return "world"
	case SlotView:
		return "view"
	case SlotProjection:
		return "projection"
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// Device receives composed matrices.
type Device interface {
	SetTransform(slot Slot, m Matrix)
}

// Apply hands the composed operand of t to dev's slot. Empty chains apply
// the identity, because an empty chain's operand is the identity.
func Apply(dev Device, slot Slot, t Transformation) {
	dev.SetTransform(slot, t.Operand())
}

// Recorder is a Device that keeps the last matrix per slot.
// It is useful for tests and for printing what a real device would receive.
type Recorder struct {
	slots map[Slot]Matrix
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{slots: make(map[Slot]Matrix)}
}

// SetTransform records m for slot.
func (r *Recorder) SetTransform(slot Slot, m Matrix) {
	r.slots[slot] = m
}

// Transform returns the last matrix applied to slot.
func (r *Recorder) Transform(slot Slot) (Matrix, bool) {
	m, ok := r.slots[slot]
	return m, ok
}
