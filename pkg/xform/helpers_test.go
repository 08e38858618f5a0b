package xform

import "testing"

// concat composes strings by concatenation: associative, identity "", and
// non-commutative, which makes composition order visible in test output.
type concat struct{}

func (concat) Identity() string           { return "" }
func (concat) Combine(a, b string) string { return a + b }

// counting is a settable transformation that records how often its operand
// was consumed.
type counting struct {
	Value[string]
	reads int
}

func newCounting(v string) *counting {
	return &counting{Value: Value[string]{alg: concat{}, v: v}}
}

func (c *counting) Operand() string {
	c.reads++
	return c.Value.Operand()
}

func (c *counting) Combine(other string) string {
	c.reads++
	return c.Value.Combine(other)
}

func val(v string) *Value[string] { return NewValue[string](concat{}, v) }

func mustPanic(t *testing.T, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
	return nil
}
