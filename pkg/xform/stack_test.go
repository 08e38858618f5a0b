package xform

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	errs "github.com/matzehuels/xformstack/pkg/errors"
)

func TestStackPushPopOrder(t *testing.T) {
	s := NewStack[string](concat{})
	pushed := make([]*Value[string], 5)
	for i := range pushed {
		pushed[i] = val(fmt.Sprint(i))
		s.Push(fmt.Sprintf("t%d", i), pushed[i])
	}

	for i := len(pushed) - 1; i >= 0; i-- {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop() error = %v", err)
		}
		if got != Transformation[string](pushed[i]) {
			t.Errorf("Pop() returned %q, want %q", got.Operand(), pushed[i].Operand())
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStackPopEmpty(t *testing.T) {
	s := NewStack[string](concat{})
	_, err := s.Pop()
	if !errors.Is(err, ErrEmptyStack) {
		t.Fatalf("Pop() error = %v, want ErrEmptyStack", err)
	}
	if !errs.Is(err, errs.ErrCodeEmptyStack) {
		t.Errorf("Pop() error code = %v", errs.GetCode(err))
	}

	// The stack stays usable.
	s.Push("a", val("a"))
	if got := s.Operand(); got != "a" {
		t.Errorf("Operand() = %q, want a", got)
	}
	s.RemoveTop()
	s.RemoveTop()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStackNameShadowing(t *testing.T) {
	lower, upper := val("l"), val("u")
	s := NewStack[string](concat{})
	s.Push("X", lower)
	s.Push("Y", val("y"))
	s.Push("X", upper)

	if got := s.lastIndexOf("X"); got != 2 {
		t.Errorf("lastIndexOf(X) = %d, want 2", got)
	}
	if got := s.Depth("X"); got != 0 {
		t.Errorf("Depth(X) = %d, want 0", got)
	}
	if got := s.Depth("Y"); got != 1 {
		t.Errorf("Depth(Y) = %d, want 1", got)
	}
	if got := s.Depth("Z"); got != NotFound {
		t.Errorf("Depth(Z) = %d, want NotFound", got)
	}
	if tr, ok := s.Get("X"); !ok || tr != Transformation[string](upper) {
		t.Errorf("Get(X) did not return the topmost entry")
	}

	s.Pop()
	if tr, _ := s.Get("X"); tr != Transformation[string](lower) {
		t.Errorf("Get(X) after pop did not uncover the shadowed entry")
	}
}

func TestStackDepthAddressing(t *testing.T) {
	s := NewStack[string](concat{})
	s.Push("a", val("a"))
	s.Push("b", val("b"))
	s.Push("c", val("c"))

	if got := s.At(0).Operand(); got != "c" {
		t.Errorf("At(0) = %q, want c", got)
	}
	if got := s.At(2).Operand(); got != "a" {
		t.Errorf("At(2) = %q, want a", got)
	}
	if top, ok := s.Top(); !ok || top.Operand() != "c" {
		t.Errorf("Top() = %v, %v", top, ok)
	}

	s.ReplaceAt(1, val("B"))
	if got := s.Operand(); got != "cBa" {
		t.Errorf("Operand() after ReplaceAt(1) = %q, want cBa", got)
	}
	if got, want := s.Names(), []string{"c", "b", "a"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	if err := s.Replace("a", val("A")); err != nil {
		t.Fatalf("Replace(a) error = %v", err)
	}
	if err := s.Replace("nope", val("n")); !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("Replace(nope) error = %v, want NOT_FOUND", err)
	}
	if got := s.Operand(); got != "cBA" {
		t.Errorf("Operand() after Replace(a) = %q, want cBA", got)
	}

	mustPanic(t, func() { s.At(3) })
	mustPanic(t, func() { s.ReplaceAt(-1, val("x")) })
}

func TestStackInsertAtDepth(t *testing.T) {
	s := NewStack[string](concat{})
	s.Push("a", val("a"))
	s.Push("c", val("c"))

	s.InsertAt(1, "b", val("b"))
	if got := s.Depth("b"); got != 1 {
		t.Errorf("Depth(b) = %d, want 1", got)
	}
	if got := s.Operand(); got != "cba" {
		t.Errorf("Operand() = %q, want cba", got)
	}

	s.InsertAt(0, "top", val("t"))
	s.InsertAt(s.Len(), "bottom", val("_"))
	if got, want := s.Names(), []string{"top", "c", "b", "a", "bottom"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if got := s.Operand(); got != "tcba_" {
		t.Errorf("Operand() = %q, want tcba_", got)
	}

	orphan := val("o")
	mustPanic(t, func() { s.InsertAt(s.Len()+1, "o", orphan) })
	if orphan.Subscribers() != 0 {
		t.Error("rejected insert subscribed to its transformation")
	}
}
