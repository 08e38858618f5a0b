package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidInput, "bad point %q", "1,2"), `INVALID_INPUT: bad point "1,2"`},
		{"wrapped", Wrap(ErrCodeInvalidDocument, errors.New("eof"), "decode %s", "a.toml"), "INVALID_DOCUMENT: decode a.toml: eof"},
		{"not found", NotFound("arm"), `NOT_FOUND: no entry named "arm"`},
		{"out of range", OutOfRange("depth", 3, 2), "OUT_OF_RANGE: depth 3 out of range [0, 2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(ErrCodeFileNotFound, cause, "open")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestCodeLookup(t *testing.T) {
	coded := NotFound("x")
	tests := []struct {
		name     string
		err      error
		code     Code
		wantIs   bool
		wantCode Code
	}{
		{"direct", coded, ErrCodeNotFound, true, ErrCodeNotFound},
		{"other code", coded, ErrCodeEmptyStack, false, ErrCodeNotFound},
		{"fmt wrapped", fmt.Errorf("load: %w", coded), ErrCodeNotFound, true, ErrCodeNotFound},
		{"plain error", errors.New("x"), ErrCodeNotFound, false, ""},
		{"nil", nil, ErrCodeNotFound, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeEmptyStack, "stack is empty"), "stack is empty"},
		{"coded cause", Wrap(ErrCodeInvalidDocument, New(ErrCodeInvalidInput, "bad axis"), "transform[0]"), "transform[0]: bad axis"},
		{"plain cause", Wrap(ErrCodeFileNotFound, errors.New("no such file"), "open a.toml"), "open a.toml: no such file"},
		{"fmt wrapped", fmt.Errorf("load: %w", NotFound("arm")), `no entry named "arm"`},
		{"plain", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
