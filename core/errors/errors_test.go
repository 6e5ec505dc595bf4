package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with field",
			err:      &ValidationError{Field: "kind", Message: "unknown run kind"},
			wantMsg:  "validation failed for kind: unknown run kind",
			wantBase: ErrInvalidInput,
		},
		{
			name:     "without field",
			err:      &ValidationError{Message: "invalid format"},
			wantMsg:  "validation failed: invalid format",
			wantBase: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("bad value")
		err := &ValidationError{Field: "count", Message: "must be positive", Err: underlyingErr}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestRangeError(t *testing.T) {
	tests := []struct {
		name    string
		err     *RangeError
		wantMsg string
	}{
		{
			name:    "point",
			err:     &RangeError{Operation: "insert", Offset: 9, Length: 4},
			wantMsg: "insert: offset 9 outside document of length 4",
		},
		{
			name:    "span",
			err:     &RangeError{Operation: "delete", Offset: 2, Count: 5, Length: 4},
			wantMsg: "delete: span [2,7) outside document of length 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrOutOfRange) {
				t.Errorf("errors.Is(%v, ErrOutOfRange) = false", tt.err)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with input",
			err:      &ParseError{Format: "reference", Input: "3..16", Message: "unexpected token"},
			wantMsg:  `failed to parse reference "3..16": unexpected token`,
			wantBase: ErrInvalidInput,
		},
		{
			name:     "without input",
			err:      &ParseError{Format: "xpath", Message: "empty expression"},
			wantMsg:  "failed to parse xpath: empty expression",
			wantBase: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("lexer: invalid input text")
		err := &ParseError{Format: "reference", Input: "?", Message: "invalid syntax", Err: underlyingErr}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestUnsupportedError(t *testing.T) {
	tests := []struct {
		name     string
		err      *UnsupportedError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with reason",
			err:      &UnsupportedError{Feature: "output", Reason: "pdf not available"},
			wantMsg:  "unsupported output: pdf not available",
			wantBase: ErrUnsupported,
		},
		{
			name:     "without reason",
			err:      &UnsupportedError{Feature: "format"},
			wantMsg:  "unsupported format",
			wantBase: ErrUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewValidation", func(t *testing.T) {
		err := NewValidation("style", "must not be empty")
		if err.Field != "style" || err.Message != "must not be empty" {
			t.Errorf("NewValidation() = %+v, want Field=style, Message=must not be empty", err)
		}
	})

	t.Run("NewRange", func(t *testing.T) {
		err := NewRange("insert", 5, 0, 3)
		if err.Operation != "insert" || err.Offset != 5 || err.Count != 0 || err.Length != 3 {
			t.Errorf("NewRange() = %+v, unexpected values", err)
		}
	})

	t.Run("NewParse", func(t *testing.T) {
		err := NewParse("reference", "x", "invalid syntax")
		if err.Format != "reference" || err.Input != "x" || err.Message != "invalid syntax" {
			t.Errorf("NewParse() = %+v, unexpected values", err)
		}
	})

	t.Run("NewUnsupported", func(t *testing.T) {
		err := NewUnsupported("output", "unknown view")
		if err.Feature != "output" || err.Reason != "unknown view" {
			t.Errorf("NewUnsupported() = %+v, unexpected values", err)
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("wraps error", func(t *testing.T) {
		baseErr := fmt.Errorf("base error")
		wrapped := Wrap(baseErr, "context message")
		if wrapped == nil {
			t.Fatal("Wrap() returned nil")
		}
		if !errors.Is(wrapped, baseErr) {
			t.Errorf("Wrap() error does not unwrap to base error")
		}
		wantMsg := "context message: base error"
		if wrapped.Error() != wantMsg {
			t.Errorf("Wrap() = %q, want %q", wrapped.Error(), wantMsg)
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil) = %v, want nil", got)
		}
	})
}

func TestWrapf(t *testing.T) {
	baseErr := fmt.Errorf("base error")
	wrapped := Wrapf(baseErr, "note %d", 4)
	if !errors.Is(wrapped, baseErr) {
		t.Errorf("Wrapf() error does not unwrap to base error")
	}
	if wrapped.Error() != "note 4: base error" {
		t.Errorf("Wrapf() = %q, want %q", wrapped.Error(), "note 4: base error")
	}
	if got := Wrapf(nil, "context %s", "test"); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
}

func TestIsAndAs(t *testing.T) {
	err := Wrap(NewRange("insert", 10, 0, 2), "note")
	if !Is(err, ErrOutOfRange) {
		t.Error("Is() failed to match RangeError to ErrOutOfRange")
	}
	var rangeErr *RangeError
	if !As(err, &rangeErr) {
		t.Fatal("As() failed to match RangeError")
	}
	if rangeErr.Offset != 10 {
		t.Errorf("As() rangeErr.Offset = %d, want %d", rangeErr.Offset, 10)
	}
}
