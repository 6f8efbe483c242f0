package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without cause",
			err:      Input("bad value"),
			expected: "[INPUT_ERROR] bad value",
		},
		{
			name:     "with cause",
			err:      Parsing("pricing document", fmt.Errorf("unexpected token")),
			expected: "[PARSING_ERROR] pricing document: unexpected token",
		},
		{
			name:     "not found",
			err:      NotFound("vertical", "roof-painting"),
			expected: "[NOT_FOUND] vertical not found: roof-painting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestIsTypeThroughWrapping(t *testing.T) {
	base := NotSupported("field colour")
	wrapped := fmt.Errorf("set field: %w", base)

	if !IsType(wrapped, TypeNotSupported) {
		t.Errorf("expected wrapped error to match %s", TypeNotSupported)
	}
	if IsType(wrapped, TypeInput) {
		t.Errorf("expected wrapped error not to match %s", TypeInput)
	}
	if got := TypeOf(wrapped); got != TypeNotSupported {
		t.Errorf("expected type %s, got %s", TypeNotSupported, got)
	}
	if TypeOf(stderrors.New("plain")) != "" {
		t.Error("expected empty type for a plain error")
	}
}

func TestWithContext(t *testing.T) {
	err := NotFound("vertical", "x")
	if err.Context["vertical"] != "x" {
		t.Errorf("expected context vertical=x, got %v", err.Context)
	}
	err.WithContext("path", "/industry/x")
	if len(err.Context) != 2 {
		t.Errorf("expected 2 context entries, got %d", len(err.Context))
	}
}
