package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "no benchmark named 'copy'")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "no benchmark named 'copy'" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeTypeMismatch, "lookup failed", cause)

	if err.Code != ErrCodeTypeMismatch {
		t.Errorf("expected code %s, got %s", ErrCodeTypeMismatch, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("bad input")
	ctx := map[string]any{
		"input":       int64(64),
		"valid_range": "[0, 63]",
	}

	err := WrapWithContext(ErrCodeOutOfRange, "pow2 axis rejected input", cause, ctx)

	if err.Code != ErrCodeOutOfRange {
		t.Errorf("expected code %s, got %s", ErrCodeOutOfRange, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["valid_range"] != "[0, 63]" {
		t.Errorf("expected valid_range to be [0, 63]")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeTypeMismatch, "failed", errors.New("root cause")),
			expected: "[TYPE_MISMATCH] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("x"), ""},
		{"structured", New(ErrCodeIndexOutOfRange, "x"), ErrCodeIndexOutOfRange},
		{"fmt wrapped", fmt.Errorf("outer: %w", New(ErrCodeNotFound, "x")), ErrCodeNotFound},
		{"outermost wins", Wrap(ErrCodeTypeMismatch, "x", New(ErrCodeNotFound, "y")), ErrCodeTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeNotFound, "no value with name 'a'")
	outer := Wrap(ErrCodeTypeMismatch, "error looking up int64 value 'a'", inner)

	if !IsCode(outer, ErrCodeTypeMismatch) {
		t.Error("expected outer code to match")
	}
	if !IsCode(outer, ErrCodeNotFound) {
		t.Error("expected inner code to match")
	}
	if IsCode(outer, ErrCodeOutOfRange) {
		t.Error("unexpected match for unrelated code")
	}
	if IsCode(nil, ErrCodeNotFound) {
		t.Error("nil error should not match")
	}
	if !IsCode(fmt.Errorf("ctx: %w", outer), ErrCodeNotFound) {
		t.Error("expected match through fmt wrapping")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeOutOfRange,
		ErrCodeTypeMismatch,
		ErrCodeIndexOutOfRange,
		ErrCodeUnknownVariant,
		ErrCodeInvalidRequest,
		ErrCodeTimeout,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}

func TestWrapContext(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		want  ErrorCode
	}{
		{"deadline", context.DeadlineExceeded, ErrCodeTimeout},
		{"wrapped deadline", fmt.Errorf("enumerate: %w", context.DeadlineExceeded), ErrCodeTimeout},
		{"cancelled", context.Canceled, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapContext("plan cancelled", tt.cause)
			if err.Code != tt.want {
				t.Errorf("expected code %s, got %s", tt.want, err.Code)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("expected cause to be wrapped")
			}
		})
	}
}
