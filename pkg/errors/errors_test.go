package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown"},
		{KindUsage, "usage"},
		{KindSnapshot, "snapshot"},
		{KindInternal, "internal"},
		{Kind(99), "unknown"}, // Invalid kind
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "op and message and err",
			err:      &Error{Op: "meminfo.Read", Message: "snapshot failed", Err: fmt.Errorf("syscall refused")},
			expected: "meminfo.Read: snapshot failed: syscall refused",
		},
		{
			name:     "op and message",
			err:      &Error{Op: "meminfo.Read", Message: "snapshot failed"},
			expected: "meminfo.Read: snapshot failed",
		},
		{
			name:     "message and err",
			err:      &Error{Message: "snapshot failed", Err: fmt.Errorf("syscall refused")},
			expected: "snapshot failed: syscall refused",
		},
		{
			name:     "message only",
			err:      &Error{Message: "snapshot failed"},
			expected: "snapshot failed",
		},
		{
			name:     "empty error",
			err:      &Error{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := &Error{Message: "wrapper", Err: underlying}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlying)
	}

	err2 := &Error{Message: "no underlying"}
	if err2.Unwrap() != nil {
		t.Errorf("Unwrap() should return nil for error without underlying")
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Kind: KindUsage, Message: "bad flag"}
	err2 := &Error{Kind: KindUsage, Message: "different message"}
	err3 := &Error{Kind: KindSnapshot, Message: "bad flag"}

	if !err1.Is(err2) {
		t.Error("Errors with same Kind should match")
	}
	if err1.Is(err3) {
		t.Error("Errors with different Kind should not match")
	}
	if err1.Is(fmt.Errorf("some error")) {
		t.Error("Should not match non-Error type")
	}
}

func TestE(t *testing.T) {
	cause := fmt.Errorf("sysinfo failed")
	err := E(KindSnapshot, "meminfo.Read", "could not gather memory statistics", cause)

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("E() should return *Error")
	}
	if e.Kind != KindSnapshot {
		t.Errorf("Kind = %v, want %v", e.Kind, KindSnapshot)
	}
	if e.Op != "meminfo.Read" {
		t.Errorf("Op = %q, want %q", e.Op, "meminfo.Read")
	}
	if e.Message != "could not gather memory statistics" {
		t.Errorf("Message = %q", e.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("E() should wrap the cause")
	}
}

func TestGetKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"usage error", E(KindUsage, "cli.Parse", "bad flag"), KindUsage},
		{"snapshot error", E(KindSnapshot, "meminfo.Read", "refused"), KindSnapshot},
		{"wrapped error", fmt.Errorf("outer: %w", E(KindSnapshot, "meminfo.Read", "refused")), KindSnapshot},
		{"plain error", fmt.Errorf("plain"), KindUnknown},
		{"nil-ish wrap", Wrap(fmt.Errorf("x"), "op"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetKind(tt.err); got != tt.expected {
				t.Errorf("GetKind() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "op") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	cause := fmt.Errorf("cause")
	err := Wrap(cause, "check.Run")
	if !errors.Is(err, cause) {
		t.Error("Wrap() should preserve the cause chain")
	}
}

func TestKindCheckers(t *testing.T) {
	if !IsUsageError(E(KindUsage, "cli.Parse", "bad flag")) {
		t.Error("IsUsageError() = false for usage error")
	}
	if IsUsageError(E(KindSnapshot, "meminfo.Read", "refused")) {
		t.Error("IsUsageError() = true for snapshot error")
	}
	if !IsSnapshotError(E(KindSnapshot, "meminfo.Read", "refused")) {
		t.Error("IsSnapshotError() = false for snapshot error")
	}
	if IsSnapshotError(fmt.Errorf("plain")) {
		t.Error("IsSnapshotError() = true for plain error")
	}
}
