package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeConfig, Message: "invalid configuration"},
			expected: "[CONFIG_ERROR] invalid configuration",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeList, "failed to parse list", errors.New("unexpected token")),
			expected: "[LIST_ERROR] failed to parse list: unexpected token",
		},
		{
			name:     "data dir error",
			err:      New(ErrCodeDataDir, "data directory does not exist"),
			expected: "[DATA_DIR_ERROR] data directory does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeList, Message: "test error"}
	err2 := &Error{Code: ErrCodeList, Message: "another error"}
	err3 := &Error{Code: ErrCodeCompile, Message: "compiler error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestErrorsIsThroughWrap(t *testing.T) {
	sentinel := New(ErrCodeDataDir, "data directory does not exist")
	wrapped := Wrap(ErrCodeDataDir, "cannot open data directory", errors.New("permission denied"))

	if !errors.Is(wrapped, sentinel) {
		t.Errorf("Expected errors.Is to match on error code")
	}
	if !Is(wrapped, sentinel) {
		t.Errorf("Expected the package-level Is to match on error code")
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewDownloadError("fetch failed", nil))

	var domainErr *Error
	if !As(wrapped, &domainErr) {
		t.Fatal("Expected As to find the domain error in the chain")
	}
	if domainErr.Code != ErrCodeDownload {
		t.Errorf("Expected code %v, got %v", ErrCodeDownload, domainErr.Code)
	}
}

func TestNewListError(t *testing.T) {
	cause := errors.New("file not found")
	err := NewListError("failed to read list", cause)

	if err.Code != ErrCodeList {
		t.Errorf("Expected code %v, got %v", ErrCodeList, err.Code)
	}

	if err.Message != "failed to read list" {
		t.Errorf("Expected message 'failed to read list', got %v", err.Message)
	}

	if err.Cause != cause {
		t.Errorf("Expected cause to be preserved")
	}
}
