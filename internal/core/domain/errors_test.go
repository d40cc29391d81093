package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "error without details",
			err:      NewDomainError("IL-TEST-1000", "test message"),
			expected: "[IL-TEST-1000] test message",
		},
		{
			name:     "error with details",
			err:      NewDomainError("IL-TEST-1001", "test message").WithDetails("extra info"),
			expected: "[IL-TEST-1001] test message: extra info",
		},
		{
			name:     "error with details and cause",
			err:      NewDomainError("IL-TEST-1002", "test message").WithDetails("fw.elf").WithCause(errors.New("permission denied")),
			expected: "[IL-TEST-1002] test message: fw.elf: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	err1 := NewDomainError("IL-TEST-1000", "message 1")
	err2 := NewDomainError("IL-TEST-1000", "message 2") // same code
	err3 := NewDomainError("IL-TEST-1001", "message 1")

	if !errors.Is(err1, err2) {
		t.Error("errors.Is should return true for same error code")
	}
	if errors.Is(err1, err3) {
		t.Error("errors.Is should return false for different error code")
	}
	if errors.Is(err1, fmt.Errorf("some error")) {
		t.Error("errors.Is should return false for non-DomainError")
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := NewDomainError("IL-TEST-1000", "wrapper").WithCause(cause)

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if errors.Unwrap(NewDomainError("IL-TEST-1000", "no cause")) != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestDomainError_WithDetails(t *testing.T) {
	original := NewDomainError("IL-TEST-1000", "original message")
	withDetails := original.WithDetails("additional details")

	if original.Details != "" {
		t.Error("WithDetails should not modify original error")
	}
	if withDetails.Details != "additional details" {
		t.Errorf("Details = %q, want %q", withDetails.Details, "additional details")
	}
	if withDetails.Code != original.Code || withDetails.Message != original.Message {
		t.Errorf("WithDetails changed code/message: %+v", withDetails)
	}
}

func TestIsDomainError(t *testing.T) {
	if !IsDomainError(ErrFirmwareRequired, "IL-NODE-4001") {
		t.Error("IsDomainError should return true for matching code")
	}
	if IsDomainError(ErrFirmwareRequired, "IL-NODE-9999") {
		t.Error("IsDomainError should return false for non-matching code")
	}
	if !IsDomainError(ErrFirmwareRequired, "") {
		t.Error("IsDomainError with empty code should match any DomainError")
	}
	if IsDomainError(fmt.Errorf("regular error"), "IL-NODE-4001") {
		t.Error("IsDomainError should return false for non-DomainError")
	}

	wrapped := fmt.Errorf("wrapped: %w", ErrFirmwareRequired)
	if !IsDomainError(wrapped, "IL-NODE-4001") {
		t.Error("IsDomainError should work with wrapped errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"domain error", ErrUnknownCommand, "IL-NODE-4002"},
		{"wrapped domain error", fmt.Errorf("wrapped: %w", ErrInvalidInfoOption), "IL-EXP-4001"},
		{"regular error", fmt.Errorf("regular error"), ""},
		{"nil error", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		err  *DomainError
		code string
	}{
		{ErrFirmwareRequired, "IL-NODE-4001"},
		{ErrUnknownCommand, "IL-NODE-4002"},
		{ErrInvalidNodeList, "IL-NODE-4003"},
		{ErrFirmwareRead, "IL-NODE-5001"},
		{ErrInvalidInfoOption, "IL-EXP-4001"},
		{ErrNoRunningExperiment, "IL-EXP-4041"},
		{ErrAmbiguousExperiment, "IL-EXP-4091"},
		{ErrMissingCredentials, "IL-AUTH-4011"},
		{ErrUnexpectedResponse, "IL-API-5021"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Error code = %q, want %q", tt.err.Code, tt.code)
			}
			if tt.err.Message == "" {
				t.Error("Error message should not be empty")
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	cause := fmt.Errorf("no such file or directory")
	err := ErrFirmwareRead.
		WithDetails("firmware: /tmp/fw.elf").
		WithCause(cause)

	if err.Code != "IL-NODE-5001" {
		t.Errorf("Code = %q, want %q", err.Code, "IL-NODE-5001")
	}
	if err.Details != "firmware: /tmp/fw.elf" {
		t.Errorf("Details = %q", err.Details)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through errors.Is")
	}
	if !errors.Is(err, ErrFirmwareRead) {
		t.Error("errors.Is should work after chaining")
	}
}
