// Package domain defines the core domain models for iotlab-cli.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
// Codes follow the IL-<AREA>-<NNNN> format, where the last four digits
// loosely mirror the HTTP status class the condition corresponds to.
type DomainError struct {
	Code    string // Error code (e.g., "IL-NODE-4001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison by code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Node command errors.
var (
	// ErrFirmwareRequired is a precondition failure: update needs a firmware file.
	ErrFirmwareRequired = NewDomainError("IL-NODE-4001", "update command requires a firmware")

	// ErrUnknownCommand indicates a command kind outside start/stop/reset/update.
	ErrUnknownCommand = NewDomainError("IL-NODE-4002", "unknown node command")

	// ErrInvalidNodeList indicates a malformed node list specification.
	ErrInvalidNodeList = NewDomainError("IL-NODE-4003", "invalid node list")

	// ErrFirmwareRead indicates the firmware file could not be read.
	ErrFirmwareRead = NewDomainError("IL-NODE-5001", "cannot read firmware")
)

// Experiment errors.
var (
	// ErrInvalidInfoOption indicates an unsupported experiment info selector.
	ErrInvalidInfoOption = NewDomainError("IL-EXP-4001", "invalid experiment info option")

	// ErrNoRunningExperiment indicates no experiment id was given and none is running.
	ErrNoRunningExperiment = NewDomainError("IL-EXP-4041", "no running experiment")

	// ErrAmbiguousExperiment indicates several running experiments and no explicit id.
	ErrAmbiguousExperiment = NewDomainError("IL-EXP-4091", "several running experiments, specify one with --id")
)

var (
	// ErrMissingCredentials indicates no username/password could be resolved.
	ErrMissingCredentials = NewDomainError("IL-AUTH-4011", "missing credentials")

	// ErrUnexpectedResponse indicates a successful call whose body does not
	// have the shape the caller needs.
	ErrUnexpectedResponse = NewDomainError("IL-API-5021", "unexpected response from server")
)
