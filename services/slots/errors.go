package slots

import (
	"errors"
	"fmt"
)

// Machine-readable error codes surfaced to callers.
const (
	CodeInvalidTimezone   = "INVALID_TIMEZONE"
	CodeInvalidDateRange  = "INVALID_DATE_RANGE"
	CodePastDateRange     = "PAST_DATE_RANGE"
	CodeInvalidPeriod     = "INVALID_PERIOD"
	CodeInvalidStatus     = "INVALID_STATUS"
	CodeSlotsAlreadyExist = "SLOTS_ALREADY_EXIST"
	CodeVetNotFound       = "VET_NOT_FOUND"
	CodePersistence       = "PERSISTENCE_FAILURE"
)

// DomainError is a scheduling failure with a stable code the calling layer
// can map to its own transport.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

func newDomainError(code, format string, args ...interface{}) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapPersistence(err error, format string, args ...interface{}) *DomainError {
	return &DomainError{Code: CodePersistence, Message: fmt.Sprintf(format, args...), Err: err}
}

// ErrCode extracts the domain error code from err, or "" if err carries none.
func ErrCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
