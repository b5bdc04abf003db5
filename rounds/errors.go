package rounds

import (
	"errors"
	"fmt"
)

// ErrorCode classifies why an action was rejected. The HTTP layer maps these
// to response statuses; the engine itself never retries anything.
type ErrorCode string

const (
	CodeNotFound         ErrorCode = "not_found"
	CodePermissionDenied ErrorCode = "permission_denied"
	CodeInvalidPhase     ErrorCode = "invalid_phase"
	CodeOutOfTurn        ErrorCode = "out_of_turn"
	CodeDuplicateAction  ErrorCode = "duplicate_action"
	CodeCapacityExceeded ErrorCode = "capacity_exceeded"
	CodeValidationFailed ErrorCode = "validation_failed"
)

// Error is a rejected game action with a human-readable message.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string { return e.Message }

// CodeOf extracts the error code, or "" for non-game errors.
func CodeOf(err error) ErrorCode {
	var gameErr *Error
	if errors.As(err, &gameErr) {
		return gameErr.Code
	}
	return ""
}

func errNotFound(format string, args ...any) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func errPermissionDenied(format string, args ...any) error {
	return &Error{Code: CodePermissionDenied, Message: fmt.Sprintf(format, args...)}
}

func errInvalidPhase(format string, args ...any) error {
	return &Error{Code: CodeInvalidPhase, Message: fmt.Sprintf(format, args...)}
}

func errOutOfTurn(format string, args ...any) error {
	return &Error{Code: CodeOutOfTurn, Message: fmt.Sprintf(format, args...)}
}

func errDuplicateAction(format string, args ...any) error {
	return &Error{Code: CodeDuplicateAction, Message: fmt.Sprintf(format, args...)}
}

func errCapacityExceeded(format string, args ...any) error {
	return &Error{Code: CodeCapacityExceeded, Message: fmt.Sprintf(format, args...)}
}

func errValidationFailed(format string, args ...any) error {
	return &Error{Code: CodeValidationFailed, Message: fmt.Sprintf(format, args...)}
}
