package errors

import (
	"errors"
	"fmt"
)

// Reason names the game rule behind a failure. Handlers use it to pick the
// player-facing text; the Code alone is too coarse for that.
type Reason string

// Domain reasons
const (
	ReasonInvalidExpression    Reason = "INVALID_EXPRESSION"
	ReasonInvalidAction        Reason = "INVALID_ACTION"
	ReasonMissingEquipment     Reason = "MISSING_EQUIPMENT"
	ReasonInsufficientResource Reason = "INSUFFICIENT_RESOURCE"
	ReasonContentLookup        Reason = "CONTENT_LOOKUP"
	ReasonSessionTerminated    Reason = "SESSION_TERMINATED"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}

// Code returns the status code a reason is always raised with
func (r Reason) Code() Code {
	switch r {
	case ReasonInvalidExpression, ReasonInvalidAction:
		return CodeInvalidArgument
	case ReasonMissingEquipment, ReasonSessionTerminated:
		return CodeFailedPrecondition
	case ReasonInsufficientResource:
		return CodeResourceExhausted
	case ReasonContentLookup:
		return CodeNotFound
	default:
		return CodeInternal
	}
}

func newReason(reason Reason, format string, args ...interface{}) *Error {
	return &Error{
		Code:    reason.Code(),
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidExpressionf reports a malformed dice expression
func InvalidExpressionf(format string, args ...interface{}) *Error {
	return newReason(ReasonInvalidExpression, format, args...)
}

// InvalidActionf reports an action the acting side cannot take right now
func InvalidActionf(format string, args ...interface{}) *Error {
	return newReason(ReasonInvalidAction, format, args...)
}

// MissingEquipmentf reports an action whose slot is empty
func MissingEquipmentf(format string, args ...interface{}) *Error {
	return newReason(ReasonMissingEquipment, format, args...)
}

// InsufficientResourcef reports too little ammunition or currency
func InsufficientResourcef(format string, args ...interface{}) *Error {
	return newReason(ReasonInsufficientResource, format, args...)
}

// ContentNotFoundf reports a catalog identifier with no definition
func ContentNotFoundf(format string, args ...interface{}) *Error {
	return newReason(ReasonContentLookup, format, args...)
}

// SessionTerminatedf reports an action against a finished combat
func SessionTerminatedf(format string, args ...interface{}) *Error {
	return newReason(ReasonSessionTerminated, format, args...)
}

// GetReason extracts the domain reason from an error
func GetReason(err error) Reason {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Reason
	}
	return ""
}

// HasReason reports whether any error in the chain carries the reason
func HasReason(err error, reason Reason) bool {
	for err != nil {
		var customErr *Error
		if !errors.As(err, &customErr) {
			return false
		}
		if customErr.Reason == reason {
			return true
		}
		err = customErr.Cause
	}
	return false
}
