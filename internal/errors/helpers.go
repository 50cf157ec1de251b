package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// outermost returns the first *Error in err's chain, which carries the
// message meant for the player
func outermost(err error) (*Error, bool) {
	var customErr *Error
	if err == nil || !errors.As(err, &customErr) {
		return nil, false
	}
	return customErr, true
}

// GetCode extracts the error code. Foreign errors count as Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := outermost(err); ok {
		return e.Code
	}
	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if e, ok := outermost(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage extracts the player-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := outermost(err); ok {
		return e.Message
	}
	return err.Error()
}

// IsNotFound reports CodeNotFound
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument reports CodeInvalidArgument
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsInternal reports CodeInternal, which includes every foreign error
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

// IsResourceExhausted reports CodeResourceExhausted
func IsResourceExhausted(err error) bool { return GetCode(err) == CodeResourceExhausted }

// IsFailedPrecondition reports CodeFailedPrecondition
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }
