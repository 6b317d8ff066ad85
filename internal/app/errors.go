package app

import "errors"

// ErrSessionNotFound is returned for operations on an unknown or ended session.
var ErrSessionNotFound = errors.New("session not found")

type ValidationErrorCode string

const (
	ValidationMissingField  ValidationErrorCode = "MISSING_FIELD"
	ValidationInvalidType   ValidationErrorCode = "INVALID_TYPE"
	ValidationInvalidEnum   ValidationErrorCode = "INVALID_ENUM"
	ValidationUnknownAction ValidationErrorCode = "UNKNOWN_ACTION"
)

// ValidationError rejects an action payload before it reaches the profile
// store. Field names the offending payload field.
type ValidationError struct {
	Code    ValidationErrorCode
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Code) + ": " + e.Field + ": " + e.Message
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
