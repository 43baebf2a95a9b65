package reqinfo

import "errors"

// ErrMissingField is matched (via "errors".Is) by every
// *MissingFieldError.
var ErrMissingField = errors.New("required request field is missing")

// MissingFieldError is returned when an Env lacks a variable that a
// query cannot do without.  It points at a misconfigured server or a
// non-HTTP execution context rather than at a bad client request.
type MissingFieldError struct {
	Key string
}

// Error returns the MissingFieldError's full error string.
func (err *MissingFieldError) Error() string {
	return "unable to resolve request: " + err.Key + " is not set"
}

// Is reports whether target is ErrMissingField.
func (err *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
