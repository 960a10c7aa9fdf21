package errs

import "errors"

// Error kinds shared by every layer. Concrete errors are marked with one of
// these and translated to an HTTP status at the handler boundary.
var (
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
)

func IsNotFound(err error) bool     { return Is(err, ErrNotFound) }
func IsAccessDenied(err error) bool { return Is(err, ErrAccessDenied) }
func IsValidation(err error) bool   { return Is(err, ErrValidation) }
func IsConflict(err error) bool     { return Is(err, ErrConflict) }
