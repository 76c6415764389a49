package core

import (
	"errors"
	"fmt"
)

// Error kinds reported by snapshot loading. Match them with errors.Is.
var (
	ErrNotFound = errors.New("snapshot not found")
	ErrParse    = errors.New("snapshot could not be parsed")
)

// LoadError carries the kind of a loading failure together with the
// snapshot path and the underlying cause.
type LoadError struct {
	Kind error
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// IsNotFound reports whether err is a missing or unreadable snapshot.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsParse reports whether err is a malformed snapshot.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}
