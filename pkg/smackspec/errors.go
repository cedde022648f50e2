// SPDX-License-Identifier: MPL-2.0

package smackspec

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic detection with errors.Is. Each typed
// error below wraps exactly one of these.
var (
	ErrUnknownKey        = errors.New("unknown key")
	ErrMissingProvides   = errors.New("a provides directive is required")
	ErrDuplicateField    = errors.New("duplicate field")
	ErrMalformedProvides = errors.New("malformed provides directive")
	ErrMalformedRequires = errors.New("malformed requires directive")
	ErrMalformedLine     = errors.New("malformed line")
)

type (
	// UnknownKeyError is returned when a key line uses a key outside the
	// recognized set. The format is closed, not extensible.
	UnknownKeyError struct {
		Key      string
		Position SourcePosition
	}

	// DuplicateFieldError is returned when a singular-cardinality key
	// appears a second time. Position names the duplicate occurrence,
	// not the first one.
	DuplicateFieldError struct {
		Key      string
		Position SourcePosition
	}

	// MalformedProvidesError is returned when a provides value does not
	// tokenize into exactly a package name and a version, or the version
	// does not parse as a semantic version.
	MalformedProvidesError struct {
		Value    string
		Reason   string
		Position SourcePosition
	}

	// MalformedRequiresError is returned when a requires value has no
	// tokens at all.
	MalformedRequiresError struct {
		Position SourcePosition
	}

	// MalformedLineError is returned when a key line has no ':' separator,
	// or when a continuation line appears before any directive.
	MalformedLineError struct {
		Text     string
		Reason   string
		Position SourcePosition
	}
)

// Error implements the error interface.
func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q at %s", e.Key, e.Position)
}

// Unwrap returns ErrUnknownKey so callers can use errors.Is for programmatic detection.
func (e *UnknownKeyError) Unwrap() error { return ErrUnknownKey }

// Error implements the error interface.
func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate %s directive at %s (at most one allowed)", e.Key, e.Position)
}

// Unwrap returns ErrDuplicateField so callers can use errors.Is for programmatic detection.
func (e *DuplicateFieldError) Unwrap() error { return ErrDuplicateField }

// Error implements the error interface.
func (e *MalformedProvidesError) Error() string {
	return fmt.Sprintf("malformed provides directive at %s: %s", e.Position, e.Reason)
}

// Unwrap returns ErrMalformedProvides so callers can use errors.Is for programmatic detection.
func (e *MalformedProvidesError) Unwrap() error { return ErrMalformedProvides }

// Error implements the error interface.
func (e *MalformedRequiresError) Error() string {
	return fmt.Sprintf("malformed requires directive at %s: expected a package name", e.Position)
}

// Unwrap returns ErrMalformedRequires so callers can use errors.Is for programmatic detection.
func (e *MalformedRequiresError) Unwrap() error { return ErrMalformedRequires }

// Error implements the error interface.
func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line at %s: %s", e.Position, e.Reason)
}

// Unwrap returns ErrMalformedLine so callers can use errors.Is for programmatic detection.
func (e *MalformedLineError) Unwrap() error { return ErrMalformedLine }
