// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPackageName is the sentinel error wrapped by InvalidPackageNameError.
var ErrInvalidPackageName = errors.New("invalid package name")

type (
	// PackageName identifies a package in a smackspec manifest and in remote
	// source listings. A valid name is non-empty and contains no whitespace
	// or path separators; the manifest tokenizer guarantees the whitespace
	// part, the rest guards against names being abused as paths.
	PackageName string

	// InvalidPackageNameError is returned when a PackageName value does not
	// satisfy the naming rules.
	InvalidPackageNameError struct {
		Value PackageName
	}
)

// String returns the string representation of the PackageName.
func (n PackageName) String() string { return string(n) }

// IsValid returns whether the PackageName is valid, and a list of
// validation errors if it is not.
func (n PackageName) IsValid() (bool, []error) {
	s := string(n)
	if s == "" || strings.ContainsAny(s, " \t\r\n/\\") {
		return false, []error{&InvalidPackageNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPackageNameError.
func (e *InvalidPackageNameError) Error() string {
	return fmt.Sprintf("invalid package name %q: must be non-empty with no whitespace or path separators", e.Value)
}

// Unwrap returns ErrInvalidPackageName for errors.Is() compatibility.
func (e *InvalidPackageNameError) Unwrap() error { return ErrInvalidPackageName }
