// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting value types shared by the smack
// domain packages (smackspec, semver, source). These types carry semantic
// meaning and validation but no domain-specific behavior.
//
// This package is a leaf dependency: it imports only the standard library.
// Domain packages import it; it never imports domain packages.
package types
