// SPDX-License-Identifier: MPL-2.0

// Package semver implements the version model consumed by the smackspec
// parser and the remote source layer: semantic version parsing and
// ordering, and constraint expressions with the operators =, ^, ~, >, >=,
// < and <=.
//
// Constraint syntax is deliberately permissive about whitespace between
// the operator and the version (">= 1.0.0" and ">=1.0.0" are equivalent)
// because manifest requires-expressions are written both ways in the wild.
package semver
