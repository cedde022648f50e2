// SPDX-License-Identifier: MPL-2.0

// Package issue carries user-facing error context for the smack CLI: what
// operation failed, which resource was involved, and what the user can do
// about it. Domain packages return plain typed errors; the CLI layer
// wraps them here before printing.
package issue
