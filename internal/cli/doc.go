// SPDX-License-Identifier: MPL-2.0

// Package cli contains all CLI commands for smack.
package cli
