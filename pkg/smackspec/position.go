// SPDX-License-Identifier: MPL-2.0

package smackspec

import "fmt"

// SourcePosition locates a parsed value in its source document.
// Line numbers are 1-based. The zero value means "no position".
type SourcePosition struct {
	Line int
}

// String returns the position in "line N" form for error messages.
func (p SourcePosition) String() string {
	return fmt.Sprintf("line %d", p.Line)
}
