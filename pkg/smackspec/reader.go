// SPDX-License-Identifier: MPL-2.0

package smackspec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RawLine is one line of input, text with its trailing line terminator
// preserved, numbered from 1. Produced once and never mutated.
type RawLine struct {
	Text     string
	Position SourcePosition
}

// readLines consumes r fully and returns every line in order, blank lines
// included. Terminators stay attached to their line so that continuation
// joining later preserves them verbatim.
func readLines(r io.Reader) ([]RawLine, error) {
	var lines []RawLine
	br := bufio.NewReader(r)

	for n := 1; ; n++ {
		text, err := br.ReadString('\n')
		if text != "" {
			lines = append(lines, RawLine{Text: text, Position: SourcePosition{Line: n}})
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}
}

// skipLeadingBlank drops all-whitespace lines at the very start of input.
// The legacy format treats them as ignorable, not as an error.
func skipLeadingBlank(lines []RawLine) []RawLine {
	for i, line := range lines {
		if strings.TrimSpace(line.Text) != "" {
			return lines[i:]
		}
	}
	return nil
}
