// SPDX-License-Identifier: MPL-2.0

package smackspec

import "strings"

// RawDirective is a key and its fully assembled value: the key line's
// fragment after the first colon, joined with the raw text of every
// continuation line that followed. Position is the key line's position.
type RawDirective struct {
	Key      string
	Value    string
	Position SourcePosition
}

// isContinuation reports whether a line extends the value of the current
// directive: the empty line, or a line whose first character is CR, LF,
// space or tab.
func isContinuation(text string) bool {
	if text == "" {
		return true
	}
	switch text[0] {
	case '\r', '\n', ' ', '\t':
		return true
	}
	return false
}

// assembleDirectives groups raw lines into directives. Callers must have
// applied skipLeadingBlank first; the first line is expected to be a key
// line, and every key line must carry a ':' separator.
func assembleDirectives(lines []RawLine) ([]RawDirective, error) {
	var directives []RawDirective

	for i := 0; i < len(lines); {
		keyLine := lines[i]
		if isContinuation(keyLine.Text) {
			return nil, &MalformedLineError{
				Text:     keyLine.Text,
				Reason:   "continuation line before any directive",
				Position: keyLine.Position,
			}
		}

		sep := strings.IndexByte(keyLine.Text, ':')
		if sep < 0 {
			return nil, &MalformedLineError{
				Text:     keyLine.Text,
				Reason:   "missing ':' separator",
				Position: keyLine.Position,
			}
		}

		var value strings.Builder
		value.WriteString(keyLine.Text[sep+1:])

		i++
		for i < len(lines) && isContinuation(lines[i].Text) {
			value.WriteString(lines[i].Text)
			i++
		}

		directives = append(directives, RawDirective{
			Key:      keyLine.Text[:sep],
			Value:    value.String(),
			Position: keyLine.Position,
		})
	}

	return directives, nil
}
