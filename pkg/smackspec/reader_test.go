// SPDX-License-Identifier: MPL-2.0

package smackspec

import (
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", nil},
		{"single line with newline", "provides: x 1.0.0\n", []string{"provides: x 1.0.0\n"}},
		{"single line without newline", "provides: x 1.0.0", []string{"provides: x 1.0.0"}},
		{"blank lines kept", "a: 1\n\nb: 2\n", []string{"a: 1\n", "\n", "b: 2\n"}},
		{"crlf terminators kept", "a: 1\r\nb: 2\r\n", []string{"a: 1\r\n", "b: 2\r\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines, err := readLines(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("readLines() error = %v", err)
			}
			if len(lines) != len(tt.want) {
				t.Fatalf("readLines() returned %d lines, want %d: %#v", len(lines), len(tt.want), lines)
			}
			for i, want := range tt.want {
				if lines[i].Text != want {
					t.Errorf("line %d text = %q, want %q", i, lines[i].Text, want)
				}
				if lines[i].Position.Line != i+1 {
					t.Errorf("line %d position = %d, want %d", i, lines[i].Position.Line, i+1)
				}
			}
		})
	}
}

func TestSkipLeadingBlank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLine  int
		wantEmpty bool
	}{
		{"no leading blanks", "provides: x 1.0.0\n", "provides: x 1.0.0\n", 1, false},
		{"leading newline", "\nprovides: x 1.0.0\n", "provides: x 1.0.0\n", 2, false},
		{"leading crlf and spaces", "\r\n   \nprovides: x 1.0.0\n", "provides: x 1.0.0\n", 3, false},
		{"all blank", "\n\n \t\n", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines, err := readLines(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("readLines() error = %v", err)
			}

			got := skipLeadingBlank(lines)
			if tt.wantEmpty {
				if len(got) != 0 {
					t.Fatalf("skipLeadingBlank() = %#v, want empty", got)
				}
				return
			}
			if len(got) == 0 {
				t.Fatal("skipLeadingBlank() returned no lines")
			}
			if got[0].Text != tt.wantFirst {
				t.Errorf("first line = %q, want %q", got[0].Text, tt.wantFirst)
			}
			if got[0].Position.Line != tt.wantLine {
				t.Errorf("first line position = %d, want %d (original numbering preserved)", got[0].Position.Line, tt.wantLine)
			}
		})
	}
}
