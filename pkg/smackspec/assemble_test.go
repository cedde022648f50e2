// SPDX-License-Identifier: MPL-2.0

package smackspec

import (
	"errors"
	"strings"
	"testing"
)

func assemble(t *testing.T, input string) ([]RawDirective, error) {
	t.Helper()

	lines, err := readLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readLines() error = %v", err)
	}
	return assembleDirectives(skipLeadingBlank(lines))
}

func TestAssembleDirectives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []RawDirective
	}{
		{
			name:  "single directive",
			input: "provides: widget 1.2.3\n",
			want: []RawDirective{
				{Key: "provides", Value: " widget 1.2.3\n", Position: SourcePosition{Line: 1}},
			},
		},
		{
			name:  "value keeps further colons",
			input: "git: https://example.com:8080/widget.git\n",
			want: []RawDirective{
				{Key: "git", Value: " https://example.com:8080/widget.git\n", Position: SourcePosition{Line: 1}},
			},
		},
		{
			name:  "indented continuation joined verbatim",
			input: "description:\n    A sample widget.\n",
			want: []RawDirective{
				{Key: "description", Value: "\n    A sample widget.\n", Position: SourcePosition{Line: 1}},
			},
		},
		{
			name:  "tab-only continuation belongs to previous key",
			input: "build: make\n\t\nprovides: widget 1.0.0\n",
			want: []RawDirective{
				{Key: "build", Value: " make\n\t\n", Position: SourcePosition{Line: 1}},
				{Key: "provides", Value: " widget 1.0.0\n", Position: SourcePosition{Line: 3}},
			},
		},
		{
			name:  "empty line is a continuation",
			input: "description: first\n\n  second\nlicense: MIT\n",
			want: []RawDirective{
				{Key: "description", Value: " first\n\n  second\n", Position: SourcePosition{Line: 1}},
				{Key: "license", Value: " MIT\n", Position: SourcePosition{Line: 4}},
			},
		},
		{
			name:  "leading blank lines skipped before first directive",
			input: "\n\nprovides: widget 1.0.0\n",
			want: []RawDirective{
				{Key: "provides", Value: " widget 1.0.0\n", Position: SourcePosition{Line: 3}},
			},
		},
		{
			name:  "final line without terminator",
			input: "provides: widget 1.0.0",
			want: []RawDirective{
				{Key: "provides", Value: " widget 1.0.0", Position: SourcePosition{Line: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := assemble(t, tt.input)
			if err != nil {
				t.Fatalf("assembleDirectives() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("assembleDirectives() returned %d directives, want %d: %#v", len(got), len(tt.want), got)
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("directive %d = %#v, want %#v", i, got[i], want)
				}
			}
		})
	}
}

func TestAssembleDirectives_MalformedLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"key line without colon", "provides widget 1.2.3\n", 1},
		{"no colon after valid directive", "license: MIT\nbogus\n", 2},
		{"indented first line has no directive to continue", "  provides: widget 1.0.0\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := assemble(t, tt.input)
			if !errors.Is(err, ErrMalformedLine) {
				t.Fatalf("error %v should match ErrMalformedLine", err)
			}

			var lineErr *MalformedLineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("error %v should be a *MalformedLineError", err)
			}
			if lineErr.Position.Line != tt.wantLine {
				t.Errorf("error position = %d, want %d", lineErr.Position.Line, tt.wantLine)
			}
		})
	}
}
