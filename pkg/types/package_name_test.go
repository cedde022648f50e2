// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestPackageName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pkg  PackageName
		want bool
	}{
		{"simple lowercase", PackageName("widget"), true},
		{"with hyphen", PackageName("cmlib-basis"), true},
		{"with dots", PackageName("org.example.lib"), true},
		{"with digits", PackageName("sml3"), true},
		{"empty is invalid", PackageName(""), false},
		{"contains space", PackageName("my widget"), false},
		{"contains tab", PackageName("my\twidget"), false},
		{"contains newline", PackageName("my\nwidget"), false},
		{"contains slash", PackageName("a/b"), false},
		{"contains backslash", PackageName(`a\b`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			isValid, errs := tt.pkg.IsValid()
			if isValid != tt.want {
				t.Errorf("PackageName(%q).IsValid() = %v, want %v", tt.pkg, isValid, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 {
					t.Fatalf("expected exactly one validation error, got %d", len(errs))
				}
				if !errors.Is(errs[0], ErrInvalidPackageName) {
					t.Errorf("error %v should match ErrInvalidPackageName", errs[0])
				}
			}
		})
	}
}

func TestPackageName_String(t *testing.T) {
	t.Parallel()

	if got := PackageName("widget").String(); got != "widget" {
		t.Errorf("String() = %q, want %q", got, "widget")
	}
}
