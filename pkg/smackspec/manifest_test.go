// SPDX-License-Identifier: MPL-2.0

package smackspec

import (
	"errors"
	"testing"
)

func TestBuildManifest_ProvidesCardinality(t *testing.T) {
	t.Parallel()

	t.Run("missing provides", func(t *testing.T) {
		t.Parallel()

		_, err := ParseString("description: no identity here\n")
		if !errors.Is(err, ErrMissingProvides) {
			t.Errorf("error %v should match ErrMissingProvides", err)
		}
	})

	t.Run("missing provides regardless of other content", func(t *testing.T) {
		t.Parallel()

		input := "maintainer: Someone <someone@example.org>\nrequires: base >= 1.0.0\nlicense: MIT\n"
		_, err := ParseString(input)
		if !errors.Is(err, ErrMissingProvides) {
			t.Errorf("error %v should match ErrMissingProvides", err)
		}
	})

	t.Run("duplicate provides names the second line", func(t *testing.T) {
		t.Parallel()

		input := "provides: widget 1.0.0\nlicense: MIT\nprovides: widget 2.0.0\n"
		_, err := ParseString(input)
		if !errors.Is(err, ErrDuplicateField) {
			t.Fatalf("error %v should match ErrDuplicateField", err)
		}

		var dupErr *DuplicateFieldError
		if !errors.As(err, &dupErr) {
			t.Fatalf("error %v should be a *DuplicateFieldError", err)
		}
		if dupErr.Key != "provides" {
			t.Errorf("Key = %q, want %q", dupErr.Key, "provides")
		}
		if dupErr.Position.Line != 3 {
			t.Errorf("error position = %d, want 3 (the duplicate, not the first)", dupErr.Position.Line)
		}
	})
}

func TestBuildManifest_SingularKeys(t *testing.T) {
	t.Parallel()

	t.Run("duplicate description", func(t *testing.T) {
		t.Parallel()

		input := "provides: widget 1.0.0\ndescription: one\ndescription: two\n"
		_, err := ParseString(input)

		var dupErr *DuplicateFieldError
		if !errors.As(err, &dupErr) {
			t.Fatalf("error %v should be a *DuplicateFieldError", err)
		}
		if dupErr.Key != "description" || dupErr.Position.Line != 3 {
			t.Errorf("DuplicateFieldError = %+v, want description at line 3", dupErr)
		}
	})

	t.Run("duplicate opaque key", func(t *testing.T) {
		t.Parallel()

		input := "provides: widget 1.0.0\nlicense: MIT\nmaintainer: a\nlicense: BSD\n"
		_, err := ParseString(input)

		var dupErr *DuplicateFieldError
		if !errors.As(err, &dupErr) {
			t.Fatalf("error %v should be a *DuplicateFieldError", err)
		}
		if dupErr.Key != "license" || dupErr.Position.Line != 4 {
			t.Errorf("DuplicateFieldError = %+v, want license at line 4", dupErr)
		}
	})

	t.Run("each opaque key may appear once", func(t *testing.T) {
		t.Parallel()

		input := "provides: widget 1.0.0\n"
		for _, key := range OpaqueKeys {
			input += key + ": value for " + key + "\n"
		}

		m, err := ParseString(input)
		if err != nil {
			t.Fatalf("ParseString() error = %v", err)
		}
		if got := m.FieldKeys(); len(got) != len(OpaqueKeys) {
			t.Errorf("FieldKeys() returned %d keys, want %d", len(got), len(OpaqueKeys))
		}
		for _, key := range OpaqueKeys {
			f, ok := m.Field(key)
			if !ok {
				t.Errorf("Field(%q) missing", key)
				continue
			}
			if f.Value != "value for "+key+"\n" {
				t.Errorf("Field(%q) = %q", key, f.Value)
			}
		}
	})
}

func TestBuildManifest_RequiresOrder(t *testing.T) {
	t.Parallel()

	input := "provides: widget 1.0.0\nrequires: zlib ^1\nrequires: base >= 1.0.0\nrequires: zlib ^2\n"
	m, err := ParseString(input)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	// Source order is a preserved contract; duplicates are allowed.
	want := []struct {
		pkg        string
		constraint string
	}{
		{"zlib", "^1"},
		{"base", ">= 1.0.0"},
		{"zlib", "^2"},
	}
	if len(m.Requires) != len(want) {
		t.Fatalf("Requires length = %d, want %d", len(m.Requires), len(want))
	}
	for i, w := range want {
		if string(m.Requires[i].Package) != w.pkg || string(m.Requires[i].Constraint) != w.constraint {
			t.Errorf("Requires[%d] = %+v, want %+v", i, m.Requires[i], w)
		}
	}
}

func TestBuildManifest_CommentsDiscarded(t *testing.T) {
	t.Parallel()

	input := "comment: first\nprovides: widget 1.0.0\ncomment: second\ncomment: third\n"
	m, err := ParseString(input)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if m.Provides.Package != "widget" {
		t.Errorf("Provides.Package = %q, want %q", m.Provides.Package, "widget")
	}
	if len(m.FieldKeys()) != 0 {
		t.Errorf("FieldKeys() = %v, want none", m.FieldKeys())
	}
}
