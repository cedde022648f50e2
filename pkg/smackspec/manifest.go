// SPDX-License-Identifier: MPL-2.0

package smackspec

import (
	"strings"

	"github.com/smackpm/smack/pkg/semver"
	"github.com/smackpm/smack/pkg/types"
)

type (
	// Provides is the manifest's mandatory identity: the package name and
	// the version this manifest provides.
	Provides struct {
		Package  types.PackageName
		Version  *semver.Version
		Position SourcePosition
	}

	// Requirement is one declared dependency. The constraint expression is
	// kept opaque; the version model interprets it when resolving.
	Requirement struct {
		Package    types.PackageName
		Constraint semver.SemVerConstraint
		Position   SourcePosition
	}

	// Field is the value of a single-valued opaque key, verbatim, with the
	// position of its key line.
	Field struct {
		Value    string
		Position SourcePosition
	}

	// Manifest is the validated result of parsing one smackspec document.
	// It always has exactly one Provides. Requires preserves source order,
	// which downstream resolution treats as a tie-breaking contract.
	Manifest struct {
		Provides    Provides
		Description *Field
		Requires    []Requirement

		// fields holds the opaque single-valued keys that were present,
		// keyed by their key name.
		fields map[string]Field
	}
)

// Field returns the value of an opaque key and whether it was present.
func (m *Manifest) Field(key string) (Field, bool) {
	f, ok := m.fields[key]
	return f, ok
}

// FieldKeys returns the opaque keys present in this manifest, in
// canonical order.
func (m *Manifest) FieldKeys() []string {
	var keys []string
	for _, key := range OpaqueKeys {
		if _, ok := m.fields[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// Render writes the manifest back out in canonical form: provides first,
// then description, requires in source order, and the opaque keys in
// canonical order. Rendering a parsed manifest and parsing it again
// yields an equal manifest as long as multi-line values keep their inner
// lines indented, which parsing guarantees.
func (m *Manifest) Render() string {
	var b strings.Builder

	b.WriteString("provides: ")
	b.WriteString(m.Provides.Package.String())
	b.WriteString(" ")
	b.WriteString(m.Provides.Version.String())
	b.WriteString("\n")

	if m.Description != nil {
		writeDirective(&b, "description", m.Description.Value)
	}
	for _, req := range m.Requires {
		b.WriteString("requires: ")
		b.WriteString(req.Package.String())
		if req.Constraint != "" {
			b.WriteString(" ")
			b.WriteString(req.Constraint.String())
		}
		b.WriteString("\n")
	}
	for _, key := range OpaqueKeys {
		if f, ok := m.fields[key]; ok {
			writeDirective(&b, key, f.Value)
		}
	}

	return b.String()
}

func writeDirective(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	if !strings.HasSuffix(value, "\n") {
		b.WriteString("\n")
	}
}

// buildManifest aggregates classified directives, enforcing per-key
// cardinality: exactly one provides, at most one description and one of
// each opaque key, any number of requires in source order. A duplicate
// singular key reports the line of the second occurrence.
func buildManifest(directives []Directive) (*Manifest, error) {
	m := &Manifest{fields: make(map[string]Field)}
	providesSeen := false

	for _, d := range directives {
		switch d := d.(type) {
		case CommentDirective:
			// discarded

		case ProvidesDirective:
			if providesSeen {
				return nil, &DuplicateFieldError{Key: "provides", Position: d.Position}
			}
			providesSeen = true
			m.Provides = Provides{Package: d.Package, Version: d.Version, Position: d.Position}

		case DescriptionDirective:
			if err := setOnce(m.fields, "description", d.Text, d.Position); err != nil {
				return nil, err
			}

		case RequiresDirective:
			m.Requires = append(m.Requires, Requirement{
				Package:    d.Package,
				Constraint: d.Constraint,
				Position:   d.Position,
			})

		case FieldDirective:
			if err := setOnce(m.fields, d.Key, d.Value, d.Position); err != nil {
				return nil, err
			}
		}
	}

	if !providesSeen {
		return nil, ErrMissingProvides
	}

	if f, ok := m.fields["description"]; ok {
		m.Description = &f
		delete(m.fields, "description")
	}

	return m, nil
}

// setOnce is the at-most-one reducer shared by description and every
// opaque key. The reported position is the duplicate's, not the first
// occurrence's.
func setOnce(fields map[string]Field, key, value string, pos SourcePosition) error {
	if _, dup := fields[key]; dup {
		return &DuplicateFieldError{Key: key, Position: pos}
	}
	fields[key] = Field{Value: value, Position: pos}
	return nil
}
