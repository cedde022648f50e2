// SPDX-License-Identifier: MPL-2.0

package smackspec

import (
	"strings"

	"github.com/smackpm/smack/pkg/semver"
	"github.com/smackpm/smack/pkg/types"
)

// OpaqueKeys lists, in canonical render order, the recognized keys whose
// values are stored verbatim without structural parsing. Each may appear
// at most once per manifest.
var OpaqueKeys = []string{
	"maintainer",
	"keywords",
	"upstream-version",
	"upstream-url",
	"git",
	"svn",
	"hg",
	"cvs",
	"documentation-url",
	"bug-url",
	"license",
	"platform",
	"build",
	"test",
	"install",
	"uninstall",
	"documentation",
}

var opaqueKeySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(OpaqueKeys))
	for _, k := range OpaqueKeys {
		set[k] = struct{}{}
	}
	return set
}()

type (
	// Directive is one classified key/value entry. The set of variants is
	// closed: CommentDirective, ProvidesDirective, DescriptionDirective,
	// RequiresDirective and FieldDirective. Anything else in the source is
	// an UnknownKeyError.
	Directive interface {
		// Pos returns the position of the directive's key line.
		Pos() SourcePosition

		directive()
	}

	// CommentDirective carries no data and is discarded downstream.
	CommentDirective struct {
		Position SourcePosition
	}

	// ProvidesDirective declares the package this manifest describes and
	// the version it provides.
	ProvidesDirective struct {
		Package  types.PackageName
		Version  *semver.Version
		Position SourcePosition
	}

	// DescriptionDirective is the package's free-form description.
	DescriptionDirective struct {
		Text     string
		Position SourcePosition
	}

	// RequiresDirective declares a dependency: a package name and an
	// opaque constraint expression. Constraint syntax is validated by the
	// version model when the constraint is used, not here.
	RequiresDirective struct {
		Package    types.PackageName
		Constraint semver.SemVerConstraint
		Position   SourcePosition
	}

	// FieldDirective is any recognized-but-opaque key (maintainer,
	// license, build, ...) with its value stored verbatim.
	FieldDirective struct {
		Key      string
		Value    string
		Position SourcePosition
	}
)

func (d CommentDirective) Pos() SourcePosition     { return d.Position }
func (d ProvidesDirective) Pos() SourcePosition    { return d.Position }
func (d DescriptionDirective) Pos() SourcePosition { return d.Position }
func (d RequiresDirective) Pos() SourcePosition    { return d.Position }
func (d FieldDirective) Pos() SourcePosition       { return d.Position }

func (CommentDirective) directive()     {}
func (ProvidesDirective) directive()    {}
func (DescriptionDirective) directive() {}
func (RequiresDirective) directive()    {}
func (FieldDirective) directive()       {}

// trimLeadingSpace removes leading whitespace from an assembled value.
// Trailing text, line terminators included, is preserved verbatim.
func trimLeadingSpace(value string) string {
	return strings.TrimLeft(value, " \t\r\n")
}

// classify maps a raw directive to its typed variant, parsing the
// structured provides and requires payloads. Keys match case-sensitively
// and exactly.
func classify(raw RawDirective) (Directive, error) {
	switch raw.Key {
	case "comment":
		return CommentDirective{Position: raw.Position}, nil

	case "provides":
		tokens := strings.Fields(raw.Value)
		if len(tokens) != 2 {
			return nil, &MalformedProvidesError{
				Value:    raw.Value,
				Reason:   "expected a package name and a version",
				Position: raw.Position,
			}
		}
		version, err := semver.Parse(tokens[1])
		if err != nil {
			return nil, &MalformedProvidesError{
				Value:    raw.Value,
				Reason:   "invalid version " + tokens[1],
				Position: raw.Position,
			}
		}
		return ProvidesDirective{
			Package:  types.PackageName(tokens[0]),
			Version:  version,
			Position: raw.Position,
		}, nil

	case "description":
		return DescriptionDirective{
			Text:     trimLeadingSpace(raw.Value),
			Position: raw.Position,
		}, nil

	case "requires":
		tokens := strings.Fields(raw.Value)
		if len(tokens) == 0 {
			return nil, &MalformedRequiresError{Position: raw.Position}
		}
		return RequiresDirective{
			Package:    types.PackageName(tokens[0]),
			Constraint: semver.SemVerConstraint(strings.Join(tokens[1:], " ")),
			Position:   raw.Position,
		}, nil
	}

	if _, ok := opaqueKeySet[raw.Key]; ok {
		return FieldDirective{
			Key:      raw.Key,
			Value:    trimLeadingSpace(raw.Value),
			Position: raw.Position,
		}, nil
	}

	return nil, &UnknownKeyError{Key: raw.Key, Position: raw.Position}
}
