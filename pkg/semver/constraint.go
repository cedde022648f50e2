// SPDX-License-Identifier: MPL-2.0

package semver

import (
	"regexp"
	"strings"
)

// Constraint is a parsed version constraint: a comparison operator applied
// to a reference version.
type Constraint struct {
	// Op is one of =, ^, ~, >, >=, <, <=. A bare version means =.
	Op string
	// Version is the reference version the operator compares against.
	Version *Version
	// Original is the constraint string as written.
	Original string
}

// constraintRegex matches a constraint expression, allowing whitespace
// between the operator and the version.
var constraintRegex = regexp.MustCompile(`^([~^]|>=|<=|>|<|=)?\s*(v?\d+(?:\.\d+)?(?:\.\d+)?(?:-[0-9A-Za-z\-\.]+)?)$`)

// ParseConstraint parses a constraint expression string.
func ParseConstraint(s string) (*Constraint, error) {
	trimmed := strings.TrimSpace(s)

	m := constraintRegex.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, &InvalidSemVerConstraintError{Value: SemVerConstraint(s)}
	}

	op := m[1]
	if op == "" {
		op = "="
	}

	version, err := Parse(m[2])
	if err != nil {
		return nil, &InvalidSemVerConstraintError{Value: SemVerConstraint(s)}
	}

	return &Constraint{Op: op, Version: version, Original: trimmed}, nil
}

// Matches reports whether v satisfies the constraint.
func (c *Constraint) Matches(v *Version) bool {
	switch c.Op {
	case "=":
		return v.Compare(c.Version) == 0

	case "^":
		// Caret keeps the left-most non-zero segment fixed:
		// ^1.2.3 := >=1.2.3 <2.0.0
		// ^0.2.3 := >=0.2.3 <0.3.0
		// ^0.0.3 := >=0.0.3 <0.0.4
		if v.Compare(c.Version) < 0 {
			return false
		}
		if c.Version.Major != 0 {
			return v.Major == c.Version.Major
		}
		if c.Version.Minor != 0 {
			return v.Major == 0 && v.Minor == c.Version.Minor
		}
		return v.Major == 0 && v.Minor == 0 && v.Patch == c.Version.Patch

	case "~":
		// Tilde allows patch-level changes: ~1.2.3 := >=1.2.3 <1.3.0
		if v.Compare(c.Version) < 0 {
			return false
		}
		return v.Major == c.Version.Major && v.Minor == c.Version.Minor

	case ">":
		return v.Compare(c.Version) > 0
	case ">=":
		return v.Compare(c.Version) >= 0
	case "<":
		return v.Compare(c.Version) < 0
	case "<=":
		return v.Compare(c.Version) <= 0
	}
	return false
}

// Filter returns the versions satisfying the constraint expression,
// preserving input order. Entries that do not parse are skipped.
func Filter(constraintExpr string, versions []SemVer) ([]SemVer, error) {
	c, err := ParseConstraint(constraintExpr)
	if err != nil {
		return nil, err
	}

	var matching []SemVer
	for _, s := range versions {
		v, err := Parse(string(s))
		if err != nil {
			continue
		}
		if c.Matches(v) {
			matching = append(matching, s)
		}
	}
	return matching, nil
}

// MaxSatisfying returns the highest version satisfying the constraint
// expression, or an error when nothing matches.
func MaxSatisfying(constraintExpr string, versions []SemVer) (SemVer, error) {
	matching, err := Filter(constraintExpr, versions)
	if err != nil {
		return "", err
	}
	if len(matching) == 0 {
		return "", &NoMatchingVersionError{Constraint: SemVerConstraint(constraintExpr), Available: versions}
	}

	sorted := Sort(matching)
	return sorted[0], nil
}
