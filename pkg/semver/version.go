// SPDX-License-Identifier: MPL-2.0

package semver

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// Version is a parsed semantic version. Missing minor/patch segments parse
// as zero; an optional leading "v" and build metadata are accepted and
// ignored for ordering.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
	// Original is the input string, returned verbatim by String.
	Original string
}

// versionRegex matches semantic version strings such as "1.2.3",
// "v2.0.0-rc.1" or "0.4".
var versionRegex = regexp.MustCompile(`^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:-([0-9A-Za-z\-\.]+))?(?:\+([0-9A-Za-z\-\.]+))?$`)

// Parse parses a version string into a Version.
func Parse(s string) (*Version, error) {
	m := versionRegex.FindStringSubmatch(s)
	if m == nil {
		return nil, &InvalidSemVerError{Value: SemVer(s)}
	}

	v := &Version{Original: s}
	var err error
	if v.Major, err = strconv.Atoi(m[1]); err != nil {
		return nil, fmt.Errorf("invalid major version: %w", err)
	}
	if m[2] != "" {
		if v.Minor, err = strconv.Atoi(m[2]); err != nil {
			return nil, fmt.Errorf("invalid minor version: %w", err)
		}
	}
	if m[3] != "" {
		if v.Patch, err = strconv.Atoi(m[3]); err != nil {
			return nil, fmt.Errorf("invalid patch version: %w", err)
		}
	}
	v.Prerelease = m[4]

	return v, nil
}

// String returns the original form of the version.
func (v *Version) String() string {
	return v.Original
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
// A prerelease version ranks below its release.
func (v *Version) Compare(other *Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}

	switch {
	case v.Prerelease == "" && other.Prerelease != "":
		return 1
	case v.Prerelease != "" && other.Prerelease == "":
		return -1
	case v.Prerelease < other.Prerelease:
		return -1
	case v.Prerelease > other.Prerelease:
		return 1
	}
	return 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Sort sorts version strings in descending order (newest first), dropping
// entries that do not parse as semantic versions.
func Sort(versions []SemVer) []SemVer {
	parsed := make([]*Version, 0, len(versions))
	for _, s := range versions {
		v, err := Parse(string(s))
		if err != nil {
			continue
		}
		parsed = append(parsed, v)
	}

	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].Compare(parsed[j]) > 0
	})

	result := make([]SemVer, len(parsed))
	for i, v := range parsed {
		result[i] = SemVer(v.Original)
	}
	return result
}
