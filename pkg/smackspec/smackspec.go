// SPDX-License-Identifier: MPL-2.0

package smackspec

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/smackpm/smack/pkg/types"
)

// Parse reads one smackspec document from r and returns the validated
// manifest. The reader is consumed exactly once; the first violation
// aborts with a typed error and no partial manifest.
func Parse(r io.Reader) (*Manifest, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	return parseLines(lines)
}

// ParseString parses a smackspec document supplied as an in-memory string.
func ParseString(text string) (*Manifest, error) {
	return Parse(strings.NewReader(text))
}

// ParseFile parses the smackspec document at path. The file is opened,
// fully consumed and closed on every exit path.
func ParseFile(path types.FilesystemPath) (*Manifest, error) {
	if ok, errs := path.IsValid(); !ok {
		return nil, errs[0]
	}

	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open smackspec at %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// parseLines runs the pure pipeline: leading-blank skip, directive
// assembly, classification, manifest building.
func parseLines(lines []RawLine) (*Manifest, error) {
	raw, err := assembleDirectives(skipLeadingBlank(lines))
	if err != nil {
		return nil, err
	}

	directives := make([]Directive, 0, len(raw))
	for _, r := range raw {
		d, err := classify(r)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}

	return buildManifest(directives)
}
