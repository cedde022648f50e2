// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smackpm/smack/pkg/smackspec"
)

const sampleSpec = `provides: widget 1.2.3
description:
    A sample widget.
requires: base >= 1.0.0
requires: io ^2
license: MIT
`

func TestManifestMarkdown(t *testing.T) {
	t.Parallel()

	m, err := smackspec.ParseString(sampleSpec)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	md := manifestMarkdown(m)

	for _, want := range []string{
		"# widget 1.2.3",
		"A sample widget.",
		"## Requires",
		"| base | `>= 1.0.0` |",
		"| io | `^2` |",
		"## Fields",
		"**license**: MIT",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("manifestMarkdown() missing %q:\n%s", want, md)
		}
	}
}

func TestManifestMarkdown_EmptyConstraintShownAsAny(t *testing.T) {
	t.Parallel()

	m, err := smackspec.ParseString("provides: widget 1.0.0\nrequires: base\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if md := manifestMarkdown(m); !strings.Contains(md, "| base | `any` |") {
		t.Errorf("manifestMarkdown() should show empty constraints as any:\n%s", md)
	}
}

func TestSpecValidateCmd(t *testing.T) {
	// Not parallel: command state (output writers) is package-global.

	writeSpec := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "widget.smackspec")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write spec: %v", err)
		}
		return path
	}

	t.Run("valid spec reports ok", func(t *testing.T) {
		var buf bytes.Buffer
		specValidateCmd.SetOut(&buf)
		defer specValidateCmd.SetOut(nil)

		path := writeSpec(t, sampleSpec)
		if err := specValidateCmd.RunE(specValidateCmd, []string{path}); err != nil {
			t.Fatalf("RunE() error = %v", err)
		}
		if !strings.Contains(buf.String(), "widget") {
			t.Errorf("output %q should name the package", buf.String())
		}
	})

	t.Run("invalid spec returns ExitError wrapping the parse error", func(t *testing.T) {
		path := writeSpec(t, "provides: widget\n")

		err := specValidateCmd.RunE(specValidateCmd, []string{path})
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("error %v should be an *ExitError", err)
		}
		if exitErr.Code != 1 {
			t.Errorf("Code = %d, want 1", exitErr.Code)
		}
		if !errors.Is(err, smackspec.ErrMalformedProvides) {
			t.Errorf("error %v should match smackspec.ErrMalformedProvides", err)
		}
	})
}
