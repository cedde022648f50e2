// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/smackpm/smack/internal/issue"
	"github.com/smackpm/smack/pkg/smackspec"
	"github.com/smackpm/smack/pkg/types"
)

var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Work with smackspec manifest files",
}

var specValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Parse a smackspec file and report the first violation, if any",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := smackspec.ParseFile(types.FilesystemPath(args[0]))
		if err != nil {
			return &ExitError{Code: 1, Err: issue.NewContext().
				WithOperation("parse smackspec").
				WithResource(args[0]).
				WithSuggestion("The reported line is where parsing stopped; check it for a typo").
				WithSuggestion("Keys are case-sensitive and the format accepts no unknown keys").
				Wrap(err).
				Err()}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s provides %s %s\n",
			SuccessStyle.Render("ok:"),
			args[0],
			VersionStyle.Render(m.Provides.Package.String()),
			VersionStyle.Render(m.Provides.Version.String()))
		return nil
	},
}

var specShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Render a smackspec file for reading",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := smackspec.ParseFile(types.FilesystemPath(args[0]))
		if err != nil {
			return &ExitError{Code: 1, Err: err}
		}

		out, err := renderMarkdown(manifestMarkdown(m), cfg.UI.ColorScheme)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	specCmd.AddCommand(specValidateCmd)
	specCmd.AddCommand(specShowCmd)
}

// manifestMarkdown lays a manifest out as a markdown document for
// glamour rendering.
func manifestMarkdown(m *smackspec.Manifest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", m.Provides.Package, m.Provides.Version)

	if m.Description != nil {
		b.WriteString(strings.TrimRight(m.Description.Value, "\r\n"))
		b.WriteString("\n\n")
	}

	if len(m.Requires) > 0 {
		b.WriteString("## Requires\n\n")
		b.WriteString("| Package | Constraint |\n|---|---|\n")
		for _, req := range m.Requires {
			constraint := req.Constraint.String()
			if constraint == "" {
				constraint = "any"
			}
			fmt.Fprintf(&b, "| %s | `%s` |\n", req.Package, constraint)
		}
		b.WriteString("\n")
	}

	if keys := m.FieldKeys(); len(keys) > 0 {
		b.WriteString("## Fields\n\n")
		for _, key := range keys {
			f, _ := m.Field(key)
			fmt.Fprintf(&b, "- **%s**: %s\n", key, strings.TrimRight(f.Value, "\r\n"))
		}
	}

	return b.String()
}

// renderMarkdown renders markdown with the configured glamour style.
func renderMarkdown(md, colorScheme string) (string, error) {
	var styleOpt glamour.TermRendererOption
	switch colorScheme {
	case "dark", "light":
		styleOpt = glamour.WithStandardStyle(colorScheme)
	default:
		styleOpt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(100))
	if err != nil {
		return "", fmt.Errorf("failed to build renderer: %w", err)
	}
	return r.Render(md)
}
