// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smackpm/smack/internal/config"
	"github.com/smackpm/smack/internal/issue"
	"github.com/smackpm/smack/pkg/semver"
	"github.com/smackpm/smack/pkg/source"
)

var versionsConstraint string

var versionsCmd = &cobra.Command{
	Use:   "versions <source>",
	Short: "List the versions a package source has published",
	Long: `List the semver tags a package's git source has published,
newest first. The source is a git URL, or the name of a source
declared in the [sources] section of the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := resolveSourceURL(cfg, args[0])

		src, err := source.NewGitSource(url)
		if err != nil {
			return &ExitError{Code: 1, Err: issue.NewContext().
				WithOperation("open package source").
				WithResource(args[0]).
				WithSuggestion("Pass a full git URL, or declare the name under [sources] in the config").
				Wrap(err).
				Err()}
		}

		versions, err := src.ListVersions(cmd.Context())
		if err != nil {
			return &ExitError{Code: 1, Err: issue.NewContext().
				WithOperation("list remote versions").
				WithResource(url.String()).
				WithSuggestion("Check the URL and your network connection").
				Wrap(err).
				Err()}
		}

		if versionsConstraint != "" {
			versions, err = semver.Filter(versionsConstraint, versions)
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}
		}

		if len(versions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("no matching versions"))
			return nil
		}
		for i, v := range versions {
			line := v.String()
			if i == 0 {
				line = VersionStyle.Render(line) + SubtitleStyle.Render("  (newest)")
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	versionsCmd.Flags().StringVarP(&versionsConstraint, "constraint", "c", "",
		"only list versions satisfying this constraint (e.g. \"^1.2\")")
}

// resolveSourceURL maps a named source from the config to its git URL;
// anything not declared there is taken as a URL verbatim.
func resolveSourceURL(cfg *config.Config, arg string) source.GitURL {
	if url, ok := cfg.Sources[arg]; ok {
		return source.GitURL(url)
	}
	return source.GitURL(arg)
}
