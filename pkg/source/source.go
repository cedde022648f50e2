// SPDX-License-Identifier: MPL-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smackpm/smack/pkg/semver"
	"github.com/smackpm/smack/pkg/smackspec"
)

var (
	// ErrInvalidGitURL is the sentinel error wrapped by InvalidGitURLError.
	ErrInvalidGitURL = errors.New("invalid git URL")
	// ErrSpecNotFound is returned when a fetched tree carries no
	// *.smackspec file at its root.
	ErrSpecNotFound = errors.New("no smackspec found")
)

type (
	// Source lists the versions a remote package offers and fetches the
	// manifest published for one of them.
	Source interface {
		// ListVersions returns the remote's released versions, newest
		// first. Tags that are not semantic versions are ignored.
		ListVersions(ctx context.Context) ([]semver.SemVer, error)

		// FetchSpec retrieves and parses the manifest published at the
		// given version.
		FetchSpec(ctx context.Context, version semver.SemVer) (*smackspec.Manifest, error)
	}

	// GitURL represents a Git repository URL (HTTPS, SSH, or git@ form).
	GitURL string

	// InvalidGitURLError is returned when a GitURL value does not match
	// the expected URL format.
	InvalidGitURLError struct {
		Value GitURL
	}
)

// String returns the string representation of the GitURL.
func (u GitURL) String() string { return string(u) }

// Validate returns nil if the GitURL is a valid Git repository URL, or an
// error describing the validation failure.
func (u GitURL) Validate() error {
	s := string(u)
	if s == "" || (!strings.HasPrefix(s, "https://") && !strings.HasPrefix(s, "git@") && !strings.HasPrefix(s, "ssh://")) {
		return &InvalidGitURLError{Value: u}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidGitURLError) Error() string {
	return fmt.Sprintf("invalid git URL %q (must start with https://, git@, or ssh://)", e.Value)
}

// Unwrap returns ErrInvalidGitURL so callers can use errors.Is for programmatic detection.
func (e *InvalidGitURLError) Unwrap() error { return ErrInvalidGitURL }
