// SPDX-License-Identifier: MPL-2.0

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/smackpm/smack/pkg/semver"
	"github.com/smackpm/smack/pkg/smackspec"
)

// GitSource serves smackspec manifests from a Git remote. Version
// listings use an in-memory remote (no clone); manifest fetches clone the
// tagged tree into memory, so nothing is written to disk.
type GitSource struct {
	url    GitURL
	auth   transport.AuthMethod
	logger *log.Logger
}

// NewGitSource creates a Git-backed source for the given repository URL.
func NewGitSource(url GitURL) (*GitSource, error) {
	if err := url.Validate(); err != nil {
		return nil, err
	}

	s := &GitSource{
		url:    url,
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "git-source"}),
	}
	s.auth = detectAuth()
	return s, nil
}

// ListVersions returns the remote's semver tags, newest first.
func (s *GitSource) ListVersions(ctx context.Context) ([]semver.SemVer, error) {
	remote := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: "origin",
		URLs: []string{string(s.url)},
	})

	refs, err := remote.ListContext(ctx, &git.ListOptions{Auth: s.auth})
	if err != nil {
		return nil, fmt.Errorf("failed to list refs for %s: %w", s.url, err)
	}

	versions := tagVersions(refs)
	s.logger.Debug("listed remote versions", "url", s.url, "count", len(versions))
	return versions, nil
}

// FetchSpec clones the tagged tree into memory and parses the first
// *.smackspec file at its root.
func (s *GitSource) FetchSpec(ctx context.Context, version semver.SemVer) (*smackspec.Manifest, error) {
	fs := memfs.New()
	_, err := git.CloneContext(ctx, memory.NewStorage(), fs, &git.CloneOptions{
		URL:           string(s.url),
		Auth:          s.auth,
		ReferenceName: plumbing.NewTagReferenceName(string(version)),
		SingleBranch:  true,
		Depth:         1,
		Tags:          git.NoTags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s at %s: %w", s.url, version, err)
	}

	entries, err := fs.ReadDir("/")
	if err != nil {
		return nil, fmt.Errorf("failed to read fetched tree for %s: %w", s.url, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	specName, ok := findSpecName(names)
	if !ok {
		return nil, fmt.Errorf("%w in %s at %s", ErrSpecNotFound, s.url, version)
	}
	s.logger.Debug("fetched spec", "url", s.url, "version", version, "file", specName)

	f, err := fs.Open(specName)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", specName, err)
	}
	defer f.Close()

	m, err := smackspec.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s at %s: %w", specName, version, err)
	}
	return m, nil
}

// tagVersions filters refs down to semver tags, sorted newest first.
func tagVersions(refs []*plumbing.Reference) []semver.SemVer {
	var versions []semver.SemVer
	for _, ref := range refs {
		if !ref.Name().IsTag() {
			continue
		}
		tag := ref.Name().Short()
		if ok, _ := semver.SemVer(tag).IsValid(); ok {
			versions = append(versions, semver.SemVer(tag))
		}
	}
	return semver.Sort(versions)
}

// findSpecName picks the manifest file from a tree's root entries. The
// first *.smackspec in lexical input order wins.
func findSpecName(names []string) (string, bool) {
	for _, name := range names {
		if strings.HasSuffix(name, ".smackspec") {
			return name, true
		}
	}
	return "", false
}

// detectAuth configures git authentication from the environment: an SSH
// key if one exists, then a GITHUB_TOKEN for HTTPS. Public repositories
// work with no auth at all.
func detectAuth() transport.AuthMethod {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		keyPaths := []string{
			filepath.Join(homeDir, ".ssh", "id_ed25519"),
			filepath.Join(homeDir, ".ssh", "id_rsa"),
			filepath.Join(homeDir, ".ssh", "id_ecdsa"),
		}
		for _, keyPath := range keyPaths {
			if _, statErr := os.Stat(keyPath); statErr != nil {
				continue
			}
			if auth, keyErr := ssh.NewPublicKeysFromFile("git", keyPath, ""); keyErr == nil {
				return auth
			}
		}
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return &http.BasicAuth{Username: "x-access-token", Password: token}
	}

	return nil
}
