// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/smackpm/smack/internal/issue"
	"github.com/smackpm/smack/pkg/source"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "smack"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

type (
	// Config is smack's loaded configuration.
	Config struct {
		// Sources maps short package-source names to git URLs, so the CLI
		// accepts "smack versions cmlib" instead of a full URL.
		Sources map[string]string `mapstructure:"sources"`

		// UI holds terminal output preferences.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds terminal output preferences.
	UIConfig struct {
		// ColorScheme selects the glamour style: "auto", "dark" or "light".
		ColorScheme string `mapstructure:"color_scheme"`
		// Verbose enables debug logging and full error chains.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Sources: map[string]string{},
		UI: UIConfig{
			ColorScheme: "auto",
			Verbose:     false,
		},
	}
}

// ConfigDir returns smack's configuration directory using platform
// conventions: %APPDATA% on Windows, ~/Library/Application Support on
// macOS, $XDG_CONFIG_HOME (default ~/.config) elsewhere.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string
	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions performs one configuration load with no package-level
// cache. Callers that want caching can wrap it.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	v.SetConfigType(ConfigFileExt)

	defaults := DefaultConfig()
	v.SetDefault("sources", defaults.Sources)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	resolvedPath, err := resolveConfigFile(opts)
	if err != nil {
		return nil, "", err
	}

	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", issue.NewContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid TOML").
				WithSuggestion("Remove the file to fall back to defaults").
				Wrap(err).
				Err()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSources(cfg.Sources); err != nil {
		return nil, "", issue.NewContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Source URLs must start with https://, git@, or ssh://").
			Wrap(err).
			Err()
	}

	return &cfg, resolvedPath, nil
}

// resolveConfigFile picks the config file to read: an explicit override,
// the platform config directory, then the working directory. An empty
// path with nil error means "defaults only".
func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				Err()
		}
		return opts.ConfigFilePath, nil
	}

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		var err error
		cfgDir, err = ConfigDir()
		if err != nil {
			return "", err
		}
	}

	name := ConfigFileName + "." + ConfigFileExt
	if path := filepath.Join(cfgDir, name); fileExists(path) {
		return path, nil
	}
	if fileExists(name) {
		return name, nil
	}
	return "", nil
}

// validateSources checks that every named source carries a usable git URL.
// Names are checked in sorted order so the reported error is deterministic.
func validateSources(sources map[string]string) error {
	names := maps.Keys(sources)
	slices.Sort(names)
	for _, name := range names {
		if err := source.GitURL(sources[name]).Validate(); err != nil {
			return fmt.Errorf("sources.%s: %w", name, err)
		}
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
