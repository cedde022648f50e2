// SPDX-License-Identifier: MPL-2.0

// Package config loads smack's configuration: a TOML file in the
// platform-specific config directory (or the working directory), merged
// over defaults by viper. Configuration covers UI preferences and the
// named package sources the CLI can resolve instead of full git URLs.
package config
