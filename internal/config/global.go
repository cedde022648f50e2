// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows overriding the config directory, primarily in
// tests where os.UserHomeDir() does not reliably respect HOME.
var configDirOverride string

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride sets a custom config directory path.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
