// SPDX-License-Identifier: MPL-2.0

// Package source acquires smackspec manifests from remote package
// sources. The parser core never performs network I/O; this package is
// the collaborator that supplies it with manifest text, currently from
// Git remotes. Callers own retry and timeout policy through the contexts
// they pass in.
package source
