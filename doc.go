// Package main implements the cargobump CLI tool.
//
// The cargobump tool reports and bumps the version declared in the [package] section of a
// Cargo manifest (default "Cargo.toml"). A bump is applied to the root manifest and to every
// workspace member listed in its members array. All new versions are computed and previewed
// before anything is written, and the rewrite only happens after an interactive confirmation:
// an empty answer or "n" aborts, any other answer accepts.
//
// Command Usage:
//
//	cargobump [flags] current
//	cargobump [flags] bump [major|minor|patch]
//
// Running cargobump without arguments prints this help and exits with status 1. Running it with
// only flags (for example -c) reports the current version and the workspace members.
//
// Flags:
//
//	-c, --current:  Prints the current version and the workspace members.
//	--root:         Project directory holding the root manifest. (Defaults to ".")
//	--manifest:     Manifest file name in every member directory. (Defaults to "Cargo.toml")
//	--config:       Config file. (Defaults to <root>/.cargobump.toml when present)
//	-v, --verbose:  Debug diagnostics on stderr.
//	--log-format:   Diagnostic log format, pretty or json.
//
// Bump flags:
//
//	-y, --yes:      Skips the confirmation.
//	--dry-run:      Previews the new versions without prompting or writing.
//	--commit:       Commits the rewritten manifests with the new root version as the message.
//	--tag:          Tags that commit with the new version prefixed with "v".
//
// Every setting can also come from the config file or from CARGOBUMP_* environment variables,
// e.g. CARGOBUMP_MANIFEST or CARGOBUMP_GIT_COMMIT.
//
// Examples:
//
//	# Print the current version (e.g. 0.4.9) and the members
//	cargobump current
//
//	# Bump the patch version of the root and every member (e.g. 0.4.9 → 0.4.10)
//	cargobump bump
//
//	# Bump the minor version (e.g. 0.4.9 → 0.5.0)
//	cargobump bump minor
//
//	# Preview a major bump (e.g. 0.4.9 → 1.0.0)
//	cargobump bump --dry-run major
//
//	# Bump, commit and tag without asking
//	cargobump bump --yes --commit --tag patch
//
// For the library API, see the documentation of the "pkg" package.
package main
