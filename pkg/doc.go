// Package cargobump reads and bumps the version declared in a Cargo
// manifest and propagates the same bump to every workspace member.
//
// It provides functionalities for:
//   - Locating the [package] version and the workspace members of a manifest by pattern matching,
//     and rewriting only the version string while leaving every other byte untouched.
//   - Bumping "X.Y.Z" versions by major, minor or patch.
//   - Planning a workspace-wide bump, confirming it through a Prompter, and applying it.
//   - Optionally committing and tagging the rewritten manifests with git.
//
// Usage Example:
//
//	ws := cargobump.Workspace{Root: ".", Manifest: "Cargo.toml"}
//	r := &cargobump.Runner{Workspace: ws, Prompter: cargobump.StaticPrompter(true)}
//	if _, err := r.Bump(cargobump.Minor); err != nil {
//	    log.Fatalf("version bump failed: %v", err)
//	}
//
// A declined confirmation returns a nil error with Result.Confirmed unset.
// Writes are applied one manifest at a time; a failure part way through
// leaves the earlier manifests rewritten and is reported as a *PartialWriteError.
package cargobump
