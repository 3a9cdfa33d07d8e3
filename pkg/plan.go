package cargobump

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Change is one pending manifest rewrite.
type Change struct {
	Member     string // directory relative to the workspace root, "." for the root
	Path       string // manifest path
	Name       string // package name, empty if the manifest did not decode
	OldVersion string
	NewVersion string

	// Drift compares the member's current version with the root's:
	// -1 behind, 0 equal, +1 ahead.
	Drift int
}

// canonical renders a version as a canonical semver string ("v1.2.3").
func canonical(version string) (string, error) {
	major, minor, patch, err := parseTriplet(version)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("v%d.%d.%d", major, minor, patch), nil
}

// Plan reads the version of the root and of every member and computes the
// bumped versions. Nothing is written; any read or format error aborts the
// whole plan.
func Plan(ws Workspace, kind Kind) ([]Change, error) {
	members, err := ws.AllMembers()
	if err != nil {
		return nil, err
	}

	changes := make([]Change, 0, len(members))
	var rootVersion string
	for _, member := range members {
		old, err := ws.QueryVersion(member)
		if err != nil {
			return nil, err
		}
		bumped, err := Bump(old, kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", member, err)
		}

		c := Change{
			Member:     member,
			Path:       ws.ManifestPath(member),
			OldVersion: old,
			NewVersion: bumped,
		}
		if info, err := ws.ReadPackageInfo(member); err == nil {
			c.Name = info.Name
		}

		if member == RootMember {
			rootVersion, _ = canonical(old)
		} else {
			cur, _ := canonical(old)
			c.Drift = semver.Compare(cur, rootVersion)
		}
		changes = append(changes, c)
	}
	return changes, nil
}

// Apply writes every change in order and returns the members written. A
// failure stops the loop; earlier writes are not rolled back and are
// reported through *PartialWriteError.
func Apply(ws Workspace, changes []Change) ([]string, error) {
	written := make([]string, 0, len(changes))
	for _, c := range changes {
		if err := ws.WriteVersion(c.Member, c.NewVersion); err != nil {
			return written, &PartialWriteError{
				Written: append([]string(nil), written...),
				Failed:  c.Member,
				Err:     err,
			}
		}
		written = append(written, c.Member)
	}
	return written, nil
}
