package cargobump

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// DefaultManifest is the manifest file name looked up in every member directory.
const DefaultManifest = "Cargo.toml"

// RootMember is the member name of the workspace root itself.
const RootMember = "."

var (
	// packageHeaderPattern matches a [package] table header line.
	packageHeaderPattern = regexp.MustCompile(`(?m)^[ \t]*\[package\]`)

	// tableHeaderPattern matches the start of any table header line.
	tableHeaderPattern = regexp.MustCompile(`(?m)^[ \t]*\[`)

	// packageVersionPattern matches a version key at the start of a line.
	// The first capture group is the version string.
	packageVersionPattern = regexp.MustCompile(`(?m)^[ \t]*version[ \t]*=[ \t]*"([^"\n]*)"`)

	// membersPattern captures the body of a members = [ ... ] array.
	membersPattern = regexp.MustCompile(`(?s)members\s*=\s*\[(.*?)\]`)

	// memberEntryPattern matches one quoted, whitespace-free entry.
	memberEntryPattern = regexp.MustCompile(`"([^"\s]+)"`)
)

// VersionMatch locates the declared version inside a manifest document.
type VersionMatch struct {
	StartIndex int // byte offset of the version string, quotes excluded
	EndIndex   int
	Version    string
}

// FindVersion returns the version declared in the [package] section of
// content. Only a plain `version = "..."` line inside that table counts;
// keys such as rust-version, version.workspace or inline dependency tables
// never match.
func FindVersion(content string) (VersionMatch, error) {
	header := packageHeaderPattern.FindStringIndex(content)
	if header == nil {
		return VersionMatch{}, ErrVersionNotFound
	}
	start := header[1]
	end := len(content)
	if next := tableHeaderPattern.FindStringIndex(content[start:]); next != nil {
		end = start + next[0]
	}

	loc := packageVersionPattern.FindStringSubmatchIndex(content[start:end])
	if loc == nil {
		return VersionMatch{}, ErrVersionNotFound
	}
	return VersionMatch{
		StartIndex: start + loc[2],
		EndIndex:   start + loc[3],
		Version:    content[start+loc[2] : start+loc[3]],
	}, nil
}

// ReplaceVersion returns content with the declared version replaced by
// newVersion. Every other byte of the document is kept as is.
func ReplaceVersion(content, newVersion string) (string, error) {
	m, err := FindVersion(content)
	if err != nil {
		return "", err
	}
	return content[:m.StartIndex] + newVersion + content[m.EndIndex:], nil
}

// FindMembers returns the entries of the members array in declaration order.
func FindMembers(content string) ([]string, error) {
	m := membersPattern.FindStringSubmatch(content)
	if m == nil {
		return nil, ErrMembersNotFound
	}
	var members []string
	for _, entry := range memberEntryPattern.FindAllStringSubmatch(m[1], -1) {
		members = append(members, entry[1])
	}
	return members, nil
}

// Workspace is a project root holding a manifest and, optionally, member
// directories with their own manifests. Everything is read from disk on
// each call.
type Workspace struct {
	Root     string // project directory, "." when empty
	Manifest string // manifest file name, DefaultManifest when empty
}

// Dir returns the project directory.
func (w Workspace) Dir() string {
	if w.Root == "" {
		return "."
	}
	return w.Root
}

// ManifestPath returns the manifest path of member, a directory relative to Root.
func (w Workspace) ManifestPath(member string) string {
	name := w.Manifest
	if name == "" {
		name = DefaultManifest
	}
	return filepath.Join(w.Dir(), member, name)
}

func (w Workspace) read(member string) (string, error) {
	path := w.ManifestPath(member)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrManifestUnreadable, err)
	}
	return string(data), nil
}

// QueryVersion returns the version declared in member's manifest.
func (w Workspace) QueryVersion(member string) (string, error) {
	content, err := w.read(member)
	if err != nil {
		return "", err
	}
	m, err := FindVersion(content)
	if err != nil {
		return "", fmt.Errorf("%w in %s", err, w.ManifestPath(member))
	}
	return m.Version, nil
}

// QueryMembers returns the members declared in the root manifest. The root
// itself is never part of the result.
func (w Workspace) QueryMembers() ([]string, error) {
	content, err := w.read(RootMember)
	if err != nil {
		return nil, err
	}
	members, err := FindMembers(content)
	if err != nil {
		return nil, fmt.Errorf("%w in %s", err, w.ManifestPath(RootMember))
	}
	return members, nil
}

// AllMembers returns the root followed by the declared members.
func (w Workspace) AllMembers() ([]string, error) {
	members, err := w.QueryMembers()
	if err != nil {
		return nil, err
	}
	return append([]string{RootMember}, members...), nil
}

// WriteVersion rewrites the declared version of member's manifest. The
// manifest is re-read and re-matched, so a concurrent edit that removed the
// version surfaces as ErrVersionNotFound.
func (w Workspace) WriteVersion(member, newVersion string) error {
	path := w.ManifestPath(member)
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifestUnreadable, err)
	}
	content, err := w.read(member)
	if err != nil {
		return err
	}
	updated, err := ReplaceVersion(content, newVersion)
	if err != nil {
		return fmt.Errorf("%w in %s", err, path)
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
