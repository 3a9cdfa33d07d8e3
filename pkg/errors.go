package cargobump

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrManifestUnreadable is returned when a manifest file cannot be opened or read.
	ErrManifestUnreadable = errors.New("manifest could not be read")

	// ErrVersionNotFound is returned when a manifest has no [package] version assignment.
	ErrVersionNotFound = errors.New("version number not found")

	// ErrMembersNotFound is returned when the root manifest has no members array.
	ErrMembersNotFound = errors.New("workspace members not found")

	// ErrVersionFormat is returned when a version does not have three numeric components.
	ErrVersionFormat = errors.New("version format must be X.X.X")

	// ErrInvalidBumpKind is returned for a bump kind other than major, minor or patch.
	ErrInvalidBumpKind = errors.New("invalid version type")

	// ErrDirtyWorktree is returned when --commit is requested on a worktree with unrelated changes.
	ErrDirtyWorktree = errors.New("working directory is dirty")
)

// PartialWriteError reports a failure inside the write loop. Members listed
// in Written were already rewritten and are left as they are.
type PartialWriteError struct {
	Written []string
	Failed  string
	Err     error
}

func (e *PartialWriteError) Error() string {
	if len(e.Written) == 0 {
		return fmt.Sprintf("writing %s: %v", e.Failed, e.Err)
	}
	return fmt.Sprintf("writing %s: %v (already written: %s)", e.Failed, e.Err, strings.Join(e.Written, ", "))
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
