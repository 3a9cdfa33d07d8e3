package cargobump

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects which version component a bump increments.
type Kind int

const (
	Major Kind = iota + 1
	Minor
	Patch
)

func (k Kind) String() string {
	switch k {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Patch:
		return "patch"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "major", "minor" or "patch", ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	case "patch":
		return Patch, nil
	}
	return 0, fmt.Errorf("%w: %q (expected major, minor or patch)", ErrInvalidBumpKind, s)
}

// parseTriplet splits an "X.Y.Z" version into its numeric components.
func parseTriplet(version string) (major, minor, patch uint64, err error) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		err = fmt.Errorf("%w: got %q", ErrVersionFormat, version)
		return
	}

	nums := make([]uint64, 3)
	for i, p := range parts {
		n, perr := strconv.ParseUint(p, 10, 64)
		if perr != nil {
			err = fmt.Errorf("%w: component %q of %q is not a non-negative integer", ErrVersionFormat, p, version)
			return
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// Bump returns version incremented according to kind. Lower components
// are reset to zero. The result is always rebuilt from integers, so
// leading zeros do not survive ("01.0.0" patch-bumps to "1.0.1").
func Bump(version string, kind Kind) (string, error) {
	major, minor, patch, err := parseTriplet(version)
	if err != nil {
		return "", err
	}

	switch kind {
	case Major:
		major++
		minor = 0
		patch = 0
	case Minor:
		minor++
		patch = 0
	case Patch:
		patch++
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidBumpKind, kind)
	}

	return fmt.Sprintf("%d.%d.%d", major, minor, patch), nil
}
