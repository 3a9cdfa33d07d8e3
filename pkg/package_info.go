package cargobump

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// PackageInfo is the [package] table of a manifest as decoded by a TOML parser.
type PackageInfo struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type manifestDocument struct {
	Package PackageInfo `toml:"package"`
}

// ReadPackageInfo decodes member's manifest as TOML. It is only used for
// labels; version lookup and rewriting never depend on it.
func (w Workspace) ReadPackageInfo(member string) (PackageInfo, error) {
	var doc manifestDocument
	if _, err := toml.DecodeFile(w.ManifestPath(member), &doc); err != nil {
		return PackageInfo{}, fmt.Errorf("decoding %s: %w", w.ManifestPath(member), err)
	}
	return doc.Package, nil
}
