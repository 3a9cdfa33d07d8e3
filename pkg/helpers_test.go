package cargobump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const rootManifest = `[package]
name = "pyrev"
version = "0.4.9"
edition = "2021"

[workspace]
members = [
    "core",
    "cli",
]

[dependencies]
serde = { version = "1.0", features = ["derive"] }
`

func memberManifest(name, version string) string {
	return `# member crate
[package]
name = "` + name + `"
version = "` + version + `"
edition = "2021"

[dependencies]
anyhow = "1.0.86"
`
}

// writeWorkspace lays out files (relative path -> content) under a fresh
// temporary directory and returns it.
func writeWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// defaultWorkspace is the root 0.4.9 with members core 0.4.9 and cli 0.4.8.
func defaultWorkspace(t *testing.T) Workspace {
	t.Helper()
	dir := writeWorkspace(t, map[string]string{
		"Cargo.toml":      rootManifest,
		"core/Cargo.toml": memberManifest("pyrev-core", "0.4.9"),
		"cli/Cargo.toml":  memberManifest("pyrev-cli", "0.4.8"),
	})
	return Workspace{Root: dir, Manifest: DefaultManifest}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// snapshot returns the content of every manifest of ws.
func snapshot(t *testing.T, ws Workspace) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, m := range []string{RootMember, "core", "cli"} {
		out[m] = readFile(t, ws.ManifestPath(m))
	}
	return out
}

// scriptedPrompter answers with a fixed line and records the questions asked.
type scriptedPrompter struct {
	answer string
	asked  []string
}

func (s *scriptedPrompter) Confirm(question string) (bool, error) {
	s.asked = append(s.asked, question)
	return Accepts(s.answer), nil
}
