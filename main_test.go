package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain triggers the CLI as a subprocess when GO_HELPER_PROCESS is set.
func TestMain(m *testing.M) {
	if os.Getenv("GO_HELPER_PROCESS") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runHelper runs the CLI in helper process mode and returns its combined
// output and exit code.
func runHelper(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), "GO_HELPER_PROCESS=1")
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return string(out), 0
}

// runCLI runs the CLI in process.
func runCLI(stdin string, args ...string) (stdout, stderr string, code int) {
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), code
}

// setupWorkspace writes a root manifest at 0.4.9 with members core (0.4.9)
// and cli (0.4.8) and returns its directory.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"Cargo.toml":      "[package]\nname = \"pyrev\"\nversion = \"0.4.9\"\n\n[workspace]\nmembers = [\n    \"core\",\n    \"cli\",\n]\n",
		"core/Cargo.toml": "[package]\nname = \"pyrev-core\"\nversion = \"0.4.9\"\n",
		"cli/Cargo.toml":  "[package]\nname = \"pyrev-cli\"\nversion = \"0.4.8\"\n",
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func versionOf(t *testing.T, dir, member string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, member, "Cargo.toml"))
	require.NoError(t, err)
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "version = ") {
			return strings.Trim(strings.TrimPrefix(line, "version = "), `"`)
		}
	}
	t.Fatalf("no version line in %s", member)
	return ""
}

func TestCLINoArgs(t *testing.T) {
	stdout, stderr, code := runCLI("")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage:")
	assert.Contains(t, stderr, "bump")
}

func TestCLINoArgsExitStatus(t *testing.T) {
	out, code := runHelper(t, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Usage:")
}

func TestCLIVersion(t *testing.T) {
	stdout, _, code := runCLI("", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, Version)
}

func TestCLICurrent(t *testing.T) {
	dir := setupWorkspace(t)
	want := "Crate version: 0.4.9\n[*] This crate has the following members:\n  - core\n  - cli\n"

	for _, args := range [][]string{
		{"current", "--root", dir},
		{"-c", "--root", dir},
		{"--current", "--root", dir},
		{"--root", dir},
		{"-c", "--root", dir, "bump", "major"},
	} {
		stdout, stderr, code := runCLI("", args...)
		assert.Equal(t, 0, code, "%v: %s", args, stderr)
		assert.Equal(t, want, stdout, "%v", args)
	}
	assert.Equal(t, "0.4.9", versionOf(t, dir, "."))
}

func TestCLIBumpAccepted(t *testing.T) {
	dir := setupWorkspace(t)
	stdout, stderr, code := runCLI("y\n", "bump", "MINOR", "--root", dir)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "[*] Bumping version of .: 0.4.9 -> 0.5.0\n")
	assert.Contains(t, stdout, "[*] Bumping version of cli: 0.4.8 -> 0.5.0\n")
	assert.Contains(t, stdout, "[!] Are you sure you want to bump the version number? [y/N]\n")
	assert.True(t, strings.HasSuffix(stdout, "[*] Version number bumped\n"), stdout)

	for _, m := range []string{".", "core", "cli"} {
		assert.Equal(t, "0.5.0", versionOf(t, dir, m), m)
	}
}

func TestCLIBumpDefaultsToPatch(t *testing.T) {
	dir := setupWorkspace(t)
	_, stderr, code := runCLI("xyz\n", "bump", "--root", dir)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "0.4.10", versionOf(t, dir, "."))
	assert.Equal(t, "0.4.9", versionOf(t, dir, "cli"))
}

func TestCLIBumpDeclined(t *testing.T) {
	for _, answer := range []string{"\n", "n\n", "N\n", ""} {
		dir := setupWorkspace(t)
		stdout, stderr, code := runCLI(answer, "bump", "minor", "--root", dir)
		assert.Equal(t, 0, code, stderr)
		assert.True(t, strings.HasSuffix(stdout, "[!] Aborted\n"), stdout)
		assert.Equal(t, "0.4.9", versionOf(t, dir, "."))
		assert.Equal(t, "0.4.9", versionOf(t, dir, "core"))
		assert.Equal(t, "0.4.8", versionOf(t, dir, "cli"))
	}
}

func TestCLIBumpYesAndDryRun(t *testing.T) {
	dir := setupWorkspace(t)
	stdout, _, code := runCLI("", "bump", "major", "--dry-run", "--root", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Dry run, no files were modified")
	assert.NotContains(t, stdout, "Are you sure")
	assert.Equal(t, "0.4.9", versionOf(t, dir, "."))

	stdout, _, code = runCLI("", "bump", "major", "-y", "--root", dir)
	assert.Equal(t, 0, code)
	assert.NotContains(t, stdout, "Are you sure")
	assert.Equal(t, "1.0.0", versionOf(t, dir, "."))
	assert.Equal(t, "1.0.0", versionOf(t, dir, "cli"))
}

func TestCLIInvalidKind(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nowhere")
	_, stderr, code := runCLI("y\n", "bump", "build", "--root", missing)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: invalid version type")
	assert.NotContains(t, stderr, "manifest could not be read")
}

func TestCLIErrors(t *testing.T) {
	_, stderr, code := runCLI("", "current", "--root", t.TempDir())
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "manifest could not be read")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nversion = \"1.2\"\n[workspace]\nmembers = []\n"), 0644))
	_, stderr, code = runCLI("y\n", "bump", "--root", dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "version format must be X.X.X")

	_, stderr, code = runCLI("", "frobnicate")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown command")

	_, stderr, code = runCLI("", "bump", "patch", "minor")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error:")

	_, stderr, code = runCLI("", "bump", "--tag", "--root", setupWorkspace(t))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--tag requires --commit")
}

func TestCLIConfigFromEnvironment(t *testing.T) {
	dir := setupWorkspace(t)
	t.Setenv("CARGOBUMP_ROOT", dir)
	t.Setenv("CARGOBUMP_YES", "true")

	_, stderr, code := runCLI("", "bump", "minor")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "0.5.0", versionOf(t, dir, "core"))
}
