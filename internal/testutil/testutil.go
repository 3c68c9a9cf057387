// Package testutil provides common test helpers for the venvx project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempProject creates a temporary project directory without a virtual
// environment. The directory is automatically cleaned up when the test
// finishes.
func TempProject(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// MakeEnvDir creates a virtual environment directory skeleton under the given
// project root. layout selects the activate script location: "bin" for the
// POSIX layout, "Scripts" for the Windows layout. Returns the env dir path.
func MakeEnvDir(t *testing.T, projectRoot, envDirName, layout string) string {
	t.Helper()

	envDir := filepath.Join(projectRoot, envDirName)
	binDir := filepath.Join(envDir, layout)
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("MakeEnvDir: mkdir failed: %v", err)
	}

	script := filepath.Join(binDir, "activate")
	if err := os.WriteFile(script, []byte("# venv activate stub\n"), 0644); err != nil {
		t.Fatalf("MakeEnvDir: write activate failed: %v", err)
	}

	return envDir
}

// TempProjectWithEnv creates a temporary project directory containing a
// POSIX-layout .venv skeleton. Returns the project root.
func TempProjectWithEnv(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	MakeEnvDir(t, root, ".venv", "bin")
	return root
}

// WriteManifest writes a venvx.toml with the given content into the project
// root and returns its path.
func WriteManifest(t *testing.T, projectRoot, content string) string {
	t.Helper()

	path := filepath.Join(projectRoot, "venvx.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteManifest: write failed: %v", err)
	}

	return path
}

// WriteRequirements writes a requirements.txt with the given content into the
// project root and returns its path.
func WriteRequirements(t *testing.T, projectRoot, content string) string {
	t.Helper()

	path := filepath.Join(projectRoot, "requirements.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteRequirements: write failed: %v", err)
	}

	return path
}

// WriteEntry writes an entry script (e.g. main.py) into the project root and
// returns its path.
func WriteEntry(t *testing.T, projectRoot, name string) string {
	t.Helper()

	path := filepath.Join(projectRoot, name)
	if err := os.WriteFile(path, []byte("print('ok')\n"), 0600); err != nil {
		t.Fatalf("WriteEntry: write failed: %v", err)
	}

	return path
}

// TempCacheFile creates a temporary cache.json with the given content
// and returns its path.
func TempCacheFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempCacheFile: write failed: %v", err)
	}

	return path
}
