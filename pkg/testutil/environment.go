package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// TestEnvironment is an isolated set of XDG directories.
type TestEnvironment struct {
	t *testing.T

	Root       string
	ConfigHome string
	StateHome  string
}

// NewTestEnvironment points XDG_CONFIG_HOME, XDG_CONFIG_DIRS and
// XDG_STATE_HOME at fresh temp directories for the duration of the test.
// Tests using it must not call t.Parallel.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	root := t.TempDir()
	env := &TestEnvironment{
		t:          t,
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
	}

	// Registered first so it runs after t.Setenv restores the variables.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "system"))
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	xdg.Reload()

	return env
}

// WriteUserConfig writes propconv/config.toml under the config home and
// returns its path.
func (env *TestEnvironment) WriteUserConfig(content string) string {
	env.t.Helper()
	return env.WriteFile(filepath.Join(env.ConfigHome, "propconv", "config.toml"), content)
}

// WriteFile writes content to path, creating parent directories. A
// relative path is taken from Root.
func (env *TestEnvironment) WriteFile(path, content string) string {
	env.t.Helper()
	if !filepath.IsAbs(path) {
		path = filepath.Join(env.Root, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
