//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gse-build/gse/internal/project"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ExtensionsRoot string // GSE_EXTENSIONS — per-user extensions directory
	Prefix         string // install prefix for system-scope tests
	ProjectDir     string // extension source tree
	BuildDir       string // build directory inside the project
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so nothing touches the real user or system directories.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ExtensionsRoot: t.TempDir(),
		Prefix:         t.TempDir(),
		ProjectDir:     t.TempDir(),
	}
	env.BuildDir = filepath.Join(env.ProjectDir, "build")

	t.Setenv("GSE_EXTENSIONS", env.ExtensionsRoot)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GSE_TOOLS", filepath.Join(t.TempDir(), "tools"))

	return env
}

const testUUID = "hello@gse.test"

// setupProject writes a small but realistic extension source tree:
// entry point, preferences, a stylesheet, a nested module, a settings
// schema, and files the descriptor excludes.
func setupProject(t *testing.T, env *testEnv) {
	t.Helper()

	writeFile(t, filepath.Join(env.ProjectDir, "metadata.json"), `{
  "uuid": "hello@gse.test",
  "name": "Hello",
  "description": "Integration fixture",
  "shell-version": ["47", "48"],
  "version": 2,
  "settings-schema": "org.gnome.shell.extensions.hello"
}
`)
	writeFile(t, filepath.Join(env.ProjectDir, "extension.js"), `export default class HelloExtension {
    enable() {}
    disable() {}
}
`)
	writeFile(t, filepath.Join(env.ProjectDir, "prefs.js"), `export default class HelloPrefs {}
`)
	writeFile(t, filepath.Join(env.ProjectDir, "stylesheet.css"), ".hello-label { color: red; }\n")
	writeFile(t, filepath.Join(env.ProjectDir, "lib", "util.js"), "export function noop() {}\n")
	writeFile(t, filepath.Join(env.ProjectDir, "schemas", "org.gnome.shell.extensions.hello.gschema.xml"),
		`<schemalist><schema id="org.gnome.shell.extensions.hello" path="/org/gnome/shell/extensions/hello/"/></schemalist>
`)

	// Files the descriptor below keeps out of the build.
	writeFile(t, filepath.Join(env.ProjectDir, "notes.txt"), "scratch\n")
	writeFile(t, filepath.Join(env.ProjectDir, "lib", "util.test.js"), "// not shipped\n")

	writeFile(t, filepath.Join(env.ProjectDir, project.DescriptorFile), `sources:
  - "*.js"
  - "*.css"
  - "lib/**/*.js"
  - "schemas/**"
exclude:
  - "**/*.test.js"
schemas-dir: schemas
`)
}

// buildConfig returns the configuration the configure step would have
// cached for the fixture project.
func buildConfig(env *testEnv) *project.BuildConfig {
	return &project.BuildConfig{
		UUID:      testUUID,
		Scope:     "user",
		Prefix:    env.Prefix,
		SourceDir: env.ProjectDir,
		BuildDir:  env.BuildDir,
		Sources:    []string{"*.js", "*.css", "lib/**/*.js", "schemas/**"},
		Exclude:    []string{"**/*.test.js"},
		SchemasDir: "schemas",
	}
}

// ─── Assertion Helpers ─────────────────────────────────────────────

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected file %s, found a directory", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected directory %s, found a file", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist (err = %v)", path, err)
	}
}
