package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gse-build/gse/internal/metadata"
)

func TestNewData(t *testing.T) {
	t.Run("derives everything from the uuid", func(t *testing.T) {
		d := NewData("tidy-panel@example.org", "", "", "")
		if d.UUID != "tidy-panel@example.org" {
			t.Errorf("UUID = %q, want %q", d.UUID, "tidy-panel@example.org")
		}
		if d.Name != "tidy panel" {
			t.Errorf("Name = %q, want %q", d.Name, "tidy panel")
		}
		if d.Description != "GNOME Shell extension tidy panel" {
			t.Errorf("Description = %q, want %q", d.Description, "GNOME Shell extension tidy panel")
		}
		if d.ShellVersion != DefaultShellVersion {
			t.Errorf("ShellVersion = %q, want %q", d.ShellVersion, DefaultShellVersion)
		}
		if d.GettextDomain != "tidy-panel" {
			t.Errorf("GettextDomain = %q, want %q", d.GettextDomain, "tidy-panel")
		}
		if d.ClassName != "TidyPanel" {
			t.Errorf("ClassName = %q, want %q", d.ClassName, "TidyPanel")
		}
	})

	t.Run("explicit values win", func(t *testing.T) {
		d := NewData("tidy-panel@example.org", "Tidy Panel", "Keeps the panel tidy", "47")
		if d.Name != "Tidy Panel" {
			t.Errorf("Name = %q, want %q", d.Name, "Tidy Panel")
		}
		if d.Description != "Keeps the panel tidy" {
			t.Errorf("Description = %q, want %q", d.Description, "Keeps the panel tidy")
		}
		if d.ShellVersion != "47" {
			t.Errorf("ShellVersion = %q, want %q", d.ShellVersion, "47")
		}
	})

	t.Run("year is populated", func(t *testing.T) {
		d := NewData("test@example.org", "", "", "")
		if d.Year == 0 {
			t.Error("Year should not be zero")
		}
	})
}

func TestSlug(t *testing.T) {
	tests := []struct {
		uuid string
		want string
	}{
		{"tidy-panel@example.org", "tidy-panel"},
		{"Tidy_Panel@example.org", "tidy-panel"},
		{"foo.bar@example.org", "foo-bar"},
		{"caffeine", "caffeine"},
		{"a--b@example.org", "a-b"},
		{"@example.org", "extension"},
	}

	for _, tt := range tests {
		got := Slug(tt.uuid)
		if got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.uuid, got, tt.want)
		}
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"tidy-panel", "TidyPanel"},
		{"caffeine", "Caffeine"},
		{"2048-game", "_2048Game"},
	}

	for _, tt := range tests {
		got := className(tt.slug)
		if got != tt.want {
			t.Errorf("className(%q) = %q, want %q", tt.slug, got, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "tidy-panel")

	data := NewData("tidy-panel@example.org", "Tidy Panel", "Keeps the panel tidy", "48")
	result, err := Generate(data, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// Verify expected files.
	expectedFiles := []string{"extension.js", "gse.yaml", "metadata.json", "prefs.js", "stylesheet.css"}
	assertFiles(t, result, expectedFiles)

	// Verify metadata content.
	metaContent := readGenerated(t, outDir, "metadata.json")
	assertContains(t, metaContent, `"uuid": "tidy-panel@example.org"`)
	assertContains(t, metaContent, `"name": "Tidy Panel"`)
	assertContains(t, metaContent, `"shell-version": ["48"]`)
	assertContains(t, metaContent, `"gettext-domain": "tidy-panel"`)

	// Verify the entry point exports the derived class.
	extContent := readGenerated(t, outDir, "extension.js")
	assertContains(t, extContent, "export default class TidyPanelExtension extends Extension")
	assertContains(t, extContent, "addToStatusArea(this.uuid")

	prefsContent := readGenerated(t, outDir, "prefs.js")
	assertContains(t, prefsContent, "class TidyPanelPrefs extends ExtensionPreferences")

	// Verify the descriptor is valid YAML with empty rules.
	yamlContent := readGenerated(t, outDir, "gse.yaml")
	assertContains(t, yamlContent, "sources: []")
	assertContains(t, yamlContent, "exclude: []")

	// Verify metadata passes schema validation.
	assertMetadataValid(t, outDir)

	// Verify no warnings.
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestGenerateNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	// Create an existing file in the output dir.
	os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("hello"), 0644)

	data := NewData("test@example.org", "", "", "")
	_, err := Generate(data, dir)
	if err == nil {
		t.Fatal("expected error for non-empty output directory")
	}
	if !strings.Contains(err.Error(), "not empty") {
		t.Errorf("error should mention non-empty dir, got: %v", err)
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func readGenerated(t *testing.T, dir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	return string(data)
}

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	if len(result.Files) != len(expected) {
		t.Errorf("got %d files %v, want %d files %v", len(result.Files), result.Files, len(expected), expected)
		return
	}
	for i, f := range expected {
		if result.Files[i] != f {
			t.Errorf("file[%d] = %q, want %q", i, result.Files[i], f)
		}
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertMetadataValid(t *testing.T, dir string) {
	t.Helper()
	result, err := metadata.ValidateFile(filepath.Join(dir, metadata.FileName))
	if err != nil {
		t.Fatalf("metadata validation error: %v", err)
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		t.Errorf("generated metadata is invalid:\n  %s", strings.Join(msgs, "\n  "))
	}
}
