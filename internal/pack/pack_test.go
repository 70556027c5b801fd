package pack

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestArchiveName(t *testing.T) {
	got := ArchiveName("example@example.org")
	want := "example@example.org.shell-extension.zip"
	if got != want {
		t.Errorf("ArchiveName() = %q, want %q", got, want)
	}
}

func TestArchive(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "metadata.json"), `{"uuid": "example@example.org"}`)
	writeFile(t, filepath.Join(src, "extension.js"), "export default class {}")
	writeFile(t, filepath.Join(src, "schemas", "org.gnome.shell.extensions.example.gschema.xml"), "<schemalist/>")

	outPath := filepath.Join(t.TempDir(), "out", ArchiveName("example@example.org"))
	got, err := Archive(src, outPath)
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}
	if got != outPath {
		t.Errorf("Archive() = %q, want %q", got, outPath)
	}

	r, err := zip.OpenReader(got)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	contents := make(map[string]string)
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		contents[f.Name] = string(data)
	}

	want := map[string]string{
		"metadata.json": `{"uuid": "example@example.org"}`,
		"extension.js":  "export default class {}",
		"schemas/org.gnome.shell.extensions.example.gschema.xml": "<schemalist/>",
	}
	for name, body := range want {
		got, ok := contents[name]
		if !ok {
			t.Errorf("archive is missing %s", name)
			continue
		}
		if got != body {
			t.Errorf("archive entry %s = %q, want %q", name, got, body)
		}
	}
	for name := range contents {
		if _, ok := want[name]; !ok {
			t.Errorf("archive has unexpected entry %s", name)
		}
	}
}

func TestArchiveMissingSource(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.zip")
	if _, err := Archive(filepath.Join(t.TempDir(), "nope"), outPath); err == nil {
		t.Error("Archive() expected error for missing source directory")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("Archive() left a partial archive behind")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
