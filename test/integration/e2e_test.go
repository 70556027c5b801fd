//go:build integration

package integration_test

import (
	"archive/zip"
	"path/filepath"
	"testing"

	"github.com/gse-build/gse/internal/installer"
	"github.com/gse-build/gse/internal/metadata"
	"github.com/gse-build/gse/internal/pack"
	"github.com/gse-build/gse/internal/project"
	"github.com/gse-build/gse/internal/scaffold"
	"github.com/gse-build/gse/internal/shellpath"
)

// TestFullFlowScaffoldToInstall walks the whole lifecycle on a scaffolded
// project: create -> configure -> build -> pack -> install -> uninstall.
func TestFullFlowScaffoldToInstall(t *testing.T) {
	env := setupTestEnv(t)

	const uuid = "demo@gse.test"
	srcDir := filepath.Join(env.ProjectDir, "demo")

	// Step 1: Scaffold a fresh project.
	result, err := scaffold.Generate(scaffold.NewData(uuid, "", "", "48"), srcDir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Generate produced warnings: %v", result.Warnings)
	}

	// Step 2: The scaffolded metadata must satisfy the configure checks.
	meta, err := metadata.Load(srcDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := metadata.CheckUUID(meta); err != nil {
		t.Fatalf("CheckUUID: %v", err)
	}
	desc, err := project.LoadDescriptor(srcDir)
	if err != nil {
		t.Fatalf("LoadDescriptor: %v", err)
	}

	cfg := &project.BuildConfig{
		UUID:       meta.UUID,
		Scope:      "user",
		SourceDir:  srcDir,
		BuildDir:   filepath.Join(srcDir, "build"),
		Sources:    desc.Sources,
		Exclude:    desc.Exclude,
		SchemasDir: desc.SchemasDir,
	}
	if err := project.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Step 3: Stage. The scaffold declares no patterns, so everything
	// ships except the build tree and the descriptor itself.
	if _, err := installer.Stage(cfg); err != nil {
		t.Fatalf("Stage: %v", err)
	}
	stage := cfg.StageDir()
	for _, f := range []string{"metadata.json", "extension.js", "prefs.js", "stylesheet.css"} {
		assertFileExists(t, filepath.Join(stage, f))
	}
	assertNotExists(t, filepath.Join(stage, project.DescriptorFile))

	// Step 4: Pack and check the archive layout.
	archivePath, err := pack.Archive(stage, filepath.Join(env.ProjectDir, pack.ArchiveName(uuid)))
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	// metadata.json must sit at the archive root for gnome-extensions
	// install to accept it.
	if !names["metadata.json"] {
		t.Errorf("archive has no top-level metadata.json; entries: %v", names)
	}
	if !names["extension.js"] {
		t.Errorf("archive has no extension.js; entries: %v", names)
	}

	// Step 5: Install into the sandboxed user scope and remove again.
	plan, err := installer.Install(cfg, "")
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	assertFileExists(t, filepath.Join(plan.Target, "extension.js"))

	if _, removed, err := installer.Uninstall(shellpath.ScopeUser, "", uuid); err != nil || !removed {
		t.Fatalf("Uninstall: removed=%v err=%v", removed, err)
	}
	assertNotExists(t, plan.Target)
}
