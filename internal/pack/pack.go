package pack

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Suffix is the conventional file name suffix for extension archives.
const Suffix = ".shell-extension.zip"

// ArchiveName returns the conventional archive file name for an extension.
func ArchiveName(uuid string) string {
	return uuid + Suffix
}

// Archive compresses the contents of srcDir into a ZIP file at outPath.
// Entries are stored relative to srcDir with forward-slash names, so
// metadata.json ends up at the archive root as GNOME Shell expects.
// Returns the absolute path of the written archive.
func Archive(srcDir, outPath string) (string, error) {
	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return "", fmt.Errorf("resolving output path %s: %w", outPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(absOut), 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	out, err := os.Create(absOut)
	if err != nil {
		return "", fmt.Errorf("creating archive %s: %w", absOut, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	walkErr := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return fmt.Errorf("resolving relative path for %s: %w", path, err)
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("reading file info for %s: %w", path, err)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("building header for %s: %w", rel, err)
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("adding %s to archive: %w", rel, err)
		}

		src, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer src.Close()

		if _, err := io.Copy(w, src); err != nil {
			return fmt.Errorf("compressing %s: %w", rel, err)
		}
		return nil
	})
	if walkErr != nil {
		zw.Close()
		os.Remove(absOut)
		return "", walkErr
	}

	if err := zw.Close(); err != nil {
		os.Remove(absOut)
		return "", fmt.Errorf("finalizing archive %s: %w", absOut, err)
	}
	return absOut, nil
}
