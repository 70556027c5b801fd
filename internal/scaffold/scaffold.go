package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/gse-build/gse/internal/metadata"
)

//go:embed templates
var templateFS embed.FS

// templatesDir is the root of the embedded template set.
const templatesDir = "templates"

// DefaultShellVersion is declared in the generated metadata when no
// installed GNOME Shell is available to detect a real version from.
const DefaultShellVersion = "48"

// Data holds all template variables available to scaffold templates.
type Data struct {
	UUID          string // e.g., "tidy-panel@example.org"
	Name          string // Human-readable label, e.g., "tidy panel"
	Description   string
	ShellVersion  string // Single entry for metadata's shell-version list
	GettextDomain string // Derived from the UUID prefix
	ClassName     string // Derived: exported JS class name base, e.g., "TidyPanel"
	Year          int    // Current year
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData creates a Data with derived fields populated. Empty name,
// description, and shellVersion fall back to values derived from the UUID.
func NewData(uuid, name, description, shellVersion string) *Data {
	slug := Slug(uuid)

	d := &Data{
		UUID:          uuid,
		Name:          name,
		Description:   description,
		ShellVersion:  shellVersion,
		GettextDomain: slug,
		ClassName:     className(slug),
		Year:          time.Now().Year(),
	}

	if d.Name == "" {
		d.Name = strings.ReplaceAll(slug, "-", " ")
	}
	if d.Description == "" {
		d.Description = fmt.Sprintf("GNOME Shell extension %s", d.Name)
	}
	if d.ShellVersion == "" {
		d.ShellVersion = DefaultShellVersion
	}

	return d
}

// Slug reduces a UUID to a lowercase dashed identifier: the part before
// the "@", with every run of non-alphanumeric characters collapsed to a
// single dash.
func Slug(uuid string) string {
	prefix, _, _ := strings.Cut(uuid, "@")

	var b strings.Builder
	dashed := false
	for _, r := range strings.ToLower(prefix) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dashed = false
		default:
			if !dashed && b.Len() > 0 {
				b.WriteByte('-')
				dashed = true
			}
		}
	}

	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "extension"
	}
	return s
}

// className turns a slug into a JavaScript identifier usable as a class
// name prefix.
func className(slug string) string {
	var b strings.Builder
	for _, part := range strings.Split(slug, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}

	s := b.String()
	if s == "" {
		return "Example"
	}
	// Identifiers cannot start with a digit.
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

// Generate renders the embedded extension skeleton into outputDir.
func Generate(data *Data, outputDir string) (*Result, error) {
	entries, err := fs.ReadDir(templateFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	// Create output directory.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{
		OutputDir: outputDir,
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := filepath.Join(templatesDir, entry.Name())
		tmplBytes, err := fs.ReadFile(templateFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		// Strip .tmpl extension for the output filename.
		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	// Validate the generated metadata against the JSON Schema.
	metaPath := filepath.Join(outputDir, metadata.FileName)
	if _, err := os.Stat(metaPath); err == nil {
		valResult, valErr := metadata.ValidateFile(metaPath)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate metadata: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result, nil
}
