package cli

import (
	"fmt"
	"path/filepath"

	"github.com/gse-build/gse/internal/gnome"
	"github.com/gse-build/gse/internal/metadata"
	"github.com/gse-build/gse/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	createName         string
	createDescription  string
	createShellVersion string
	createOutputDir    string
)

var createCmd = &cobra.Command{
	Use:   "create <uuid>",
	Short: "Scaffold a new extension project",
	Long: `Create a new GNOME Shell extension project from built-in templates:
metadata.json, extension.js, prefs.js, a stylesheet and a gse.yaml.

The uuid follows the extensions.gnome.org convention of name@domain, for
example hello@example.org.

Examples:
  gse create hello@example.org
  gse create clock@example.org --name "Desktop Clock" --shell-version 48`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Human-readable name (default derived from the uuid)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Short description for metadata.json")
	createCmd.Flags().StringVar(&createShellVersion, "shell-version", "", "GNOME Shell version to target (default detected, else "+scaffold.DefaultShellVersion+")")
	createCmd.Flags().StringVar(&createOutputDir, "output-dir", "", "Output directory (default ./<name part of the uuid>)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	uuid := args[0]
	if !metadata.ValidUUID(uuid) {
		return fmt.Errorf("invalid uuid %q: use letters, digits and -_.@, like hello@example.org", uuid)
	}

	shellVersion := createShellVersion
	if shellVersion == "" {
		// Target the running shell when there is one to ask.
		if detected, err := gnome.DetectShellVersion(cmd.Context()); err == nil {
			shellVersion = detected
		}
	}

	data := scaffold.NewData(uuid, createName, createDescription, shellVersion)

	outDir := createOutputDir
	if outDir == "" {
		outDir = filepath.Join(".", scaffold.Slug(uuid))
	}

	result, err := scaffold.Generate(data, outDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s at %s/\n", headingStyle.Render(uuid), result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Edit extension.js to add your extension logic")
	fmt.Fprintf(out, "  2. Run 'gse configure' in %s/ to choose an install scope\n", result.OutputDir)
	fmt.Fprintln(out, "  3. Run 'gse install' and reload GNOME Shell to try it")
	return nil
}
