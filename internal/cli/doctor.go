package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gse-build/gse/internal/config"
	"github.com/gse-build/gse/internal/fileset"
	"github.com/gse-build/gse/internal/gnome"
	"github.com/gse-build/gse/internal/metadata"
	"github.com/gse-build/gse/internal/project"
	"github.com/gse-build/gse/internal/shellpath"
	"github.com/spf13/cobra"
)

var (
	checkGNOME      bool
	checkPaths      bool
	checkProject    bool
	doctorSourceDir string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkGNOME, "check-gnome", false, "Verify GNOME Shell and the schema compiler")
	doctorCmd.Flags().BoolVar(&checkPaths, "check-paths", false, "Verify extension and config directories")
	doctorCmd.Flags().BoolVar(&checkProject, "check-project", false, "Verify the extension project in the source directory")
	doctorCmd.Flags().StringVar(&doctorSourceDir, "source-dir", ".", "Extension source directory for project checks")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the environment and the current project",
	Long:  `Run diagnostic checks on the GNOME Shell environment, the install paths, and the extension project in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		anyFlag := checkGNOME || checkPaths || checkProject

		w := cmd.OutOrStdout()
		ctx := cmd.Context()

		// If no specific flag, run all checks.
		if !anyFlag {
			runGNOMECheck(w, ctx)
			runPathsCheck(w)
			runProjectCheck(w, ctx, doctorSourceDir)
			return nil
		}

		if checkGNOME {
			runGNOMECheck(w, ctx)
		}
		if checkPaths {
			runPathsCheck(w)
		}
		if checkProject {
			runProjectCheck(w, ctx, doctorSourceDir)
		}
		return nil
	},
}

func runGNOMECheck(w io.Writer, ctx context.Context) {
	fmt.Fprintln(w, "GNOME check:")

	if path, err := gnome.FindShell(); err != nil {
		fmt.Fprintf(w, "  %s gnome-shell not found (fine on a build machine)\n", missMark())
	} else if version, err := gnome.DetectShellVersion(ctx); err != nil {
		fmt.Fprintf(w, "  %s gnome-shell found at %s but version query failed: %v\n", warnMark(), path, err)
	} else {
		fmt.Fprintf(w, "  %s GNOME Shell %s at %s\n", okMark(), version, path)
	}

	if path, err := gnome.FindSchemaCompiler(); err != nil {
		fmt.Fprintf(w, "  %s glib-compile-schemas not found, settings schemas will stay uncompiled\n", missMark())
	} else {
		fmt.Fprintf(w, "  %s glib-compile-schemas found at %s\n", okMark(), path)
	}
}

func runPathsCheck(w io.Writer) {
	fmt.Fprintln(w, "Paths check:")

	if root, err := shellpath.UserExtensionsRoot(); err != nil {
		fmt.Fprintf(w, "  %s cannot resolve user extensions directory: %v\n", failMark(), err)
	} else if _, statErr := os.Stat(root); statErr != nil {
		fmt.Fprintf(w, "  %s %s does not exist yet (created on first install)\n", infoMark(), root)
	} else {
		fmt.Fprintf(w, "  %s user extensions directory %s\n", okMark(), root)
	}

	if _, err := os.Stat(config.FilePath()); err != nil {
		fmt.Fprintf(w, "  %s no config file, using defaults (%s to change them)\n", infoMark(), "gse config set")
	} else {
		fmt.Fprintf(w, "  %s config file %s\n", okMark(), config.FilePath())
	}

	tools, err := shellpath.ToolsRoot()
	if err != nil {
		fmt.Fprintf(w, "  %s cannot resolve tools directory: %v\n", failMark(), err)
		return
	}
	if _, err := os.Stat(tools); err != nil {
		fmt.Fprintf(w, "  %s tools directory not created yet (run \"gse tool install\")\n", infoMark())
		return
	}
	if onPath(tools) {
		fmt.Fprintf(w, "  %s tools directory %s is on PATH\n", okMark(), tools)
	} else {
		fmt.Fprintf(w, "  %s tools directory %s is not on PATH\n", warnMark(), tools)
	}
}

func runProjectCheck(w io.Writer, ctx context.Context, srcDir string) {
	fmt.Fprintln(w, "Project check:")

	metaPath := filepath.Join(srcDir, metadata.FileName)
	if _, err := os.Stat(metaPath); err != nil {
		fmt.Fprintf(w, "  %s no %s in %s, skipping project checks\n", infoMark(), metadata.FileName, srcDir)
		return
	}

	result, err := metadata.ValidateFile(metaPath)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  %s %v\n", failMark(), err)
		return
	case result.Valid:
		fmt.Fprintf(w, "  %s %s is valid\n", okMark(), metadata.FileName)
	default:
		fmt.Fprintf(w, "  %s %s has %d validation issue(s):\n", failMark(), metadata.FileName, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(w, "    - %s\n", issue.Message)
			}
		}
	}

	meta, err := metadata.Load(srcDir)
	if err != nil {
		fmt.Fprintf(w, "  %s %v\n", failMark(), err)
		return
	}
	if err := metadata.CheckUUID(meta); err != nil {
		fmt.Fprintf(w, "  %s %v\n", failMark(), err)
	} else {
		fmt.Fprintf(w, "  %s uuid %s\n", okMark(), meta.UUID)
	}

	if _, err := os.Stat(filepath.Join(srcDir, fileset.EntryPoint)); err != nil {
		fmt.Fprintf(w, "  %s %s missing, GNOME Shell cannot load the extension\n", failMark(), fileset.EntryPoint)
	} else {
		fmt.Fprintf(w, "  %s %s present\n", okMark(), fileset.EntryPoint)
	}

	desc, err := project.LoadDescriptor(srcDir)
	if err != nil {
		fmt.Fprintf(w, "  %s %v\n", failMark(), err)
		return
	}
	rules := fileset.RuleSet{Patterns: desc.Sources, Exclude: desc.Exclude}
	if err := rules.Validate(); err != nil {
		fmt.Fprintf(w, "  %s %v\n", failMark(), err)
	} else if len(desc.Sources) == 0 {
		fmt.Fprintf(w, "  %s no source patterns declared, every file ships\n", infoMark())
	} else {
		fmt.Fprintf(w, "  %s %d source pattern(s)\n", okMark(), len(desc.Sources))
	}

	if desc.SchemasDir != "" {
		if _, err := os.Stat(filepath.Join(srcDir, desc.SchemasDir)); err != nil {
			fmt.Fprintf(w, "  %s schemas-dir %q declared but missing\n", warnMark(), desc.SchemasDir)
		} else {
			fmt.Fprintf(w, "  %s schemas directory %s\n", okMark(), desc.SchemasDir)
		}
	}

	version, err := gnome.DetectShellVersion(ctx)
	if err != nil {
		return
	}
	if ok, err := gnome.Supports(meta.ShellVersion, version); err == nil && !ok {
		fmt.Fprintf(w, "  %s shell-version %v does not cover the running GNOME Shell %s\n", warnMark(), meta.ShellVersion, version)
	} else if err == nil {
		fmt.Fprintf(w, "  %s supports the running GNOME Shell %s\n", okMark(), version)
	}
}

// onPath reports whether dir is one of the entries in $PATH.
func onPath(dir string) bool {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	for _, entry := range strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)) {
		if entry == "" {
			continue
		}
		if entryAbs, err := filepath.Abs(entry); err == nil && entryAbs == abs {
			return true
		}
	}
	return false
}
