package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gse-build/gse/internal/config"
	"github.com/gse-build/gse/internal/gnome"
	"github.com/gse-build/gse/internal/installer"
	"github.com/gse-build/gse/internal/project"
	"github.com/spf13/cobra"
)

var buildBuildDir string

func init() {
	buildCmd.Flags().StringVar(&buildBuildDir, "build-dir", "", "Build directory (default from config, \"build\")")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Stage the extension into the build directory",
	Long: `Copy the configured source files into <build-dir>/stage, preserving
their relative layout, and compile GSettings schemas when the project
declares them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadBuildConfig(buildBuildDir)
		if err != nil {
			return err
		}

		plan, err := installer.Stage(cfg)
		if err != nil {
			return err
		}

		if err := compileStagedSchemas(cmd, cfg); err != nil {
			return err
		}

		installer.PrintPlan(cmd.OutOrStdout(), plan)
		fmt.Fprintf(cmd.OutOrStdout(), "%s staged into %s\n", successStyle.Render("✓"), cfg.StageDir())
		return nil
	},
}

// resolveBuildDir returns the flag value when set, falling back to the
// configured default.
func resolveBuildDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	config.Load()
	return config.Get(config.KeyBuildDir)
}

// loadBuildConfig reads the configure cache for the effective build directory.
func loadBuildConfig(flagValue string) (*project.BuildConfig, error) {
	return project.Load(resolveBuildDir(flagValue))
}

// compileStagedSchemas runs glib-compile-schemas on the staged schemas
// directory when the project declares one. A missing compiler downgrades to
// a warning so source-only extensions keep building on minimal machines.
func compileStagedSchemas(cmd *cobra.Command, cfg *project.BuildConfig) error {
	if cfg.SchemasDir == "" {
		return nil
	}

	dir := filepath.Join(cfg.StageDir(), cfg.SchemasDir)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking schemas directory %s: %w", dir, err)
	}

	if err := gnome.CompileSchemas(cmd.Context(), dir); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s glib-compile-schemas not found, schemas left uncompiled\n", warnMark())
			return nil
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Compiled schemas in %s\n", dir)
	return nil
}
