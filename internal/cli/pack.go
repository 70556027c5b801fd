package cli

import (
	"fmt"

	"github.com/gse-build/gse/internal/installer"
	"github.com/gse-build/gse/internal/pack"
	"github.com/spf13/cobra"
)

var (
	packOutput   string
	packBuildDir string
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Build a distributable extension zip",
	Long: `Stage the extension and archive it as <uuid>.shell-extension.zip with
metadata.json at the archive root, the layout extensions.gnome.org and
"gnome-extensions install" expect.`,
	RunE: runPack,
}

func init() {
	packCmd.Flags().StringVarP(&packOutput, "output", "o", "", "Archive path (default <uuid>.shell-extension.zip)")
	packCmd.Flags().StringVar(&packBuildDir, "build-dir", "", "Build directory (default from config, \"build\")")
	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	cfg, err := loadBuildConfig(packBuildDir)
	if err != nil {
		return err
	}

	// Pack from a fresh stage so the archive matches the working tree.
	if _, err := installer.Stage(cfg); err != nil {
		return err
	}
	if err := compileStagedSchemas(cmd, cfg); err != nil {
		return err
	}

	out := packOutput
	if out == "" {
		out = pack.ArchiveName(cfg.UUID)
	}

	path, err := pack.Archive(cfg.StageDir(), out)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s packed %s\n", successStyle.Render("✓"), path)
	return nil
}
