package cli

import (
	"errors"
	"fmt"

	"github.com/gse-build/gse/internal/config"
	"github.com/gse-build/gse/internal/installer"
	"github.com/gse-build/gse/internal/metadata"
	"github.com/gse-build/gse/internal/project"
	"github.com/gse-build/gse/internal/shellpath"
	"github.com/spf13/cobra"
)

var (
	uninstallSystem   bool
	uninstallLocal    bool
	uninstallPrefix   string
	uninstallBuildDir string
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [uuid]",
	Short: "Remove an installed extension",
	Long: `Remove an installed extension directory. Without an argument the uuid,
scope and prefix come from the configured project in the current
directory; with an explicit uuid any extension can be removed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVar(&uninstallSystem, "system", false, "Remove from the system scope")
	uninstallCmd.Flags().BoolVar(&uninstallLocal, "local", false, "Remove from the user scope")
	uninstallCmd.Flags().StringVar(&uninstallPrefix, "prefix", "", "Install prefix for system scope")
	uninstallCmd.Flags().StringVar(&uninstallBuildDir, "build-dir", "", "Build directory (default from config, \"build\")")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	if uninstallSystem && uninstallLocal {
		return fmt.Errorf("--system and --local are mutually exclusive")
	}

	uuid, scopeName, prefix, err := uninstallTarget(args)
	if err != nil {
		return err
	}

	if uninstallSystem {
		scopeName = shellpath.ScopeSystem.String()
	}
	if uninstallLocal {
		scopeName = shellpath.ScopeUser.String()
	}
	if uninstallPrefix != "" {
		prefix = uninstallPrefix
	}

	scope, err := shellpath.ParseScope(scopeName)
	if err != nil {
		return err
	}

	dir, removed, err := installer.Uninstall(scope, prefix, uuid)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !removed {
		fmt.Fprintf(out, "Nothing installed at %s\n", dir)
		return nil
	}
	fmt.Fprintf(out, "Removed %s\n", dir)
	return nil
}

// uninstallTarget resolves what to remove. An explicit uuid pairs with the
// global config defaults; otherwise the project's cached build
// configuration decides.
func uninstallTarget(args []string) (uuid, scope, prefix string, err error) {
	if len(args) == 1 {
		uuid = args[0]
		// The uuid becomes a path component under the extensions root.
		if !metadata.ValidUUID(uuid) {
			return "", "", "", fmt.Errorf("invalid uuid %q", uuid)
		}
		config.Load()
		return uuid, config.Get(config.KeyScope), config.Get(config.KeyPrefix), nil
	}

	cfg, err := loadBuildConfig(uninstallBuildDir)
	if err != nil {
		if errors.Is(err, project.ErrNotConfigured) {
			return "", "", "", fmt.Errorf("%w; pass a uuid to remove an arbitrary extension", err)
		}
		return "", "", "", err
	}
	return cfg.UUID, cfg.Scope, cfg.Prefix, nil
}
