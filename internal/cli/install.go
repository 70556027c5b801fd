package cli

import (
	"fmt"

	"github.com/gse-build/gse/internal/installer"
	"github.com/gse-build/gse/internal/shellpath"
	"github.com/spf13/cobra"
)

var (
	installDestdir  string
	installLink     bool
	installSystem   bool
	installLocal    bool
	installPrefix   string
	installBuildDir string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the extension where GNOME Shell finds it",
	Long: `Stage the extension and copy it into the extensions directory for the
configured scope: ~/.local/share/gnome-shell/extensions/<uuid> for the
current user, <prefix>/share/gnome-shell/extensions/<uuid> system-wide.

With --link the source directory is symlinked instead of copied, so edits
show up after a shell reload without reinstalling. With --destdir DIR the
resolved path is prefixed with DIR, for distro packaging.`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installDestdir, "destdir", "", "Prepend DIR to the install path (packaging)")
	installCmd.Flags().BoolVar(&installLink, "link", false, "Symlink the source directory instead of copying")
	installCmd.Flags().BoolVar(&installSystem, "system", false, "Install system-wide for this run")
	installCmd.Flags().BoolVar(&installLocal, "local", false, "Install for the current user for this run")
	installCmd.Flags().StringVar(&installPrefix, "prefix", "", "Install prefix for system scope")
	installCmd.Flags().StringVar(&installBuildDir, "build-dir", "", "Build directory (default from config, \"build\")")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if installSystem && installLocal {
		return fmt.Errorf("--system and --local are mutually exclusive")
	}
	if installLink && installDestdir != "" {
		return fmt.Errorf("--link and --destdir are mutually exclusive")
	}

	cfg, err := loadBuildConfig(installBuildDir)
	if err != nil {
		return err
	}

	// One-shot overrides; the cached configuration keeps its values.
	if installSystem {
		cfg.Scope = shellpath.ScopeSystem.String()
	}
	if installLocal {
		cfg.Scope = shellpath.ScopeUser.String()
	}
	if installPrefix != "" {
		cfg.Prefix = installPrefix
	}

	out := cmd.OutOrStdout()

	if installLink {
		target, err := installer.InstallLink(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s linked %s\n", successStyle.Render("✓"), target)
		fmt.Fprintln(out, mutedStyle.Render("Edits to the source tree are live after a shell reload."))
		return nil
	}

	// Installing always re-stages so the copy matches the working tree.
	if _, err := installer.Stage(cfg); err != nil {
		return err
	}
	if err := compileStagedSchemas(cmd, cfg); err != nil {
		return err
	}

	plan, err := installer.Install(cfg, installDestdir)
	if err != nil {
		return err
	}

	installer.PrintPlan(out, plan)
	fmt.Fprintf(out, "%s installed %s\n", successStyle.Render("✓"), plan.UUID)

	if installDestdir == "" && cfg.Scope == shellpath.ScopeUser.String() {
		fmt.Fprintln(out, mutedStyle.Render("Reload GNOME Shell, then enable it with: gnome-extensions enable "+plan.UUID))
	}
	return nil
}
