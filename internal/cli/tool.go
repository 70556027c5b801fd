package cli

import (
	"fmt"
	"os"

	"github.com/gse-build/gse/internal/selfinstall"
	"github.com/spf13/cobra"
)

var toolCmd = &cobra.Command{
	Use:   "tool",
	Short: "Manage the gse binary itself",
	Long:  `Install the running gse binary into the tools directory and inspect what is installed there.`,
}

func init() {
	rootCmd.AddCommand(toolCmd)
	toolCmd.AddCommand(toolInstallCmd)
	toolCmd.AddCommand(toolStatusCmd)
}

// ─── tool install ──────────────────────────────────────────────────

var toolInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the running binary into the tools directory",
	Long: `Copy the currently running gse binary into the tools directory
(~/.local/share/gse/tools, or $GSE_TOOLS). An existing install is backed
up, the copy is verified by running it, and the backup is restored if
verification fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locating running binary: %w", err)
		}

		target, err := selfinstall.Install(exe, buildVersion)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s installed %s\n", successStyle.Render("✓"), target)
		fmt.Fprintln(out, mutedStyle.Render("Run \"gse doctor --check-paths\" to confirm the tools directory is on PATH."))
		return nil
	},
}

// ─── tool status ───────────────────────────────────────────────────

var toolStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the installed tool binary and its version",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := selfinstall.Inspect(buildVersion)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !status.Installed {
			fmt.Fprintf(out, "Not installed (expected at %s)\n", status.Path)
			fmt.Fprintln(out, mutedStyle.Render("Run \"gse tool install\" to install the running binary."))
			return nil
		}

		fmt.Fprintf(out, "Installed at %s\n", status.Path)
		fmt.Fprintf(out, "  installed version: %s\n", status.InstalledVersion)
		fmt.Fprintf(out, "  running version:   %s\n", status.RunningVersion)
		if status.UpToDate {
			fmt.Fprintf(out, "%s up to date\n", successStyle.Render("✓"))
		} else {
			fmt.Fprintf(out, "%s the running binary is newer, run \"gse tool install\" to refresh\n", warnMark())
		}
		return nil
	},
}
