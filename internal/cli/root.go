package cli

import (
	"fmt"
	"os"

	"github.com/gse-build/gse/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` builds and installs GNOME Shell extensions. It reads the
extension's metadata.json, stages the declared source files into a build
directory, and copies them into the per-user or system-wide extensions
directory where GNOME Shell discovers them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed here because the command tree silences Cobra's own
// reporting.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("error:"), err)
	}
	return err
}
