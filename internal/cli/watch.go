package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gse-build/gse/internal/installer"
	"github.com/gse-build/gse/internal/watch"
	"github.com/spf13/cobra"
)

var (
	watchBuildDir string
	watchDebounce time.Duration
	watchNoInit   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild and reinstall on source changes",
	Long: `Watch the source directory and run the stage, schema compile and install
steps whenever a selected file changes. Changes are coalesced over a short
quiet period so editor save bursts trigger one rebuild.

Stop with Ctrl-C. GNOME Shell still needs a reload (or the extension
disabled and re-enabled) to pick up the new files.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchBuildDir, "build-dir", "", "Build directory (default from config, \"build\")")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before a rebuild")
	watchCmd.Flags().BoolVar(&watchNoInit, "no-initial", false, "Skip the build and install before watching")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadBuildConfig(watchBuildDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	rebuild := func(ctx context.Context) error {
		if _, err := installer.Stage(cfg); err != nil {
			return err
		}
		if err := compileStagedSchemas(cmd, cfg); err != nil {
			return err
		}
		plan, err := installer.Install(cfg, "")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s installed %s (%d files)\n", successStyle.Render("✓"), plan.UUID, len(plan.Files))
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !watchNoInit {
		if err := rebuild(ctx); err != nil {
			return err
		}
	}

	// The build tree must not feed back into the watcher.
	ignore := append([]string{}, cfg.Exclude...)
	ignore = append(ignore, cfg.BuildDir+"/", cfg.BuildDir+"/**")

	w, err := watch.New(watch.Config{
		Patterns: cfg.Sources,
		Ignore:   ignore,
		Debounce: watchDebounce,
		BaseDir:  cfg.SourceDir,
		Stderr:   cmd.ErrOrStderr(),
		OnChange: func(ctx context.Context, changed []string) error {
			for _, path := range changed {
				fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("changed"), path)
			}
			if err := rebuild(ctx); err != nil {
				// Keep watching; a broken tree usually gets fixed by
				// the next save.
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", errorStyle.Render("rebuild failed:"), err)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Watching %s for changes (Ctrl-C to stop)\n", cfg.SourceDir)
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
