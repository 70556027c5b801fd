package cli

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/gse-build/gse/internal/config"
	"github.com/gse-build/gse/internal/gnome"
	"github.com/gse-build/gse/internal/installer"
	"github.com/gse-build/gse/internal/metadata"
	"github.com/gse-build/gse/internal/project"
	"github.com/gse-build/gse/internal/shellpath"
	"github.com/spf13/cobra"
)

var (
	configureSystem    bool
	configureLocal     bool
	configurePrefix    string
	configureSourceDir string
	configureBuildDir  string
)

func init() {
	configureCmd.Flags().BoolVar(&configureSystem, "system", false, "Install system-wide under <prefix>/share")
	configureCmd.Flags().BoolVar(&configureLocal, "local", false, "Install for the current user only")
	configureCmd.Flags().StringVar(&configurePrefix, "prefix", "", "Install prefix for system scope (default \"/usr\")")
	configureCmd.Flags().StringVar(&configureSourceDir, "source-dir", ".", "Extension source directory")
	configureCmd.Flags().StringVar(&configureBuildDir, "build-dir", "", "Build directory (default from config, \"build\")")
	rootCmd.AddCommand(configureCmd)
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Resolve metadata and cache build settings",
	Long: `Read the extension's metadata.json and gse.yaml, resolve the install
directory for the chosen scope, and cache the result in the build directory
for the build and install steps to reuse.`,
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	if configureSystem && configureLocal {
		return fmt.Errorf("--system and --local are mutually exclusive")
	}

	srcDir := configureSourceDir
	meta, err := metadata.Load(srcDir)
	if err != nil {
		return err
	}
	if err := metadata.CheckUUID(meta); err != nil {
		return err
	}

	desc, err := project.LoadDescriptor(srcDir)
	if err != nil {
		return err
	}

	config.Load()

	scope := config.Get(config.KeyScope)
	if configureSystem {
		scope = shellpath.ScopeSystem.String()
	}
	if configureLocal {
		scope = shellpath.ScopeUser.String()
	}
	if _, err := shellpath.ParseScope(scope); err != nil {
		return err
	}

	prefix := configurePrefix
	if prefix == "" {
		prefix = config.Get(config.KeyPrefix)
	}

	buildDir := configureBuildDir
	if buildDir == "" {
		buildDir = config.Get(config.KeyBuildDir)
	}

	cfg := &project.BuildConfig{
		UUID:       meta.UUID,
		Scope:      scope,
		Prefix:     prefix,
		SourceDir:  srcDir,
		BuildDir:   buildDir,
		Sources:    desc.Sources,
		Exclude:    desc.Exclude,
		SchemasDir: desc.SchemasDir,
	}

	out := cmd.OutOrStdout()

	// Best effort: remember the running shell version so later steps can
	// warn about compatibility. A machine without GNOME Shell (CI, a
	// headless builder) is not an error.
	if version, err := gnome.DetectShellVersion(cmd.Context()); err == nil {
		cfg.ShellVersion = version
		if ok, supErr := gnome.Supports(meta.ShellVersion, version); supErr == nil && !ok {
			fmt.Fprintf(out, "%s metadata does not list GNOME Shell %s in shell-version\n", warnMark(), version)
		}
	} else if !errors.Is(err, exec.ErrNotFound) {
		fmt.Fprintf(out, "%s could not detect GNOME Shell: %v\n", warnMark(), err)
	}

	target, err := installer.Target(cfg, "")
	if err != nil {
		return err
	}

	if err := project.Save(cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "Configured %s\n", headingStyle.Render(meta.UUID))
	fmt.Fprintf(out, "  scope:  %s\n", scope)
	if scope == shellpath.ScopeSystem.String() {
		fmt.Fprintf(out, "  prefix: %s\n", prefix)
	}
	fmt.Fprintf(out, "  target: %s\n", target)
	fmt.Fprintf(out, "Settings cached in %s\n", mutedStyle.Render(project.ConfigPath(buildDir)))
	return nil
}
