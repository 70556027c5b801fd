package cli

import (
	"fmt"
	"path/filepath"

	"github.com/gse-build/gse/internal/config"
	"github.com/gse-build/gse/internal/shellpath"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write gse configuration stored at ~/.config/gse/config.yaml.

Keys: scope (user or system), prefix (system install prefix), build-dir.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := validateConfigValue(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

// validateConfigValue rejects values the build steps would choke on later.
func validateConfigValue(key, value string) error {
	switch key {
	case config.KeyScope:
		if _, err := shellpath.ParseScope(value); err != nil {
			return err
		}
	case config.KeyPrefix:
		if !filepath.IsAbs(value) {
			return fmt.Errorf("prefix must be an absolute path, got %q", value)
		}
	case config.KeyBuildDir:
		if value == "" {
			return fmt.Errorf("build-dir must not be empty")
		}
	default:
		return fmt.Errorf("unknown config key %q (want scope, prefix or build-dir)", key)
	}
	return nil
}
