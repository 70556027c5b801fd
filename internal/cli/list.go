package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/gse-build/gse/internal/metadata"
	"github.com/gse-build/gse/internal/platform"
	"github.com/gse-build/gse/internal/shellpath"
	"github.com/spf13/cobra"
)

var (
	listUser   bool
	listSystem bool
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed extensions",
	Long: `List extensions found under the user extensions directory and the
system data directories GNOME Shell searches.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listUser, "user", false, "Only the user scope")
	listCmd.Flags().BoolVar(&listSystem, "system", false, "Only the system scope")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents an installed extension for display.
type listEntry struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Scope   string `json:"scope"`
	Dir     string `json:"dir"`
	Linked  bool   `json:"linked,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	if listUser && listSystem {
		return fmt.Errorf("--user and --system are mutually exclusive")
	}

	var entries []listEntry

	if !listSystem {
		root, err := shellpath.UserExtensionsRoot()
		if err != nil {
			return err
		}
		entries = append(entries, scanExtensionsRoot(root, shellpath.ScopeUser.String())...)
	}
	if !listUser {
		for _, root := range shellpath.SystemExtensionRoots() {
			entries = append(entries, scanExtensionsRoot(root, shellpath.ScopeSystem.String())...)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Scope != entries[j].Scope {
			return entries[i].Scope < entries[j].Scope
		}
		return entries[i].UUID < entries[j].UUID
	})

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No extensions installed.")
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

// scanExtensionsRoot collects every subdirectory of root that carries a
// metadata.json. A root that does not exist yields nothing.
func scanExtensionsRoot(root, scope string) []listEntry {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var entries []listEntry
	for _, d := range dirs {
		dir := filepath.Join(root, d.Name())
		linked := platform.IsSymlink(dir)
		if !d.IsDir() && !linked {
			continue
		}

		meta, err := metadata.Load(dir)
		if err != nil {
			continue
		}

		entry := listEntry{
			UUID:   d.Name(),
			Name:   meta.Name,
			Scope:  scope,
			Dir:    dir,
			Linked: linked,
		}
		if meta.VersionName != "" {
			entry.Version = meta.VersionName
		} else if meta.Version > 0 {
			entry.Version = strconv.Itoa(meta.Version)
		}
		entries = append(entries, entry)
	}
	return entries
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "UUID\tNAME\tSCOPE\tVERSION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		scope := e.Scope
		if e.Linked {
			scope += " (link)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.UUID, e.Name, scope, version)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
