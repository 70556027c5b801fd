package metadata

// FileName is the descriptor file GNOME Shell reads from every extension
// directory.
const FileName = "metadata.json"

// Metadata represents a metadata.json descriptor. Field names follow the
// hyphenated keys GNOME Shell uses on disk.
type Metadata struct {
	UUID           string   `json:"uuid"`
	Name           string   `json:"name,omitempty"`
	Description    string   `json:"description,omitempty"`
	ShellVersion   []string `json:"shell-version,omitempty"`
	Version        int      `json:"version,omitempty"`
	VersionName    string   `json:"version-name,omitempty"`
	URL            string   `json:"url,omitempty"`
	SettingsSchema string   `json:"settings-schema,omitempty"`
	GettextDomain  string   `json:"gettext-domain,omitempty"`
	SessionModes   []string `json:"session-modes,omitempty"`
}
