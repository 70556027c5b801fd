package cli

import "testing"

func TestValidateConfigValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"user scope", "scope", "user", false},
		{"system scope", "scope", "system", false},
		{"unknown scope", "scope", "global", true},
		{"absolute prefix", "prefix", "/usr/local", false},
		{"relative prefix", "prefix", "usr/local", true},
		{"empty prefix", "prefix", "", true},
		{"build dir", "build-dir", "target", false},
		{"empty build dir", "build-dir", "", true},
		{"unknown key", "colour", "blue", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigValue(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfigValue(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
		})
	}
}
