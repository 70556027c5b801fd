package shellpath

import "fmt"

// Scope selects between the two extension install locations.
type Scope int

const (
	// ScopeUser installs under the invoking user's data home. This is the
	// default scope.
	ScopeUser Scope = iota
	// ScopeSystem installs under the configured prefix for all users.
	ScopeSystem
)

// ParseScope converts a configuration value into a Scope.
func ParseScope(name string) (Scope, error) {
	switch name {
	case "user", "local", "":
		return ScopeUser, nil
	case "system":
		return ScopeSystem, nil
	default:
		return ScopeUser, fmt.Errorf("unknown scope %q (want \"user\" or \"system\")", name)
	}
}

// String returns the configuration spelling of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeSystem:
		return "system"
	case ScopeUser:
		return "user"
	default:
		return "unknown"
	}
}
