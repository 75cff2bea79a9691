package port

// MigrationResult contains the result of a config migration check.
type MigrationResult struct {
	// MissingKeys contains the keys that exist in defaults but not in user config.
	MissingKeys []string
	// ConfigFile is the path to the user's config file.
	ConfigFile string
}

// KeyInfo contains metadata about a config key for display purposes.
type KeyInfo struct {
	// Key is the dot-notation key path (e.g., "layout.master_factor").
	Key string
	// Type is the Go type of the value (e.g., "bool", "int", "string").
	Type string
	// DefaultValue is a string representation of the default value.
	DefaultValue string
}

// KeyChangeType classifies a difference between the user config and defaults.
type KeyChangeType int

const (
	// KeyChangeAdded is a default key missing from the user config.
	KeyChangeAdded KeyChangeType = iota
	// KeyChangeRemoved is a user key no longer known to tagwm.
	KeyChangeRemoved
	// KeyChangeRenamed pairs a removed key with the added key replacing it.
	KeyChangeRenamed
)

// KeyChange is one detected config difference.
type KeyChange struct {
	Type     KeyChangeType
	OldKey   string
	NewKey   string
	OldValue string
	NewValue string
}

// ConfigMigrator checks for and applies config migrations.
type ConfigMigrator interface {
	// CheckMigration checks if user config is missing any default keys.
	// Returns nil if no migration is needed (config file doesn't exist or is complete).
	CheckMigration() (*MigrationResult, error)

	// DetectChanges lists added, removed and renamed keys.
	DetectChanges() ([]KeyChange, error)

	// Migrate rewrites the user's config file with the detected changes applied.
	// Returns a description of every applied change.
	Migrate() ([]string, error)

	// GetKeyInfo returns detailed information about a config key.
	GetKeyInfo(key string) KeyInfo

	// GetConfigFile returns the path of the config file being migrated.
	GetConfigFile() (string, error)
}

// DiffFormatter renders key changes for display.
type DiffFormatter interface {
	FormatChangesAsDiff(changes []KeyChange) string
}
