package config

// Config represents the complete configuration for tagwm.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Layout holds the default layout and the parameters every new layout starts from.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout"`
	// Tags lists the tag labels in display order. Each tag gets its own view.
	Tags []string `mapstructure:"tags" yaml:"tags" toml:"tags"`
	// Screens describes the physical outputs and what they show at startup.
	Screens []ScreenConfig `mapstructure:"screens" yaml:"screens" toml:"screens"`
}

// LoggingConfig controls log verbosity and the optional rotating log file.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
}

// LayoutConfig seeds layout parameters.
type LayoutConfig struct {
	// Default is the layout used by views that do not name one.
	Default string `mapstructure:"default" yaml:"default" toml:"default"`
	// MasterFactor is the master area share in percent (0-100).
	MasterFactor int  `mapstructure:"master_factor" yaml:"master_factor" toml:"master_factor"`
	Inverted     bool `mapstructure:"inverted" yaml:"inverted" toml:"inverted"`
	// Fixed keeps the master area size even with a single window.
	Fixed       bool `mapstructure:"fixed" yaml:"fixed" toml:"fixed"`
	NewAsMaster bool `mapstructure:"new_as_master" yaml:"new_as_master" toml:"new_as_master"`
	// Columns is the grid layout column count.
	Columns int `mapstructure:"columns" yaml:"columns" toml:"columns"`
	// MonocleOffset insets the monocle window on every side, in pixels.
	MonocleOffset int `mapstructure:"monocle_offset" yaml:"monocle_offset" toml:"monocle_offset"`
	// Border is removed from every side of each tiled window, in pixels.
	Border int `mapstructure:"border" yaml:"border" toml:"border"`
}

// ScreenConfig describes one output.
type ScreenConfig struct {
	Name   string `mapstructure:"name" yaml:"name" toml:"name"`
	X      int    `mapstructure:"x" yaml:"x" toml:"x"`
	Y      int    `mapstructure:"y" yaml:"y" toml:"y"`
	Width  int    `mapstructure:"width" yaml:"width" toml:"width"`
	Height int    `mapstructure:"height" yaml:"height" toml:"height"`
	// Tags selects a dedicated view for this screen. Empty means the screen
	// starts on the view of the tag at its own position in the tag list.
	Tags []string `mapstructure:"tags" yaml:"tags" toml:"tags"`
	// Layout overrides layout.default for the screen's starting view.
	Layout string `mapstructure:"layout" yaml:"layout" toml:"layout"`
}
