package config

import "github.com/bnema/tagwm/internal/domain/layout"

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3

	// Layout defaults
	defaultMasterFactor = 50
	defaultColumns      = 2

	// Screen defaults
	defaultScreenName   = "default"
	defaultScreenWidth  = 1920
	defaultScreenHeight = 1080
)

var defaultTags = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultMaxSizeMB,
			MaxBackups:    defaultMaxBackups,
		},
		Layout: LayoutConfig{
			Default:      layout.NameHStack,
			MasterFactor: defaultMasterFactor,
			Columns:      defaultColumns,
		},
		Tags: append([]string(nil), defaultTags...),
		Screens: []ScreenConfig{
			{
				Name:   defaultScreenName,
				Width:  defaultScreenWidth,
				Height: defaultScreenHeight,
			},
		},
	}
}
