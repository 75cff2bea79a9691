package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	// file is set when the manager was pointed at an explicit path.
	file string
}

// NewManager creates a manager reading config.toml from the XDG config
// directory, falling back to the current directory.
func NewManager() (*Manager, error) {
	v := newViper()

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.SetConfigName("config")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	if err := bindEnv(v); err != nil {
		return nil, err
	}
	return &Manager{viper: v}, nil
}

// NewManagerForFile creates a manager bound to a single config file.
// The file is created with defaults on first Load if it does not exist.
func NewManagerForFile(path string) (*Manager, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := bindEnv(v); err != nil {
		return nil, err
	}
	return &Manager{viper: v, file: path}, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("TAGWM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// bindEnv covers variables whose names do not follow the TAGWM_SECTION_KEY pattern.
func bindEnv(v *viper.Viper) error {
	if err := v.BindEnv("logging.level", "TAGWM_LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind TAGWM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TAGWM_LOG_FORMAT"); err != nil {
		return fmt.Errorf("failed to bind TAGWM_LOG_FORMAT: %w", err)
	}
	return nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configPath(),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}

	config.Layout.Default = strings.ToLower(strings.TrimSpace(config.Layout.Default))
	if config.Layout.Default == "" {
		config.Layout.Default = DefaultConfig().Layout.Default
	}

	config.Tags = trimAll(config.Tags)
	if len(config.Screens) == 0 {
		config.Screens = DefaultConfig().Screens
	}
	for i := range config.Screens {
		s := &config.Screens[i]
		s.Name = strings.TrimSpace(s.Name)
		s.Layout = strings.ToLower(strings.TrimSpace(s.Layout))
		s.Tags = trimAll(s.Tags)
	}
}

// trimAll trims every entry and drops the empty ones.
func trimAll(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.clone()
}

// clone copies the slices so callers cannot mutate the manager's state.
func (c *Config) clone() *Config {
	out := *c
	out.Tags = slices.Clone(c.Tags)
	out.Screens = make([]ScreenConfig, len(c.Screens))
	for i, s := range c.Screens {
		s.Tags = slices.Clone(s.Tags)
		out.Screens[i] = s
	}
	return &out
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.configPath()
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	m.config = cfg.clone()
	if m.watching {
		// The watcher would otherwise reload the file we just wrote.
		m.skipNextReload = true
		return nil
	}
	return m.viper.ReadInConfig()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configPath()
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if m.file != "" {
		return m.file
	}
	configFile, err := GetConfigFile()
	if err != nil {
		return configFileName
	}
	return configFile
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile := m.configPath()

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if m.file == "" {
		m.viper.SetConfigFile(configFile)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setLayoutDefaults(defaults)
	m.viper.SetDefault("tags", defaults.Tags)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.default", defaults.Layout.Default)
	m.viper.SetDefault("layout.master_factor", defaults.Layout.MasterFactor)
	m.viper.SetDefault("layout.inverted", defaults.Layout.Inverted)
	m.viper.SetDefault("layout.fixed", defaults.Layout.Fixed)
	m.viper.SetDefault("layout.new_as_master", defaults.Layout.NewAsMaster)
	m.viper.SetDefault("layout.columns", defaults.Layout.Columns)
	m.viper.SetDefault("layout.monocle_offset", defaults.Layout.MonocleOffset)
	m.viper.SetDefault("layout.border", defaults.Layout.Border)
}
