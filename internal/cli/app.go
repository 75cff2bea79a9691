// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/tagwm/internal/cli/styles"
	"github.com/bnema/tagwm/internal/domain/build"
	"github.com/bnema/tagwm/internal/infrastructure/config"
	"github.com/bnema/tagwm/internal/logging"
)

// Options controls how NewApp sets up the CLI.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// Interactive keeps logs off the terminal while a TUI owns it.
	Interactive bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// ConfigErr is the load error when Config fell back to defaults.
	ConfigErr error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, cfgErr := loadConfig(opts.ConfigFile)
	if mgr == nil {
		return nil, fmt.Errorf("create config manager: %w", cfgErr)
	}

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: logging.ConsoleTimeFormat,
		},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			LogDir:        cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			WriteToStderr: !opts.Interactive,
		},
	)
	if err != nil {
		// Fall back to stderr-only logging
		logger = logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
		logCleanup = func() {}
		logger.Warn().Err(err).Msg("file logging disabled")
	}
	if opts.Interactive && !cfg.Logging.EnableFileLog {
		logger = zerolog.Nop()
	}

	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default config")
	}
	logger.Debug().Str("config_file", mgr.GetConfigFile()).Msg("config loaded")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		ConfigErr:  cfgErr,
		ctx:        logging.WithContext(context.Background(), logger),
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from path, or the standard location when
// path is empty. Defaults are returned alongside any load error.
func loadConfig(path string) (*config.Manager, *config.Config, error) {
	var (
		mgr *config.Manager
		err error
	)
	if path != "" {
		mgr, err = config.NewManagerForFile(path)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}
