package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/tagwm/internal/domain/layout"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}

var validLogFormats = []string{"console", "json"}

// validateConfig collects every problem so users can fix them in one pass.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateTags(config)...)
	validationErrors = append(validationErrors, validateScreens(config)...)

	if len(validationErrors) == 0 {
		return nil
	}
	errs := make([]error, 0, len(validationErrors))
	for _, msg := range validationErrors {
		errs = append(errs, errors.New(msg))
	}
	return errors.Join(errs...)
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: %s (got: %s)", strings.Join(validLogLevels, ", "), config.Logging.Level))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: %s (got: %s)", strings.Join(validLogFormats, ", "), config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateLayoutName(key, name string) []string {
	if slices.Contains(layout.Names(), name) {
		return nil
	}
	return []string{fmt.Sprintf("%s must be one of: %s (got: %s)", key, strings.Join(layout.Names(), ", "), name)}
}

func validateLayout(config *Config) []string {
	validationErrors := validateLayoutName("layout.default", config.Layout.Default)
	if config.Layout.MasterFactor < 0 || config.Layout.MasterFactor > 100 {
		validationErrors = append(validationErrors, "layout.master_factor must be between 0 and 100")
	}
	if config.Layout.Columns < 1 {
		validationErrors = append(validationErrors, "layout.columns must be at least 1")
	}
	if config.Layout.MonocleOffset < 0 {
		validationErrors = append(validationErrors, "layout.monocle_offset must be non-negative")
	}
	if config.Layout.Border < 0 {
		validationErrors = append(validationErrors, "layout.border must be non-negative")
	}
	return validationErrors
}

func validateTags(config *Config) []string {
	if len(config.Tags) == 0 {
		return []string{"tags must list at least one tag"}
	}
	var validationErrors []string
	seen := make(map[string]bool, len(config.Tags))
	for _, tag := range config.Tags {
		if seen[tag] {
			validationErrors = append(validationErrors, fmt.Sprintf("tags contains duplicate tag %q", tag))
		}
		seen[tag] = true
	}
	return validationErrors
}

func validateScreens(config *Config) []string {
	var validationErrors []string
	known := make(map[string]bool, len(config.Tags))
	for _, tag := range config.Tags {
		known[tag] = true
	}
	names := make(map[string]bool, len(config.Screens))
	for i, s := range config.Screens {
		key := fmt.Sprintf("screens[%d]", i)
		if s.Name == "" {
			validationErrors = append(validationErrors, key+".name cannot be empty")
		} else if names[s.Name] {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.name %q is used by another screen", key, s.Name))
		}
		names[s.Name] = true
		if s.Width <= 0 || s.Height <= 0 {
			validationErrors = append(validationErrors, key+".width and height must be positive")
		}
		if s.Layout != "" {
			validationErrors = append(validationErrors, validateLayoutName(key+".layout", s.Layout)...)
		}
		for _, tag := range s.Tags {
			if !known[tag] {
				validationErrors = append(validationErrors, fmt.Sprintf("%s.tags references unknown tag %q", key, tag))
			}
		}
	}
	return validationErrors
}
