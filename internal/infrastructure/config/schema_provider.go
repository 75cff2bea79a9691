package config

import (
	"fmt"
	"strings"

	"github.com/bnema/tagwm/internal/domain/entity"
	"github.com/bnema/tagwm/internal/domain/layout"
)

// Section names for grouping config keys.
const (
	SectionLogging = "Logging"
	SectionLayout  = "Layout"
	SectionTags    = "Tags"
	SectionScreens = "Screens"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 24)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getTagKeys(defaults)...)
	keys = append(keys, p.getScreenKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      validLogFormats,
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.EnableFileLog),
			Description: "Also write logs to a rotating file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "$XDG_STATE_HOME/tagwm/logs",
			Description: "Directory for log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Rotate the log file past this size (0 disables rotation)",
			Range:       "0+",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated log files to keep",
			Range:       "0+",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.default",
			Type:        "string",
			Default:     defaults.Layout.Default,
			Description: "Layout used by views that do not name one",
			Values:      layout.Names(),
			Section:     SectionLayout,
		},
		{
			Key:         "layout.master_factor",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Layout.MasterFactor),
			Description: "Master area share in percent",
			Range:       "0-100",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.inverted",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Layout.Inverted),
			Description: "Put the stack before the master area",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.fixed",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Layout.Fixed),
			Description: "Keep the master size even with a single window",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.new_as_master",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Layout.NewAsMaster),
			Description: "Insert new windows as master instead of at the end of the stack",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.columns",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Layout.Columns),
			Description: "Column count of the grid layout",
			Range:       "1+",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.monocle_offset",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Layout.MonocleOffset),
			Description: "Gap around the monocle window in pixels",
			Range:       "0+",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.border",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Layout.Border),
			Description: "Border removed from every side of tiled windows in pixels",
			Range:       "0+",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getTagKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "tags",
			Type:        "[]string",
			Default:     "[" + strings.Join(defaults.Tags, ", ") + "]",
			Description: "Tag labels in display order, each gets its own view",
			Section:     SectionTags,
		},
	}
}

func (*SchemaProvider) getScreenKeys(defaults *Config) []entity.ConfigKeyInfo {
	first := defaults.Screens[0]
	return []entity.ConfigKeyInfo{
		{
			Key:         "screens[].name",
			Type:        "string",
			Default:     first.Name,
			Description: "Unique output name",
			Section:     SectionScreens,
		},
		{
			Key:         "screens[].x",
			Type:        "int",
			Default:     fmt.Sprintf("%d", first.X),
			Description: "Left edge of the output in pixels",
			Section:     SectionScreens,
		},
		{
			Key:         "screens[].y",
			Type:        "int",
			Default:     fmt.Sprintf("%d", first.Y),
			Description: "Top edge of the output in pixels",
			Section:     SectionScreens,
		},
		{
			Key:         "screens[].width",
			Type:        "int",
			Default:     fmt.Sprintf("%d", first.Width),
			Description: "Output width in pixels",
			Range:       "1+",
			Section:     SectionScreens,
		},
		{
			Key:         "screens[].height",
			Type:        "int",
			Default:     fmt.Sprintf("%d", first.Height),
			Description: "Output height in pixels",
			Range:       "1+",
			Section:     SectionScreens,
		},
		{
			Key:         "screens[].tags",
			Type:        "[]string",
			Default:     "[]",
			Description: "Dedicated view tags; empty starts on the tag at the screen's position",
			Section:     SectionScreens,
		},
		{
			Key:         "screens[].layout",
			Type:        "string",
			Default:     "",
			Description: "Layout override for the screen's starting view",
			Values:      layout.Names(),
			Section:     SectionScreens,
		},
	}
}
