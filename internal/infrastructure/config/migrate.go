package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/tagwm/internal/application/port"
)

// Migrator implements port.ConfigMigrator for comparing and merging config files.
type Migrator struct {
	configFile string
	// defaultViper holds a Viper instance with all defaults set.
	defaultViper *viper.Viper
}

// NewMigrator creates a Migrator for configFile.
func NewMigrator(configFile string) *Migrator {
	return &Migrator{
		configFile:   configFile,
		defaultViper: defaultsViper(),
	}
}

// defaultsViper returns a viper instance holding every default, screens included.
func defaultsViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	m := &Manager{viper: v}
	m.setDefaults()
	v.SetDefault("screens", DefaultConfig().Screens)
	return v
}

// GetConfigFile returns the path of the migrated file.
func (m *Migrator) GetConfigFile() (string, error) {
	if m.configFile == "" {
		return "", fmt.Errorf("config file path is empty")
	}
	return m.configFile, nil
}

// CheckMigration checks if user config is missing any default keys.
// Returns nil if no migration is needed.
func (m *Migrator) CheckMigration() (*port.MigrationResult, error) {
	userKeys, ok, err := m.userKeys()
	if err != nil || !ok {
		return nil, err
	}

	missing := findMissingKeys(m.defaultKeys(), userKeys)
	if len(missing) == 0 {
		return nil, nil
	}
	return &port.MigrationResult{
		MissingKeys: missing,
		ConfigFile:  m.configFile,
	}, nil
}

// DetectChanges analyzes user config and returns all detected changes.
func (m *Migrator) DetectChanges() ([]port.KeyChange, error) {
	userKeys, ok, err := m.userKeys()
	if err != nil || !ok {
		return nil, err
	}

	defaultKeys := m.defaultKeys()
	defaultSet := make(map[string]bool, len(defaultKeys))
	for _, k := range defaultKeys {
		defaultSet[k] = true
	}

	var deprecated []string
	for k := range userKeys {
		if !keyOrRelatedExists(k, defaultSet) {
			deprecated = append(deprecated, k)
		}
	}
	sort.Strings(deprecated)
	missing := findMissingKeys(defaultKeys, userKeys)

	renames, removed, added := matchRenamedKeys(deprecated, missing)

	var changes []port.KeyChange
	for oldKey, newKey := range renames {
		changes = append(changes, port.KeyChange{
			Type:     port.KeyChangeRenamed,
			OldKey:   oldKey,
			NewKey:   newKey,
			OldValue: formatValue(userKeys[oldKey]),
			NewValue: formatValue(m.defaultViper.Get(newKey)),
		})
	}
	for _, oldKey := range removed {
		changes = append(changes, port.KeyChange{
			Type:     port.KeyChangeRemoved,
			OldKey:   oldKey,
			OldValue: formatValue(userKeys[oldKey]),
		})
	}
	for _, newKey := range added {
		changes = append(changes, port.KeyChange{
			Type:     port.KeyChangeAdded,
			NewKey:   newKey,
			NewValue: formatValue(m.defaultViper.Get(newKey)),
		})
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Type != changes[j].Type {
			return changes[i].Type < changes[j].Type
		}
		return changeKey(changes[i]) < changeKey(changes[j])
	})
	return changes, nil
}

func changeKey(c port.KeyChange) string {
	if c.NewKey != "" {
		return c.NewKey
	}
	return c.OldKey
}

// Migrate merges the user config with defaults, carries renamed values over,
// drops unknown keys and rewrites the file.
func (m *Migrator) Migrate() ([]string, error) {
	changes, err := m.DetectChanges()
	if err != nil || len(changes) == 0 {
		return nil, err
	}

	userViper := viper.New()
	userViper.SetConfigFile(m.configFile)
	userViper.SetConfigType("toml")
	mgr := &Manager{viper: userViper}
	mgr.setDefaults()
	if err := userViper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var applied []string
	for _, change := range changes {
		switch change.Type {
		case port.KeyChangeRenamed:
			userViper.Set(change.NewKey, userViper.Get(change.OldKey))
			applied = append(applied, fmt.Sprintf("%s -> %s", change.OldKey, change.NewKey))
		case port.KeyChangeAdded:
			applied = append(applied, change.NewKey)
		case port.KeyChangeRemoved:
			applied = append(applied, fmt.Sprintf("(deprecated: %s)", change.OldKey))
		}
	}

	cfg, err := mgr.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	normalizeConfig(cfg)
	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return nil, err
	}
	return applied, nil
}

// GetKeyInfo returns detailed information about a config key.
func (m *Migrator) GetKeyInfo(key string) port.KeyInfo {
	value := m.defaultViper.Get(key)
	if value == nil {
		return port.KeyInfo{Key: key, Type: "unknown", DefaultValue: "unknown"}
	}
	return port.KeyInfo{
		Key:          key,
		Type:         typeName(value),
		DefaultValue: formatValue(value),
	}
}

func (m *Migrator) defaultKeys() []string {
	keys := m.defaultViper.AllKeys()
	sort.Strings(keys)
	return keys
}

// userKeys flattens the user's file to dot-notation keys. ok is false when
// the file does not exist yet.
func (m *Migrator) userKeys() (keys map[string]any, ok bool, err error) {
	data, err := os.ReadFile(m.configFile)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("failed to parse TOML: %w", err)
	}
	keys = make(map[string]any)
	flatten(raw, "", keys)
	return keys, true, nil
}

// flatten stops at arrays, so [[screens]] is a single key.
func flatten(data map[string]any, prefix string, out map[string]any) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(nested, key, out)
			continue
		}
		out[key] = v
	}
}

func findMissingKeys(defaultKeys []string, userKeys map[string]any) []string {
	present := make(map[string]bool, len(userKeys))
	for k := range userKeys {
		present[k] = true
	}
	var missing []string
	for _, key := range defaultKeys {
		if !keyOrRelatedExists(key, present) {
			missing = append(missing, key)
		}
	}
	return missing
}

// keyOrRelatedExists reports whether key, one of its parents or one of its
// children is in keys.
func keyOrRelatedExists(key string, keys map[string]bool) bool {
	if keys[key] {
		return true
	}
	parts := strings.Split(key, ".")
	for i := len(parts) - 1; i > 0; i-- {
		if keys[strings.Join(parts[:i], ".")] {
			return true
		}
	}
	prefix := key + "."
	for k := range keys {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// matchRenamedKeys pairs deprecated keys with missing keys in the same
// section whose leaf names contain one another.
func matchRenamedKeys(deprecated, missing []string) (renames map[string]string, removed, added []string) {
	renames = make(map[string]string)
	used := make(map[string]bool)

	for _, oldKey := range deprecated {
		matched := false
		for _, newKey := range missing {
			if !used[newKey] && keysAreSimilar(oldKey, newKey) {
				renames[oldKey] = newKey
				used[newKey] = true
				matched = true
				break
			}
		}
		if !matched {
			removed = append(removed, oldKey)
		}
	}
	for _, k := range missing {
		if !used[k] {
			added = append(added, k)
		}
	}
	return renames, removed, added
}

func keysAreSimilar(oldKey, newKey string) bool {
	oldParent, oldLeaf, okOld := cutLast(oldKey)
	newParent, newLeaf, okNew := cutLast(newKey)
	if !okOld || !okNew || oldParent != newParent {
		return false
	}
	return strings.Contains(oldLeaf, newLeaf) || strings.Contains(newLeaf, oldLeaf)
}

func cutLast(key string) (parent, leaf string, ok bool) {
	i := strings.LastIndex(key, ".")
	if i < 0 {
		return "", key, false
	}
	return key[:i], key[i+1:], true
}

func typeName(value any) string {
	t := reflect.TypeOf(value)
	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.String:
		return "string"
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			return "[]string"
		}
		return "list"
	default:
		return t.String()
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return fmt.Sprintf("%q", v)
	case []ScreenConfig:
		names := make([]string, 0, len(v))
		for _, s := range v {
			names = append(names, s.Name)
		}
		return fmt.Sprintf("%d screen(s): %s", len(v), strings.Join(names, ", "))
	default:
		return fmt.Sprintf("%v", v)
	}
}
