package utils

import (
	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DecodeConfigFile strictly decodes the TOML file at path into v.
// Keys v has no field for are only reported at debug level.
func DecodeConfigFile(path string, v any) error {
	meta, err := toml.DecodeFile(path, v)
	if err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", path, err)
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Debugf("Ignoring unknown config keys in %s: %v", path, undecoded)
	}
	return nil
}

// Section is one [table] of a loosely decoded config file.
// Lookups on a missing (nil) section report not found.
type Section map[string]any

// Sections maps table names to their keys.
type Sections map[string]Section

// ReadSections decodes path without a target struct so values of the wrong
// type in one key do not discard the rest. Top-level keys outside a table are skipped.
func ReadSections(path string) (Sections, error) {
	raw := make(map[string]any)
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, err
	}

	sections := make(Sections, len(raw))
	for name, value := range raw {
		table, ok := value.(map[string]any)
		if !ok {
			log.Debugf("Skipping top-level key '%s' in %s", name, path)
			continue
		}
		sections[name] = Section(table)
	}
	return sections, nil
}

// Int returns key when it holds a TOML integer.
func (s Section) Int(key string) (int, bool) {
	if val, ok := s[key].(int64); ok {
		return int(val), true
	}
	return 0, false
}

func (s Section) Bool(key string) (bool, bool) {
	val, ok := s[key].(bool)
	return val, ok
}

func (s Section) String(key string) (string, bool) {
	val, ok := s[key].(string)
	return val, ok
}
