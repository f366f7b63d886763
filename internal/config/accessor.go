package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// GetByPath retrieves a config value by dot-notation path (e.g. "display.timeLayout").
func GetByPath(cfg *Config, path string) (any, error) {
	m, err := toMap(cfg)
	if err != nil {
		return nil, err
	}

	var current any = m
	for _, key := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cannot traverse into %T at %s", current, key)
		}
		val, ok := obj[key]
		if !ok {
			return nil, fmt.Errorf("key not found: %s", path)
		}
		current = val
	}
	return current, nil
}

// SetByPath sets a leaf value by dot-notation path. The value is converted to
// the type of the current value; the resulting config must pass Validate.
func SetByPath(cfg *Config, path, value string) error {
	m, err := toMap(cfg)
	if err != nil {
		return err
	}

	parts := strings.Split(path, ".")
	parent := m
	for _, key := range parts[:len(parts)-1] {
		child, ok := parent[key].(map[string]any)
		if !ok {
			return fmt.Errorf("key not found: %s", path)
		}
		parent = child
	}

	last := parts[len(parts)-1]
	current, ok := parent[last]
	if !ok && !isOptionalKey(path) {
		return fmt.Errorf("key not found: %s", path)
	}
	if _, isMap := current.(map[string]any); isMap {
		return fmt.Errorf("%s is a section, not a value", path)
	}
	parent[last] = convertValue(current, value)

	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	updated := Defaults()
	if err := json.Unmarshal(data, updated); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	if err := Validate(updated); err != nil {
		return err
	}
	*cfg = *updated
	return nil
}

// isOptionalKey reports paths that are omitted from JSON when empty.
func isOptionalKey(path string) bool {
	return path == "general.logFile"
}

// convertValue parses s into the same JSON type as current.
func convertValue(current any, s string) any {
	switch current.(type) {
	case bool:
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	case float64:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// ListPaths returns all settable config paths with their current values.
func ListPaths(cfg *Config) map[string]any {
	m, err := toMap(cfg)
	if err != nil {
		return nil
	}
	result := make(map[string]any)
	flattenMap("", m, result)
	return result
}

func toMap(cfg *Config) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func flattenMap(prefix string, m map[string]any, result map[string]any) {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flattenMap(path, val, result)
		default:
			result[path] = val
		}
	}
}
