package schema

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a single schema document. YAML is a superset of JSON here, so
// both formats flow through the same decoder. The returned schema is
// normalised and validated.
func Parse(data []byte) (Schema, error) {
	var doc Schema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Schema{}, fmt.Errorf("schema: parse document: %w", err)
	}

	normalized := doc.Normalize()
	if err := normalized.Validate(); err != nil {
		return Schema{}, err
	}
	return normalized, nil
}

// Load reads and parses the schema document at path inside fsys.
func Load(fsys fs.FS, path string) (Schema, error) {
	if fsys == nil {
		return Schema{}, fmt.Errorf("schema: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Schema{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	parsed, err := Parse(data)
	if err != nil {
		return Schema{}, fmt.Errorf("schema: file %s: %w", path, err)
	}
	return parsed, nil
}

// LoadFS walks fsys and parses every JSON/YAML schema document found,
// keyed by schema name. Duplicate names across files are rejected. A nil
// filesystem yields an empty store.
func LoadFS(fsys fs.FS) (map[string]Schema, error) {
	store := make(map[string]Schema)
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		parsed, err := Load(fsys, path)
		if err != nil {
			return err
		}

		name := parsed.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			parsed.Name = name
		}
		if _, exists := store[name]; exists {
			return fmt.Errorf("schema: duplicate schema %q (file %s)", name, path)
		}
		store[name] = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
