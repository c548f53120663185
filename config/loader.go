package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a group definition from yaml. Missing fields take their
// defaults: boxes inactive, colliders zero-sized, no timers, 1.0 cooldown,
// empty timeline map.
func Parse(data []byte) (*GroupDef, error) {
	var def GroupDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("config: unmarshal group def: %w", err)
	}
	if def.Timelines == nil {
		def.Timelines = map[string][]FrameDef{}
	}
	return &def, nil
}

// Load reads and parses a group definition file.
func Load(path string) (*GroupDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return def, nil
}

// LoadFS reads and parses a group definition from a filesystem, so callers
// can pass embed.FS or os.DirFS.
func LoadFS(fsys fs.FS, path string) (*GroupDef, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return def, nil
}
