package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	sim "github.com/solidarity-fund/fund-sim/sim"
)

// PresetsConfig represents the full presets.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type PresetsConfig struct {
	Version string                    `yaml:"version"`
	Default string                    `yaml:"default"`
	Presets map[string]sim.Parameters `yaml:"presets"`
}

// loadPresetsConfig parses a presets file with strict field checking: typos must cause errors.
func loadPresetsConfig(path string) (*PresetsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file %s: %w", path, err)
	}
	var cfg PresetsConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing presets file %s: %w", path, err)
	}
	return &cfg, nil
}

// Names returns the preset names in sorted order.
func (c *PresetsConfig) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named preset, falling back to the file's default when name is empty.
func (c *PresetsConfig) Lookup(name string) (sim.Parameters, error) {
	if name == "" {
		name = c.Default
	}
	p, ok := c.Presets[name]
	if !ok {
		return sim.Parameters{}, fmt.Errorf("unknown preset %q; valid: %v", name, c.Names())
	}
	return p, nil
}
