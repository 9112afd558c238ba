package generator

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings configures a single generation run (spec §6: "--settings
// <file>"). Values given on the command line win over the settings file.
// When Module is empty the CLI uses "GeneratedClient"; GemName is merged
// but not read by the generation pipeline.
type Settings struct {
	Module     string    `yaml:"module"`
	GemName    string    `yaml:"gem_name"`
	ServiceID  string    `yaml:"service_id"`
	OutputRoot string    `yaml:"output_root"`
	DryRun     bool      `yaml:"dry_run"`
	Overlays   []Overlay `yaml:"overlays"`
}

// LoadSettings reads a YAML settings file from path.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("generator: opening settings file: %w", err)
	}
	defer f.Close()
	return DecodeSettings(f)
}

// DecodeSettings parses a YAML settings document from r.
func DecodeSettings(r io.Reader) (Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return Settings{}, fmt.Errorf("generator: parsing settings file: %w", err)
	}
	return s, nil
}

// Merge overlays non-zero fields of override onto s, implementing
// "command-line flags win over the settings file".
func (s Settings) Merge(override Settings) Settings {
	merged := s
	if override.Module != "" {
		merged.Module = override.Module
	}
	if override.GemName != "" {
		merged.GemName = override.GemName
	}
	if override.ServiceID != "" {
		merged.ServiceID = override.ServiceID
	}
	if override.OutputRoot != "" {
		merged.OutputRoot = override.OutputRoot
	}
	if override.DryRun {
		merged.DryRun = true
	}
	if len(override.Overlays) > 0 {
		merged.Overlays = override.Overlays
	}
	return merged
}
