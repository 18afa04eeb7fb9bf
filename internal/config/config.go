// Package config loads the directory layout and merge behavior for a run.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings hold the directory layout and merge behavior for a run.
type Settings struct {
	InputDir        string `yaml:"input_dir"`
	OutputDir       string `yaml:"output_dir"`
	Extension       string `yaml:"extension"`
	JoinAxis        string `yaml:"join_axis"`
	ContinueOnError bool   `yaml:"continue_on_error"`
}

// Default returns the settings matching the original fixed directory layout.
func Default() Settings {
	return Settings{
		InputDir:  "Base Climate Data",
		OutputDir: "src/data/Processed Climate Data",
		Extension: ".nc",
		JoinAxis:  "time",
	}
}

// Load reads settings from a YAML file. Fields absent from the file keep
// their defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML settings payload on top of defaults.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the merger cannot run with.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.InputDir) == "" {
		return fmt.Errorf("input_dir must not be empty")
	}
	if strings.TrimSpace(s.OutputDir) == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if !strings.HasPrefix(s.Extension, ".") {
		return fmt.Errorf("extension %q must start with a dot", s.Extension)
	}
	if strings.TrimSpace(s.JoinAxis) == "" {
		return fmt.Errorf("join_axis must not be empty")
	}
	return nil
}
