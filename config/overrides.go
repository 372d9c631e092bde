package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides holds optional analysis-parameter overrides, loadable from
// a YAML file with strict decoding: zero value means "not set in
// YAML", so a nil field never clobbers a CLI flag or a default.
type Overrides struct {
	AnalysisHorizon *int64 `yaml:"analysis_horizon"`
	GridSize        *int   `yaml:"grid_size"`
	SimHorizon      *int64 `yaml:"sim_horizon"`
}

// LoadOverrides reads and strictly parses a YAML overrides file.
// Unrecognized keys are rejected.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MissingError{Path: path, Err: err}
	}

	var overrides Overrides
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&overrides); err != nil {
		return nil, &MalformedError{Path: path, Row: 0, Err: fmt.Errorf("parsing overrides: %w", err)}
	}
	return &overrides, nil
}
