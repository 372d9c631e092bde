// Package config implements the tabular input loaders and optional YAML
// analysis overrides: encoding/csv for the row-oriented inputs and
// gopkg.in/yaml.v3 with strict KnownFields decoding for the optional
// structured override file.
package config

import (
	"path/filepath"

	"github.com/sched-sim/sched-sim/model"
)

// LoadPlatform reads architecture.csv, budgets.csv, and tasks.csv from
// dir and assembles a model.Platform. Any required file missing from
// dir surfaces as a *MissingError; any row that fails to parse as a
// *MalformedError — both are fatal and handled by cmd.
func LoadPlatform(dir string) (*model.Platform, error) {
	cores, err := LoadArchitecture(filepath.Join(dir, "architecture.csv"))
	if err != nil {
		return nil, err
	}

	components, err := LoadBudgets(filepath.Join(dir, "budgets.csv"), cores)
	if err != nil {
		return nil, err
	}

	if err := LoadTasks(filepath.Join(dir, "tasks.csv"), components); err != nil {
		return nil, err
	}

	platform := &model.Platform{Cores: cores}
	for _, core := range platform.Cores {
		if err := core.Validate(); err != nil {
			return nil, err
		}
		for _, comp := range core.Components {
			if err := comp.Validate(); err != nil {
				return nil, err
			}
		}
	}
	return platform, nil
}
