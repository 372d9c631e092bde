package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sched-sim/sched-sim/model"
)

// LoadBudgets reads budgets.csv (columns component_id, core_id,
// scheduler, budget, period) and attaches one model.Component per row
// to its core, found by core_id in cores. Initial Alpha = budget/period,
// Delta = 1 (BDR synthesis overwrites both when feasible). Returns the
// components keyed by component_id, for LoadTasks to attach tasks to.
func LoadBudgets(path string, cores []*model.Core) (map[string]*model.Component, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &MissingError{Path: path, Err: err}
	}
	defer file.Close() //nolint:errcheck // read-only file

	byID := make(map[string]*model.Core, len(cores))
	for _, c := range cores {
		byID[c.ID] = c
	}

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return nil, &MalformedError{Path: path, Row: 0, Err: fmt.Errorf("reading header: %w", err)}
	}

	components := make(map[string]*model.Component)
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedError{Path: path, Row: row, Err: err}
		}
		if len(record) < 5 {
			return nil, &MalformedError{Path: path, Row: row, Err: fmt.Errorf("expected 5 columns (component_id, core_id, scheduler, budget, period), got %d", len(record))}
		}

		componentID, coreID, schedulerCol := record[0], record[1], record[2]
		core, ok := byID[coreID]
		if !ok {
			return nil, &MalformedError{Path: path, Row: row, Err: fmt.Errorf("unknown core_id %q", coreID)}
		}

		policy, err := model.ParsePolicyKind(schedulerCol)
		if err != nil {
			return nil, &MalformedError{Path: path, Row: row, Err: err}
		}

		budget, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, &MalformedError{Path: path, Row: row, Err: fmt.Errorf("invalid budget %q: %w", record[3], err)}
		}
		period, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, &MalformedError{Path: path, Row: row, Err: fmt.Errorf("invalid period %q: %w", record[4], err)}
		}
		if period <= 0 {
			return nil, &MalformedError{Path: path, Row: row, Err: fmt.Errorf("period must be positive, got %v", period)}
		}

		comp := &model.Component{
			ID:     componentID,
			CoreID: coreID,
			Policy: policy,
			Alpha:  budget / period,
			Delta:  1,
		}
		core.Components = append(core.Components, comp)
		components[componentID] = comp
		row++
	}
	if len(components) == 0 {
		return nil, &MalformedError{Path: path, Row: 0, Err: fmt.Errorf("no component rows found")}
	}
	return components, nil
}
