package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sched-sim/sched-sim/model"
)

// LoadTasks reads tasks.csv (columns task_name, wcet,
// optional bcet (default wcet), period, optional deadline (default
// period), priority (blank -> 0), component_id) and appends one
// model.Task to each referenced component, in file order.
func LoadTasks(path string, components map[string]*model.Component) error {
	file, err := os.Open(path)
	if err != nil {
		return &MissingError{Path: path, Err: err}
	}
	defer file.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return &MalformedError{Path: path, Row: 0, Err: fmt.Errorf("reading header: %w", err)}
	}

	row := 1
	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &MalformedError{Path: path, Row: row, Err: err}
		}
		if len(record) < 7 {
			return &MalformedError{Path: path, Row: row, Err: fmt.Errorf("expected 7 columns (task_name, wcet, bcet, period, deadline, priority, component_id), got %d", len(record))}
		}

		name := record[0]
		componentID := record[6]
		comp, ok := components[componentID]
		if !ok {
			return &MalformedError{Path: path, Row: row, Err: fmt.Errorf("unknown component_id %q", componentID)}
		}

		wcet, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return &MalformedError{Path: path, Row: row, Err: fmt.Errorf("invalid wcet %q: %w", record[1], err)}
		}

		bcet := wcet
		if record[2] != "" {
			bcet, err = strconv.ParseInt(record[2], 10, 64)
			if err != nil {
				return &MalformedError{Path: path, Row: row, Err: fmt.Errorf("invalid bcet %q: %w", record[2], err)}
			}
		}

		period, err := strconv.ParseInt(record[3], 10, 64)
		if err != nil {
			return &MalformedError{Path: path, Row: row, Err: fmt.Errorf("invalid period %q: %w", record[3], err)}
		}

		deadline := period
		if record[4] != "" {
			deadline, err = strconv.ParseInt(record[4], 10, 64)
			if err != nil {
				return &MalformedError{Path: path, Row: row, Err: fmt.Errorf("invalid deadline %q: %w", record[4], err)}
			}
		}

		priority := 0
		if record[5] != "" {
			priority, err = strconv.Atoi(record[5])
			if err != nil {
				return &MalformedError{Path: path, Row: row, Err: fmt.Errorf("invalid priority %q: %w", record[5], err)}
			}
		}

		task := model.Task{
			Name: name, WCET: wcet, BCET: bcet, Period: period, Deadline: deadline, Priority: priority,
		}
		if err := task.Validate(); err != nil {
			return &MalformedError{Path: path, Row: row, Err: err}
		}

		comp.Tasks = append(comp.Tasks, task)
		row++
		count++
	}
	if count == 0 {
		return &MalformedError{Path: path, Row: 0, Err: fmt.Errorf("no task rows found")}
	}
	return nil
}
