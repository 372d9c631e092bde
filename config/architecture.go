package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sched-sim/sched-sim/model"
)

// LoadArchitecture reads architecture.csv (columns core_id,
// speed_factor) and returns one model.Core per row, in file order —
// the order in which cores are later simulated.
func LoadArchitecture(path string) ([]*model.Core, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &MissingError{Path: path, Err: err}
	}
	defer file.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return nil, &MalformedError{Path: path, Row: 0, Err: fmt.Errorf("reading header: %w", err)}
	}

	var cores []*model.Core
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedError{Path: path, Row: row, Err: err}
		}
		if len(record) < 2 {
			return nil, &MalformedError{Path: path, Row: row, Err: fmt.Errorf("expected 2 columns (core_id, speed_factor), got %d", len(record))}
		}

		speed, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, &MalformedError{Path: path, Row: row, Err: fmt.Errorf("invalid speed_factor %q: %w", record[1], err)}
		}

		core := &model.Core{ID: record[0], Speed: speed}
		if err := core.Validate(); err != nil {
			return nil, &MalformedError{Path: path, Row: row, Err: err}
		}
		cores = append(cores, core)
		row++
	}
	if len(cores) == 0 {
		return nil, &MalformedError{Path: path, Row: 0, Err: fmt.Errorf("no core rows found")}
	}
	return cores, nil
}
