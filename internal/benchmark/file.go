package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ResultPath returns the conventional location of an engine's result file.
func ResultPath(dir, engine string) string {
	return filepath.Join(dir, engine+"_results.json")
}

// WriteResultSet writes rs to dir/<engine>_results.json, creating dir if
// needed, and returns the written path.
func WriteResultSet(dir string, rs ResultSet) (string, error) {
	if rs.Engine == "" {
		return "", fmt.Errorf("result set has no engine name")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}

	path := ResultPath(dir, rs.Engine)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ReadResultSet loads an exchange document written by any implementation.
func ReadResultSet(path string) (*ResultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rs ResultSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	if rs.Results == nil {
		rs.Results = map[string]Measurement{}
	}
	return &rs, nil
}

// WriteReport saves a comparison report as indented JSON.
func WriteReport(path string, r Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
