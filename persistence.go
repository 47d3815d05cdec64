package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// readCSVFile loads a CSV file and returns the header row and data records.
// Blank lines are skipped by the csv reader; a file with no header is an error.
func readCSVFile(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s is empty, expected a header row", path)
	}
	return records[0], records[1:], nil
}

// writeCSVAtomic writes header+records to a temp file in the target
// directory and renames it into place, so a crash mid-write never leaves a
// truncated file behind. The rename also sidesteps partial reads by a
// concurrent loader.
func writeCSVAtomic(path string, header []string, records [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logWarn("Failed to create data directory %s: %v", dir, err)
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := writer.WriteAll(records); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		logWarn("Failed to replace %s: %v", path, err)
		return err
	}
	return nil
}
