package benchmark

import (
	"fmt"
	"os"
)

// AppendCSVRow appends one data line to the CSV file at path. When the
// file does not exist yet or is empty, headerIfNew is written as the first
// line before the data line; an existing non-empty file gets only the data
// line, so repeated appends never duplicate the header.
func AppendCSVRow(path, headerIfNew, row string) error {
	writeHeader := false
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		writeHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open CSV file %s: %w", path, err)
	}
	defer f.Close()

	if writeHeader && headerIfNew != "" {
		if _, err := fmt.Fprintln(f, headerIfNew); err != nil {
			return fmt.Errorf("failed to write CSV header to %s: %w", path, err)
		}
	}
	if _, err := fmt.Fprintln(f, row); err != nil {
		return fmt.Errorf("failed to write CSV row to %s: %w", path, err)
	}
	return nil
}
