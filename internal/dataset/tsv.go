package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineBytes = 1024 * 1024

// readRows reads tab-separated rows from r, skipping blank lines.
func readRows(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

// column picks a 1-based column out of a row. rowNum is 1-based and
// only used for error reporting.
func column(fields []string, col, rowNum int) (string, error) {
	if col < 1 || col > len(fields) {
		return "", fmt.Errorf("row %d has %d columns, want column %d", rowNum, len(fields), col)
	}
	return fields[col-1], nil
}
