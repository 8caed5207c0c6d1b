package importer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCSV reads comma-delimited text: the first non-blank line is the
// header, every following non-blank line is one record. Cells are split on
// every comma with no quoting support and trimmed; missing cells become
// empty strings and surplus cells are dropped.
func ParseCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no header line", ErrParse)
	}
	if len(lines) == 1 {
		return nil, fmt.Errorf("%w: no data lines", ErrParse)
	}

	headers := splitCells(lines[0])
	table := &Table{Headers: headers, Records: make([]Record, 0, len(lines)-1)}
	for _, line := range lines[1:] {
		values := splitCells(line)
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(values) {
				rec[h] = values[i]
			} else {
				rec[h] = ""
			}
		}
		table.Records = append(table.Records, rec)
	}
	return table, nil
}

func splitCells(line string) []string {
	cells := strings.Split(line, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
