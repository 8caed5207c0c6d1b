package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loganlanou/reviewhub/internal/importer"
)

// stripFences removes markdown code fences the model may wrap around JSON.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json\n", "")
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```\n", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseRecords reads a model reply as a JSON array of flat records.
func ParseRecords(reply string) ([]importer.Record, error) {
	var records []importer.Record
	if err := json.Unmarshal([]byte(stripFences(reply)), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrParse, i)
		}
	}
	if records == nil {
		return nil, fmt.Errorf("%w: reply is not an array", ErrParse)
	}
	return records, nil
}
