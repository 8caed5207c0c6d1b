package importer

import (
	"errors"
	"fmt"
)

var (
	// ErrParse means tabular input had no header or no data lines.
	ErrParse = errors.New("could not interpret import data")
	// ErrUnknownKind is returned for a record kind outside Kinds.
	ErrUnknownKind = errors.New("unknown import type")
)

// Kind is one of the four importable record shapes.
type Kind string

const (
	KindProducts     Kind = "products"
	KindTestimonials Kind = "testimonials"
	KindFAQ          Kind = "faq"
	KindComparison   Kind = "comparison"
)

var Kinds = []Kind{KindProducts, KindTestimonials, KindFAQ, KindComparison}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Appends reports whether confirming this kind adds rows rather than
// replacing a module's list.
func (k Kind) Appends() bool {
	return k == KindProducts
}

// Record is one candidate row keyed by field name. Values are strings when
// parsed from CSV and arbitrary JSON values when produced by generation.
type Record map[string]any

// String returns the field as text.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Table is a parsed upload: header order plus one record per data line.
type Table struct {
	Headers []string `json:"headers"`
	Records []Record `json:"records"`
}
