package content

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"
)

// decodeColumn unmarshals a JSON TEXT column into dst. NULL, empty and
// malformed values leave dst untouched so the caller's zero or default
// value stands.
func decodeColumn(col string, ns sql.NullString, dst any) {
	if !ns.Valid || strings.TrimSpace(ns.String) == "" || ns.String == "null" {
		return
	}
	if err := json.Unmarshal([]byte(ns.String), dst); err != nil {
		slog.Warn("ignoring malformed stored column", "column", col, "error", err)
	}
}

// encodeColumn marshals v for a JSON TEXT column.
func encodeColumn(v any) sql.NullString {
	data, err := json.Marshal(v)
	if err != nil {
		// Only unsupported types fail here and the document types have none.
		slog.Error("failed to encode column", "error", err)
		return sql.NullString{}
	}
	return sql.NullString{String: string(data), Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func optString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func optColumn[T any](v *T) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return encodeColumn(*v)
}

// orEmpty replaces a nil slice with an empty one so documents always encode
// lists as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func sqlBool(b bool) sql.NullBool {
	return sql.NullBool{Bool: b, Valid: true}
}

func sqlInt(n int64) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: true}
}
