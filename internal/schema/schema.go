// Package schema validates raw source rows into typed records. Each parser is
// a pure function: it returns either a normalized record or the full list of
// field errors, and never panics on malformed input — a bad row must not take
// the rest of the batch down with it.
package schema

import (
	"strconv"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JoinErrors flattens field errors into the single message stored on the run's
// error log entry.
func JoinErrors(errs []FieldError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Message
	}
	return strings.Join(parts, ", ")
}

// RawExternalID pulls the external id out of a row that may not have passed
// validation, for error-log attribution.
func RawExternalID(row map[string]any) string {
	return stringField(row, "external_id")
}

// stringField coerces whatever scalar the source produced into a string.
// CSV rows are already strings; JSON rows may carry numbers, bools or null.
func stringField(row map[string]any, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
