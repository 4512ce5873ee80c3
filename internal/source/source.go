package source

import (
	"context"
	"errors"
)

// Kind names an ingestible entity feed. The kind doubles as the file name
// (<kind>.csv) and the provider endpoint path (/<kind>).
type Kind string

const (
	KindEmployees Kind = "employees"
	KindShifts    Kind = "shifts"
)

// Row is one untyped input row. CSV rows hold string values; API rows hold
// whatever scalars the JSON decoder produced. Nothing downstream may assume a
// shape until the schema layer has validated the row.
type Row map[string]any

// ErrUnavailable marks a source-level fault: missing file, unreachable host,
// non-success response. It aborts the run, unlike per-row validation errors.
var ErrUnavailable = errors.New("row source unavailable")

// RowSource yields all rows for a kind, fully materialized and in input order.
// Row order is load-bearing: it determines the 1-indexed row numbers used in
// the run's error log.
type RowSource interface {
	Fetch(ctx context.Context, kind Kind) ([]Row, error)
}
