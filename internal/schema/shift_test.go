package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShiftRow() map[string]any {
	return map[string]any{
		"external_id":          "S-8001",
		"employee_external_id": "E-1001",
		"start_at":             "2026-01-29T09:00:00Z",
		"end_at":               "2026-01-29T17:00:00Z",
		"break_minutes":        "30",
	}
}

func TestParseShiftRowValid(t *testing.T) {
	rec, errs := ParseShiftRow(validShiftRow())
	require.Empty(t, errs)

	assert.Equal(t, "S-8001", rec.ExternalID)
	assert.Equal(t, "E-1001", rec.EmployeeExternalID)
	assert.Equal(t, time.Date(2026, 1, 29, 9, 0, 0, 0, time.UTC), rec.StartAt)
	assert.Equal(t, time.Date(2026, 1, 29, 17, 0, 0, 0, time.UTC), rec.EndAt)
	assert.Equal(t, 30, rec.BreakMinutes)
}

func TestParseShiftRowBreakDefaults(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"blank", "", 0},
		{"missing", nil, 0},
		{"unparseable", "abc", 0},
		{"json number", 45.0, 45},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row := validShiftRow()
			if tc.value == nil {
				delete(row, "break_minutes")
			} else {
				row["break_minutes"] = tc.value
			}

			rec, errs := ParseShiftRow(row)
			require.Empty(t, errs)
			assert.Equal(t, tc.want, rec.BreakMinutes)
		})
	}
}

func TestParseShiftRowErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		field  string
	}{
		{"missing external id", func(r map[string]any) { r["external_id"] = "" }, "external_id"},
		{"missing employee id", func(r map[string]any) { r["employee_external_id"] = "" }, "employee_external_id"},
		{"bad start", func(r map[string]any) { r["start_at"] = "29/01/2026 09:00" }, "start_at"},
		{"bad end", func(r map[string]any) { r["end_at"] = "not a time" }, "end_at"},
		{"negative break", func(r map[string]any) { r["break_minutes"] = "-10" }, "break_minutes"},
		{"negative json break", func(r map[string]any) { r["break_minutes"] = -5.0 }, "break_minutes"},
		{"end equals start", func(r map[string]any) { r["end_at"] = r["start_at"] }, "end_at"},
		{"end before start", func(r map[string]any) { r["end_at"] = "2026-01-29T08:00:00Z" }, "end_at"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row := validShiftRow()
			tc.mutate(row)

			_, errs := ParseShiftRow(row)
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
		})
	}
}

func TestParseShiftRowBothTimestampsReported(t *testing.T) {
	row := validShiftRow()
	row["start_at"] = "bogus"
	row["end_at"] = "also bogus"

	_, errs := ParseShiftRow(row)
	require.Len(t, errs, 2, "each timestamp reported individually, no ordering check")
	assert.Equal(t, "start_at", errs[0].Field)
	assert.Equal(t, "end_at", errs[1].Field)
}

func TestJoinErrors(t *testing.T) {
	msg := JoinErrors([]FieldError{
		{Field: "a", Message: "first"},
		{Field: "b", Message: "second"},
	})
	assert.Equal(t, "first, second", msg)
}
