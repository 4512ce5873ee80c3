package schema

import (
	"strconv"
	"time"
)

type ShiftRecord struct {
	ExternalID         string
	EmployeeExternalID string
	StartAt            time.Time
	EndAt              time.Time
	BreakMinutes       int
}

// ParseShiftRow normalizes one raw shift row. Timestamps must be strict
// RFC 3339 and are reported individually when unparseable; break minutes
// default to 0 on blank or unparseable input, but a negative value is an
// error. The end-after-start rule is only checked once both timestamps
// parsed, and its error is attached to end_at.
func ParseShiftRow(row map[string]any) (ShiftRecord, []FieldError) {
	var errs []FieldError
	var rec ShiftRecord

	rec.ExternalID = stringField(row, "external_id")
	if rec.ExternalID == "" {
		errs = append(errs, FieldError{Field: "external_id", Message: "External ID is required"})
	}

	rec.EmployeeExternalID = stringField(row, "employee_external_id")
	if rec.EmployeeExternalID == "" {
		errs = append(errs, FieldError{Field: "employee_external_id", Message: "Employee ID is required"})
	}

	start, startErr := time.Parse(time.RFC3339, stringField(row, "start_at"))
	if startErr != nil {
		errs = append(errs, FieldError{Field: "start_at", Message: "Start time must be a valid ISO-8601 timestamp"})
	}
	rec.StartAt = start

	end, endErr := time.Parse(time.RFC3339, stringField(row, "end_at"))
	if endErr != nil {
		errs = append(errs, FieldError{Field: "end_at", Message: "End time must be a valid ISO-8601 timestamp"})
	}
	rec.EndAt = end

	if breakRaw := stringField(row, "break_minutes"); breakRaw != "" {
		switch n, err := strconv.Atoi(breakRaw); {
		case err != nil:
			// unparseable defaults to 0, same as blank
		case n < 0:
			errs = append(errs, FieldError{Field: "break_minutes", Message: "Break minutes must not be negative"})
		default:
			rec.BreakMinutes = n
		}
	}

	if startErr == nil && endErr == nil && !end.After(start) {
		errs = append(errs, FieldError{Field: "end_at", Message: "End time must be after start time"})
	}

	if len(errs) > 0 {
		return ShiftRecord{}, errs
	}
	return rec, nil
}
