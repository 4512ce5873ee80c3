// Package payroll holds the pure pay-derivation rules: worked minutes,
// earnings in cents, and range totals. Everything here is arithmetic on
// already-validated inputs.
package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"payroll-sync-backend/internal/models"
)

var sixty = decimal.NewFromInt(60)

// WorkedMinutes is the whole-minute duration between start and end, less the
// break, floored at zero. A break longer than the shift yields 0, never a
// negative balance.
func WorkedMinutes(start, end time.Time, breakMinutes int) int {
	duration := int(end.Sub(start) / time.Minute)
	worked := duration - breakMinutes
	if worked < 0 {
		return 0
	}
	return worked
}

// EarningsCents is workedMinutes * hourlyRateCents / 60, rounded half-up to
// the nearest cent.
func EarningsCents(workedMinutes, hourlyRateCents int) int {
	total := decimal.NewFromInt(int64(workedMinutes) * int64(hourlyRateCents))
	return int(total.Div(sixty).Round(0).IntPart())
}

type Totals struct {
	TotalMinutes       int     `json:"totalMinutes"`
	TotalHours         float64 `json:"totalHours"`
	TotalEarningsCents int     `json:"totalEarningsCents"`
}

// Summarize aggregates shifts for the range endpoint. Hours are rounded to
// two decimal places.
func Summarize(shifts []models.Shift) Totals {
	var t Totals
	for _, s := range shifts {
		t.TotalMinutes += s.WorkMinutes
		t.TotalEarningsCents += s.EarningsCents
	}
	hours, _ := decimal.NewFromInt(int64(t.TotalMinutes)).Div(sixty).Round(2).Float64()
	t.TotalHours = hours
	return t
}
