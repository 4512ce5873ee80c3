package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"payroll-sync-backend/internal/models"
)

func TestWorkedMinutes(t *testing.T) {
	start := time.Date(2026, 1, 29, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		breakMin int
		want     int
	}{
		{"eight hours with break", start.Add(8 * time.Hour), 30, 450},
		{"no break", start.Add(2 * time.Hour), 0, 120},
		{"break exceeds duration", start.Add(time.Hour), 90, 0},
		{"break equals duration", start.Add(time.Hour), 60, 0},
		{"sub-minute remainder floored", start.Add(90*time.Minute + 30*time.Second), 0, 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WorkedMinutes(start, tc.end, tc.breakMin))
		})
	}
}

func TestEarningsCents(t *testing.T) {
	tests := []struct {
		name      string
		minutes   int
		rateCents int
		want      int
	}{
		{"reference shift", 450, 2500, 18750},
		{"zero minutes", 0, 2500, 0},
		{"rounds half up", 1, 2530, 42},   // 42.166...
		{"rounds up at half", 90, 2501, 3752}, // 3751.5
		{"zero rate", 120, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EarningsCents(tc.minutes, tc.rateCents))
		})
	}
}

func TestSummarize(t *testing.T) {
	totals := Summarize([]models.Shift{
		{WorkMinutes: 60, EarningsCents: 500},
		{WorkMinutes: 120, EarningsCents: 1000},
		{WorkMinutes: 30, EarningsCents: 250},
	})

	assert.Equal(t, 210, totals.TotalMinutes)
	assert.Equal(t, 3.5, totals.TotalHours)
	assert.Equal(t, 1750, totals.TotalEarningsCents)
}

func TestSummarizeRoundsHoursToTwoPlaces(t *testing.T) {
	totals := Summarize([]models.Shift{{WorkMinutes: 50, EarningsCents: 100}})
	assert.Equal(t, 0.83, totals.TotalHours)
}

func TestSummarizeEmpty(t *testing.T) {
	totals := Summarize(nil)
	assert.Equal(t, 0, totals.TotalMinutes)
	assert.Equal(t, 0.0, totals.TotalHours)
	assert.Equal(t, 0, totals.TotalEarningsCents)
}
