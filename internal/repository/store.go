package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"payroll-sync-backend/internal/models"
)

// ErrNotFound is returned by point lookups when no record matches.
var ErrNotFound = errors.New("record not found")

// EmployeeSummary is an employee plus the aggregates the dashboard shows.
type EmployeeSummary struct {
	models.Employee
	LastShiftEndAt              *time.Time `json:"lastShiftEndAt"`
	TotalEarningsCentsLast7Days int        `json:"totalEarningsCentsLast7Days"`
}

// Store is the persistence boundary of the sync engine. Upserts are keyed on
// external identifier and replace all mutable fields; they are safe to
// re-apply. Storage faults propagate to the caller untouched — the engine
// never retries locally.
type Store interface {
	CreateRun(source string) (*models.SyncRun, error)
	FinishRun(id uuid.UUID, status string, finishedAt time.Time, inserted, errored int, errorLog datatypes.JSON) error
	ListRuns(limit int) ([]models.SyncRun, error)

	UpsertEmployee(e *models.Employee) error
	UpsertShift(s *models.Shift) error
	FindAllEmployees() ([]models.Employee, error)
	FindEmployeeByExternalID(externalID string) (*models.Employee, error)

	// ListShiftsForEmployee filters on shift start: from is inclusive, to is
	// exclusive. Results are ordered by start time, newest first.
	ListShiftsForEmployee(externalID string, from, to *time.Time) ([]models.Shift, error)
	EmployeeSummaries(earningsSince time.Time) ([]EmployeeSummary, error)
}
