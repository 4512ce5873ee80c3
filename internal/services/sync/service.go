package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"payroll-sync-backend/internal/models"
	"payroll-sync-backend/internal/payroll"
	"payroll-sync-backend/internal/repository"
	"payroll-sync-backend/internal/schema"
	"payroll-sync-backend/internal/source"
)

// RowError is one entry in a run's error log. Row numbers are 1-indexed the
// way a human counts CSV lines.
type RowError struct {
	Row        int    `json:"row"`
	Kind       string `json:"type"`
	Message    string `json:"error"`
	ExternalID string `json:"data,omitempty"`
}

type Result struct {
	RunID  uuid.UUID  `json:"runId"`
	Errors []RowError `json:"errors"`
}

// Service drives sync runs. It owns the SyncRun lifecycle exclusively; the
// store is only ever written through the upsert calls its two phases issue.
type Service struct {
	store   repository.Store
	sources map[string]source.RowSource
	log     *zap.Logger
}

func NewService(store repository.Store, file, api source.RowSource, log *zap.Logger) *Service {
	return &Service{
		store: store,
		sources: map[string]source.RowSource{
			models.SourceFile: file,
			models.SourceAPI:  api,
		},
		log: log,
	}
}

// Run executes one sync invocation: employees first, then shifts, so shift
// rows resolve against the employee set written moments earlier. Row-level
// validation and business-rule failures are absorbed into the error log;
// source and storage faults finalize the run as ERROR and are returned.
// Concurrent runs against the same store are not serialized here.
//
// The engine is deliberately sequential and holds all rows in memory; there
// are no cancellation semantics beyond what the sources honor via ctx.
func (s *Service) Run(ctx context.Context, sourceTag string) (*Result, error) {
	rs, ok := s.sources[sourceTag]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", sourceTag)
	}

	run, err := s.store.CreateRun(sourceTag)
	if err != nil {
		return nil, fmt.Errorf("create sync run: %w", err)
	}
	s.log.Info("sync run started", zap.String("runId", run.ID.String()), zap.String("source", sourceTag))

	var errs []RowError
	inserted := 0

	// --- Phase 1: employees ---
	employeeRows, err := rs.Fetch(ctx, source.KindEmployees)
	if err != nil {
		return nil, s.fail(run, inserted, errs, err)
	}

	for i, row := range employeeRows {
		rec, fieldErrs := schema.ParseEmployeeRow(row)
		if len(fieldErrs) > 0 {
			errs = append(errs, RowError{
				Row:        i + 1,
				Kind:       "Employee",
				Message:    schema.JoinErrors(fieldErrs),
				ExternalID: schema.RawExternalID(row),
			})
			continue
		}

		employee := models.Employee{
			ExternalID:      rec.ExternalID,
			FirstName:       rec.FirstName,
			LastName:        rec.LastName,
			Email:           rec.Email,
			HourlyRateCents: rec.HourlyRateCents,
			Active:          rec.Active,
		}
		if err := s.store.UpsertEmployee(&employee); err != nil {
			return nil, s.fail(run, inserted, errs, fmt.Errorf("upsert employee %s: %w", rec.ExternalID, err))
		}
		inserted++
	}

	// --- Phase 2: shifts ---
	// One bulk load instead of a point query per shift row. This read sees
	// phase 1's writes, so employees synced moments ago resolve here.
	employees, err := s.store.FindAllEmployees()
	if err != nil {
		return nil, s.fail(run, inserted, errs, fmt.Errorf("load employees: %w", err))
	}
	byExternalID := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		byExternalID[e.ExternalID] = e
	}

	shiftRows, err := rs.Fetch(ctx, source.KindShifts)
	if err != nil {
		return nil, s.fail(run, inserted, errs, err)
	}

	for i, row := range shiftRows {
		rec, fieldErrs := schema.ParseShiftRow(row)
		if len(fieldErrs) > 0 {
			errs = append(errs, RowError{
				Row:        i + 1,
				Kind:       "Shift",
				Message:    schema.JoinErrors(fieldErrs),
				ExternalID: schema.RawExternalID(row),
			})
			continue
		}

		// Business rule, checked only after the schema passed: the shift must
		// reference an employee present in the store.
		employee, ok := byExternalID[rec.EmployeeExternalID]
		if !ok {
			errs = append(errs, RowError{
				Row:        i + 1,
				Kind:       "Shift",
				Message:    fmt.Sprintf("Employee not found: %s", rec.EmployeeExternalID),
				ExternalID: rec.ExternalID,
			})
			continue
		}

		workMinutes := payroll.WorkedMinutes(rec.StartAt, rec.EndAt, rec.BreakMinutes)
		shift := models.Shift{
			ExternalID:         rec.ExternalID,
			EmployeeExternalID: rec.EmployeeExternalID,
			StartAt:            rec.StartAt,
			EndAt:              rec.EndAt,
			BreakMinutes:       rec.BreakMinutes,
			WorkMinutes:        workMinutes,
			EarningsCents:      payroll.EarningsCents(workMinutes, employee.HourlyRateCents),
		}
		if err := s.store.UpsertShift(&shift); err != nil {
			return nil, s.fail(run, inserted, errs, fmt.Errorf("upsert shift %s: %w", rec.ExternalID, err))
		}
		inserted++
	}

	// --- Finalize ---
	if err := s.store.FinishRun(run.ID, models.RunStatusSuccess, time.Now().UTC(), inserted, len(errs), marshalErrorLog(errs)); err != nil {
		return nil, fmt.Errorf("finalize sync run: %w", err)
	}
	s.log.Info("sync run finished",
		zap.String("runId", run.ID.String()),
		zap.Int("inserted", inserted),
		zap.Int("errored", len(errs)))

	return &Result{RunID: run.ID, Errors: errs}, nil
}

// fail finalizes the run as ERROR best-effort, preserving the error log
// accumulated so far, then hands the fault back. The run must never be left
// IN_PROGRESS, even when the store itself is the thing that is broken.
func (s *Service) fail(run *models.SyncRun, inserted int, errs []RowError, cause error) error {
	s.log.Error("sync run failed", zap.String("runId", run.ID.String()), zap.Error(cause))
	if err := s.store.FinishRun(run.ID, models.RunStatusError, time.Now().UTC(), inserted, len(errs), marshalErrorLog(errs)); err != nil {
		s.log.Error("could not finalize errored run", zap.String("runId", run.ID.String()), zap.Error(err))
	}
	return cause
}

func marshalErrorLog(errs []RowError) datatypes.JSON {
	if errs == nil {
		errs = []RowError{}
	}
	b, err := json.Marshal(errs)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}
