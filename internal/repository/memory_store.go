package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"payroll-sync-backend/internal/models"
)

// MemoryStore is a map-backed Store. It backs the engine's tests and local
// development without a database; upsert semantics mirror GormStore: keyed on
// external id, full replacement of mutable fields, original ID and CreatedAt
// preserved.
type MemoryStore struct {
	mu        sync.Mutex
	runs      map[uuid.UUID]*models.SyncRun
	employees map[string]models.Employee
	shifts    map[string]models.Shift
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:      make(map[uuid.UUID]*models.SyncRun),
		employees: make(map[string]models.Employee),
		shifts:    make(map[string]models.Shift),
	}
}

func (s *MemoryStore) CreateRun(source string) (*models.SyncRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run := &models.SyncRun{
		ID:        uuid.New(),
		Source:    source,
		Status:    models.RunStatusInProgress,
		StartedAt: time.Now().UTC(),
		CreatedAt: time.Now().UTC(),
	}
	s.runs[run.ID] = run
	return run, nil
}

func (s *MemoryStore) FinishRun(id uuid.UUID, status string, finishedAt time.Time, inserted, errored int, errorLog datatypes.JSON) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[id]
	if !ok {
		return ErrNotFound
	}
	run.Status = status
	run.FinishedAt = &finishedAt
	run.RecordsInserted = inserted
	run.RecordsErrored = errored
	run.ErrorLog = errorLog
	return nil
}

func (s *MemoryStore) ListRuns(limit int) ([]models.SyncRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs := make([]models.SyncRun, 0, len(s.runs))
	for _, r := range s.runs {
		runs = append(runs, *r)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].StartedAt.After(runs[j].StartedAt) })
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// GetRun is a test convenience not present on the Store interface.
func (s *MemoryStore) GetRun(id uuid.UUID) (*models.SyncRun, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, false
	}
	copied := *run
	return &copied, true
}

func (s *MemoryStore) UpsertEmployee(e *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := s.employees[e.ExternalID]; ok {
		e.ID = existing.ID
		e.CreatedAt = existing.CreatedAt
	} else {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	s.employees[e.ExternalID] = *e
	return nil
}

func (s *MemoryStore) UpsertShift(sh *models.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := s.shifts[sh.ExternalID]; ok {
		sh.ID = existing.ID
		sh.CreatedAt = existing.CreatedAt
	} else {
		if sh.ID == uuid.Nil {
			sh.ID = uuid.New()
		}
		sh.CreatedAt = now
	}
	sh.UpdatedAt = now
	s.shifts[sh.ExternalID] = *sh
	return nil
}

func (s *MemoryStore) FindAllEmployees() ([]models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ExternalID < employees[j].ExternalID })
	return employees, nil
}

func (s *MemoryStore) FindEmployeeByExternalID(externalID string) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.employees[externalID]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *MemoryStore) ListShiftsForEmployee(externalID string, from, to *time.Time) ([]models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var shifts []models.Shift
	for _, sh := range s.shifts {
		if sh.EmployeeExternalID != externalID {
			continue
		}
		if from != nil && sh.StartAt.Before(*from) {
			continue
		}
		if to != nil && !sh.StartAt.Before(*to) {
			continue
		}
		shifts = append(shifts, sh)
	}
	sort.Slice(shifts, func(i, j int) bool { return shifts[i].StartAt.After(shifts[j].StartAt) })
	return shifts, nil
}

func (s *MemoryStore) EmployeeSummaries(earningsSince time.Time) ([]EmployeeSummary, error) {
	employees, err := s.FindAllEmployees()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		summary := EmployeeSummary{Employee: emp}
		for _, sh := range s.shifts {
			if sh.EmployeeExternalID != emp.ExternalID {
				continue
			}
			if !sh.StartAt.Before(earningsSince) {
				summary.TotalEarningsCentsLast7Days += sh.EarningsCents
			}
			if summary.LastShiftEndAt == nil || sh.EndAt.After(*summary.LastShiftEndAt) {
				end := sh.EndAt
				summary.LastShiftEndAt = &end
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
