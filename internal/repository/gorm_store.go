package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"payroll-sync-backend/internal/models"
)

// GormStore is the Postgres-backed store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Expose DB if needed
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) CreateRun(source string) (*models.SyncRun, error) {
	run := &models.SyncRun{
		ID:        uuid.New(),
		Source:    source,
		Status:    models.RunStatusInProgress,
		StartedAt: time.Now().UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (s *GormStore) FinishRun(id uuid.UUID, status string, finishedAt time.Time, inserted, errored int, errorLog datatypes.JSON) error {
	return s.db.Model(&models.SyncRun{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           status,
			"finished_at":      finishedAt,
			"records_inserted": inserted,
			"records_errored":  errored,
			"error_log":        errorLog,
		}).Error
}

func (s *GormStore) ListRuns(limit int) ([]models.SyncRun, error) {
	var runs []models.SyncRun
	err := s.db.Order("started_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}

var employeeUpsertColumns = []string{"first_name", "last_name", "email", "hourly_rate_cents", "active", "updated_at"}

func (s *GormStore) UpsertEmployee(e *models.Employee) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns(employeeUpsertColumns),
	}).Create(e).Error
}

var shiftUpsertColumns = []string{"employee_external_id", "start_at", "end_at", "break_minutes", "work_minutes", "earnings_cents", "updated_at"}

func (s *GormStore) UpsertShift(sh *models.Shift) error {
	if sh.ID == uuid.Nil {
		sh.ID = uuid.New()
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns(shiftUpsertColumns),
	}).Create(sh).Error
}

func (s *GormStore) FindAllEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	err := s.db.Order("external_id ASC").Find(&employees).Error
	return employees, err
}

func (s *GormStore) FindEmployeeByExternalID(externalID string) (*models.Employee, error) {
	var employee models.Employee
	err := s.db.First(&employee, "external_id = ?", externalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *GormStore) ListShiftsForEmployee(externalID string, from, to *time.Time) ([]models.Shift, error) {
	query := s.db.Where("employee_external_id = ?", externalID)
	if from != nil {
		query = query.Where("start_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("start_at < ?", *to)
	}

	var shifts []models.Shift
	err := query.Order("start_at DESC").Find(&shifts).Error
	return shifts, err
}

func (s *GormStore) EmployeeSummaries(earningsSince time.Time) ([]EmployeeSummary, error) {
	employees, err := s.FindAllEmployees()
	if err != nil {
		return nil, err
	}

	var earnings []struct {
		EmployeeExternalID string
		Total              int
	}
	err = s.db.Model(&models.Shift{}).
		Select("employee_external_id, SUM(earnings_cents) AS total").
		Where("start_at >= ?", earningsSince).
		Group("employee_external_id").
		Scan(&earnings).Error
	if err != nil {
		return nil, err
	}

	var lastShifts []struct {
		EmployeeExternalID string
		Last               time.Time
	}
	err = s.db.Model(&models.Shift{}).
		Select("employee_external_id, MAX(end_at) AS last").
		Group("employee_external_id").
		Scan(&lastShifts).Error
	if err != nil {
		return nil, err
	}

	earningsByEmployee := make(map[string]int, len(earnings))
	for _, e := range earnings {
		earningsByEmployee[e.EmployeeExternalID] = e.Total
	}
	lastByEmployee := make(map[string]time.Time, len(lastShifts))
	for _, l := range lastShifts {
		lastByEmployee[l.EmployeeExternalID] = l.Last
	}

	summaries := make([]EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		summary := EmployeeSummary{
			Employee:                    emp,
			TotalEarningsCentsLast7Days: earningsByEmployee[emp.ExternalID],
		}
		if last, ok := lastByEmployee[emp.ExternalID]; ok {
			end := last
			summary.LastShiftEndAt = &end
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
