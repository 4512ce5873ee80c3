package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Run lifecycle: IN_PROGRESS until finalized, then SUCCESS or ERROR. Terminal
// states are never rewritten.
const (
	RunStatusInProgress = "IN_PROGRESS"
	RunStatusSuccess    = "SUCCESS"
	RunStatusError      = "ERROR"
)

const (
	SourceFile = "FILE"
	SourceAPI  = "API"
)

type SyncRun struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Source          string         `json:"source"`
	Status          string         `gorm:"index" json:"status"`
	StartedAt       time.Time      `gorm:"index" json:"startedAt"`
	FinishedAt      *time.Time     `json:"finishedAt"`
	RecordsInserted int            `json:"recordsInserted"`
	RecordsErrored  int            `json:"recordsErrored"`
	ErrorLog        datatypes.JSON `json:"errorLog"`
	CreatedAt       time.Time      `json:"createdAt"`
}
