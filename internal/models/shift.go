package models

import (
	"time"

	"github.com/google/uuid"
)

type Shift struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExternalID         string    `gorm:"uniqueIndex" json:"externalId"`
	EmployeeExternalID string    `gorm:"index" json:"employeeExternalId"`
	StartAt            time.Time `gorm:"index" json:"startAt"`
	EndAt              time.Time `json:"endAt"`
	BreakMinutes       int       `json:"breakMinutes"`
	WorkMinutes        int       `json:"workMinutes"`
	EarningsCents      int       `json:"earningsCents"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
