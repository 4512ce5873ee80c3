package models

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExternalID      string    `gorm:"uniqueIndex" json:"externalId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           *string   `json:"email"`
	HourlyRateCents int       `json:"hourlyRateCents"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
