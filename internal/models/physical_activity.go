package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhysicalActivity is a catalog entry of suggested exercises.
type PhysicalActivity struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ActivityName     string    `json:"activityName" gorm:"uniqueIndex;not null"`
	ActivityCategory string    `json:"activityCategory" gorm:"not null"`
	Description      string    `json:"description"`
	DurationMinutes  int       `json:"durationMinutes"`
}

func (p *PhysicalActivity) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
