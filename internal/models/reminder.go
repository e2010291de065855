package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder may be undated; only dated reminders count toward daily scores.
type Reminder struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `json:"userId" gorm:"type:uuid;index:idx_reminders_user_date;not null"`
	Title        string         `json:"title" gorm:"not null"`
	ReminderDate *string        `json:"reminderDate" gorm:"size:10;index:idx_reminders_user_date"`
	IsDone       bool           `json:"isDone" gorm:"default:false"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type AddReminderRequest struct {
	Title string  `json:"title" validate:"required"`
	Date  *string `json:"date"`
}

type ToggleReminderRequest struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Done bool      `json:"done"`
}

type DeleteRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}
