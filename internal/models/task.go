package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a manually added physical task for a specific day.
type Task struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `json:"userId" gorm:"type:uuid;index:idx_tasks_user_date;not null"`
	Title       string         `json:"title" gorm:"not null"`
	TaskDate    string         `json:"taskDate" gorm:"size:10;index:idx_tasks_user_date;not null"`
	IsCompleted bool           `json:"isCompleted" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type AddTaskRequest struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required"`
}

type ToggleTaskRequest struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Completed bool      `json:"completed"`
}
