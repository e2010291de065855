package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfessionTask is a work/study task, scored separately from physical items.
type ProfessionTask struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `json:"userId" gorm:"type:uuid;index:idx_prof_tasks_user_date;not null"`
	Title       string         `json:"title" gorm:"not null"`
	TaskDate    string         `json:"taskDate" gorm:"size:10;index:idx_prof_tasks_user_date;not null"`
	IsCompleted bool           `json:"isCompleted" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (t *ProfessionTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ProfessionStats keeps lifetime done/total counters per user.
type ProfessionStats struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	CompletedCount int64     `json:"completedCount" gorm:"default:0"`
	TargetCount    int64     `json:"targetCount" gorm:"default:0"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (s *ProfessionStats) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type AddProfessionTaskRequest struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date"`
}

type ToggleProfessionTaskRequest struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Completed bool      `json:"completed"`
}

type EditProfessionTaskRequest struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Title string    `json:"title" validate:"required"`
}
