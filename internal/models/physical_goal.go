package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhysicalGoal supports partial completion via completed/total counts.
type PhysicalGoal struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID      `json:"userId" gorm:"type:uuid;index:idx_goals_user_date;not null"`
	GoalTitle      string         `json:"goalTitle" gorm:"not null"`
	GoalDate       string         `json:"goalDate" gorm:"size:10;index:idx_goals_user_date;not null"`
	CompletedCount int            `json:"completedCount" gorm:"default:0"`
	TotalCount     int            `json:"totalCount" gorm:"default:1"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

func (g *PhysicalGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type AddPhysicalGoalRequest struct {
	GoalTitle string `json:"goalTitle" validate:"required"`
	GoalDate  string `json:"goalDate" validate:"required"`
}

type TogglePhysicalGoalRequest struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Completed bool      `json:"completed"`
}
