package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NutritionItem is one generated checklist line for a (user, date).
// ItemType is one of: workout, protein, fiber, water.
type NutritionItem struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;index:idx_nutrition_user_date;not null"`
	EntryDate string         `json:"entryDate" gorm:"size:10;index:idx_nutrition_user_date;not null"`
	ItemLabel string         `json:"itemLabel" gorm:"not null"`
	ItemType  string         `json:"itemType" gorm:"not null"`
	IsChecked bool           `json:"isChecked" gorm:"default:false"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (n *NutritionItem) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// NutritionProgress tracks a per-item progress percentage, separate from
// the binary checked flag.
type NutritionProgress struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;index:idx_progress_user_date_item;not null"`
	EntryDate   string    `json:"entryDate" gorm:"size:10;index:idx_progress_user_date_item;not null"`
	ItemID      uuid.UUID `json:"itemId" gorm:"type:uuid;index:idx_progress_user_date_item;not null"`
	ItemLabel   string    `json:"itemLabel"`
	ItemType    string    `json:"itemType"`
	ProgressPct int       `json:"progressPct" gorm:"default:0"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *NutritionProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ToggleNutritionItemRequest struct {
	ID      uuid.UUID `json:"id" validate:"required"`
	Checked bool      `json:"checked"`
}

type UpdateNutritionProgressRequest struct {
	EntryDate string    `json:"entryDate" validate:"required"`
	ItemID    uuid.UUID `json:"itemId" validate:"required"`
	Progress  int       `json:"progress"`
}
