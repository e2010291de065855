package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyActivity is the cached per-day summary. Everything except DayNote
// is derived and recomputable from the item tables.
type DailyActivity struct {
	ID                      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID                  uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex:idx_activity_user_date;not null"`
	EntryDate               string    `json:"entryDate" gorm:"size:10;uniqueIndex:idx_activity_user_date;not null"`
	PhysicalCompletionPct   int       `json:"physicalCompletionPct" gorm:"default:0"`
	ProfessionCompletionPct int       `json:"professionCompletionPct" gorm:"default:0"`
	PhysicalPoints          int       `json:"physicalPoints" gorm:"default:0"`
	ProfessionPoints        int       `json:"professionPoints" gorm:"default:0"`
	TotalPoints             int       `json:"totalPoints" gorm:"default:0"`
	PhysicalTotalCount      int       `json:"physicalTotalCount" gorm:"default:0"`
	ProfessionTotalCount    int       `json:"professionTotalCount" gorm:"default:0"`
	DayNote                 *string   `json:"dayNote"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

func (d *DailyActivity) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DailyPhysical holds the free-form per-day physical log (water, food).
type DailyPhysical struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex:idx_physical_user_date;not null"`
	EntryDate         string    `json:"entryDate" gorm:"size:10;uniqueIndex:idx_physical_user_date;not null"`
	WaterIntakeLiters float64   `json:"waterIntakeLiters" gorm:"default:0"`
	FoodLog           *string   `json:"foodLog"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (d *DailyPhysical) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

type UpdateDayNoteRequest struct {
	Date string `json:"date" validate:"required"`
	Note string `json:"note"`
}

type UpdateDailyPhysicalRequest struct {
	Water   *float64 `json:"water"`
	FoodLog *string  `json:"foodLog"`
}
