package activity

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neri/neri-api/internal/models"
)

// Stats is the result of a daily recalculation, returned so callers can
// use fresh numbers without a re-read.
type Stats struct {
	PhysicalPct     int `json:"physicalPct"`
	ProfessionPct   int `json:"professionPct"`
	PhysicalDone    int `json:"physicalDone"`
	PhysicalTotal   int `json:"physicalTotal"`
	ProfessionDone  int `json:"professionDone"`
	ProfessionTotal int `json:"professionTotal"`
	Combined        int `json:"combined"`
}

func pct(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// LiveStats computes the day's completion numbers across all item
// tables without writing anything. Physical counts nutrition items,
// manual tasks, dated reminders and goal counts; profession counts only
// profession tasks dated that day.
func LiveStats(db *gorm.DB, userID uuid.UUID, date string) (Stats, error) {
	var stats Stats

	var nutrition []models.NutritionItem
	if err := db.Where("user_id = ? AND entry_date = ?", userID, date).Find(&nutrition).Error; err != nil {
		return stats, err
	}
	var tasks []models.Task
	if err := db.Where("user_id = ? AND task_date = ?", userID, date).Find(&tasks).Error; err != nil {
		return stats, err
	}
	var reminders []models.Reminder
	if err := db.Where("user_id = ? AND reminder_date = ?", userID, date).Find(&reminders).Error; err != nil {
		return stats, err
	}
	var goals []models.PhysicalGoal
	if err := db.Where("user_id = ? AND goal_date = ?", userID, date).Find(&goals).Error; err != nil {
		return stats, err
	}

	physTotal := len(nutrition) + len(tasks) + len(reminders)
	physDone := 0
	for _, n := range nutrition {
		if n.IsChecked {
			physDone++
		}
	}
	for _, t := range tasks {
		if t.IsCompleted {
			physDone++
		}
	}
	for _, r := range reminders {
		if r.IsDone {
			physDone++
		}
	}
	for _, g := range goals {
		physTotal += g.TotalCount
		physDone += g.CompletedCount
	}

	var profTasks []models.ProfessionTask
	if err := db.Where("user_id = ? AND task_date = ?", userID, date).Find(&profTasks).Error; err != nil {
		return stats, err
	}
	profTotal := len(profTasks)
	profDone := 0
	for _, t := range profTasks {
		if t.IsCompleted {
			profDone++
		}
	}

	stats = Stats{
		PhysicalPct:     pct(physDone, physTotal),
		ProfessionPct:   pct(profDone, profTotal),
		PhysicalDone:    physDone,
		PhysicalTotal:   physTotal,
		ProfessionDone:  profDone,
		ProfessionTotal: profTotal,
	}
	stats.Combined = int(math.Round(float64(stats.PhysicalPct+stats.ProfessionPct) / 2))
	return stats, nil
}

// Recalculate recomputes the daily summary for (user, date) and upserts
// the daily_activity row, preserving its day note. Calling it twice
// with unchanged data stores identical values. It is the single
// consistency point: every mutation to tasks, goals, reminders or
// checklist items must run it, on the same handle, for the affected
// date.
func Recalculate(db *gorm.DB, userID uuid.UUID, date string) (Stats, error) {
	stats, err := LiveStats(db, userID, date)
	if err != nil {
		return stats, err
	}
	points := stats.PhysicalDone + stats.ProfessionDone

	var existing models.DailyActivity
	err = db.Where("user_id = ? AND entry_date = ?", userID, date).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"physical_completion_pct":   stats.PhysicalPct,
			"profession_completion_pct": stats.ProfessionPct,
			"physical_points":           stats.PhysicalDone,
			"profession_points":         stats.ProfessionDone,
			"total_points":              points,
			"physical_total_count":      stats.PhysicalTotal,
			"profession_total_count":    stats.ProfessionTotal,
		}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return stats, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := models.DailyActivity{
			UserID:                  userID,
			EntryDate:               date,
			PhysicalCompletionPct:   stats.PhysicalPct,
			ProfessionCompletionPct: stats.ProfessionPct,
			PhysicalPoints:          stats.PhysicalDone,
			ProfessionPoints:        stats.ProfessionDone,
			TotalPoints:             points,
			PhysicalTotalCount:      stats.PhysicalTotal,
			ProfessionTotalCount:    stats.ProfessionTotal,
		}
		if err := db.Create(&row).Error; err != nil {
			return stats, err
		}
	default:
		return stats, err
	}

	return stats, nil
}
