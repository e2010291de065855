package activity

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neri/neri-api/internal/models"
)

// DaySummary is the month-view projection for one date.
type DaySummary struct {
	PhysicalCompletionPct   int     `json:"physicalCompletionPct"`
	ProfessionCompletionPct int     `json:"professionCompletionPct"`
	TotalPoints             int     `json:"totalPoints"`
	HasGoals                bool    `json:"hasGoals,omitempty"`
	HasReminders            bool    `json:"hasReminders,omitempty"`
	OverallScore            int     `json:"overallScore"`
	Keyword                 string  `json:"keyword,omitempty"`
	DayNote                 *string `json:"dayNote,omitempty"`
}

type dateCount struct {
	Date  string
	Count int
}

// Month builds the calendar view for one month. Dates with a stored
// summary are read directly. Dates that only have goals or reminders
// are recomputed (and persisted) when the date is today or later; past
// dates with no summary report zero activity and no row is created, so
// unrecorded history stays frozen.
func Month(db *gorm.DB, userID uuid.UUID, year, month int, today time.Time) (map[string]DaySummary, error) {
	prefix := fmt.Sprintf("%04d-%02d-%%", year, month)

	var summaries []models.DailyActivity
	if err := db.Where("user_id = ? AND entry_date LIKE ?", userID, prefix).Find(&summaries).Error; err != nil {
		return nil, err
	}

	goalDates, err := countByDate(db, &models.PhysicalGoal{}, "goal_date", userID, prefix)
	if err != nil {
		return nil, err
	}
	reminderDates, err := countByDate(db, &models.Reminder{}, "reminder_date", userID, prefix)
	if err != nil {
		return nil, err
	}
	profDates, err := countByDate(db, &models.ProfessionTask{}, "task_date", userID, prefix)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*models.DailyActivity, len(summaries))
	dates := make(map[string]struct{})
	for i := range summaries {
		byDate[summaries[i].EntryDate] = &summaries[i]
		dates[summaries[i].EntryDate] = struct{}{}
	}
	for d := range goalDates {
		dates[d] = struct{}{}
	}
	for d := range reminderDates {
		dates[d] = struct{}{}
	}
	for d := range profDates {
		dates[d] = struct{}{}
	}

	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	out := make(map[string]DaySummary, len(dates))
	for dateStr := range dates {
		hasGoals := goalDates[dateStr] > 0
		hasReminders := reminderDates[dateStr] > 0

		var day DaySummary
		act := byDate[dateStr]

		if act == nil && (hasGoals || hasReminders) {
			// Self-heal missing summaries for today and the future only;
			// never fabricate a record for a past date.
			if d, perr := time.Parse("2006-01-02", dateStr); perr == nil && !d.Before(todayMidnight) {
				stats, rerr := Recalculate(db, userID, dateStr)
				if rerr != nil {
					return nil, rerr
				}
				day.PhysicalCompletionPct = stats.PhysicalPct
				day.ProfessionCompletionPct = stats.ProfessionPct
				day.TotalPoints = stats.PhysicalDone + stats.ProfessionDone
			}
		} else if act != nil {
			day.PhysicalCompletionPct = act.PhysicalCompletionPct
			day.ProfessionCompletionPct = act.ProfessionCompletionPct
			day.TotalPoints = act.TotalPoints
			day.DayNote = act.DayNote
		}

		day.HasGoals = hasGoals
		day.HasReminders = hasReminders
		day.OverallScore = int(math.Round(float64(day.PhysicalCompletionPct+day.ProfessionCompletionPct) / 2))
		day.Keyword = keyword(db, userID, dateStr, act, hasGoals, hasReminders)

		out[dateStr] = day
	}

	return out, nil
}

func countByDate(db *gorm.DB, model interface{}, col string, userID uuid.UUID, prefix string) (map[string]int, error) {
	var rows []dateCount
	err := db.Model(model).
		Select(col+" as date, COUNT(*) as count").
		Where("user_id = ? AND "+col+" LIKE ?", userID, prefix).
		Group(col).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Date] = r.Count
	}
	return out, nil
}

// keyword picks a short calendar-cell label: the day note first, else
// the first word of a reminder or goal title for that date.
func keyword(db *gorm.DB, userID uuid.UUID, dateStr string, act *models.DailyActivity, hasGoals, hasReminders bool) string {
	if act != nil && act.DayNote != nil && *act.DayNote != "" {
		return truncate(*act.DayNote, 15)
	}
	if !hasGoals && !hasReminders {
		return ""
	}

	title := ""
	var rem models.Reminder
	if err := db.Where("user_id = ? AND reminder_date = ?", userID, dateStr).First(&rem).Error; err == nil {
		title = rem.Title
	} else {
		var goal models.PhysicalGoal
		if err := db.Where("user_id = ? AND goal_date = ?", userID, dateStr).First(&goal).Error; err == nil {
			title = goal.GoalTitle
		}
	}
	if fields := strings.Fields(title); len(fields) > 0 {
		return truncate(fields[0], 10)
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
