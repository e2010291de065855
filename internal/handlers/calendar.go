package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/neri/neri-api/internal/activity"
	"github.com/neri/neri-api/internal/database"
	"github.com/neri/neri-api/internal/middleware"
	"github.com/neri/neri-api/internal/models"
)

func GetCalendarMonth(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	now := time.Now()

	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid year",
		})
	}
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
		})
	}

	days, err := activity.Month(database.DB, userID, year, month, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build calendar",
		})
	}
	return c.JSON(days)
}

// GetCalendarDay returns the stored summary row (if any) and the manual
// tasks for one date.
func GetCalendarDay(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date is required",
		})
	}

	var summary *models.DailyActivity
	var row models.DailyActivity
	err := database.DB.Where("user_id = ? AND entry_date = ?", userID, date).First(&row).Error
	if err == nil {
		summary = &row
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load day",
		})
	}

	var tasks []models.Task
	if err := database.DB.Where("user_id = ? AND task_date = ?", userID, date).Find(&tasks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load day",
		})
	}

	return c.JSON(fiber.Map{"activity": summary, "tasks": tasks})
}

// GetDateView recomputes the full picture for a date on the fly without
// persisting anything, so past days can be inspected safely.
func GetDateView(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date is required",
		})
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	stats, err := activity.LiveStats(database.DB, userID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute stats",
		})
	}

	var checklist []models.NutritionItem
	database.DB.Where("user_id = ? AND entry_date = ?", userID, date).Find(&checklist)
	var goals []models.PhysicalGoal
	database.DB.Where("user_id = ? AND goal_date = ?", userID, date).Find(&goals)
	var reminders []models.Reminder
	database.DB.Where("user_id = ? AND reminder_date = ?", userID, date).Find(&reminders)
	var tasks []models.Task
	database.DB.Where("user_id = ? AND task_date = ?", userID, date).Find(&tasks)
	var profTasks []models.ProfessionTask
	database.DB.Where("user_id = ? AND task_date = ?", userID, date).Find(&profTasks)

	var dayNote *string
	var act models.DailyActivity
	if err := database.DB.Where("user_id = ? AND entry_date = ?", userID, date).First(&act).Error; err == nil {
		dayNote = act.DayNote
	}

	return c.JSON(fiber.Map{
		"date":     date,
		"combined": stats.Combined,
		"overview": fiber.Map{
			"physicalCompletionPct":   stats.PhysicalPct,
			"professionCompletionPct": stats.ProfessionPct,
			"dayNote":                 dayNote,
		},
		"physical": fiber.Map{
			"percentage": stats.PhysicalPct,
			"physDone":   stats.PhysicalDone,
			"physTotal":  stats.PhysicalTotal,
			"checklist":  checklist,
			"goals":      goals,
			"reminders":  reminders,
			"tasksList":  tasks,
		},
		"profession": fiber.Map{
			"tasksTotal": stats.ProfessionTotal,
			"tasksDone":  stats.ProfessionDone,
			"percentage": stats.ProfessionPct,
			"tasksList":  profTasks,
		},
		"user": fiber.Map{
			"height":     user.HeightCm,
			"weight":     user.WeightKg,
			"bloodGroup": user.BloodGroup,
			"bmi":        user.BMI,
		},
	})
}

// UpdateDayNote upserts the free-text note on the summary row. The note
// is the only primary data the summary holds, so an empty row is
// created when needed and recalculation must never clobber it.
func UpdateDayNote(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.UpdateDayNoteRequest
	if err := c.BodyParser(&req); err != nil || req.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date is required",
		})
	}
	note := strings.TrimSpace(req.Note)

	var existing models.DailyActivity
	err := database.DB.Where("user_id = ? AND entry_date = ?", userID, req.Date).First(&existing).Error
	switch {
	case err == nil:
		err = database.DB.Model(&existing).Update("day_note", note).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := models.DailyActivity{UserID: userID, EntryDate: req.Date, DayNote: &note}
		err = database.DB.Create(&row).Error
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save note",
		})
	}
	return c.JSON(fiber.Map{"status": "success"})
}

// CheckEditAllowed reports whether a date accepts edits: today and the
// future do, past dates are read-only.
func CheckEditAllowed(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date is required",
		})
	}
	target, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date",
		})
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	canEdit := !target.Before(today)

	return c.JSON(fiber.Map{
		"canEdit":  canEdit,
		"canAdd":   canEdit,
		"isPast":   target.Before(today),
		"isToday":  target.Equal(today),
		"isFuture": target.After(today),
	})
}
