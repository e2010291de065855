package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/neri/neri-api/internal/activity"
	"github.com/neri/neri-api/internal/database"
	"github.com/neri/neri-api/internal/middleware"
	"github.com/neri/neri-api/internal/models"
	"github.com/neri/neri-api/internal/quotes"
)

// QuoteService is wired in routes.Setup.
var QuoteService *quotes.Service

// GetOverview returns today's dashboard: recalculated stats, the
// day's (and undated) reminders, and the daily quote.
func GetOverview(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	now := time.Now()
	today := now.Format("2006-01-02")

	// Recalculate through the central path so the dashboard and the
	// stored summary can never disagree.
	stats, err := activity.Recalculate(database.DB, userID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute daily stats",
		})
	}

	var reminders []models.Reminder
	err = database.DB.
		Where("user_id = ? AND (reminder_date = ? OR reminder_date IS NULL)", userID, today).
		Order("is_done ASC, created_at DESC").
		Find(&reminders).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load reminders",
		})
	}

	return c.JSON(fiber.Map{
		"date":          today,
		"stats":         stats,
		"combinedScore": stats.Combined,
		"reminders":     reminders,
		"quote":         QuoteService.Daily(now),
	})
}
