package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/neri/neri-api/internal/activity"
	"github.com/neri/neri-api/internal/database"
	"github.com/neri/neri-api/internal/middleware"
	"github.com/neri/neri-api/internal/models"
)

func AddReminder(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.AddReminderRequest
	if err := c.BodyParser(&req); err != nil || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	reminder := models.Reminder{UserID: userID, Title: req.Title, ReminderDate: req.Date}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reminder).Error; err != nil {
			return err
		}
		if req.Date != nil && *req.Date != "" {
			_, err := activity.Recalculate(tx, userID, *req.Date)
			return err
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add reminder",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(reminder)
}

func ToggleReminder(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.ToggleReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var reminder models.Reminder
	if err := database.DB.Where("id = ? AND user_id = ?", req.ID, userID).First(&reminder).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reminder not found",
		})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&reminder).Update("is_done", req.Done).Error; err != nil {
			return err
		}
		if reminder.ReminderDate != nil && *reminder.ReminderDate != "" {
			_, err := activity.Recalculate(tx, userID, *reminder.ReminderDate)
			return err
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle reminder",
		})
	}
	return c.JSON(reminder)
}

func DeleteReminder(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var reminder models.Reminder
	if err := database.DB.Where("id = ? AND user_id = ?", req.ID, userID).First(&reminder).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reminder not found",
		})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&reminder).Error; err != nil {
			return err
		}
		if reminder.ReminderDate != nil && *reminder.ReminderDate != "" {
			_, err := activity.Recalculate(tx, userID, *reminder.ReminderDate)
			return err
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete reminder",
		})
	}
	return c.JSON(fiber.Map{"status": "success"})
}
