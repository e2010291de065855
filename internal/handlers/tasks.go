package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/neri/neri-api/internal/activity"
	"github.com/neri/neri-api/internal/database"
	"github.com/neri/neri-api/internal/middleware"
	"github.com/neri/neri-api/internal/models"
)

func GetTasks(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date is required",
		})
	}

	var tasks []models.Task
	if err := database.DB.Where("user_id = ? AND task_date = ?", userID, date).Find(&tasks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load tasks",
		})
	}
	return c.JSON(tasks)
}

func AddTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.AddTaskRequest
	if err := c.BodyParser(&req); err != nil || req.Title == "" || req.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title and date are required",
		})
	}

	task := models.Task{UserID: userID, Title: req.Title, TaskDate: req.Date}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		_, err := activity.Recalculate(tx, userID, req.Date)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add task",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func ToggleTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.ToggleTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var task models.Task
	if err := database.DB.Where("id = ? AND user_id = ?", req.ID, userID).First(&task).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Task not found",
		})
	}

	var stats activity.Stats
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&task).Update("is_completed", req.Completed).Error; err != nil {
			return err
		}
		var err error
		stats, err = activity.Recalculate(tx, userID, task.TaskDate)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle task",
		})
	}
	return c.JSON(fiber.Map{"task": task, "stats": stats})
}
