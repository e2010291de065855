package handlers

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/neri/neri-api/internal/activity"
	"github.com/neri/neri-api/internal/database"
	"github.com/neri/neri-api/internal/middleware"
	"github.com/neri/neri-api/internal/models"
)

func GetProfessionTasks(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var tasks []models.ProfessionTask
	err := database.DB.Where("user_id = ?", userID).
		Order("is_completed ASC, created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load tasks",
		})
	}
	return c.JSON(tasks)
}

func AddProfessionTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.AddProfessionTaskRequest
	if err := c.BodyParser(&req); err != nil || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}
	taskDate := req.Date
	if taskDate == "" {
		taskDate = time.Now().Format("2006-01-02")
	}

	task := models.ProfessionTask{UserID: userID, Title: req.Title, TaskDate: taskDate}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		_, err := activity.Recalculate(tx, userID, taskDate)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add task",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func ToggleProfessionTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.ToggleProfessionTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var task models.ProfessionTask
	if err := database.DB.Where("id = ? AND user_id = ?", req.ID, userID).First(&task).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Task not found",
		})
	}

	var done, total int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&task).Update("is_completed", req.Completed).Error; err != nil {
			return err
		}
		if _, err := activity.Recalculate(tx, userID, task.TaskDate); err != nil {
			return err
		}

		// Lifetime counters, kept alongside the per-day summaries.
		if err := tx.Model(&models.ProfessionTask{}).
			Where("user_id = ? AND is_completed = ?", userID, true).
			Count(&done).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ProfessionTask{}).
			Where("user_id = ?", userID).
			Count(&total).Error; err != nil {
			return err
		}
		return tx.Model(&models.ProfessionStats{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{"completed_count": done, "target_count": total}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle task",
		})
	}

	lifetimePct := 0
	if total > 0 {
		lifetimePct = int(math.Round(float64(done) / float64(total) * 100))
	}
	return c.JSON(fiber.Map{"done": done, "total": total, "pct": lifetimePct})
}

func EditProfessionTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.EditProfessionTaskRequest
	if err := c.BodyParser(&req); err != nil || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	res := database.DB.Model(&models.ProfessionTask{}).
		Where("id = ? AND user_id = ?", req.ID, userID).
		Update("title", req.Title)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to edit task",
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Task not found",
		})
	}
	return c.JSON(fiber.Map{"status": "success"})
}

func DeleteProfessionTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var task models.ProfessionTask
	if err := database.DB.Where("id = ? AND user_id = ?", req.ID, userID).First(&task).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Task not found",
		})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&task).Error; err != nil {
			return err
		}
		_, err := activity.Recalculate(tx, userID, task.TaskDate)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete task",
		})
	}
	return c.JSON(fiber.Map{"status": "success"})
}
