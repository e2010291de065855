package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/neri/neri-api/internal/activity"
	"github.com/neri/neri-api/internal/database"
	"github.com/neri/neri-api/internal/middleware"
	"github.com/neri/neri-api/internal/models"
)

func AddPhysicalGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.AddPhysicalGoalRequest
	if err := c.BodyParser(&req); err != nil || req.GoalTitle == "" || req.GoalDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "goalTitle and goalDate are required",
		})
	}

	goal := models.PhysicalGoal{
		UserID:     userID,
		GoalTitle:  req.GoalTitle,
		GoalDate:   req.GoalDate,
		TotalCount: 1,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&goal).Error; err != nil {
			return err
		}
		_, err := activity.Recalculate(tx, userID, req.GoalDate)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add goal",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func TogglePhysicalGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.TogglePhysicalGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var goal models.PhysicalGoal
	if err := database.DB.Where("id = ? AND user_id = ?", req.ID, userID).First(&goal).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	completed := 0
	if req.Completed {
		completed = 1
	}

	var stats activity.Stats
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&goal).Update("completed_count", completed).Error; err != nil {
			return err
		}
		var err error
		stats, err = activity.Recalculate(tx, userID, goal.GoalDate)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle goal",
		})
	}
	return c.JSON(fiber.Map{"goal": goal, "stats": stats})
}

func DeletePhysicalGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var goal models.PhysicalGoal
	if err := database.DB.Where("id = ? AND user_id = ?", req.ID, userID).First(&goal).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&goal).Error; err != nil {
			return err
		}
		_, err := activity.Recalculate(tx, userID, goal.GoalDate)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete goal",
		})
	}
	return c.JSON(fiber.Map{"status": "success"})
}
