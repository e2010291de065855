package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neri/neri-api/internal/activity"
	"github.com/neri/neri-api/internal/database"
	"github.com/neri/neri-api/internal/middleware"
	"github.com/neri/neri-api/internal/models"
	"github.com/neri/neri-api/internal/nutrition"
)

// GetPhysicalDay returns today's physical page data: the daily log row
// (created on first view), the computed targets, and the checklist.
// The checklist is generated once per day from the seeded generator;
// older checklists that predate workout items get them appended once.
func GetPhysicalDay(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	today := time.Now().Format("2006-01-02")

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var daily models.DailyPhysical
	err := database.DB.Where("user_id = ? AND entry_date = ?", userID, today).First(&daily).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		daily = models.DailyPhysical{UserID: userID, EntryDate: today}
		err = database.DB.Create(&daily).Error
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load daily log",
		})
	}

	var targets *nutrition.Targets
	if user.HeightCm != nil && user.WeightKg != nil {
		targets = nutrition.ComputeTargets(*user.HeightCm, *user.WeightKg)
	}

	checklist, err := ensureChecklist(database.DB, userID, today, targets)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build checklist",
		})
	}

	return c.JSON(fiber.Map{
		"daily":     daily,
		"targets":   targets,
		"checklist": checklist,
	})
}

// ensureChecklist loads the stored checklist for (user, date),
// generating it on first access and backfilling workout items into
// checklists created before workouts existed.
func ensureChecklist(db *gorm.DB, userID uuid.UUID, date string, targets *nutrition.Targets) ([]models.NutritionItem, error) {
	var items []models.NutritionItem
	if err := db.Where("user_id = ? AND entry_date = ?", userID, date).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	if len(items) == 0 {
		generated := nutrition.BuildChecklist(targets, date)
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, it := range generated {
				row := models.NutritionItem{
					UserID:    userID,
					EntryDate: date,
					ItemLabel: it.Label,
					ItemType:  it.Type,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				items = append(items, row)
			}
			_, err := activity.Recalculate(tx, userID, date)
			return err
		})
		if err != nil {
			return nil, err
		}
		return items, nil
	}

	hasWorkouts := false
	for _, it := range items {
		if it.ItemType == nutrition.TypeWorkout {
			hasWorkouts = true
			break
		}
	}
	if !hasWorkouts {
		generated := nutrition.BuildChecklist(targets, date)
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, it := range generated {
				if it.Type != nutrition.TypeWorkout {
					continue
				}
				row := models.NutritionItem{
					UserID:    userID,
					EntryDate: date,
					ItemLabel: it.Label,
					ItemType:  it.Type,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				items = append(items, row)
			}
			_, err := activity.Recalculate(tx, userID, date)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return items, nil
}

func ToggleNutritionItem(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.ToggleNutritionItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var item models.NutritionItem
	if err := database.DB.Where("id = ? AND user_id = ?", req.ID, userID).First(&item).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Checklist item not found",
		})
	}

	var stats activity.Stats
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&item).Update("is_checked", req.Checked).Error; err != nil {
			return err
		}
		var err error
		stats, err = activity.Recalculate(tx, userID, item.EntryDate)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle item",
		})
	}
	return c.JSON(fiber.Map{"item": item, "percentage": stats.PhysicalPct})
}

// UpdateDailyPhysical stores water intake / food log for today.
func UpdateDailyPhysical(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	today := time.Now().Format("2006-01-02")

	var req models.UpdateDailyPhysicalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updates := map[string]interface{}{}
	if req.Water != nil {
		updates["water_intake_liters"] = *req.Water
	}
	if req.FoodLog != nil {
		updates["food_log"] = *req.FoodLog
	}
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nothing to update",
		})
	}

	res := database.DB.Model(&models.DailyPhysical{}).
		Where("user_id = ? AND entry_date = ?", userID, today).
		Updates(updates)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update daily log",
		})
	}
	if res.RowsAffected == 0 {
		daily := models.DailyPhysical{UserID: userID, EntryDate: today}
		if req.Water != nil {
			daily.WaterIntakeLiters = *req.Water
		}
		daily.FoodLog = req.FoodLog
		if err := database.DB.Create(&daily).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update daily log",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "success"})
}

// UpdateNutritionProgress upserts a per-item progress percentage.
func UpdateNutritionProgress(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.UpdateNutritionProgressRequest
	if err := c.BodyParser(&req); err != nil || req.EntryDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "entryDate and itemId are required",
		})
	}

	var item models.NutritionItem
	err := database.DB.Where("id = ? AND user_id = ? AND entry_date = ?", req.ItemID, userID, req.EntryDate).
		First(&item).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Checklist item not found",
		})
	}

	var progress models.NutritionProgress
	err = database.DB.Where("user_id = ? AND entry_date = ? AND item_id = ?", userID, req.EntryDate, req.ItemID).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = models.NutritionProgress{
			UserID:      userID,
			EntryDate:   req.EntryDate,
			ItemID:      item.ID,
			ItemLabel:   item.ItemLabel,
			ItemType:    item.ItemType,
			ProgressPct: req.Progress,
		}
		err = database.DB.Create(&progress).Error
	} else if err == nil {
		err = database.DB.Model(&progress).Update("progress_pct", req.Progress).Error
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update progress",
		})
	}
	return c.JSON(fiber.Map{"status": "success", "progress": req.Progress})
}

var defaultActivities = []models.PhysicalActivity{
	{ActivityName: "Jog", ActivityCategory: "Cardio", Description: "Light jogging", DurationMinutes: 10},
	{ActivityName: "Cycle", ActivityCategory: "Cardio", Description: "Cycling", DurationMinutes: 20},
	{ActivityName: "Skipping", ActivityCategory: "Cardio", Description: "Jump rope", DurationMinutes: 10},
	{ActivityName: "Running", ActivityCategory: "Cardio", Description: "Fast running", DurationMinutes: 20},
	{ActivityName: "Swimming", ActivityCategory: "Cardio", Description: "Swimming", DurationMinutes: 30},
	{ActivityName: "Push-ups", ActivityCategory: "Strength", Description: "Upper body strength", DurationMinutes: 15},
	{ActivityName: "Squats", ActivityCategory: "Strength", Description: "Lower body strength", DurationMinutes: 15},
	{ActivityName: "Plank", ActivityCategory: "Strength", Description: "Core strength", DurationMinutes: 10},
	{ActivityName: "Yoga", ActivityCategory: "Flexibility", Description: "Yoga session", DurationMinutes: 30},
	{ActivityName: "Stretching", ActivityCategory: "Flexibility", Description: "Stretching routine", DurationMinutes: 15},
	{ActivityName: "Walking", ActivityCategory: "Cardio", Description: "Brisk walking", DurationMinutes: 30},
	{ActivityName: "Gym Workout", ActivityCategory: "Strength", Description: "Full body gym session", DurationMinutes: 60},
}

func GetPhysicalActivities(c *fiber.Ctx) error {
	var activities []models.PhysicalActivity
	if err := database.DB.Order("activity_category").Find(&activities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load activities",
		})
	}
	return c.JSON(activities)
}

// InitPhysicalActivities seeds the default catalog; existing names are
// left untouched, so the call is idempotent.
func InitPhysicalActivities(c *fiber.Ctx) error {
	for _, a := range defaultActivities {
		row := a
		var existing models.PhysicalActivity
		if err := database.DB.Where("activity_name = ?", row.ActivityName).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&row).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to seed activities",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "success"})
}
