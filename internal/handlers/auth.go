package handlers

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/neri/neri-api/internal/database"
	"github.com/neri/neri-api/internal/middleware"
	"github.com/neri/neri-api/internal/models"
	"github.com/neri/neri-api/internal/nutrition"
)

func Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Username == "" || len(req.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and a password of at least 6 characters are required",
		})
	}

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Username already taken",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create account",
		})
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hashed),
	}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		// Every account carries a lifetime profession-stats row.
		return tx.Create(&models.ProfessionStats{UserID: user.ID}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create account",
		})
	}

	token, err := middleware.GenerateToken(user.ID, user.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.AuthResponse{Token: token, User: user})
}

func Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token, err := middleware.GenerateToken(user.ID, user.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue token",
		})
	}

	return c.JSON(models.AuthResponse{Token: token, User: user})
}

func GetMe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(user)
}

// UpdateProfile updates height/weight/blood group, recomputes BMI, and
// invalidates today's checklist when the measurements change so it
// regenerates with the new targets on next view.
func UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if req.Height != nil {
		user.HeightCm = req.Height
	}
	if req.Weight != nil {
		user.WeightKg = req.Weight
	}
	if req.BloodGroup != nil {
		user.BloodGroup = req.BloodGroup
	}

	user.BMI = nil
	if user.HeightCm != nil && user.WeightKg != nil && *user.HeightCm > 0 && *user.WeightKg > 0 {
		h := *user.HeightCm / 100
		bmi := math.Round(*user.WeightKg/(h*h)*10) / 10
		user.BMI = &bmi
	}

	measurementsChanged := req.Height != nil || req.Weight != nil
	today := time.Now().Format("2006-01-02")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		if measurementsChanged {
			return tx.Where("user_id = ? AND entry_date = ?", userID, today).
				Delete(&models.NutritionItem{}).Error
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	resp := fiber.Map{"user": user}
	if user.BMI != nil {
		resp["bmi"] = *user.BMI
		resp["bmiStatus"] = nutrition.ClassifyBMI(*user.BMI)
	}
	return c.JSON(resp)
}
