package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neri/neri-api/internal/handlers"
	"github.com/neri/neri-api/internal/middleware"
	"github.com/neri/neri-api/internal/quotes"
)

func Setup(app *fiber.App, quoteURL string) {
	if quoteURL != "" {
		handlers.QuoteService = quotes.NewWithURL(quoteURL)
	} else {
		handlers.QuoteService = quotes.New()
	}

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Put("/profile", handlers.UpdateProfile)

	protected.Get("/overview", handlers.GetOverview)

	tasks := protected.Group("/tasks")
	tasks.Get("/", handlers.GetTasks)
	tasks.Post("/add", handlers.AddTask)
	tasks.Post("/toggle", handlers.ToggleTask)

	prof := protected.Group("/profession/tasks")
	prof.Get("/", handlers.GetProfessionTasks)
	prof.Post("/add", handlers.AddProfessionTask)
	prof.Post("/toggle", handlers.ToggleProfessionTask)
	prof.Post("/edit", handlers.EditProfessionTask)
	prof.Post("/delete", handlers.DeleteProfessionTask)

	reminders := protected.Group("/reminders")
	reminders.Post("/add", handlers.AddReminder)
	reminders.Post("/toggle", handlers.ToggleReminder)
	reminders.Post("/delete", handlers.DeleteReminder)

	goals := protected.Group("/physical-goals")
	goals.Post("/add", handlers.AddPhysicalGoal)
	goals.Post("/toggle", handlers.TogglePhysicalGoal)
	goals.Post("/delete", handlers.DeletePhysicalGoal)

	physical := protected.Group("/physical")
	physical.Get("/day", handlers.GetPhysicalDay)
	physical.Post("/update", handlers.UpdateDailyPhysical)

	protected.Post("/nutrition/checklist/toggle", handlers.ToggleNutritionItem)
	protected.Post("/nutrition-progress/update", handlers.UpdateNutritionProgress)

	protected.Get("/physical-activities", handlers.GetPhysicalActivities)
	protected.Post("/physical-activities/init", handlers.InitPhysicalActivities)

	calendar := protected.Group("/calendar")
	calendar.Get("/month", handlers.GetCalendarMonth)
	calendar.Get("/day", handlers.GetCalendarDay)

	protected.Get("/date-view", handlers.GetDateView)
	protected.Get("/check-edit-allowed", handlers.CheckEditAllowed)
	protected.Post("/activity/note/update", handlers.UpdateDayNote)
}
