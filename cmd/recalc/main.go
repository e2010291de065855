// Command recalc rebuilds every daily summary from the item tables.
// Useful after restoring a database or changing the scoring rules.
package main

import (
	"log"
	"sort"

	"github.com/joho/godotenv"

	"github.com/neri/neri-api/internal/activity"
	"github.com/neri/neri-api/internal/config"
	"github.com/neri/neri-api/internal/database"
	"github.com/neri/neri-api/internal/models"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("database connect: %v", err)
	}
	db := database.DB

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		log.Fatalf("load users: %v", err)
	}

	for _, user := range users {
		dates := map[string]struct{}{}
		collect := func(model interface{}, col string) {
			var vals []string
			db.Model(model).Where("user_id = ?", user.ID).Distinct().Pluck(col, &vals)
			for _, v := range vals {
				if v != "" {
					dates[v] = struct{}{}
				}
			}
		}
		collect(&models.Task{}, "task_date")
		collect(&models.ProfessionTask{}, "task_date")
		collect(&models.Reminder{}, "reminder_date")
		collect(&models.PhysicalGoal{}, "goal_date")
		collect(&models.NutritionItem{}, "entry_date")
		collect(&models.DailyActivity{}, "entry_date")

		sorted := make([]string, 0, len(dates))
		for d := range dates {
			sorted = append(sorted, d)
		}
		sort.Strings(sorted)

		for _, date := range sorted {
			if _, err := activity.Recalculate(db, user.ID, date); err != nil {
				log.Fatalf("recalculate %s %s: %v", user.Username, date, err)
			}
			log.Printf("recalculated %s %s", user.Username, date)
		}
	}

	log.Printf("done: %d users", len(users))
}
