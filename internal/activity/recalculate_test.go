package activity

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/neri/neri-api/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.ProfessionTask{},
		&models.Reminder{},
		&models.PhysicalGoal{},
		&models.NutritionItem{},
		&models.DailyActivity{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	user := models.User{Username: "tester", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user.ID
}

func loadSummary(t *testing.T, db *gorm.DB, userID uuid.UUID, date string) models.DailyActivity {
	t.Helper()
	var row models.DailyActivity
	if err := db.Where("user_id = ? AND entry_date = ?", userID, date).First(&row).Error; err != nil {
		t.Fatalf("load summary: %v", err)
	}
	return row
}

func TestRecalculateMixedSources(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	date := "2024-03-15"

	// 2 manual tasks (1 done), 1 done reminder, 13 checklist items (6 checked).
	db.Create(&models.Task{UserID: uid, Title: "walk", TaskDate: date, IsCompleted: true})
	db.Create(&models.Task{UserID: uid, Title: "stretch", TaskDate: date})
	remDate := date
	db.Create(&models.Reminder{UserID: uid, Title: "meds", ReminderDate: &remDate, IsDone: true})
	for i := 0; i < 13; i++ {
		db.Create(&models.NutritionItem{
			UserID: uid, EntryDate: date,
			ItemLabel: fmt.Sprintf("item %d", i), ItemType: "protein",
			IsChecked: i < 6,
		})
	}

	stats, err := Recalculate(db, uid, date)
	if err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	if stats.PhysicalTotal != 16 {
		t.Errorf("PhysicalTotal = %d, want 16", stats.PhysicalTotal)
	}
	if stats.PhysicalDone != 8 {
		t.Errorf("PhysicalDone = %d, want 8", stats.PhysicalDone)
	}
	if stats.PhysicalPct != 50 {
		t.Errorf("PhysicalPct = %d, want 50", stats.PhysicalPct)
	}

	row := loadSummary(t, db, uid, date)
	if row.PhysicalCompletionPct != 50 || row.PhysicalTotalCount != 16 || row.PhysicalPoints != 8 {
		t.Errorf("stored summary = pct %d total %d points %d, want 50/16/8",
			row.PhysicalCompletionPct, row.PhysicalTotalCount, row.PhysicalPoints)
	}
}

func TestRecalculateGoalsCountPartially(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	date := "2024-03-15"

	db.Create(&models.PhysicalGoal{UserID: uid, GoalTitle: "pushups", GoalDate: date, CompletedCount: 2, TotalCount: 5})

	stats, err := Recalculate(db, uid, date)
	if err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	if stats.PhysicalTotal != 5 || stats.PhysicalDone != 2 {
		t.Errorf("total/done = %d/%d, want 5/2", stats.PhysicalTotal, stats.PhysicalDone)
	}
	if stats.PhysicalPct != 40 {
		t.Errorf("PhysicalPct = %d, want 40", stats.PhysicalPct)
	}
}

func TestRecalculateEmptyDayIsZero(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)

	stats, err := Recalculate(db, uid, "2024-03-15")
	if err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	if stats.PhysicalPct != 0 || stats.ProfessionPct != 0 || stats.Combined != 0 {
		t.Errorf("empty day stats = %+v, want zeros", stats)
	}
}

func TestRecalculateIdempotent(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	date := "2024-03-15"

	db.Create(&models.Task{UserID: uid, Title: "run", TaskDate: date, IsCompleted: true})
	db.Create(&models.ProfessionTask{UserID: uid, Title: "review", TaskDate: date})

	first, err := Recalculate(db, uid, date)
	if err != nil {
		t.Fatalf("first Recalculate: %v", err)
	}
	rowFirst := loadSummary(t, db, uid, date)

	second, err := Recalculate(db, uid, date)
	if err != nil {
		t.Fatalf("second Recalculate: %v", err)
	}
	rowSecond := loadSummary(t, db, uid, date)

	if first != second {
		t.Errorf("stats changed between runs: %+v vs %+v", first, second)
	}
	if rowFirst.ID != rowSecond.ID {
		t.Errorf("second run created a new row")
	}
	if rowFirst.PhysicalCompletionPct != rowSecond.PhysicalCompletionPct ||
		rowFirst.TotalPoints != rowSecond.TotalPoints ||
		rowFirst.PhysicalTotalCount != rowSecond.PhysicalTotalCount {
		t.Errorf("stored values changed between runs: %+v vs %+v", rowFirst, rowSecond)
	}
}

func TestRecalculateToggleRoundTrip(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	date := "2024-03-15"

	task := models.Task{UserID: uid, Title: "walk", TaskDate: date}
	db.Create(&task)
	db.Create(&models.Task{UserID: uid, Title: "stretch", TaskDate: date, IsCompleted: true})

	before, err := Recalculate(db, uid, date)
	if err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	db.Model(&task).Update("is_completed", true)
	after, err := Recalculate(db, uid, date)
	if err != nil {
		t.Fatalf("Recalculate after toggle: %v", err)
	}
	if after.PhysicalDone != before.PhysicalDone+1 {
		t.Errorf("PhysicalDone = %d, want %d", after.PhysicalDone, before.PhysicalDone+1)
	}
	if after.PhysicalPct != 100 {
		t.Errorf("PhysicalPct = %d, want 100", after.PhysicalPct)
	}

	db.Model(&task).Update("is_completed", false)
	restored, err := Recalculate(db, uid, date)
	if err != nil {
		t.Fatalf("Recalculate after untoggle: %v", err)
	}
	if restored != before {
		t.Errorf("untoggle did not restore stats: %+v vs %+v", restored, before)
	}
}

func TestRecalculatePercentageBounds(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	date := "2024-03-15"

	for i := 0; i < 7; i++ {
		db.Create(&models.Task{UserID: uid, Title: fmt.Sprintf("t%d", i), TaskDate: date, IsCompleted: true})
	}
	db.Create(&models.ProfessionTask{UserID: uid, Title: "p", TaskDate: date, IsCompleted: true})

	stats, err := Recalculate(db, uid, date)
	if err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	for name, v := range map[string]int{
		"PhysicalPct":   stats.PhysicalPct,
		"ProfessionPct": stats.ProfessionPct,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s = %d, out of [0,100]", name, v)
		}
	}
	if stats.PhysicalPct != 100 || stats.ProfessionPct != 100 || stats.Combined != 100 {
		t.Errorf("all-done day = %+v, want 100s", stats)
	}
}

func TestRecalculatePreservesDayNote(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	date := "2024-03-15"

	note := "leg day went well"
	db.Create(&models.DailyActivity{UserID: uid, EntryDate: date, DayNote: &note})
	db.Create(&models.Task{UserID: uid, Title: "walk", TaskDate: date, IsCompleted: true})

	if _, err := Recalculate(db, uid, date); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	row := loadSummary(t, db, uid, date)
	if row.DayNote == nil || *row.DayNote != note {
		t.Errorf("day note lost after recalculation: %v", row.DayNote)
	}
	if row.PhysicalCompletionPct != 100 {
		t.Errorf("PhysicalCompletionPct = %d, want 100", row.PhysicalCompletionPct)
	}
}

func TestRecalculateScopedToUserAndDate(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	other := models.User{Username: "other", PasswordHash: "x"}
	db.Create(&other)

	db.Create(&models.Task{UserID: uid, Title: "mine", TaskDate: "2024-03-15", IsCompleted: true})
	db.Create(&models.Task{UserID: other.ID, Title: "theirs", TaskDate: "2024-03-15"})
	db.Create(&models.Task{UserID: uid, Title: "tomorrow", TaskDate: "2024-03-16"})

	stats, err := Recalculate(db, uid, "2024-03-15")
	if err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	if stats.PhysicalTotal != 1 || stats.PhysicalDone != 1 {
		t.Errorf("total/done = %d/%d, want 1/1", stats.PhysicalTotal, stats.PhysicalDone)
	}
}
