package activity

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/neri/neri-api/internal/models"
)

func TestMonthReadsStoredSummaries(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	today := mustDate(t, "2024-03-20")

	note := "rest day"
	db.Create(&models.DailyActivity{
		UserID: uid, EntryDate: "2024-03-10",
		PhysicalCompletionPct: 80, ProfessionCompletionPct: 40, TotalPoints: 6,
		DayNote: &note,
	})

	days, err := Month(db, uid, 2024, 3, today)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}

	day, ok := days["2024-03-10"]
	if !ok {
		t.Fatalf("2024-03-10 missing from month view: %v", days)
	}
	if day.PhysicalCompletionPct != 80 || day.TotalPoints != 6 {
		t.Errorf("day = %+v, want pct 80 points 6", day)
	}
	if day.OverallScore != 60 {
		t.Errorf("OverallScore = %d, want 60", day.OverallScore)
	}
	if day.Keyword != "rest day" {
		t.Errorf("Keyword = %q, want %q", day.Keyword, "rest day")
	}
}

func TestMonthPastDateNoBackfill(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	today := mustDate(t, "2024-03-20")

	past := "2024-03-05"
	db.Create(&models.Reminder{UserID: uid, Title: "dentist appointment", ReminderDate: &past, IsDone: true})

	days, err := Month(db, uid, 2024, 3, today)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}

	day, ok := days[past]
	if !ok {
		t.Fatalf("%s missing from month view", past)
	}
	if day.PhysicalCompletionPct != 0 || day.TotalPoints != 0 {
		t.Errorf("past day reported activity: %+v", day)
	}
	if !day.HasReminders {
		t.Errorf("HasReminders = false, want true")
	}
	if day.Keyword != "dentist" {
		t.Errorf("Keyword = %q, want %q", day.Keyword, "dentist")
	}

	// No phantom summary row may be created for the past.
	var row models.DailyActivity
	err = db.Where("user_id = ? AND entry_date = ?", uid, past).First(&row).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("summary row created for past date: %+v (err=%v)", row, err)
	}
}

func TestMonthFutureDateBackfills(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	today := mustDate(t, "2024-03-20")

	future := "2024-03-25"
	db.Create(&models.PhysicalGoal{UserID: uid, GoalTitle: "swim laps", GoalDate: future, CompletedCount: 1, TotalCount: 2})

	days, err := Month(db, uid, 2024, 3, today)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}

	day, ok := days[future]
	if !ok {
		t.Fatalf("%s missing from month view", future)
	}
	if day.PhysicalCompletionPct != 50 {
		t.Errorf("PhysicalCompletionPct = %d, want 50", day.PhysicalCompletionPct)
	}
	if !day.HasGoals {
		t.Errorf("HasGoals = false, want true")
	}

	// The summary row self-heals for today/future.
	var row models.DailyActivity
	if err := db.Where("user_id = ? AND entry_date = ?", uid, future).First(&row).Error; err != nil {
		t.Fatalf("expected backfilled summary row: %v", err)
	}
	if row.PhysicalCompletionPct != 50 {
		t.Errorf("stored pct = %d, want 50", row.PhysicalCompletionPct)
	}
}

func TestMonthTodayCountsAsBackfillable(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	today := mustDate(t, "2024-03-20")

	date := "2024-03-20"
	db.Create(&models.Reminder{UserID: uid, Title: "water plants", ReminderDate: &date, IsDone: true})

	if _, err := Month(db, uid, 2024, 3, today); err != nil {
		t.Fatalf("Month: %v", err)
	}

	var row models.DailyActivity
	if err := db.Where("user_id = ? AND entry_date = ?", uid, date).First(&row).Error; err != nil {
		t.Fatalf("expected summary row for today: %v", err)
	}
	if row.PhysicalCompletionPct != 100 {
		t.Errorf("stored pct = %d, want 100", row.PhysicalCompletionPct)
	}
}

func TestMonthKeywordPrefersDayNote(t *testing.T) {
	db := testDB(t)
	uid := seedUser(t, db)
	today := mustDate(t, "2024-03-20")

	date := "2024-03-12"
	note := "a very long note about the day"
	db.Create(&models.DailyActivity{UserID: uid, EntryDate: date, DayNote: &note})
	db.Create(&models.Reminder{UserID: uid, Title: "ignored", ReminderDate: &date})

	days, err := Month(db, uid, 2024, 3, today)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if got := days[date].Keyword; got != "a very long not" {
		t.Errorf("Keyword = %q, want first 15 chars of the note", got)
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}
