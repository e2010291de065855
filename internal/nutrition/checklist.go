package nutrition

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Checklist item types.
const (
	TypeWorkout = "workout"
	TypeProtein = "protein"
	TypeFiber   = "fiber"
	TypeWater   = "water"
)

// Item is one generated checklist line before persistence.
type Item struct {
	Label string `json:"label"`
	Type  string `json:"type"`
}

// unixEpochOrdinal is the proleptic Gregorian ordinal of 1970-01-01,
// with January 1 of year 1 as day 1.
const unixEpochOrdinal = 719163

// dayOrdinal numbers civil days so the same date always maps to the
// same workout rotation slot. Duration subtraction from year 1 would
// saturate, so it counts whole Unix days instead.
func dayOrdinal(t time.Time) int {
	return int(t.Unix()/86400) + unixEpochOrdinal
}

// seedFromDate derives a stable PRNG seed from an ISO date string.
func seedFromDate(seedDate string) int64 {
	sum := md5.Sum([]byte(seedDate))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}

// BuildChecklist generates the day's workout and nutrition items.
//
// With a non-empty seedDate (ISO YYYY-MM-DD) the draws come from a PRNG
// seeded by a stable hash of that string, so regenerating for the same
// date yields the same items until the profile changes. An empty
// seedDate falls back to a time-seeded generator. With nil targets only
// the four workout items are returned.
//
// Items are emitted grouped: workout, protein, fiber, water. The draw
// order (breakfast, lunch, dinner, two distinct vegetables, grain,
// fruit) is fixed to keep the random sequence reproducible.
func BuildChecklist(targets *Targets, seedDate string) []Item {
	var rng *rand.Rand
	if seedDate != "" {
		rng = rand.New(rand.NewSource(seedFromDate(seedDate)))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var dayIdx int
	if seedDate != "" {
		if d, err := time.Parse("2006-01-02", seedDate); err == nil {
			dayIdx = dayOrdinal(d)
		} else {
			dayIdx = rng.Intn(1001)
		}
	} else {
		dayIdx = rng.Intn(1001)
	}
	workout := workoutRoutines[dayIdx%len(workoutRoutines)]

	checklist := []Item{
		{Label: "Warm-up: 5-10 mins dynamic stretching", Type: TypeWorkout},
		{Label: workout, Type: TypeWorkout},
		{Label: "Cool-down: 5 mins static stretching", Type: TypeWorkout},
		{Label: "Log your completion and effort", Type: TypeWorkout},
	}

	if targets == nil {
		return checklist
	}

	perMeal := int(math.Round(float64(targets.ProteinG) / 3))

	pick := func(pool []string) string { return pool[rng.Intn(len(pool))] }

	bp := pick(breakfastProteins)
	lp := pick(lunchProteins)
	dp := pick(dinnerProteins)

	// Two distinct vegetables: remove the first draw before the second.
	vegPool := make([]string, len(vegetables))
	copy(vegPool, vegetables)
	i := rng.Intn(len(vegPool))
	v1 := vegPool[i]
	vegPool = append(vegPool[:i], vegPool[i+1:]...)
	v2 := pick(vegPool)

	gr := pick(grains)
	fr := pick(fruits)

	checklist = append(checklist,
		Item{Label: fmt.Sprintf("Breakfast protein (~%dg) — %s", perMeal, bp), Type: TypeProtein},
		Item{Label: fmt.Sprintf("Lunch protein (~%dg) — %s", perMeal, lp), Type: TypeProtein},
		Item{Label: fmt.Sprintf("Dinner protein (~%dg) — %s", perMeal, dp), Type: TypeProtein},
		Item{Label: fmt.Sprintf("Daily protein target: %dg total", targets.ProteinG), Type: TypeProtein},
		Item{Label: fmt.Sprintf("Vegetable servings (%s, %s) — towards %dg fiber goal", v1, v2, targets.FiberG), Type: TypeFiber},
		Item{Label: fmt.Sprintf("Whole grains for at least one meal — %s", gr), Type: TypeFiber},
		Item{Label: fmt.Sprintf("One serving of fruit — %s", fr), Type: TypeFiber},
		Item{Label: fmt.Sprintf("Daily fiber target: %dg total", targets.FiberG), Type: TypeFiber},
		Item{Label: "Morning: 500ml within 30 min of waking", Type: TypeWater},
		Item{Label: "Pre-lunch: 300ml before your meal", Type: TypeWater},
		Item{Label: "Afternoon: 500ml between 2–4 PM", Type: TypeWater},
		Item{Label: "Evening: 300ml post-workout or with snack", Type: TypeWater},
		Item{Label: fmt.Sprintf("Daily water target: %.1fL (based on your weight)", targets.WaterL), Type: TypeWater},
	)

	return checklist
}
