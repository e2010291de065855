package nutrition

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func sampleTargets() *Targets {
	return ComputeTargets(170, 65)
}

func TestDayOrdinal(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"1970-01-01", 719163},
		{"2024-03-01", 738946},
		{"2024-03-02", 738947},
	}
	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.date, err)
		}
		if got := dayOrdinal(d); got != tt.want {
			t.Errorf("dayOrdinal(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestBuildChecklistDeterministic(t *testing.T) {
	targets := sampleTargets()

	first := BuildChecklist(targets, "2024-03-15")
	second := BuildChecklist(targets, "2024-03-15")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed date produced different checklists:\n%v\n%v", first, second)
	}
}

func TestBuildChecklistStructure(t *testing.T) {
	items := BuildChecklist(sampleTargets(), "2024-03-15")

	if len(items) != 17 {
		t.Fatalf("len = %d, want 17", len(items))
	}

	counts := map[string]int{}
	for _, it := range items {
		counts[it.Type]++
	}
	want := map[string]int{TypeWorkout: 4, TypeProtein: 4, TypeFiber: 4, TypeWater: 5}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("type counts = %v, want %v", counts, want)
	}

	// Items must stay grouped workout -> protein -> fiber -> water.
	order := []string{}
	for _, it := range items {
		if len(order) == 0 || order[len(order)-1] != it.Type {
			order = append(order, it.Type)
		}
	}
	wantOrder := []string{TypeWorkout, TypeProtein, TypeFiber, TypeWater}
	if !reflect.DeepEqual(order, wantOrder) {
		t.Errorf("group order = %v, want %v", order, wantOrder)
	}
}

func TestBuildChecklistWithoutTargets(t *testing.T) {
	items := BuildChecklist(nil, "2024-03-15")

	if len(items) != 4 {
		t.Fatalf("len = %d, want 4 workout items", len(items))
	}
	for _, it := range items {
		if it.Type != TypeWorkout {
			t.Errorf("item %q has type %q, want workout", it.Label, it.Type)
		}
	}
}

func TestBuildChecklistWorkoutRotation(t *testing.T) {
	// Consecutive dates walk through the routine list; the cycle length
	// equals the number of routines.
	base, _ := time.Parse("2006-01-02", "2024-03-01")

	var rotation []string
	for i := 0; i < len(workoutRoutines); i++ {
		date := base.AddDate(0, 0, i).Format("2006-01-02")
		items := BuildChecklist(nil, date)
		rotation = append(rotation, items[1].Label)
	}

	seen := map[string]bool{}
	for _, r := range rotation {
		if seen[r] {
			t.Fatalf("routine %q repeated within one cycle: %v", r, rotation)
		}
		seen[r] = true
	}

	wrapped := BuildChecklist(nil, base.AddDate(0, 0, len(workoutRoutines)).Format("2006-01-02"))
	if wrapped[1].Label != rotation[0] {
		t.Errorf("rotation did not wrap: got %q, want %q", wrapped[1].Label, rotation[0])
	}
}

func TestBuildChecklistDistinctVegetables(t *testing.T) {
	// Over many seed dates the two vegetables must never collide.
	base, _ := time.Parse("2006-01-02", "2024-01-01")
	for i := 0; i < 60; i++ {
		date := base.AddDate(0, 0, i).Format("2006-01-02")
		items := BuildChecklist(sampleTargets(), date)

		var vegLine string
		for _, it := range items {
			if it.Type == TypeFiber && strings.HasPrefix(it.Label, "Vegetable servings") {
				vegLine = it.Label
				break
			}
		}
		if vegLine == "" {
			t.Fatalf("%s: no vegetable line found", date)
		}

		open := strings.Index(vegLine, "(")
		end := strings.Index(vegLine, ")")
		pair := strings.Split(vegLine[open+1:end], ", ")
		if len(pair) != 2 || pair[0] == pair[1] {
			t.Errorf("%s: vegetables not distinct: %q", date, vegLine)
		}
	}
}

func TestBuildChecklistUsesTargetNumbers(t *testing.T) {
	items := BuildChecklist(sampleTargets(), "2024-03-15")

	var hasProteinTotal, hasFiberTotal, hasWaterTotal bool
	for _, it := range items {
		switch it.Label {
		case "Daily protein target: 104g total":
			hasProteinTotal = true
		case "Daily fiber target: 25g total":
			hasFiberTotal = true
		case "Daily water target: 2.3L (based on your weight)":
			hasWaterTotal = true
		}
	}
	if !hasProteinTotal || !hasFiberTotal || !hasWaterTotal {
		t.Errorf("target summary lines missing: protein=%v fiber=%v water=%v",
			hasProteinTotal, hasFiberTotal, hasWaterTotal)
	}
}
