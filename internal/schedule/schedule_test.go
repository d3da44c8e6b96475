package schedule

import (
	"testing"

	"calobot/internal/models"
)

func TestEntriesOrderedAndUnique(t *testing.T) {
	entries := Entries()
	if len(entries) == 0 {
		t.Fatal("timetable is empty")
	}

	seen := make(map[string]bool)
	prev := ""
	for _, e := range entries {
		if seen[e.Time] {
			t.Errorf("duplicate timetable time %s", e.Time)
		}
		seen[e.Time] = true
		if e.Time <= prev {
			t.Errorf("timetable not ascending at %s (previous %s)", e.Time, prev)
		}
		prev = e.Time

		if e.Duration <= 0 {
			t.Errorf("entry %s has non-positive duration %d", e.Time, e.Duration)
		}
		if e.Message == "" {
			t.Errorf("entry %s has no message", e.Time)
		}
	}
}

func TestSingleWalkPromptAtLunch(t *testing.T) {
	var prompts []models.ScheduleEntry
	for _, e := range Entries() {
		if e.WalkPrompt {
			prompts = append(prompts, e)
		}
	}
	if len(prompts) != 1 {
		t.Fatalf("expected exactly one walk-prompt slot, got %d", len(prompts))
	}
	if prompts[0].Time != "12:00" {
		t.Errorf("walk prompt scheduled at %s, want 12:00", prompts[0].Time)
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("09:00")
	if !ok {
		t.Fatal("Lookup(09:00) found nothing")
	}
	if e.Activity != models.ActivitySittingWork || e.Duration != 60 {
		t.Errorf("Lookup(09:00) = %+v, want sitting_work for 60 minutes", e)
	}

	if _, ok := Lookup("09:01"); ok {
		t.Error("Lookup(09:01) unexpectedly found an entry")
	}
}
