package energy

import (
	"testing"

	"calobot/internal/models"
)

var referenceProfile = models.Profile{HeightCm: 160, WeightKg: 87, Age: 30, Sex: models.SexMale}

func TestBMR(t *testing.T) {
	tests := []struct {
		name    string
		profile models.Profile
		want    int
	}{
		// 10*87 + 6.25*160 - 5*30 + 5 = 1725
		{"reference male", referenceProfile, 1725},
		{"female offset", models.Profile{HeightCm: 160, WeightKg: 87, Age: 30, Sex: models.SexFemale}, 1559},
		{"lighter male", models.Profile{HeightCm: 160, WeightKg: 85, Age: 30, Sex: models.SexMale}, 1705},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BMR(tt.profile); got != tt.want {
				t.Errorf("BMR(%+v) = %d, want %d", tt.profile, got, tt.want)
			}
		})
	}
}

func TestPerMinute(t *testing.T) {
	tests := []struct {
		name     string
		activity models.ActivityClass
		want     int
	}{
		// BMR/1440 ≈ 1.198 calories per minute at rest
		{"sitting work", models.ActivitySittingWork, 1},
		{"sleeping", models.ActivitySleeping, 1},
		{"light exercise", models.ActivityLightExercise, 3},
		{"moderate exercise", models.ActivityModerateExercise, 5},
		{"unknown class falls back to 1.0", models.ActivityClass("swimming"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PerMinute(referenceProfile, tt.activity); got != tt.want {
				t.Errorf("PerMinute(%s) = %d, want %d", tt.activity, got, tt.want)
			}
		})
	}
}

func TestForActivity(t *testing.T) {
	want := PerMinute(referenceProfile, models.ActivitySittingWork) * 60
	if got := ForActivity(referenceProfile, models.ActivitySittingWork, 60); got != want {
		t.Errorf("ForActivity(sitting_work, 60) = %d, want %d", got, want)
	}
}

func TestDailyTarget(t *testing.T) {
	// 1725 * 1.2 = 2070
	if got := DailyTarget(referenceProfile); got != 2070 {
		t.Errorf("DailyTarget = %d, want 2070", got)
	}
}

func TestProgress(t *testing.T) {
	const target = 2000
	tests := []struct {
		name  string
		daily int
		want  ProgressTier
	}{
		{"nothing burned", 0, TierLow},
		{"just below half", 980, TierLow},
		{"half", 1000, TierGood},
		{"just below eighty percent", 1580, TierGood},
		{"eighty percent", 1600, TierReached},
		{"just below target ceiling", 2380, TierReached},
		{"exceeded", 2400, TierExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.daily, target); got != tt.want {
				t.Errorf("Progress(%d, %d) = %v, want %v", tt.daily, target, got, tt.want)
			}
		})
	}
}
