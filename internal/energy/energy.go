// Package energy computes basal metabolic rate and activity expenditure
// estimates. All functions are pure and take the profile explicitly, so
// per-chat profiles stay independent.
package energy

import (
	"math"

	"calobot/internal/models"
)

// TargetFactor scales BMR into the daily expenditure goal.
const TargetFactor = 1.2

// multipliers maps each activity class to its factor on BMR per minute.
// Unknown classes fall back to 1.0.
var multipliers = map[models.ActivityClass]float64{
	models.ActivitySleeping:         0.9,
	models.ActivitySittingWork:      1.2,
	models.ActivityLightExercise:    2.5,
	models.ActivityModerateExercise: 4.0,
	models.ActivityEating:           1.1,
	models.ActivityResting:          1.0,
}

// BMR returns the Mifflin-St Jeor basal metabolic rate in calories per day,
// rounded to the nearest integer. The sex offset is +5 for male and -161
// for female.
func BMR(p models.Profile) int {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == models.SexFemale {
		bmr -= 161
	} else {
		bmr += 5
	}
	return int(math.Round(bmr))
}

// PerMinute returns the estimated calories burned per minute of the given
// activity.
func PerMinute(p models.Profile, activity models.ActivityClass) int {
	m, ok := multipliers[activity]
	if !ok {
		m = 1.0
	}
	return int(math.Round(float64(BMR(p)) / 1440 * m))
}

// ForActivity returns the estimated calories burned over the given number
// of minutes of the activity.
func ForActivity(p models.Profile, activity models.ActivityClass, minutes int) int {
	return PerMinute(p, activity) * minutes
}

// DailyTarget returns the daily expenditure goal derived from BMR.
func DailyTarget(p models.Profile) int {
	return int(math.Round(float64(BMR(p)) * TargetFactor))
}

// ProgressTier classifies the accumulated daily total against the target.
type ProgressTier int

const (
	TierLow      ProgressTier = iota // below 50% of target
	TierGood                         // 50-79%
	TierReached                      // 80-119%
	TierExceeded                     // 120% and above
)

// Progress returns the advisory tier for the accumulated total.
func Progress(dailyCalories, target int) ProgressTier {
	pct := int(math.Round(float64(dailyCalories) / float64(target) * 100))
	switch {
	case pct < 50:
		return TierLow
	case pct < 80:
		return TierGood
	case pct < 120:
		return TierReached
	default:
		return TierExceeded
	}
}
