// Package models defines the domain types shared across the bot:
// the body profile, activity classes, the daily schedule entry and
// the per-chat session with its walk-dialogue sub-state.
package models

// Sex selects the Mifflin-St Jeor offset.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Profile holds the body measurements used by the energy model.
type Profile struct {
	HeightCm float64 `json:"heightCm"`
	WeightKg float64 `json:"weightKg"`
	Age      int     `json:"age"`
	Sex      Sex     `json:"sex"`
}

// DefaultProfile is the profile a chat starts with until /weight changes it.
var DefaultProfile = Profile{
	HeightCm: 160,
	WeightKg: 87,
	Age:      30,
	Sex:      SexMale,
}

// ActivityClass is a closed set of activity categories, each mapped to a
// fixed multiplier on basal metabolic rate per minute.
type ActivityClass string

const (
	ActivitySleeping         ActivityClass = "sleeping"
	ActivitySittingWork      ActivityClass = "sitting_work"
	ActivityLightExercise    ActivityClass = "light_exercise"
	ActivityModerateExercise ActivityClass = "moderate_exercise"
	ActivityEating           ActivityClass = "eating"
	ActivityResting          ActivityClass = "resting"
)

// ScheduleEntry is one immutable slot of the daily timetable.
type ScheduleEntry struct {
	Time       string        // local time of day, HH:MM
	Message    string        // reminder text sent when the slot fires
	Activity   ActivityClass // what the user is assumed to do
	Duration   int           // planned duration in minutes
	WalkPrompt bool          // marks the slot that opens the walk dialogue
}

// WalkState enumerates the walk-dialogue states. Transitions are handled
// exhaustively in the service layer.
type WalkState int

const (
	WalkIdle WalkState = iota
	WalkAwaitingResponse
	WalkWalking
	WalkNotWalking
	WalkCompleted
)

func (s WalkState) String() string {
	switch s {
	case WalkIdle:
		return "idle"
	case WalkAwaitingResponse:
		return "awaiting_response"
	case WalkWalking:
		return "walking"
	case WalkNotWalking:
		return "not_walking"
	case WalkCompleted:
		return "completed"
	}
	return "unknown"
}

// WalkDialogue is the walk sub-state embedded in every session. StartedAt
// and Duration are only meaningful while State == WalkWalking.
type WalkDialogue struct {
	State     WalkState `json:"state"`
	StartedAt string    `json:"startedAt"` // HH:MM
	Duration  int       `json:"duration"`  // minutes
}

// Session is the per-chat tracking record. It is created lazily on the
// first command and lives for the process lifetime; "stop" resets it
// instead of deleting it.
type Session struct {
	ChatID          int64         `json:"chatID"`
	Enabled         bool          `json:"enabled"`
	LastFiredAt     string        `json:"lastFiredAt"` // HH:MM of the last dispatched slot
	DailyCalories   int           `json:"dailyCalories"`
	CurrentActivity ActivityClass `json:"currentActivity"`
	ActivityStart   string        `json:"activityStart"` // HH:MM
	Walk            WalkDialogue  `json:"walk"`

	// Generation is bumped on every start/stop so timers armed against an
	// earlier incarnation of the session can detect the reset when they fire.
	Generation int `json:"generation"`
}
