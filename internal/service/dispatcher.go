package service

import (
	"time"

	"calobot/internal/constant"
	"calobot/internal/energy"
	"calobot/internal/models"
	"calobot/internal/schedule"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartCron registers the minute dispatcher tick and the midnight reset on
// a cron runner in the given location and starts it. Midnight is resolved
// by cron per firing, so daylight-saving shifts cannot drift the reset.
func (b *BotService) StartCron(loc *time.Location) *cron.Cron {
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc("* * * * *", b.Tick); err != nil {
		logrus.WithError(err).Fatal("Failed to register dispatcher tick")
	}
	if _, err := c.AddFunc("0 0 * * *", b.ResetDaily); err != nil {
		logrus.WithError(err).Fatal("Failed to register daily reset")
	}
	c.Start()
	logrus.Info("Dispatcher cron started")
	return c
}

// Tick matches the current minute against the timetable and fires the due
// entry for every enabled session not yet notified this minute.
func (b *BotService) Tick() {
	hhmm := b.clock.Now().Format("15:04")
	entry, ok := schedule.Lookup(hhmm)
	if !ok {
		return
	}
	b.dispatch(entry, hhmm)
}

// dispatch fires one timetable entry. LastFiredAt makes the fire idempotent
// per minute: a second tick in the same minute finds nothing to do.
func (b *BotService) dispatch(entry models.ScheduleEntry, hhmm string) {
	var due []int64
	b.sessions.ForEach(func(s *models.Session) {
		if s.Enabled && s.LastFiredAt != hhmm {
			due = append(due, s.ChatID)
		}
	})

	for _, chatID := range due {
		fired := false
		askWalk := false
		gen := 0
		b.sessions.Update(chatID, func(s *models.Session) {
			if !s.Enabled || s.LastFiredAt == hhmm {
				return
			}
			s.CurrentActivity = entry.Activity
			s.ActivityStart = hhmm
			s.LastFiredAt = hhmm
			// The walk question only opens from idle. A completed walk is
			// terminal for the day and an in-progress walk keeps its timer.
			if entry.WalkPrompt && s.Walk.State == models.WalkIdle {
				s.Walk.State = models.WalkAwaitingResponse
				askWalk = true
			}
			gen = s.Generation
			fired = true
		})
		if !fired {
			continue
		}

		b.sendMessage(chatID, entry.Message)
		switch {
		case entry.WalkPrompt:
			// The walk dialogue owns this slot; its own timer reports.
			if askWalk {
				b.sendMessage(chatID, constant.MsgWalkPrompt)
			}
		case entry.Activity == models.ActivityLightExercise:
			// Break slots are reminder-only. Light exercise is credited
			// solely through the walk dialogue or /walk.
		default:
			b.armCompletion(chatID, entry, gen)
		}
	}
}

// armCompletion schedules the calorie report for when the entry's planned
// duration elapses. The session generation captured at arm time lets the
// firing timer detect a stop or restart in the interim.
func (b *BotService) armCompletion(chatID int64, entry models.ScheduleEntry, gen int) {
	b.clock.AfterFunc(time.Duration(entry.Duration)*time.Minute, func() {
		b.completeActivity(chatID, entry, gen)
	})
}

// completeActivity credits the activity's expenditure and reports it. The
// live session is re-read first: a session disabled or reinitialized
// between arm and fire gets nothing.
func (b *BotService) completeActivity(chatID int64, entry models.ScheduleEntry, gen int) {
	p := b.profiles.Get(chatID)
	burned := energy.ForActivity(p, entry.Activity, entry.Duration)

	credited := false
	dailyTotal := 0
	b.sessions.Update(chatID, func(s *models.Session) {
		if !s.Enabled || s.Generation != gen {
			return
		}
		s.DailyCalories += burned
		dailyTotal = s.DailyCalories
		credited = true
	})
	if !credited {
		return
	}
	b.sendCalorieReport(chatID, entry.Activity, entry.Duration, burned, dailyTotal)
}

// ResetDaily zeroes every session's accumulated total at local midnight.
// Enabled flags are untouched. When walkResetDaily is set the walk dialogue
// also returns to idle so the next day's slot can ask again.
func (b *BotService) ResetDaily() {
	count := 0
	b.sessions.ForEach(func(s *models.Session) {
		s.DailyCalories = 0
		if b.walkResetDaily {
			s.Walk = models.WalkDialogue{State: models.WalkIdle}
		}
		count++
	})
	logrus.Infof("Daily calorie totals reset for %d session(s)", count)
}
