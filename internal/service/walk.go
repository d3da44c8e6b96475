package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"calobot/internal/constant"
	"calobot/internal/energy"
	"calobot/internal/models"
)

// Free-text tokens accepted while the walk question is open.
var (
	walkAffirmative = map[string]bool{"có": true, "co": true, "yes": true, "y": true}
	walkNegative    = map[string]bool{"chưa": true, "chua": true, "no": true, "n": true}
)

// handleWalkCommand processes "/walk" and "/walk <minutes>". A bare /walk
// starts the default 20-minute walk.
func (b *BotService) handleWalkCommand(chatID int64, text string) {
	s, ok := b.sessions.Get(chatID)
	if !ok || !s.Enabled {
		b.sendMessage(chatID, constant.MsgNeedStart)
		return
	}

	minutes := constant.WalkDefaultMinutes
	if arg := strings.TrimSpace(strings.TrimPrefix(text, constant.CmdWalk)); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < constant.WalkMinMinutes || n > constant.WalkMaxMinutes {
			b.sendMessage(chatID, constant.MsgWalkBadDuration)
			return
		}
		minutes = n
	}
	switch s.Walk.State {
	case models.WalkWalking:
		b.sendMessage(chatID, constant.MsgWalkAlreadyWalking)
	case models.WalkCompleted:
		b.sendMessage(chatID, constant.MsgWalkAlreadyCompleted)
	default:
		b.startWalk(chatID, minutes)
	}
}

// handleWalkReply routes free text to the open walk question. It reports
// whether the text was consumed; unclassifiable text is left for the
// generic command interface.
func (b *BotService) handleWalkReply(chatID int64, text string) bool {
	s, ok := b.sessions.Get(chatID)
	if !ok || s.Walk.State != models.WalkAwaitingResponse {
		return false
	}

	reply := strings.ToLower(strings.TrimSpace(text))
	switch {
	case walkAffirmative[reply]:
		b.startWalk(chatID, constant.WalkDefaultMinutes)
		return true
	case walkNegative[reply]:
		b.sessions.Update(chatID, func(s *models.Session) {
			s.Walk = models.WalkDialogue{State: models.WalkNotWalking}
		})
		b.sendMessage(chatID, constant.MsgWalkDeclined)
		return true
	}

	if n, err := strconv.Atoi(reply); err == nil {
		if n < constant.WalkMinMinutes || n > constant.WalkMaxMinutes {
			b.sendMessage(chatID, constant.MsgWalkBadDuration)
			return true
		}
		b.startWalk(chatID, n)
		return true
	}
	return false
}

// startWalk transitions the dialogue to walking and arms the completion
// timer. Only one walk timer can be outstanding per session: callers check
// the state first, and finishWalk verifies it again when the timer fires.
func (b *BotService) startWalk(chatID int64, minutes int) {
	startedAt := b.clock.Now().Format("15:04")
	b.sessions.Update(chatID, func(s *models.Session) {
		s.Walk = models.WalkDialogue{
			State:     models.WalkWalking,
			StartedAt: startedAt,
			Duration:  minutes,
		}
	})
	b.sendMessage(chatID, fmt.Sprintf(constant.MsgWalkStarted, minutes))

	b.clock.AfterFunc(time.Duration(minutes)*time.Minute, func() {
		b.finishWalk(chatID, minutes)
	})
}

// finishWalk fires when a walk timer elapses. It re-reads the live session
// and credits calories only if the session is still enabled and still
// walking; a session stopped or restarted in the meantime is not credited.
func (b *BotService) finishWalk(chatID int64, minutes int) {
	p := b.profiles.Get(chatID)
	burned := energy.ForActivity(p, models.ActivityLightExercise, minutes)

	credited := false
	dailyTotal := 0
	b.sessions.Update(chatID, func(s *models.Session) {
		if !s.Enabled || s.Walk.State != models.WalkWalking {
			return
		}
		s.Walk = models.WalkDialogue{State: models.WalkCompleted}
		s.DailyCalories += burned
		dailyTotal = s.DailyCalories
		credited = true
	})
	if !credited {
		return
	}
	b.sendCalorieReport(chatID, models.ActivityLightExercise, minutes, burned, dailyTotal)
}
