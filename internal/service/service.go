// Package service implements the bot core: the command interface, the
// schedule dispatcher, the interactive walk dialogue and the daily reset.
package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"calobot/internal/clock"
	"calobot/internal/constant"
	"calobot/internal/energy"
	"calobot/internal/models"
	"calobot/internal/repository"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// MessageSender is the narrow slice of the Telegram API the service needs.
// *tgbotapi.BotAPI satisfies it.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// BotService wires the command interface, the dispatcher and the walk
// dialogue together over the session and profile stores.
type BotService struct {
	api            MessageSender
	sessions       *repository.Sessions
	profiles       *repository.Profiles
	clock          clock.Clock
	walkResetDaily bool
}

// NewBotService creates the bot service.
func NewBotService(api MessageSender, sessions *repository.Sessions, profiles *repository.Profiles, clk clock.Clock, walkResetDaily bool) *BotService {
	return &BotService{
		api:            api,
		sessions:       sessions,
		profiles:       profiles,
		clock:          clk,
		walkResetDaily: walkResetDaily,
	}
}

// sendMessage delivers text to the chat. Delivery is best effort: failures
// are logged and never propagated, so state already applied stays applied.
func (b *BotService) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		logrus.WithError(err).Errorf("Failed to send message to chat %d", chatID)
	}
}

var weightRe = regexp.MustCompile(`(?i)^/weight\s+(\d+(?:\.\d+)?)\s*(?:kg)?$`)

// HandleUpdate processes one inbound Telegram update. Any panic during
// handling is recovered, logged and answered with a generic apology so a
// single bad message cannot take the process down.
func (b *BotService) HandleUpdate(update *tgbotapi.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	chatID := update.Message.Chat.ID
	defer func() {
		if rec := recover(); rec != nil {
			logrus.Errorf("Recovered from panic while handling chat %d: %v", chatID, rec)
			b.sendMessage(chatID, constant.MsgApology)
		}
	}()

	text := strings.TrimSpace(update.Message.Text)
	if update.Message.From != nil {
		logrus.Infof("Message [%s] from %s (chat %d)", text, update.Message.From.UserName, chatID)
	}

	switch {
	case text == constant.CmdStartReminders:
		b.startTracking(chatID)
	case text == constant.CmdStopReminders:
		b.stopTracking(chatID)
	case text == constant.CmdCalories:
		b.reportCalories(chatID)
	case text == constant.CmdProfile:
		b.reportProfile(chatID)
	case text == constant.CmdUpdate:
		b.showUpdateMenu(chatID)
	case strings.HasPrefix(text, constant.CmdWeight):
		b.updateWeight(chatID, text)
	case strings.HasPrefix(text, constant.CmdWalk):
		b.handleWalkCommand(chatID, text)
	default:
		if b.handleWalkReply(chatID, text) {
			return
		}
		b.sendMessage(chatID, constant.MsgHelp)
	}
}

// startTracking (re)initializes the session and replies with the profile
// snapshot. A session mid-walk loses its walk timer credit: the timer's
// guard sees the dialogue back in idle.
func (b *BotService) startTracking(chatID int64) {
	b.sessions.Update(chatID, func(s *models.Session) {
		s.Enabled = true
		s.LastFiredAt = ""
		s.DailyCalories = 0
		s.CurrentActivity = ""
		s.ActivityStart = ""
		s.Walk = models.WalkDialogue{State: models.WalkIdle}
		s.Generation++
	})
	b.sendMessage(chatID, constant.MsgAckStart)

	p := b.profiles.Get(chatID)
	b.sendMessage(chatID, fmt.Sprintf(constant.MsgStarted, p.HeightCm, p.WeightKg, energy.BMR(p)))
}

// stopTracking reports today's total if any, then resets the session to the
// disabled initial state. The total is reported and then discarded.
func (b *BotService) stopTracking(chatID int64) {
	final := constant.MsgStopped
	if s, ok := b.sessions.Get(chatID); ok && s.DailyCalories > 0 {
		final = fmt.Sprintf(constant.MsgStoppedWithTotal, s.DailyCalories)
	}

	b.sessions.Update(chatID, func(s *models.Session) {
		s.Enabled = false
		s.LastFiredAt = ""
		s.DailyCalories = 0
		s.CurrentActivity = ""
		s.ActivityStart = ""
		s.Walk = models.WalkDialogue{State: models.WalkIdle}
		s.Generation++
	})

	b.sendMessage(chatID, constant.MsgAckStop)
	b.sendMessage(chatID, final)
}

func (b *BotService) reportCalories(chatID int64) {
	s, ok := b.sessions.Get(chatID)
	if !ok || !s.Enabled {
		b.sendMessage(chatID, constant.MsgNeedStart)
		return
	}
	b.sendMessage(chatID, constant.MsgAckCalories)

	p := b.profiles.Get(chatID)
	bmr := energy.BMR(p)
	target := energy.DailyTarget(p)
	b.sendMessage(chatID, fmt.Sprintf(constant.MsgCaloriesStats,
		bmr, s.DailyCalories, target, progressText(s.DailyCalories, target)))
}

func (b *BotService) reportProfile(chatID int64) {
	b.sendMessage(chatID, constant.MsgAckProfile)

	p := b.profiles.Get(chatID)
	b.sendMessage(chatID, fmt.Sprintf(constant.MsgProfileInfo,
		p.HeightCm, p.WeightKg, energy.BMR(p), energy.DailyTarget(p)))
}

func (b *BotService) showUpdateMenu(chatID int64) {
	b.sendMessage(chatID, constant.MsgAckUpdate)

	p := b.profiles.Get(chatID)
	sexLabel := constant.SexLabelMale
	if p.Sex == models.SexFemale {
		sexLabel = constant.SexLabelFemale
	}
	b.sendMessage(chatID, fmt.Sprintf(constant.MsgUpdateMenu,
		p.HeightCm, p.WeightKg, p.Age, sexLabel))
}

// updateWeight parses "/weight <number>[kg]" and replaces the profile
// weight. Malformed or out-of-range input changes nothing.
func (b *BotService) updateWeight(chatID int64, text string) {
	m := weightRe.FindStringSubmatch(text)
	if m == nil {
		b.sendMessage(chatID, constant.MsgWeightBadFormat)
		return
	}
	newWeight, err := strconv.ParseFloat(m[1], 64)
	if err != nil || newWeight <= 0 || newWeight >= 500 {
		b.sendMessage(chatID, constant.MsgWeightBadRange)
		return
	}

	old, updated := b.profiles.SetWeight(chatID, newWeight)
	b.sendMessage(chatID, fmt.Sprintf(constant.MsgWeightUpdated,
		old.WeightKg, updated.WeightKg, updated.WeightKg-old.WeightKg,
		energy.BMR(updated), energy.DailyTarget(updated)))
}

// progressText returns the advisory line for the accumulated total.
func progressText(dailyCalories, target int) string {
	switch energy.Progress(dailyCalories, target) {
	case energy.TierLow:
		return constant.MsgProgressLow
	case energy.TierGood:
		return constant.MsgProgressGood
	case energy.TierReached:
		return constant.MsgProgressReached
	default:
		return constant.MsgProgressExceeded
	}
}

// sendCalorieReport sends the per-activity report followed by the running
// daily total with its progress advisory.
func (b *BotService) sendCalorieReport(chatID int64, activity models.ActivityClass, minutes, burned, dailyTotal int) {
	name, ok := constant.ActivityNames[activity]
	if !ok {
		name = string(activity)
	}
	tip, ok := constant.ActivityTips[activity]
	if !ok {
		tip = constant.DefaultActivityTip
	}
	perMinute := 0
	if minutes > 0 {
		perMinute = burned / minutes
	}
	b.sendMessage(chatID, fmt.Sprintf(constant.MsgCalorieReport, name, minutes, burned, perMinute, tip))

	p := b.profiles.Get(chatID)
	target := energy.DailyTarget(p)
	b.sendMessage(chatID, fmt.Sprintf(constant.MsgDailyTotal, dailyTotal, progressText(dailyTotal, target)))
}
