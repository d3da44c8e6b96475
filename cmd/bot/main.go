package main

import (
	"os"
	"os/signal"
	"syscall"

	"calobot/internal/clock"
	"calobot/internal/config"
	"calobot/internal/logcfg"
	"calobot/internal/models"
	"calobot/internal/repository"
	"calobot/internal/server"
	"calobot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Configuration error: %v", err)
	}
	logcfg.RunLoggerConfig(cfg.EnvLogsLevel, cfg.EnvLogFileName,
		cfg.EnvLogMaxSizeMB, cfg.EnvLogMaxBackups, cfg.EnvLogMaxAgeDays)
	logrus.Infof("Bot starting, timezone %s, logs level %s", cfg.EnvTimezone, cfg.EnvLogsLevel)

	bot, err := tgbotapi.NewBotAPI(cfg.EnvBotToken)
	if err != nil {
		logrus.Fatalf("Can't create telegram bot: %v", err)
	}
	logrus.Infof("Bot API created successfully for %s", bot.Self.UserName)

	sessions := repository.NewSessions()
	profiles := repository.NewProfiles(models.DefaultProfile)
	svc := service.NewBotService(bot, sessions, profiles, clock.New(cfg.Location), cfg.EnvWalkResetDaily)

	cronRunner := svc.StartCron(cfg.Location)
	defer cronRunner.Stop()

	server.Run(cfg.EnvHTTPAddr, sessions)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60 // seconds timeout
	updates := bot.GetUpdatesChan(updateConfig)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case sig := <-signalChan:
			logrus.Infof("Received %v signal, shutting down bot...", sig)
			bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				logrus.Error("Telegram update channel closed")
				return
			}
			svc.HandleUpdate(&update)
		}
	}
}
