package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ramadanapp/internal/aladhan"
	"ramadanapp/internal/bot"
	"ramadanapp/internal/config"
	"ramadanapp/internal/cron"
	"ramadanapp/internal/db"
	"ramadanapp/internal/i18n"
	"ramadanapp/internal/logger"
	"ramadanapp/internal/notify"
	"ramadanapp/internal/prayer"
	"ramadanapp/internal/tracker"
)

func main() {
	logger.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	database, err := db.New(cfg.DatabasePath)
	if err != nil {
		logger.LogMsg(logger.LogError, "Failed to open database: %v", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.LogMsg(logger.LogError, "Failed to close database: %v", err)
		}
	}()

	err = database.CreateTables()
	if err != nil {
		logger.LogMsg(logger.LogError, "Failed to create tables: %v", err)
		return
	}

	client := aladhan.NewClient()
	prayers := prayer.NewService(database, client)
	tr := tracker.New(database, cfg.RamadanDays, cfg.RamadanStart)

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		logger.LogMsg(logger.LogError, "Failed to initialize Telegram bot: %v", err)
		return
	}

	// The stored lead-minutes setting wins over the .env default.
	leadMinutes := cfg.LeadMinutes
	if stored, ok, err := database.GetLeadMinutes(); err == nil && ok {
		leadMinutes = stored
	}

	appBot := bot.New(api, database, tr, prayers, cfg, i18n.Arabic)

	scheduler := cron.NewScheduler(database, notify.NewTelegramNotifier(api), prayers, tr, leadMinutes, i18n.Arabic)
	scheduler.Start()

	appBot.Start()
}
