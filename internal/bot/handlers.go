package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ramadanapp/internal/locations"
	"ramadanapp/internal/logger"
)

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if !message.IsCommand() {
		// A bare number is treated as a page position, matching the reader's
		// "I stopped at page N" habit.
		if page, err := strconv.Atoi(strings.TrimSpace(message.Text)); err == nil {
			b.handleSetPage(message.Chat.ID, page)
			return
		}
		b.send(message.Chat.ID, "Use /start to see what I can do.")
		return
	}

	switch message.Command() {
	case "start":
		b.sendMainMenu(message.Chat.ID)
	case "help":
		b.sendHelp(message.Chat.ID)
	case "status":
		b.sendStatus(message.Chat.ID)
	case "prayers":
		b.sendPrayers(message.Chat.ID)
	case "methods":
		b.sendMethods(message.Chat.ID)
	case "setpage":
		page, err := strconv.Atoi(strings.TrimSpace(message.CommandArguments()))
		if err != nil {
			b.send(message.Chat.ID, "Usage: /setpage 44")
			return
		}
		b.handleSetPage(message.Chat.ID, page)
	case "setlocation":
		b.handleSetLocation(message.Chat.ID, message.CommandArguments())
	case "lead":
		b.handleSetLead(message.Chat.ID, message.CommandArguments())
	default:
		b.send(message.Chat.ID, "Unknown command. Use /start to see the menu.")
	}
}

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := b.api.Request(callback); err != nil {
		logger.LogMsg(logger.LogWarning, "Failed to answer callback query: %v", err)
	}

	switch query.Data {
	case "status":
		b.sendStatus(chatID)
	case "prayers":
		b.sendPrayers(chatID)
	case "methods":
		b.sendMethods(chatID)
	case "help":
		b.sendHelp(chatID)
	}
}

func (b *Bot) sendMainMenu(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📖 Reading status", "status"),
			tgbotapi.NewInlineKeyboardButtonData("🕌 Prayer times", "prayers"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧭 Methods", "methods"),
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ Help", "help"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "🌙 *Ramadan companion*\nWhat would you like to see?")
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		logger.LogMsg(logger.LogWarning, "Failed sending main menu to %d: %v", chatID, err)
	}
}

func (b *Bot) sendHelp(chatID int64) {
	b.send(chatID, strings.Join([]string{
		"*Commands*",
		"/status - reading progress against the calendar",
		"/prayers - today's prayer times",
		"/methods - compare all calculation methods",
		"/setpage 44 - record the page you stopped at",
		"/setlocation Tunis - pick your city",
		"/lead 15 - minutes of warning before each prayer",
	}, "\n"))
}

func (b *Bot) sendStatus(chatID int64) {
	summary, err := b.tracker.Refresh(time.Now())
	if err != nil {
		logger.LogMsg(logger.LogError, "Error refreshing reading progress: %v", err)
		b.send(chatID, "Could not load your reading progress.")
		return
	}
	b.send(chatID, FormatSummary(b.locale, summary))
}

func (b *Bot) sendPrayers(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	times, err := b.prayers.Load(ctx, time.Now())
	if err != nil {
		logger.LogMsg(logger.LogError, "Error loading prayer times: %v", err)
		b.send(chatID, "Could not load prayer times. Set a location with /setlocation first.")
		return
	}
	b.send(chatID, FormatTimes(b.locale, times))
}

func (b *Bot) sendMethods(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := b.prayers.FetchAll(ctx, time.Now())
	if err != nil {
		logger.LogMsg(logger.LogError, "Error fetching prayer-time sources: %v", err)
		b.send(chatID, "Could not query the calculation methods. Set a location with /setlocation first.")
		return
	}
	b.send(chatID, FormatMethodComparison(b.locale, results))
}

func (b *Bot) handleSetPage(chatID int64, page int) {
	summary, err := b.tracker.SetLastReadPage(page, time.Now())
	if err != nil {
		b.send(chatID, fmt.Sprintf("That doesn't look like a valid page: %v", err))
		return
	}
	b.send(chatID, FormatSummary(b.locale, summary))
}

func (b *Bot) handleSetLocation(chatID int64, query string) {
	if strings.TrimSpace(query) == "" {
		b.send(chatID, "Usage: /setlocation Tunis")
		return
	}

	loc, ok := locations.Find(query)
	if !ok {
		b.send(chatID, fmt.Sprintf("I don't know %q yet. Try one of the listed cities.", strings.TrimSpace(query)))
		return
	}

	if err := b.db.SaveLocation(loc); err != nil {
		logger.LogMsg(logger.LogError, "Error saving location: %v", err)
		b.send(chatID, "Could not save the location.")
		return
	}
	b.send(chatID, fmt.Sprintf("📍 Location set to *%s, %s*.", loc.City, loc.Country))
}

func (b *Bot) handleSetLead(chatID int64, arg string) {
	minutes, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		b.send(chatID, "Usage: /lead 15 (one of 5, 10, 15, 20, 30)")
		return
	}

	switch minutes {
	case 5, 10, 15, 20, 30:
	default:
		b.send(chatID, "Usage: /lead 15 (one of 5, 10, 15, 20, 30)")
		return
	}

	if err := b.db.SaveLeadMinutes(minutes); err != nil {
		logger.LogMsg(logger.LogError, "Error saving lead minutes: %v", err)
		b.send(chatID, "Could not save the setting.")
		return
	}
	b.send(chatID, fmt.Sprintf("⏰ You'll be warned %d minutes before each prayer from tomorrow on.", minutes))
}
