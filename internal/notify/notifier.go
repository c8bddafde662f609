package notify

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers reminder messages to a chat.

type Notifier interface {
	SendMarkdown(chatID int64, text string) error
}

type TelegramNotifier struct {
	api *tgbotapi.BotAPI
}

func NewTelegramNotifier(api *tgbotapi.BotAPI) *TelegramNotifier {
	return &TelegramNotifier{api: api}
}

func (n *TelegramNotifier) SendMarkdown(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	_, err := n.api.Send(msg)
	return err
}
