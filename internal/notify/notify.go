package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Alert is the payload of one water-cut notification.
type Alert struct {
	Area     string
	Summary  string
	Headline string
	Link     string
}

// Render formats the alert as Telegram Markdown.
func (a Alert) Render() string {
	return fmt.Sprintf("🚰 *Water Cut Alert*\n"+
		"📍 Area: %s\n"+
		"📍 Status: *CONFIRMED*\n"+
		"📝 Note: %s\n\n"+
		"📰 *%s*\n"+
		"🔗 [Read Article](%s)",
		a.Area, a.Summary, a.Headline, a.Link)
}

// Telegram delivers alerts to a single chat through the Bot API.
// A missing token or chat ID produces a disabled notifier that never
// touches the network.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *log.Logger
}

// NewTelegram builds the notifier against the public Bot API endpoint.
func NewTelegram(token string, chatID int64, logger *log.Logger) (*Telegram, error) {
	return NewTelegramWithEndpoint(token, tgbotapi.APIEndpoint, chatID, logger)
}

// NewTelegramWithEndpoint builds the notifier against a custom endpoint.
func NewTelegramWithEndpoint(token, endpoint string, chatID int64, logger *log.Logger) (*Telegram, error) {
	if token == "" || chatID == 0 {
		logger.Println("telegram token or chat ID missing, notifications disabled")
		return &Telegram{logger: logger}, nil
	}
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Telegram{api: api, chatID: chatID, logger: logger}, nil
}

// Enabled reports whether the notifier is configured to deliver.
func (t *Telegram) Enabled() bool {
	return t.api != nil && t.chatID != 0
}

// Send delivers the message text to the configured chat. Calling Send on
// a disabled notifier is a no-op.
func (t *Telegram) Send(text string) error {
	if !t.Enabled() {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
