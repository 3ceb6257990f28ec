// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const sendTimeout = 10 * time.Second

// Sender is the part of *telebot.Bot the adapter needs.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// TelebotAdapter implements the domain Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	sender Sender
	chat   telebot.Recipient
}

func NewTelebotAdapter(s Sender, chatID string) *TelebotAdapter {
	return &TelebotAdapter{sender: s, chat: ParseRecipient(chatID)}
}

// SendMessage sends a plain text message to the configured chat.
func (tba *TelebotAdapter) SendMessage(text string) error {
	if _, err := tba.sender.Send(tba.chat, text, &telebot.SendOptions{ParseMode: telebot.ModeDefault}); err != nil {
		return fmt.Errorf("failed to send message to chat %s: %w", tba.chat.Recipient(), err)
	}
	return nil
}

// channel is a public chat addressed by its @username.
type channel string

func (c channel) Recipient() string { return string(c) }

// ParseRecipient turns a configured chat identifier into a telebot recipient:
// numeric IDs become telebot.ChatID, anything else (e.g. "@channel") is used verbatim.
func ParseRecipient(chatID string) telebot.Recipient {
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return telebot.ChatID(id)
	}
	return channel(chatID)
}

// NewBot creates a send-only bot. It is built offline: no getMe call is made,
// so an unreachable Telegram at startup only shows up as failed sends.
// An empty apiURL means the public Bot API.
func NewBot(token, apiURL string, logger *logrus.Entry) (*telebot.Bot, error) {
	pref := telebot.Settings{
		URL:     apiURL,
		Token:   token,
		Offline: true,
		Client:  &http.Client{Timeout: sendTimeout},
		OnError: func(err error, c telebot.Context) { // Global error handler
			logger.WithError(err).Error("Telegram client error")
		},
	}
	b, err := telebot.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	return b, nil
}
