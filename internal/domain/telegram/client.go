package telegram

// Client defines an interface for sending messages via a Telegram bot.
// The target chat is fixed when the client is constructed.
type Client interface {
	SendMessage(text string) error
}
