// internal/infra/telegram/client.go
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gopkg.in/telebot.v3"
)

const defaultRequestTimeout = 30 * time.Second

// chatRecipient passes the configured chat identifier to Telegram unchanged,
// so both numeric ids and @channel names work.
type chatRecipient string

func (r chatRecipient) Recipient() string { return string(r) }

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

// NewTelebotAdapter creates a send-only bot. The bot never polls for updates.
// When offline is false the token is verified with a getMe call.
func NewTelebotAdapter(token, apiURL string, offline bool) (*TelebotAdapter, error) {
	pref := telebot.Settings{
		URL:     apiURL,
		Token:   token,
		Offline: offline,
		Client:  &http.Client{Timeout: defaultRequestTimeout},
	}
	b, err := telebot.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	return &TelebotAdapter{bot: b}, nil
}

// SendMessage sends a plain text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(ctx context.Context, chatID string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := tba.bot.Send(chatRecipient(chatID), text)
	return err
}
