package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// Client sends messages through the Bot API behind a token bucket, keeping
// bursts of daily firings under Telegram's global send limit.
type Client struct {
	bot *tgbotapi.BotAPI
	lim *rate.Limiter
}

// NewClient wraps bot with a perSecond send limit.
func NewClient(bot *tgbotapi.BotAPI, perSecond int) *Client {
	if perSecond <= 0 {
		perSecond = 25
	}
	return &Client{
		bot: bot,
		lim: rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}
}

// SendMessage sends a plain text message to the given chat. Waiting for a
// rate-limit token honors ctx, so a shutdown cannot park a send forever.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := c.lim.Wait(ctx); err != nil {
		return err
	}
	_, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
