package telegram

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestClient_CancelledContextAbortsSend(t *testing.T) {
	// The zero-value API is never reached: the limiter fails first.
	c := NewClient(&tgbotapi.BotAPI{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.SendMessage(ctx, 1, "ping"); err == nil {
		t.Fatal("send with a cancelled context must fail instead of blocking")
	}
}

func TestNewClient_DefaultsRate(t *testing.T) {
	c := NewClient(&tgbotapi.BotAPI{}, 0)
	if c.lim == nil {
		t.Fatal("limiter must be installed even with a zero rate")
	}
	if c.lim.Limit() <= 0 {
		t.Fatalf("want positive default rate, got %v", c.lim.Limit())
	}
}
