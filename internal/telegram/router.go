package telegram

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/koaskas/life-counter-bot/internal/clock"
	"github.com/koaskas/life-counter-bot/internal/registry"
)

// Messenger sends replies and daily notifications.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Scheduler installs the recurring daily trigger for a chat.
type Scheduler interface {
	RegisterDaily(chatID int64) error
}

// Router wires Telegram updates to command handlers.
type Router struct {
	sender Messenger
	log    *zap.Logger
	reg    registry.Registry
	sched  Scheduler
	clk    clock.Clock

	accessKey  string // empty disables the gate
	loc        *time.Location
	notifyTime string // HH:MM, for confirmation texts
}

// NewRouter creates a new command router.
func NewRouter(sender Messenger, log *zap.Logger, reg registry.Registry, sched Scheduler,
	clk clock.Clock, accessKey string, loc *time.Location, notifyTime string) *Router {
	return &Router{
		sender:     sender,
		log:        log,
		reg:        reg,
		sched:      sched,
		clk:        clk,
		accessKey:  accessKey,
		loc:        loc,
		notifyTime: notifyTime,
	}
}

// HandleUpdate routes a single update to the appropriate handler.
// All user-facing errors become replies; nothing propagates.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	fields := strings.Fields(text)
	args := fields[1:]

	switch {
	case strings.HasPrefix(text, "/start"):
		r.handleStart(ctx, chatID, args)
	case strings.HasPrefix(text, "/info"):
		r.handleInfo(ctx, chatID)
	case strings.HasPrefix(text, "/help"):
		r.handleHelp(ctx, chatID)
	default:
		// Unknown input — ignore silently
	}
}

// sendText sends a plain reply; delivery failures are logged, not retried.
func (r *Router) sendText(ctx context.Context, chatID int64, text string) {
	if err := r.sender.SendMessage(ctx, chatID, text); err != nil {
		r.log.Error("reply send failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}
