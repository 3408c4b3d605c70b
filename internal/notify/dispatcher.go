package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/koaskas/life-counter-bot/internal/clock"
	"github.com/koaskas/life-counter-bot/internal/domain"
	"github.com/koaskas/life-counter-bot/internal/registry"
)

const dailyGreeting = "One more day lived!"

// Messenger is the minimal send capability the dispatcher needs.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Dispatcher handles due daily jobs. The reference timestamp is re-read from
// the registry at fire time, so a re-registration between install and fire is
// always honored.
type Dispatcher struct {
	reg    registry.Registry
	clk    clock.Clock
	sender Messenger
	log    *zap.Logger
}

func New(reg registry.Registry, clk clock.Clock, sender Messenger, log *zap.Logger) *Dispatcher {
	return &Dispatcher{reg: reg, clk: clk, sender: sender, log: log}
}

// Fire computes fresh stats for chatID and delivers the daily message.
// Every failure is logged and contained: the recurring trigger stays alive
// and other chats' firings are unaffected.
func (d *Dispatcher) Fire(chatID int64) {
	// Cron passes no context; each firing gets its own.
	ctx := context.Background()

	birthAt, err := d.reg.GetReference(ctx, chatID)
	if err != nil {
		d.log.Warn("daily firing skipped", zap.Int64("chatID", chatID), zap.Error(err))
		return
	}

	st := domain.ComputeStats(birthAt, d.clk.Now())
	text := fmt.Sprintf("%s\n%s", dailyGreeting, st.Line())

	if err := d.sender.SendMessage(ctx, chatID, text); err != nil {
		d.log.Error("daily send failed", zap.Int64("chatID", chatID), zap.Error(err))
		return
	}
	d.log.Debug("daily notification sent", zap.Int64("chatID", chatID), zap.Int("day", st.Days))
}
