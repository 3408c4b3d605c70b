package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/koaskas/life-counter-bot/internal/domain"
	"github.com/koaskas/life-counter-bot/internal/registry"
)

// handleStart registers (or re-registers) the chat's birth moment and its
// daily trigger. With no arguments it just explains the format.
func (r *Router) handleStart(ctx context.Context, chatID int64, args []string) {
	if r.accessKey != "" {
		if len(args) == 0 || args[0] != r.accessKey {
			r.sendText(ctx, chatID, accessDeniedText)
			return
		}
		args = args[1:]
	}

	if len(args) == 0 {
		r.sendText(ctx, chatID, greetingText)
		return
	}

	birthAt, err := domain.ParseBirth(strings.Join(args, " "), r.loc)
	if err != nil {
		r.sendText(ctx, chatID, usageText)
		return
	}

	if err := r.reg.SetReference(ctx, chatID, birthAt); err != nil {
		r.log.Error("set reference failed", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(ctx, chatID, internalErrText)
		return
	}

	reply := fmt.Sprintf(registeredFmt, birthAt.Format(domain.BirthLayout), r.notifyTime)

	// Best effort: the registration stays even if scheduling fails.
	if err := r.sched.RegisterDaily(chatID); err != nil {
		r.log.Warn("daily scheduling failed", zap.Int64("chatID", chatID), zap.Error(err))
		reply += "\n" + scheduleWarnText
	}

	st := domain.ComputeStats(birthAt, r.clk.Now())
	r.sendText(ctx, chatID, reply+"\n"+st.Line())
}

// handleInfo replies with freshly computed stats, or a registration prompt.
func (r *Router) handleInfo(ctx context.Context, chatID int64) {
	birthAt, err := r.reg.GetReference(ctx, chatID)
	if errors.Is(err, registry.ErrNotRegistered) {
		r.sendText(ctx, chatID, notRegisteredText)
		return
	}
	if err != nil {
		r.log.Error("get reference failed", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(ctx, chatID, internalErrText)
		return
	}

	st := domain.ComputeStats(birthAt, r.clk.Now())
	r.sendText(ctx, chatID, infoGreeting+"\n"+st.Line())
}

func (r *Router) handleHelp(ctx context.Context, chatID int64) {
	r.sendText(ctx, chatID, helpText)
}
