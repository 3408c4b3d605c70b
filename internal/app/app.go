package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/koaskas/life-counter-bot/internal/clock"
	"github.com/koaskas/life-counter-bot/internal/config"
	"github.com/koaskas/life-counter-bot/internal/notify"
	"github.com/koaskas/life-counter-bot/internal/registry"
	"github.com/koaskas/life-counter-bot/internal/scheduler"
	"github.com/koaskas/life-counter-bot/internal/store"
	"github.com/koaskas/life-counter-bot/internal/telegram"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	bot     *tgbotapi.BotAPI
	httpSrv *http.Server
	reg     registry.Registry
	sched   *scheduler.Daily
	router  *telegram.Router
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, bot: bot, httpSrv: srv}, nil
}

func (a *App) Run(ctx context.Context) error {
	loc := a.cfg.Location()
	a.log.Info("starting life-counter-bot",
		zap.String("notifyTime", a.cfg.NotifyTime),
		zap.String("zone", loc.String()),
		zap.Bool("gated", a.cfg.AccessKey != ""),
		zap.Bool("durable", a.cfg.DBPath != ""),
	)

	// Registry backend is a configuration choice: volatile by default,
	// SQLite when DB_PATH is set.
	if a.cfg.DBPath != "" {
		repo, err := store.Open(ctx, a.cfg.DBPath)
		if err != nil {
			a.log.Error("open sqlite failed", zap.Error(err))
			return err
		}
		a.reg = repo
		a.log.Info("sqlite registry ready", zap.String("path", a.cfg.DBPath))
	} else {
		a.reg = registry.NewMemory()
	}

	client := telegram.NewClient(a.bot, a.cfg.SendRate)
	clk := clock.NewSystem(loc)
	dispatcher := notify.New(a.reg, clk, client, a.log)

	hour, minute := a.cfg.NotifyHourMinute()
	a.sched = scheduler.NewDaily(hour, minute, loc, dispatcher.Fire, a.log)
	a.restoreSchedules(ctx)

	a.router = telegram.NewRouter(client, a.log, a.reg, a.sched, clk,
		a.cfg.AccessKey, loc, a.cfg.NotifyTime)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	a.sched.Start()
	defer a.sched.Stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")

			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := a.httpSrv.Shutdown(shCtx)
			cancel()

			if err != nil {
				a.log.Warn("http server shutdown error", zap.Error(err))
			}
			if a.reg != nil {
				_ = a.reg.Close()
			}
			return nil

		case upd := <-updCh:
			a.router.HandleUpdate(ctx, upd)
		}
	}
}

// restoreSchedules re-installs daily jobs for every stored user. With the
// in-memory registry this is a no-op; with SQLite it brings schedules back
// after a restart. Firings missed while the process was down are skipped.
func (a *App) restoreSchedules(ctx context.Context) {
	users, err := a.reg.All(ctx)
	if err != nil {
		a.log.Warn("schedule restore failed", zap.Error(err))
		return
	}
	for _, u := range users {
		if err := a.sched.RegisterDaily(u.ChatID); err != nil {
			a.log.Warn("restore daily job failed", zap.Int64("chatID", u.ChatID), zap.Error(err))
		}
	}
	if len(users) > 0 {
		a.log.Info("schedules restored", zap.Int("users", len(users)))
	}
}
