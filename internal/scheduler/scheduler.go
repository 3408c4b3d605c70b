package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// FireFunc is invoked by a due daily job with the owning chat id.
type FireFunc func(chatID int64)

// Daily keeps at most one recurring trigger per chat, firing once a day at a
// fixed wall-clock time in the configured zone. Job names are deterministic,
// so re-registering replaces rather than duplicates.
type Daily struct {
	cron *cron.Cron
	log  *zap.Logger
	fire FireFunc
	spec string

	mu   sync.Mutex
	jobs map[string]cron.EntryID
}

// NewDaily creates a scheduler firing at hour:minute every day in loc.
func NewDaily(hour, minute int, loc *time.Location, fire FireFunc, log *zap.Logger) *Daily {
	return &Daily{
		cron: cron.New(cron.WithLocation(loc)),
		log:  log,
		fire: fire,
		spec: fmt.Sprintf("%d %d * * *", minute, hour),
		jobs: make(map[string]cron.EntryID),
	}
}

// Start begins the trigger loop.
func (d *Daily) Start() { d.cron.Start() }

// Stop halts the trigger loop; running firings finish on their own.
func (d *Daily) Stop() { d.cron.Stop() }

func jobName(chatID int64) string {
	return fmt.Sprintf("daily_%d", chatID)
}

// RegisterDaily installs the recurring trigger for chatID, first cancelling
// any existing one with the same name. The cancel-then-install pair runs under
// the job-table lock, so concurrent registrations for the same chat cannot
// leave two live entries behind.
func (d *Daily) RegisterDaily(chatID int64) error {
	name := jobName(chatID)

	d.mu.Lock()
	defer d.mu.Unlock()

	if old, ok := d.jobs[name]; ok {
		d.cron.Remove(old)
		delete(d.jobs, name)
	}

	id, err := d.cron.AddFunc(d.spec, func() { d.fire(chatID) })
	if err != nil {
		return fmt.Errorf("install job %s: %w", name, err)
	}
	d.jobs[name] = id

	d.log.Info("daily job installed", zap.Int64("chatID", chatID), zap.String("spec", d.spec))
	return nil
}

// Cancel removes the trigger for chatID. No-op if none exists.
func (d *Daily) Cancel(chatID int64) {
	name := jobName(chatID)

	d.mu.Lock()
	defer d.mu.Unlock()

	if id, ok := d.jobs[name]; ok {
		d.cron.Remove(id)
		delete(d.jobs, name)
		d.log.Info("daily job cancelled", zap.Int64("chatID", chatID))
	}
}

// Scheduled reports whether chatID has a live trigger.
func (d *Daily) Scheduled(chatID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.jobs[jobName(chatID)]
	return ok
}

// Jobs returns the number of live triggers.
func (d *Daily) Jobs() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.jobs)
}
