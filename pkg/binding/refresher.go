package binding

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Refresher schedules periodic re-resolution for widgets whose binding
// carries a refresh interval. Each tracked widget owns exactly one cron
// entry; untracking removes it, so no resolution fires for a widget after
// it leaves the canvas.
type Refresher struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]cron.EntryID
	resolve func(ctx context.Context, widgetID string)
	logger  *slog.Logger
	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewRefresher starts the scheduler. resolve is invoked once per interval
// for each tracked widget until Untrack or Stop.
func NewRefresher(resolve func(ctx context.Context, widgetID string), logger *slog.Logger) *Refresher {
	ctx, cancel := context.WithCancel(context.Background())

	r := &Refresher{
		cron:    cron.New(),
		entries: make(map[string]cron.EntryID),
		resolve: resolve,
		logger:  logger.With("module", "binding_refresher"),
		baseCtx: ctx,
		cancel:  cancel,
	}
	r.cron.Start()

	return r
}

// Track begins auto-refreshing a widget every intervalSeconds. Tracking an
// already-tracked widget replaces its schedule. Non-positive intervals
// schedule nothing.
func (r *Refresher) Track(widgetID string, intervalSeconds int) {
	r.Untrack(widgetID)

	if intervalSeconds <= 0 {
		return
	}

	entryID, err := r.cron.AddFunc(fmt.Sprintf("@every %ds", intervalSeconds), func() {
		r.runOnce(widgetID)
	})
	if err != nil {
		r.logger.Error("failed to schedule refresh", "widget_id", widgetID, "error", err)

		return
	}

	r.mu.Lock()
	r.entries[widgetID] = entryID
	r.mu.Unlock()
}

// Untrack stops auto-refreshing a widget. After it returns no new
// resolution is scheduled for that widget.
func (r *Refresher) Untrack(widgetID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entryID, ok := r.entries[widgetID]; ok {
		r.cron.Remove(entryID)
		delete(r.entries, widgetID)
	}
}

// Tracked reports whether a widget currently has a refresh schedule.
func (r *Refresher) Tracked(widgetID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[widgetID]

	return ok
}

// Stop cancels every schedule and waits for in-flight resolutions started
// by the scheduler to complete.
func (r *Refresher) Stop() {
	r.mu.Lock()
	r.entries = make(map[string]cron.EntryID)
	r.mu.Unlock()

	stopCtx := r.cron.Stop()
	<-stopCtx.Done()
	r.cancel()
}

func (r *Refresher) runOnce(widgetID string) {
	if r.baseCtx.Err() != nil {
		return
	}

	r.resolve(r.baseCtx, widgetID)
}
