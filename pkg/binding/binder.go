package binding

import (
	"context"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

// Canvas is the binder's view of a live widget session: the widgets to
// resolve into plus the removal hook that ends their refresh schedules.
type Canvas interface {
	protocol.WidgetStore
	Widgets() []*models.Widget
	OnWidgetRemoved(hook func(widgetID string))
}

// Binder keeps a canvas's bound widgets resolved. Sync resolves every
// binding once and schedules auto-refresh for the ones that carry an
// interval; removing a widget from the canvas untracks it, so no
// resolution fires for a widget that left.
type Binder struct {
	canvas    Canvas
	resolver  *Resolver
	refresher *Refresher
}

func NewBinder(canvas Canvas, resolver *Resolver, logger *slog.Logger) *Binder {
	b := &Binder{
		canvas:   canvas,
		resolver: resolver,
	}

	b.refresher = NewRefresher(func(ctx context.Context, widgetID string) {
		resolver.ResolveInto(ctx, canvas, widgetID)
	}, logger)

	canvas.OnWidgetRemoved(b.refresher.Untrack)

	return b
}

// Sync resolves every bound widget synchronously, then tracks the ones
// whose binding carries a refresh interval.
func (b *Binder) Sync(ctx context.Context) {
	for _, widget := range b.canvas.Widgets() {
		if widget.DataBinding == nil {
			continue
		}

		b.resolver.ResolveInto(ctx, b.canvas, widget.ID)

		if widget.DataBinding.RefreshInterval > 0 {
			b.refresher.Track(widget.ID, widget.DataBinding.RefreshInterval)
		}
	}
}

// Tracked reports whether a widget currently auto-refreshes.
func (b *Binder) Tracked(widgetID string) bool {
	return b.refresher.Tracked(widgetID)
}

// Close stops every refresh schedule.
func (b *Binder) Close() {
	b.refresher.Stop()
}
