// Package engine runs widget event chains. It resolves persisted action
// definitions through the registry and executes them strictly in order,
// with a cycle guard against triggerEvent loops.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pageforge/pageforge/pkg/eventbus"
	"github.com/pageforge/pageforge/pkg/events"
	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/otelhelper"
	"github.com/pageforge/pageforge/pkg/protocol"
	"github.com/pageforge/pageforge/pkg/registry"
)

// DefaultExecutingHighlight is how long a widget stays marked as
// executing after its chain completes, for the builder UI to highlight it.
const DefaultExecutingHighlight = 1000 * time.Millisecond

type Engine struct {
	registry  *registry.Registry
	bus       eventbus.EventBus
	tracer    trace.Tracer
	logger    *slog.Logger
	highlight time.Duration

	mu        sync.Mutex
	executing map[string]bool
}

type Option func(*Engine)

// WithEventBus publishes firing and failure events to the bus. Without it
// the engine runs silently.
func WithEventBus(bus eventbus.EventBus) Option {
	return func(e *Engine) { e.bus = bus }
}

// WithTracer wraps each firing and each action in a span.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) { e.tracer = tracer }
}

// WithExecutingHighlight overrides how long widgets stay marked as
// executing after their chain completes. Tests shorten it.
func WithExecutingHighlight(d time.Duration) Option {
	return func(e *Engine) { e.highlight = d }
}

func NewEngine(reg *registry.Registry, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		registry:  reg,
		logger:    logger.With("module", "engine"),
		highlight: DefaultExecutingHighlight,
		executing: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// FireEvent runs every event the widget declares for the trigger, in
// declaration order, each event's actions strictly sequentially. A failed
// action surfaces a notification and the chain continues. Re-entering a
// (widget, trigger) pair already on the invocation stack is skipped
// instead of recursing.
func (e *Engine) FireEvent(ctx context.Context, executionCtx *protocol.ExecutionContext, widgetID string, trigger models.EventTrigger) error {
	return e.fire(ctx, executionCtx, widgetID, trigger)
}

// Invoke satisfies the event invoker collaborator so triggerEvent actions
// can re-enter the engine through the same cycle guard.
func (e *Engine) Invoke(ctx context.Context, executionCtx *protocol.ExecutionContext, widgetID string, trigger models.EventTrigger) error {
	return e.fire(ctx, executionCtx, widgetID, trigger)
}

var _ protocol.EventInvoker = (*Engine)(nil)

// IsExecuting reports whether the widget has a chain running for any
// trigger, or finished one within the highlight window.
func (e *Engine) IsExecuting(widgetID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.executing[widgetID]
}

func (e *Engine) markExecuting(widgetID string) {
	e.mu.Lock()
	e.executing[widgetID] = true
	e.mu.Unlock()
}

// clearExecutingLater keeps the mark up for the highlight window after
// the chain completes, however long the chain itself ran.
func (e *Engine) clearExecutingLater(widgetID string) {
	time.AfterFunc(e.highlight, func() {
		e.mu.Lock()
		delete(e.executing, widgetID)
		e.mu.Unlock()
	})
}

func (e *Engine) fire(ctx context.Context, executionCtx *protocol.ExecutionContext, widgetID string, trigger models.EventTrigger) error {
	if !executionCtx.EnterTrigger(widgetID, trigger) {
		e.logger.Warn("event cycle detected, skipping", "widget_id", widgetID, "trigger", trigger)

		return nil
	}
	defer executionCtx.LeaveTrigger(widgetID, trigger)

	widget, ok := executionCtx.Widgets.Widget(widgetID)
	if !ok {
		return fmt.Errorf("widget %s not found", widgetID)
	}

	if executionCtx.ID == "" {
		executionCtx.ID = uuid.New().String()
	}

	logger := e.logger.With(
		"execution_id", executionCtx.ID,
		"widget_id", widgetID,
		"trigger", trigger,
	)

	if e.tracer != nil {
		var span trace.Span

		ctx, span = otelhelper.StartSpan(ctx, e.tracer, "engine.fire_event",
			attribute.String(otelhelper.ExecutionIDKey, executionCtx.ID),
			attribute.String(otelhelper.WidgetIDKey, widgetID),
			attribute.String(otelhelper.TriggerKey, string(trigger)),
		)
		defer span.End()
	}

	e.markExecuting(widgetID)
	defer e.clearExecutingLater(widgetID)

	started := time.Now()
	actionsRun := 0

	for _, event := range widget.EventsByTrigger(trigger) {
		for _, actionDef := range event.Actions {
			actionsRun++

			e.runAction(ctx, executionCtx, logger, widget, actionDef)
		}
	}

	if actionsRun > 0 {
		logger.Info("event chain completed", "actions_run", actionsRun)
	}

	e.publishFired(ctx, executionCtx, widget, trigger, actionsRun, time.Since(started))

	return nil
}

// runAction never returns an error: a failing action notifies the user
// and the chain moves on.
func (e *Engine) runAction(ctx context.Context, executionCtx *protocol.ExecutionContext, logger *slog.Logger, widget *models.Widget, actionDef models.EventAction) {
	if e.tracer != nil {
		var span trace.Span

		ctx, span = otelhelper.StartSpan(ctx, e.tracer, "engine.run_action",
			attribute.String(otelhelper.ActionIDKey, actionDef.ID),
			attribute.String(otelhelper.ActionTypeKey, string(actionDef.Type)),
		)
		defer span.End()
	}

	action, err := e.registry.CreateAction(actionDef)
	if err != nil {
		e.failAction(ctx, executionCtx, logger, widget, actionDef, err)

		return
	}

	if _, err := action.Execute(ctx, executionCtx, logger); err != nil {
		e.failAction(ctx, executionCtx, logger, widget, actionDef, err)
	}
}

func (e *Engine) failAction(ctx context.Context, executionCtx *protocol.ExecutionContext, logger *slog.Logger, widget *models.Widget, actionDef models.EventAction, err error) {
	logger.Error("action failed",
		"action_id", actionDef.ID,
		"action_type", actionDef.Type,
		"error", err,
	)

	executionCtx.Notifier.Notify(ctx, fmt.Sprintf("Action failed: %s", actionDef.Type), models.SeverityError)

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		otelhelper.SetError(span, err,
			attribute.String(otelhelper.ActionIDKey, actionDef.ID),
			attribute.String(otelhelper.ActionTypeKey, string(actionDef.Type)),
		)
	}

	if e.bus == nil {
		return
	}

	failed := events.WidgetActionFailed{
		BaseEvent:   events.NewBaseEvent(events.WidgetActionFailedEvent, executionCtx.PageID),
		ExecutionID: executionCtx.ID,
		WidgetID:    widget.ID,
		ActionID:    actionDef.ID,
		ActionType:  actionDef.Type,
		Error:       err.Error(),
	}

	if err := e.bus.Publish(ctx, executionCtx.PageID, failed); err != nil {
		logger.Error("failed to publish action failure", "error", err)
	}
}

func (e *Engine) publishFired(ctx context.Context, executionCtx *protocol.ExecutionContext, widget *models.Widget, trigger models.EventTrigger, actionsRun int, duration time.Duration) {
	if e.bus == nil {
		return
	}

	fired := events.WidgetEventFired{
		BaseEvent:   events.NewBaseEvent(events.WidgetEventFiredEvent, executionCtx.PageID),
		ExecutionID: executionCtx.ID,
		WidgetID:    widget.ID,
		Trigger:     trigger,
		ActionsRun:  actionsRun,
		DurationMs:  duration.Milliseconds(),
	}

	if err := e.bus.Publish(ctx, executionCtx.PageID, fired); err != nil {
		e.logger.Error("failed to publish event firing", "error", err)
	}
}
