package protocol

import (
	"context"

	"github.com/pageforge/pageforge/pkg/models"
)

// WidgetStore is the engine's view of the builder session's widget
// collection. Mutations are atomic with respect to the session.
type WidgetStore interface {
	Widget(id string) (*models.Widget, bool)
	SetVisible(id string, visible bool) bool
	MergeProps(id string, props map[string]any) bool

	// FindByEventID locates the widget owning the event with the given id,
	// for cross-widget triggering.
	FindByEventID(eventID string) (*models.Widget, models.Event, bool)
}

// VariableStore holds the app-level variables written by setVariable
// actions. Last write wins; there is no isolation between widgets.
type VariableStore interface {
	Set(ctx context.Context, name string, value any) error
	Get(ctx context.Context, name string) (any, bool, error)
	Delete(ctx context.Context, name string) error
}

// Notifier surfaces a transient user-visible notification.
type Notifier interface {
	Notify(ctx context.Context, message string, severity models.Severity)
}

// Navigator performs a full-page navigation side effect.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// QueryExecutor runs a query against a configured data source.
type QueryExecutor interface {
	ExecuteQuery(ctx context.Context, dataSourceID, query string, parameters map[string]any, limit int) (*models.QueryResult, error)
}

// APIClient performs a generic authenticated HTTP call.
type APIClient interface {
	Call(ctx context.Context, endpoint, method string, body map[string]any) (any, error)
}

// EventInvoker re-enters the event engine from inside an action chain.
// The engine's cycle guard travels with the execution context, so nested
// invocations cannot re-fire a trigger already on the current stack.
type EventInvoker interface {
	Invoke(ctx context.Context, executionCtx *ExecutionContext, widgetID string, trigger models.EventTrigger) error
}
