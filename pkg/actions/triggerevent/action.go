// Package triggerevent implements the triggerEvent action, which fires
// another widget's event from inside a running action chain.
package triggerevent

import (
	"context"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

// Action locates the widget owning the target event and re-enters the
// engine with that widget's trigger. The execution context's cycle guard
// prevents the nested chain from re-firing anything already running.
type Action struct {
	ID            string
	TargetEventID string
}

func (a *Action) Execute(ctx context.Context, executionCtx *protocol.ExecutionContext, logger *slog.Logger) (any, error) {
	if a.TargetEventID == "" {
		return nil, nil
	}

	widget, event, ok := executionCtx.Widgets.FindByEventID(a.TargetEventID)
	if !ok {
		logger.Debug("target event not found", "event_id", a.TargetEventID)

		return nil, nil
	}

	if err := executionCtx.Events.Invoke(ctx, executionCtx, widget.ID, event.Trigger); err != nil {
		return nil, err
	}

	return map[string]any{"widget_id": widget.ID, "trigger": string(event.Trigger)}, nil
}

type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

func (*Factory) ID() string   { return string(models.ActionTriggerEvent) }
func (*Factory) Name() string { return "Trigger Event" }

func (*Factory) Description() string {
	return "Fires another widget's event as part of the current action chain."
}

func (*Factory) Create(action models.EventAction) (protocol.Action, error) {
	return &Action{ID: action.ID, TargetEventID: action.TargetEventID}, nil
}

func (*Factory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"targetEventId": map[string]any{
				"type":        "string",
				"description": "The event to fire, identified by its id.",
			},
		},
		"required": []string{"targetEventId"},
	}
}
