// Package notify implements the showNotification action.
package notify

import (
	"context"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

// Action emits one transient notification. The message is forwarded
// verbatim; the severity falls back to info when unset.
type Action struct {
	ID       string
	Message  string
	Severity models.Severity
}

func (a *Action) Execute(ctx context.Context, executionCtx *protocol.ExecutionContext, _ *slog.Logger) (any, error) {
	if a.Message == "" {
		return nil, nil
	}

	executionCtx.Notifier.Notify(ctx, a.Message, a.Severity.OrDefault())

	return nil, nil
}

type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

func (*Factory) ID() string   { return string(models.ActionShowNotification) }
func (*Factory) Name() string { return "Show Notification" }

func (*Factory) Description() string {
	return "Shows a transient toast with the given message and severity."
}

func (*Factory) Create(action models.EventAction) (protocol.Action, error) {
	return &Action{
		ID:       action.ID,
		Message:  action.NotificationMsg,
		Severity: action.NotificationType,
	}, nil
}

func (*Factory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"notificationMessage": map[string]any{
				"type":        "string",
				"description": "Text shown to the user.",
			},
			"notificationType": map[string]any{
				"type":    "string",
				"default": "info",
				"enum":    []string{"info", "success", "warning", "error"},
			},
		},
		"required": []string{"notificationMessage"},
	}
}
