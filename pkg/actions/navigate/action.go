// Package navigate implements the navigateTo action.
package navigate

import (
	"context"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

// Action asks the host navigator for a full-page navigation. An empty
// path is a no-op.
type Action struct {
	ID   string
	Path string
}

func (a *Action) Execute(ctx context.Context, executionCtx *protocol.ExecutionContext, logger *slog.Logger) (any, error) {
	if a.Path == "" {
		return nil, nil
	}

	if err := executionCtx.Navigator.Navigate(ctx, a.Path); err != nil {
		logger.Error("navigation failed", "path", a.Path, "error", err)

		return nil, err
	}

	return map[string]any{"path": a.Path}, nil
}

type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

func (*Factory) ID() string   { return string(models.ActionNavigateTo) }
func (*Factory) Name() string { return "Navigate To" }

func (*Factory) Description() string {
	return "Navigates the app to the given path or URL."
}

func (*Factory) Create(action models.EventAction) (protocol.Action, error) {
	return &Action{ID: action.ID, Path: action.NavigationPath}, nil
}

func (*Factory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"navigationPath": map[string]any{
				"type":        "string",
				"description": "Path or URL to navigate to.",
			},
		},
		"required": []string{"navigationPath"},
	}
}
