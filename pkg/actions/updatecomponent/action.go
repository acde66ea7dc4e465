// Package updatecomponent implements the updateComponent action: a shallow
// merge of configured props into a target widget.
package updatecomponent

import (
	"context"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

// Action merges UpdateProps into the target widget's props. Missing target
// or an empty patch is a no-op.
type Action struct {
	ID          string
	TargetID    string
	UpdateProps map[string]any
}

func (a *Action) Execute(_ context.Context, executionCtx *protocol.ExecutionContext, logger *slog.Logger) (any, error) {
	if a.TargetID == "" || len(a.UpdateProps) == 0 {
		return nil, nil
	}

	changed := executionCtx.Widgets.MergeProps(a.TargetID, a.UpdateProps)
	if !changed {
		logger.Debug("update target not found", "target_id", a.TargetID)

		return nil, nil
	}

	return map[string]any{"target_id": a.TargetID, "updated_keys": len(a.UpdateProps)}, nil
}

type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

func (*Factory) ID() string   { return string(models.ActionUpdateComponent) }
func (*Factory) Name() string { return "Update Component" }

func (*Factory) Description() string {
	return "Shallow-merges the given props into the target widget, preserving unmentioned keys."
}

func (*Factory) Create(action models.EventAction) (protocol.Action, error) {
	return &Action{
		ID:          action.ID,
		TargetID:    action.TargetComponentID,
		UpdateProps: models.CloneMap(action.UpdateProps),
	}, nil
}

func (*Factory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"targetComponentId": map[string]any{
				"type":        "string",
				"description": "The widget whose props to update.",
			},
			"updateProps": map[string]any{
				"type":        "object",
				"description": "Props merged into the target widget.",
			},
		},
		"required": []string{"targetComponentId", "updateProps"},
	}
}
