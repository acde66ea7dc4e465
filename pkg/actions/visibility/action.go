// Package visibility implements the showComponent and hideComponent
// actions, which flip a target widget's visible flag.
package visibility

import (
	"context"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

// Action shows or hides its target widget. A missing target id is a
// silent no-op, per the engine's failure policy for structural actions.
type Action struct {
	ID       string
	TargetID string
	Show     bool
}

func (a *Action) Execute(_ context.Context, executionCtx *protocol.ExecutionContext, logger *slog.Logger) (any, error) {
	if a.TargetID == "" {
		return nil, nil
	}

	changed := executionCtx.Widgets.SetVisible(a.TargetID, a.Show)
	if !changed {
		logger.Debug("visibility target not found", "target_id", a.TargetID)

		return nil, nil
	}

	return map[string]any{"target_id": a.TargetID, "visible": a.Show}, nil
}

// ShowFactory creates showComponent actions.
type ShowFactory struct{}

func NewShowFactory() *ShowFactory { return &ShowFactory{} }

func (*ShowFactory) ID() string   { return string(models.ActionShowComponent) }
func (*ShowFactory) Name() string { return "Show Component" }

func (*ShowFactory) Description() string {
	return "Makes the target widget visible."
}

func (*ShowFactory) Create(action models.EventAction) (protocol.Action, error) {
	return &Action{ID: action.ID, TargetID: action.TargetComponentID, Show: true}, nil
}

func (*ShowFactory) Schema() map[string]any {
	return targetSchema("The widget to show.")
}

// HideFactory creates hideComponent actions.
type HideFactory struct{}

func NewHideFactory() *HideFactory { return &HideFactory{} }

func (*HideFactory) ID() string   { return string(models.ActionHideComponent) }
func (*HideFactory) Name() string { return "Hide Component" }

func (*HideFactory) Description() string {
	return "Hides the target widget; hidden widgets are skipped outside edit mode."
}

func (*HideFactory) Create(action models.EventAction) (protocol.Action, error) {
	return &Action{ID: action.ID, TargetID: action.TargetComponentID, Show: false}, nil
}

func (*HideFactory) Schema() map[string]any {
	return targetSchema("The widget to hide.")
}

func targetSchema(description string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"targetComponentId": map[string]any{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"targetComponentId"},
	}
}
