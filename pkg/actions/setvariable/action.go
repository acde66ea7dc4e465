// Package setvariable implements the setVariable action, writing to the
// app-level variable store.
package setvariable

import (
	"context"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

// Action stores a value under the given variable name. Last write wins.
type Action struct {
	ID    string
	Name  string
	Value any
}

func (a *Action) Execute(ctx context.Context, executionCtx *protocol.ExecutionContext, logger *slog.Logger) (any, error) {
	if a.Name == "" {
		return nil, nil
	}

	if err := executionCtx.Variables.Set(ctx, a.Name, a.Value); err != nil {
		logger.Error("failed to set variable", "name", a.Name, "error", err)

		return nil, err
	}

	return map[string]any{"name": a.Name}, nil
}

type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

func (*Factory) ID() string   { return string(models.ActionSetVariable) }
func (*Factory) Name() string { return "Set Variable" }

func (*Factory) Description() string {
	return "Stores a value in the app-level variable store under the given name."
}

func (*Factory) Create(action models.EventAction) (protocol.Action, error) {
	return &Action{
		ID:    action.ID,
		Name:  action.VariableName,
		Value: action.VariableValue,
	}, nil
}

func (*Factory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"variableName": map[string]any{
				"type":        "string",
				"description": "The variable to write.",
			},
			"variableValue": map[string]any{
				"description": "Any JSON value to store.",
			},
		},
		"required": []string{"variableName"},
	}
}
