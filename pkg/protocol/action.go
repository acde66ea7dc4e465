// Package protocol defines the contracts between the event engine, the
// pluggable action implementations and the collaborators they act on.
package protocol

import (
	"context"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/models"
)

// Action is one executable step of an event's action chain. Execute
// returns a result for logging; an error means the single action failed.
// Failures never abort the remaining chain, the engine reports them and
// moves on.
type Action interface {
	Execute(ctx context.Context, executionCtx *ExecutionContext, logger *slog.Logger) (any, error)
}

// ActionFactory builds Action instances from their persisted definition
// and describes the action kind for the palette and the API.
type ActionFactory interface {
	Create(action models.EventAction) (Action, error)
	ID() string
	Name() string
	Description() string
	Schema() map[string]any
}
