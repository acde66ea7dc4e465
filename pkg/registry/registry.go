// Package registry keeps the factories for every executable action kind.
// The engine dispatches persisted EventAction definitions through it, and
// the API exposes the registered metadata to the builder UI.
package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

// Component is the published metadata of one registered action kind.
type Component struct {
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Schema      map[string]any `json:"schema"`
}

type Registry struct {
	logger          *slog.Logger
	actionFactories map[string]protocol.ActionFactory
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger:          logger,
		actionFactories: make(map[string]protocol.ActionFactory),
	}
}

// RegisterAction adds a factory; a factory registered twice under the same
// id silently replaces the previous one.
func (r *Registry) RegisterAction(factory protocol.ActionFactory) {
	r.actionFactories[factory.ID()] = factory
}

// CreateAction builds an executable action from its persisted definition.
func (r *Registry) CreateAction(action models.EventAction) (protocol.Action, error) {
	factory, ok := r.actionFactories[string(action.Type)]
	if !ok {
		return nil, fmt.Errorf("action type %q not registered", action.Type)
	}

	return factory.Create(action)
}

// IsActionRegistered reports whether the action kind is known.
func (r *Registry) IsActionRegistered(actionType string) bool {
	_, ok := r.actionFactories[actionType]

	return ok
}

// Components returns metadata for every registered action kind, sorted by
// type for stable API output.
func (r *Registry) Components() []Component {
	components := make([]Component, 0, len(r.actionFactories))

	for _, factory := range r.actionFactories {
		components = append(components, Component{
			Type:        factory.ID(),
			Name:        factory.Name(),
			Description: factory.Description(),
			Schema:      factory.Schema(),
		})
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i].Type < components[j].Type
	})

	return components
}
