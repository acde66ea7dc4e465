package registry

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

type stubFactory struct {
	id     string
	create func(models.EventAction) (protocol.Action, error)
}

func (f *stubFactory) ID() string          { return f.id }
func (f *stubFactory) Name() string        { return "Stub " + f.id }
func (f *stubFactory) Description() string { return "stub" }

func (f *stubFactory) Schema() map[string]any {
	return map[string]any{"type": "object"}
}

func (f *stubFactory) Create(action models.EventAction) (protocol.Action, error) {
	if f.create != nil {
		return f.create(action)
	}

	return nil, nil
}

func TestRegistry_RegisterAndCreate(t *testing.T) {
	reg := NewRegistry(slog.Default())

	var got models.EventAction

	reg.RegisterAction(&stubFactory{
		id: "stub",
		create: func(action models.EventAction) (protocol.Action, error) {
			got = action

			return nil, nil
		},
	})

	require.True(t, reg.IsActionRegistered("stub"))

	_, err := reg.CreateAction(models.EventAction{ID: "a1", Type: "stub"})
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
}

func TestRegistry_CreateAction_Unregistered(t *testing.T) {
	reg := NewRegistry(slog.Default())

	_, err := reg.CreateAction(models.EventAction{Type: "teleport"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
	assert.False(t, reg.IsActionRegistered("teleport"))
}

func TestRegistry_RegisterTwiceReplaces(t *testing.T) {
	reg := NewRegistry(slog.Default())

	reg.RegisterAction(&stubFactory{id: "stub"})
	reg.RegisterAction(&stubFactory{id: "stub"})

	assert.Len(t, reg.Components(), 1)
}

func TestRegistry_Components_Sorted(t *testing.T) {
	reg := NewRegistry(slog.Default())

	for _, id := range []string{"zeta", "alpha", "mike"} {
		reg.RegisterAction(&stubFactory{id: id})
	}

	components := reg.Components()
	require.Len(t, components, 3)
	assert.Equal(t, "alpha", components[0].Type)
	assert.Equal(t, "mike", components[1].Type)
	assert.Equal(t, "zeta", components[2].Type)
	assert.Equal(t, "Stub alpha", components[0].Name)
	assert.NotNil(t, components[0].Schema)
}
