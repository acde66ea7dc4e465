package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidget_Clone_DeepCopies(t *testing.T) {
	binding := DataBinding{Source: BindingStatic, StaticData: []any{"a"}}

	widget := &Widget{
		ID:    "text_1",
		Type:  WidgetText,
		Props: map[string]any{"text": "hello", "nested": map[string]any{"k": "v"}},
		Styles: map[string]any{
			"color": "#000000",
		},
		DataBinding: &binding,
		Events: []Event{{
			ID:      "event_1",
			Trigger: TriggerClick,
			Actions: []EventAction{{ID: "action_1", Type: ActionShowNotification, NotificationMsg: "hi"}},
		}},
		IsVisible: true,
	}

	clone := widget.Clone()

	clone.Props["text"] = "changed"
	clone.Props["nested"].(map[string]any)["k"] = "changed"
	clone.Styles["color"] = "#ffffff"
	clone.Events[0].Actions[0].NotificationMsg = "changed"
	clone.DataBinding.Source = BindingAPI

	assert.Equal(t, "hello", widget.Props["text"])
	assert.Equal(t, "v", widget.Props["nested"].(map[string]any)["k"])
	assert.Equal(t, "#000000", widget.Styles["color"])
	assert.Equal(t, "hi", widget.Events[0].Actions[0].NotificationMsg)
	assert.Equal(t, BindingStatic, widget.DataBinding.Source)
}

func TestWidget_EventsByTrigger_PreservesOrder(t *testing.T) {
	widget := &Widget{
		Events: []Event{
			{ID: "e1", Trigger: TriggerClick},
			{ID: "e2", Trigger: TriggerChange},
			{ID: "e3", Trigger: TriggerClick},
		},
	}

	matched := widget.EventsByTrigger(TriggerClick)

	require.Len(t, matched, 2)
	assert.Equal(t, "e1", matched[0].ID)
	assert.Equal(t, "e3", matched[1].ID)
}

func TestWidget_EventByID(t *testing.T) {
	widget := &Widget{Events: []Event{{ID: "e1", Trigger: TriggerSubmit}}}

	event, ok := widget.EventByID("e1")
	require.True(t, ok)
	assert.Equal(t, TriggerSubmit, event.Trigger)

	_, ok = widget.EventByID("missing")
	assert.False(t, ok)
}

func TestSeverity_OrDefault(t *testing.T) {
	assert.Equal(t, SeverityError, SeverityError.OrDefault())
	assert.Equal(t, SeverityInfo, Severity("").OrDefault())
	assert.Equal(t, SeverityInfo, Severity("fatal").OrDefault())
}

func TestCloneMap_NilYieldsEmpty(t *testing.T) {
	cloned := CloneMap(nil)

	require.NotNil(t, cloned)
	assert.Empty(t, cloned)
}
