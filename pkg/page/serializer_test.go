package page

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge/pkg/models"
)

func samplePageWidgets() []*models.Widget {
	return []*models.Widget{
		{
			ID:       "text_1",
			Type:     models.WidgetText,
			Name:     "Headline",
			Position: models.Position{X: 100, Y: 200},
			Size:     models.Size{Width: 200, Height: 100},
			Props:    map[string]any{"text": "Welcome"},
			Styles:   map[string]any{"fontSize": "24px"},
			DataBinding: &models.DataBinding{
				Source:      models.BindingStatic,
				StaticData:  []any{map[string]any{"label": "Jan", "value": 10.0}},
				Environment: map[string]any{},
			},
			Events:    []models.Event{},
			IsVisible: true,
		},
		{
			ID:       "chart_1",
			Type:     models.WidgetChart,
			Name:     "Revenue",
			Position: models.Position{X: 0, Y: 400},
			Size:     models.Size{Width: 400, Height: 200},
			Props:    map[string]any{"chartType": "bar"},
			Styles:   map[string]any{},
			DataBinding: &models.DataBinding{
				Source:          models.BindingAPI,
				Endpoint:        "https://api.example.com/revenue",
				XField:          "month",
				YField:          "total",
				RefreshInterval: 30,
				Environment:     map[string]any{},
			},
			Events:    []models.Event{},
			IsVisible: true,
		},
		{
			ID:       "table_1",
			Type:     models.WidgetTable,
			Name:     "Users",
			Position: models.Position{X: 500, Y: 0},
			Size:     models.Size{Width: 300, Height: 200},
			Props:    map[string]any{},
			Styles:   map[string]any{},
			DataBinding: &models.DataBinding{
				Source:       models.BindingDatabase,
				Query:        "SELECT * FROM users",
				DataSourceID: "ds-1",
				Environment:  map[string]any{},
			},
			Events:    []models.Event{},
			IsVisible: true,
		},
		{
			ID:       "button_1",
			Type:     models.WidgetButton,
			Name:     "Save",
			Position: models.Position{X: 100, Y: 700},
			Size:     models.Size{Width: 200, Height: 50},
			Props:    map[string]any{"text": "Save"},
			Styles:   map[string]any{},
			DataBinding: &models.DataBinding{
				Source:             models.BindingComputed,
				ComputedExpression: "{{.count}} items",
				Environment:        map[string]any{"count": 3.0},
			},
			Events: []models.Event{{
				ID:      "event_1",
				Trigger: models.TriggerClick,
				Actions: []models.EventAction{
					{ID: "action_1", Type: models.ActionShowNotification, NotificationMsg: "Saved"},
					{ID: "action_2", Type: models.ActionNavigateTo, NavigationPath: "/done"},
				},
			}},
			IsVisible: true,
		},
	}
}

func TestDefinition_RoundTrip(t *testing.T) {
	widgets := samplePageWidgets()

	def := ToDefinition("page-1", "Home", widgets, nil)

	data, err := Encode(def)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	restored := FromDefinition(decoded)
	require.Len(t, restored, len(widgets))

	byID := make(map[string]*models.Widget, len(restored))
	for _, w := range restored {
		byID[w.ID] = w
	}

	for _, original := range widgets {
		got, ok := byID[original.ID]
		require.True(t, ok, "widget %s missing after round trip", original.ID)

		assert.Equal(t, original.Type, got.Type)
		assert.Equal(t, original.Name, got.Name)
		assert.Equal(t, original.Props, got.Props)
		assert.Equal(t, original.Events, got.Events)
		assert.Equal(t, original.DataBinding, got.DataBinding)
		assert.Equal(t, original.IsVisible, got.IsVisible)

		// Placement was grid-aligned going in, so it survives exactly.
		assert.Equal(t, original.Position, got.Position)
		assert.Equal(t, original.Size, got.Size)
	}
}

func TestToDefinition_QuantizesPlacement(t *testing.T) {
	widgets := []*models.Widget{{
		ID:        "text_1",
		Type:      models.WidgetText,
		Position:  models.Position{X: 130, Y: 70},
		Size:      models.Size{Width: 110, Height: 60},
		IsVisible: true,
	}}

	def := ToDefinition("page-1", "Home", widgets, nil)

	rect, ok := def.Layout["text_1"]
	require.True(t, ok)
	assert.Equal(t, 3, rect.X)
	assert.Equal(t, 1, rect.Y)
	assert.Equal(t, 2, rect.W)
	assert.Equal(t, 1, rect.H)

	restored := FromDefinition(def)
	require.Len(t, restored, 1)
	assert.Equal(t, models.Position{X: 150, Y: 50}, restored[0].Position)
	assert.Equal(t, models.Size{Width: 100, Height: 50}, restored[0].Size)
}

func TestToDefinition_DoesNotAliasWidgets(t *testing.T) {
	widgets := samplePageWidgets()

	def := ToDefinition("page-1", "Home", widgets, nil)

	def.Widgets[0].Props["text"] = "mutated"
	assert.Equal(t, "Welcome", widgets[0].Props["text"])
}

func TestFromDefinition_LayoutMapWins(t *testing.T) {
	def := models.PageDefinition{
		PageID: "page-1",
		Name:   "Home",
		Widgets: []*models.Widget{{
			ID:        "text_1",
			Type:      models.WidgetText,
			Layout:    models.LayoutRect{X: 1, Y: 1, W: 2, H: 1},
			IsVisible: true,
		}},
		Layout: map[string]models.LayoutRect{
			"text_1": {X: 4, Y: 2, W: 6, H: 3},
		},
	}

	restored := FromDefinition(def)
	require.Len(t, restored, 1)
	assert.Equal(t, models.Position{X: 200, Y: 100}, restored[0].Position)
	assert.Equal(t, models.Size{Width: 300, Height: 150}, restored[0].Size)
}

func TestDecode_RejectsBadTrigger(t *testing.T) {
	raw := []byte(`{
		"pageId": "page-1",
		"name": "Home",
		"widgets": [{
			"id": "button_1",
			"type": "button",
			"events": [{"id": "e1", "trigger": "onHover"}]
		}]
	}`)

	_, err := Decode(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid page definition")
}

func TestDecode_RejectsBadBindingSource(t *testing.T) {
	raw := []byte(`{
		"pageId": "page-1",
		"name": "Home",
		"widgets": [{
			"id": "chart_1",
			"type": "chart",
			"dataBinding": {"source": "websocket"}
		}]
	}`)

	_, err := Decode(raw)
	require.Error(t, err)
}

func TestDecode_RejectsMissingName(t *testing.T) {
	_, err := Decode([]byte(`{"pageId": "page-1", "widgets": []}`))
	require.Error(t, err)
}

func TestLoad_MalformedYieldsEmptyPage(t *testing.T) {
	def := Load([]byte(`{"pageId":`), slog.Default())

	assert.Empty(t, def.Widgets)
	assert.NotNil(t, def.Layout)
	assert.Equal(t, models.DefaultGlobalSettings(), def.GlobalSettings)
}

func TestLoad_ValidDocumentPassesThrough(t *testing.T) {
	def := ToDefinition("page-1", "Home", samplePageWidgets(), nil)

	data, err := Encode(def)
	require.NoError(t, err)

	loaded := Load(data, slog.Default())
	assert.Equal(t, "page-1", loaded.PageID)
	assert.Len(t, loaded.Widgets, 4)
}
