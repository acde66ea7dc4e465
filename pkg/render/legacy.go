package render

import (
	"encoding/json"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/page"
)

// legacyDocument is the shape of pre-grid page definitions: a flat
// components list with no layout map.
type legacyDocument struct {
	Components []struct {
		ID      string         `json:"id"`
		Type    string         `json:"type"`
		Props   map[string]any `json:"props"`
		Styles  map[string]any `json:"styles"`
		Visible *bool          `json:"visible"`
	} `json:"components"`
}

// DecodeStored parses a stored page's definition document. Current
// documents go through schema validation; legacy documents with a
// components list are upgraded in memory. Anything else renders as an
// empty page with a warning.
func DecodeStored(pg models.Page, logger *slog.Logger) models.PageDefinition {
	raw := []byte(pg.Definition)

	def, err := page.Decode(raw)
	if err == nil {
		return def
	}

	var legacy legacyDocument
	if jsonErr := json.Unmarshal(raw, &legacy); jsonErr == nil && len(legacy.Components) > 0 {
		logger.Info("upgrading legacy page document", "page_id", pg.ID, "components", len(legacy.Components))

		return upgradeLegacy(pg, legacy)
	}

	logger.Warn("malformed page definition, rendering empty page", "page_id", pg.ID, "error", err)

	return models.PageDefinition{
		PageID:         pg.ID,
		Name:           pg.Name,
		Widgets:        []*models.Widget{},
		Layout:         map[string]models.LayoutRect{},
		DataSources:    []models.DataSourceRef{},
		GlobalSettings: models.DefaultGlobalSettings(),
	}
}

// upgradeLegacy maps flat components onto widgets stacked one grid row
// apart, since legacy documents carried no placement.
func upgradeLegacy(pg models.Page, legacy legacyDocument) models.PageDefinition {
	def := models.PageDefinition{
		PageID:         pg.ID,
		Name:           pg.Name,
		Widgets:        make([]*models.Widget, 0, len(legacy.Components)),
		Layout:         make(map[string]models.LayoutRect, len(legacy.Components)),
		DataSources:    []models.DataSourceRef{},
		GlobalSettings: models.DefaultGlobalSettings(),
	}

	for i, comp := range legacy.Components {
		visible := true
		if comp.Visible != nil {
			visible = *comp.Visible
		}

		rect := models.LayoutRect{X: 0, Y: i * 2, W: 4, H: 2}

		widget := &models.Widget{
			ID:        comp.ID,
			Type:      models.WidgetType(comp.Type),
			Props:     models.CloneMap(comp.Props),
			Styles:    models.CloneMap(comp.Styles),
			Events:    []models.Event{},
			IsVisible: visible,
			Layout:    rect,
		}

		def.Widgets = append(def.Widgets, widget)
		def.Layout[widget.ID] = rect
	}

	return def
}
