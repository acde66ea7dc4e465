// Package page converts between the in-memory widget collection and the
// persisted page-definition document. Saving quantizes pixel placement to
// grid units; loading reconstructs it, so save/load round-trips the
// canvas including every binding kind and event chain.
package page

import (
	"encoding/json"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/layout"
	"github.com/pageforge/pageforge/pkg/models"
)

// ToDefinition builds the persisted document for one page. Widgets are
// deep-copied, their pixel placement is quantized into the layout map and
// the global settings get their defaults when unset.
func ToDefinition(pageID, name string, widgets []*models.Widget, dataSources []models.DataSourceRef) models.PageDefinition {
	def := models.PageDefinition{
		PageID:         pageID,
		Name:           name,
		Widgets:        make([]*models.Widget, 0, len(widgets)),
		Layout:         make(map[string]models.LayoutRect, len(widgets)),
		DataSources:    dataSources,
		GlobalSettings: models.DefaultGlobalSettings(),
	}

	if def.DataSources == nil {
		def.DataSources = []models.DataSourceRef{}
	}

	for _, w := range widgets {
		clone := w.Clone()
		clone.Layout = layout.RectFromPixels(w.Position, w.Size)
		def.Widgets = append(def.Widgets, clone)
		def.Layout[clone.ID] = clone.Layout
	}

	return def
}

// FromDefinition reconstructs the editable widget collection. The layout
// map wins over the per-widget rect when both are present; widgets absent
// from the map fall back to their embedded rect.
func FromDefinition(def models.PageDefinition) []*models.Widget {
	widgets := make([]*models.Widget, 0, len(def.Widgets))

	for _, w := range def.Widgets {
		clone := w.Clone()

		rect := clone.Layout
		if mapped, ok := def.Layout[clone.ID]; ok {
			rect = mapped
			clone.Layout = mapped
		}

		clone.Position, clone.Size = layout.PixelsFromRect(rect)
		widgets = append(widgets, clone)
	}

	return widgets
}

// Encode serializes a definition to its stored JSON form.
func Encode(def models.PageDefinition) ([]byte, error) {
	return json.Marshal(def)
}

// Decode parses and validates a stored definition. It fails on malformed
// JSON and on documents that do not satisfy the page schema.
func Decode(data []byte) (models.PageDefinition, error) {
	if err := ValidateDocument(data); err != nil {
		return models.PageDefinition{}, err
	}

	var def models.PageDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return models.PageDefinition{}, err
	}

	return def, nil
}

// Load is the lenient variant used on the render path: a malformed
// document yields an empty page with a warning instead of an error, so a
// corrupt save never takes the whole app down.
func Load(data []byte, logger *slog.Logger) models.PageDefinition {
	def, err := Decode(data)
	if err != nil {
		logger.Warn("malformed page definition, rendering empty page", "error", err)

		return models.PageDefinition{
			Widgets:        []*models.Widget{},
			Layout:         map[string]models.LayoutRect{},
			DataSources:    []models.DataSourceRef{},
			GlobalSettings: models.DefaultGlobalSettings(),
		}
	}

	return def
}
