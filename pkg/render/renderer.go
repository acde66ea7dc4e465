package render

import (
	"fmt"
	"log/slog"

	"github.com/pageforge/pageforge/pkg/chart"
	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/palette"
)

// Renderer builds render trees from page definitions.
type Renderer struct {
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) *Renderer {
	return &Renderer{logger: logger.With("module", "renderer")}
}

// RenderPage produces the tree for one definition. Widget order is
// preserved. Hidden widgets appear with the hidden flag in edit mode and
// are dropped otherwise; a published page with nothing visible renders a
// single placeholder node.
func (r *Renderer) RenderPage(def models.PageDefinition, mode Mode) *Node {
	root := &Node{
		Type:     NodeTypePage,
		Props:    map[string]any{"pageId": def.PageID, "name": def.Name},
		Children: make([]*Node, 0, len(def.Widgets)),
	}

	for _, widget := range def.Widgets {
		if !widget.IsVisible && mode != ModeEdit {
			continue
		}

		node := r.renderWidget(widget, mode)
		if rect, ok := def.Layout[widget.ID]; ok {
			node.Layout = rect
		}

		root.Children = append(root.Children, node)
	}

	if mode == ModePublished && len(root.Children) == 0 {
		root.Children = append(root.Children, &Node{
			Type: models.WidgetText,
			Text: EmptyPageText,
		})
	}

	return root
}

func (r *Renderer) renderWidget(widget *models.Widget, mode Mode) *Node {
	if _, known := palette.Lookup(widget.Type); !known {
		r.logger.Warn("unknown widget type", "widget_id", widget.ID, "type", widget.Type)

		return &Node{
			WidgetID: widget.ID,
			Type:     widget.Type,
			Text:     fmt.Sprintf("Unknown component type: %s", widget.Type),
			Layout:   widget.Layout,
			Hidden:   !widget.IsVisible && mode == ModeEdit,
			Fallback: true,
		}
	}

	node := &Node{
		WidgetID: widget.ID,
		Type:     widget.Type,
		Text:     textFromProps(widget),
		Props:    models.CloneMap(widget.Props),
		Styles:   models.CloneMap(widget.Styles),
		Layout:   widget.Layout,
		Hidden:   !widget.IsVisible && mode == ModeEdit,
	}

	if widget.Type == models.WidgetChart {
		node.Chart = chartGeometry(widget)
	}

	return node
}

// chartGeometry derives the vector geometry from the widget's resolved
// rows and chart configuration.
func chartGeometry(widget *models.Widget) *chart.Geometry {
	rows, _ := widget.Props["data"].([]any)
	points := chart.PointsFromRows(rows)

	chartType := chart.Bar
	if t, ok := widget.Props["chartType"].(string); ok && t != "" {
		chartType = chart.Type(t)
	}

	colors := stringSlice(widget.Props["colors"])

	geom := chart.Build(points, chartType, colors)

	return &geom
}

// textFromProps extracts the widget's primary display text, checking the
// conventional prop names in priority order.
func textFromProps(widget *models.Widget) string {
	for _, key := range []string{"text", "label", "content", "title", "placeholder"} {
		if v, ok := widget.Props[key].(string); ok && v != "" {
			return v
		}
	}

	return ""
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))

	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}
