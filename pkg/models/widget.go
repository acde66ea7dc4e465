// Package models defines the core domain models for the page builder:
// widgets, data bindings, events, actions and the persisted page definition.
package models

// CellSize is the fixed pixel size of one grid unit. Pixel positions are
// quantized by this factor at serialization boundaries only.
const CellSize = 50

// WidgetType identifies one kind of placeable widget. The set is open:
// unknown types are rendered with a fallback instead of rejected.
type WidgetType string

const (
	WidgetButton     WidgetType = "button"
	WidgetText       WidgetType = "text"
	WidgetInput      WidgetType = "input"
	WidgetTextarea   WidgetType = "textarea"
	WidgetSelect     WidgetType = "select"
	WidgetCheckbox   WidgetType = "checkbox"
	WidgetRadio      WidgetType = "radio"
	WidgetContainer  WidgetType = "container"
	WidgetCard       WidgetType = "card"
	WidgetGrid       WidgetType = "grid"
	WidgetFlex       WidgetType = "flex"
	WidgetNavbar     WidgetType = "navbar"
	WidgetBreadcrumb WidgetType = "breadcrumb"
	WidgetPagination WidgetType = "pagination"
	WidgetTabs       WidgetType = "tabs"
	WidgetTab        WidgetType = "tab"
	WidgetTable      WidgetType = "table"
	WidgetList       WidgetType = "list"
	WidgetChart      WidgetType = "chart"
	WidgetImage      WidgetType = "image"
	WidgetCarousel   WidgetType = "carousel"
	WidgetAlert      WidgetType = "alert"
	WidgetBadge      WidgetType = "badge"
	WidgetProgress   WidgetType = "progress"
	WidgetSpinner    WidgetType = "spinner"
	WidgetModal      WidgetType = "modal"
	WidgetAccordion  WidgetType = "accordion"
	WidgetStepper    WidgetType = "stepper"
	WidgetTimeline   WidgetType = "timeline"
	WidgetForm       WidgetType = "form"
	WidgetHeader     WidgetType = "header"
	WidgetFooter     WidgetType = "footer"
	WidgetSidebar    WidgetType = "sidebar"
	WidgetDivider    WidgetType = "divider"
)

// LayoutRect is a widget's placement in grid units.
type LayoutRect struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	W    int  `json:"w"    validate:"min=1"`
	H    int  `json:"h"    validate:"min=1"`
	MinW *int `json:"minW,omitempty"`
	MinH *int `json:"minH,omitempty"`
	MaxW *int `json:"maxW,omitempty"`
	MaxH *int `json:"maxH,omitempty"`
}

// Position is an edit-time pixel placement. It is never persisted; the
// grid LayoutRect is the durable form.
type Position struct {
	X float64 `json:"-"`
	Y float64 `json:"-"`
}

// Size is an edit-time pixel extent, derived from the grid layout on load.
type Size struct {
	Width  float64 `json:"-"`
	Height float64 `json:"-"`
}

// Widget is a single placed UI element on a page.
type Widget struct {
	ID          string         `json:"id"        validate:"required"`
	Type        WidgetType     `json:"type"      validate:"required"`
	Name        string         `json:"name"`
	Props       map[string]any `json:"props"`
	Styles      map[string]any `json:"styles"`
	DataBinding *DataBinding   `json:"dataBinding,omitempty"`
	Events      []Event        `json:"events"`
	IsVisible   bool           `json:"isVisible"`
	Layout      LayoutRect     `json:"layout"`

	// Edit-time pixel placement, kept consistent with Layout via CellSize.
	Position Position `json:"-"`
	Size     Size     `json:"-"`
}

// EventsByTrigger returns the widget's events whose trigger matches, in
// declaration order.
func (w *Widget) EventsByTrigger(trigger EventTrigger) []Event {
	matched := make([]Event, 0, len(w.Events))

	for _, ev := range w.Events {
		if ev.Trigger == trigger {
			matched = append(matched, ev)
		}
	}

	return matched
}

// EventByID returns the widget's event with the given id.
func (w *Widget) EventByID(eventID string) (Event, bool) {
	for _, ev := range w.Events {
		if ev.ID == eventID {
			return ev, true
		}
	}

	return Event{}, false
}

// Clone returns a deep copy. Props, styles, events and binding never share
// memory with the source widget.
func (w *Widget) Clone() *Widget {
	clone := *w
	clone.Props = CloneMap(w.Props)
	clone.Styles = CloneMap(w.Styles)
	clone.Events = make([]Event, len(w.Events))

	for i, ev := range w.Events {
		clone.Events[i] = ev.Clone()
	}

	if w.DataBinding != nil {
		binding := w.DataBinding.Clone()
		clone.DataBinding = &binding
	}

	return &clone
}

// CloneMap deep-copies a props/styles style map. Nested maps and slices
// are copied; scalar values are shared.
func CloneMap(src map[string]any) map[string]any {
	if src == nil {
		return map[string]any{}
	}

	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}

	return dst
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneMap(val)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = cloneValue(item)
		}

		return items
	default:
		return v
	}
}
