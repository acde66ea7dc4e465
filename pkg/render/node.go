// Package render turns a page definition into a render tree. Rendering is
// pure: the same definition, mode and resolved props always produce the
// same tree, and no widget state is mutated.
package render

import (
	"github.com/pageforge/pageforge/pkg/chart"
	"github.com/pageforge/pageforge/pkg/models"
)

// Mode selects what the tree is for. Edit keeps hidden widgets so the
// builder can show them dimmed; preview and published drop them.
type Mode string

const (
	ModeEdit      Mode = "edit"
	ModePreview   Mode = "preview"
	ModePublished Mode = "published"
)

// Node is one element of the render tree.
type Node struct {
	WidgetID string            `json:"widgetId,omitempty"`
	Type     models.WidgetType `json:"type"`
	Text     string            `json:"text,omitempty"`
	Props    map[string]any    `json:"props,omitempty"`
	Styles   map[string]any    `json:"styles,omitempty"`
	Layout   models.LayoutRect `json:"layout"`
	Hidden   bool              `json:"hidden,omitempty"`
	Fallback bool              `json:"fallback,omitempty"`
	Chart    *chart.Geometry   `json:"chart,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// NodeTypePage is the root node's type.
const NodeTypePage models.WidgetType = "page"

// EmptyPageText is shown when a published page has nothing to render.
const EmptyPageText = "No Content Available"
