// Package builder holds the editing session: the mutable widget collection
// of one page and every operation the canvas performs on it. All mutation
// goes through the session so it stays atomic with respect to concurrent
// handlers, and so widget removal can release attached resources such as
// auto-refresh timers.
package builder

import (
	"fmt"
	"sync"
	"time"

	"github.com/pageforge/pageforge/pkg/layout"
	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/palette"
)

const (
	defaultWidgetWidth  = 200
	defaultWidgetHeight = 60
	duplicateOffset     = 20
)

// Session owns one page's widget collection while it is being edited.
type Session struct {
	mu sync.Mutex

	appID       string
	widgets     []*models.Widget
	selectedID  string
	snapEnabled bool
	gridSize    int
	usedIDs     map[string]bool
	seq         int

	removedHooks []func(widgetID string)
}

// NewSession creates an empty session for an app's page. Snap-to-grid
// starts enabled at the canvas grid size.
func NewSession(appID string) *Session {
	return &Session{
		appID:       appID,
		widgets:     make([]*models.Widget, 0),
		snapEnabled: true,
		gridSize:    layout.CanvasGridSize,
		usedIDs:     make(map[string]bool),
	}
}

// AppID returns the owning app's identifier.
func (s *Session) AppID() string { return s.appID }

// OnWidgetRemoved registers a hook invoked after a widget leaves the
// collection, outside the session lock.
func (s *Session) OnWidgetRemoved(hook func(widgetID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removedHooks = append(s.removedHooks, hook)
}

// SetSnap toggles snap-to-grid and its grid size for this session.
func (s *Session) SetSnap(enabled bool, gridSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapEnabled = enabled
	if gridSize > 0 {
		s.gridSize = gridSize
	}
}

// AddWidget places a new widget of the given type using the palette's
// defaults and the layout engine's drop position, selects it and returns
// it. Unknown types still produce a widget; they render as a fallback.
func (s *Session) AddWidget(widgetType models.WidgetType) *models.Widget {
	s.mu.Lock()
	defer s.mu.Unlock()

	x, y := layout.NextDropPosition(s.widgets, widgetType)
	x, y = layout.SnapToGrid(x, y, s.gridSize, s.snapEnabled)

	pos := models.Position{X: x, Y: y}
	size := models.Size{Width: defaultWidgetWidth, Height: defaultWidgetHeight}

	widget := &models.Widget{
		ID:    s.nextID(widgetType),
		Type:  widgetType,
		Name:  fmt.Sprintf("%s %d", palette.DisplayName(widgetType), len(s.widgets)+1),
		Props: palette.DefaultProps(widgetType),
		Styles: map[string]any{
			"backgroundColor": "transparent",
			"color":           "#000000",
			"fontSize":        "14px",
			"padding":         "8px",
			"margin":          "4px",
			"borderRadius":    "4px",
			"border":          "1px solid #ddd",
		},
		Events:    []models.Event{},
		IsVisible: true,
		Position:  pos,
		Size:      size,
		Layout:    layout.RectFromPixels(pos, size),
	}

	s.widgets = append(s.widgets, widget)
	s.selectedID = widget.ID

	return widget.Clone()
}

// nextID builds a type-and-timestamp id and guarantees uniqueness within
// the session even when two widgets land on the same millisecond.
func (s *Session) nextID(widgetType models.WidgetType) string {
	id := fmt.Sprintf("%s_%d", widgetType, time.Now().UnixMilli())

	for s.usedIDs[id] {
		s.seq++
		id = fmt.Sprintf("%s_%d_%d", widgetType, time.Now().UnixMilli(), s.seq)
	}

	s.usedIDs[id] = true

	return id
}

// Widgets returns a deep copy of the collection in canvas order.
func (s *Session) Widgets() []*models.Widget {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Widget, len(s.widgets))
	for i, w := range s.widgets {
		out[i] = w.Clone()
	}

	return out
}

// Widget returns a copy of one widget.
func (s *Session) Widget(id string) (*models.Widget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w := s.find(id); w != nil {
		return w.Clone(), true
	}

	return nil, false
}

// Count returns the number of widgets on the canvas.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.widgets)
}

// Select marks a widget as the selection target; an empty id clears it.
func (s *Session) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedID = id
}

// Selected returns the currently selected widget id.
func (s *Session) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selectedID
}

// UpdateWidgetProps shallow-merges props into a widget, preserving keys
// the patch does not mention.
func (s *Session) UpdateWidgetProps(id string, props map[string]any) bool {
	return s.MergeProps(id, props)
}

// UpdateWidgetStyles shallow-merges style overrides into a widget.
func (s *Session) UpdateWidgetStyles(id string, styles map[string]any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return false
	}

	if w.Styles == nil {
		w.Styles = make(map[string]any, len(styles))
	}

	for k, v := range styles {
		w.Styles[k] = v
	}

	return true
}

// SetDataBinding replaces a widget's binding descriptor.
func (s *Session) SetDataBinding(id string, binding *models.DataBinding) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return false
	}

	if binding == nil {
		w.DataBinding = nil

		return true
	}

	cloned := binding.Clone()
	w.DataBinding = &cloned

	return true
}

// Rename sets a widget's display name.
func (s *Session) Rename(id, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return false
	}

	w.Name = name

	return true
}

// RemoveWidget deletes a widget; removal hooks fire after the lock is
// released so they can call back into the session.
func (s *Session) RemoveWidget(id string) bool {
	s.mu.Lock()

	idx := -1
	for i, w := range s.widgets {
		if w.ID == id {
			idx = i

			break
		}
	}

	if idx < 0 {
		s.mu.Unlock()

		return false
	}

	s.widgets = append(s.widgets[:idx], s.widgets[idx+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}

	hooks := make([]func(string), len(s.removedHooks))
	copy(hooks, s.removedHooks)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook(id)
	}

	return true
}

// DuplicateWidget clones a widget under a fresh id, suffixes the name and
// offsets the copy so it never lands exactly on the original.
func (s *Session) DuplicateWidget(id string) (*models.Widget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.find(id)
	if src == nil {
		return nil, false
	}

	dup := src.Clone()
	dup.ID = s.nextID(src.Type)
	dup.Name = src.Name + " (Copy)"
	dup.Position.X += duplicateOffset
	dup.Position.Y += duplicateOffset
	dup.Layout = layout.RectFromPixels(dup.Position, dup.Size)

	s.widgets = append(s.widgets, dup)
	s.selectedID = dup.ID

	return dup.Clone(), true
}

// MoveWidget re-snaps and assigns a new pixel position.
func (s *Session) MoveWidget(id string, pos models.Position) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return false
	}

	x, y := layout.SnapToGrid(pos.X, pos.Y, s.gridSize, s.snapEnabled)
	w.Position = models.Position{X: x, Y: y}

	return true
}

// DragWidget moves a widget during an interactive drag, clamped to the
// canvas. Drag positions are not snapped; snapping happens on MoveWidget
// at drop time.
func (s *Session) DragWidget(id string, pos models.Position, canvasWidth float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return false
	}

	w.Position = layout.ClampToCanvas(pos, canvasWidth, w.Size.Width)

	return true
}

// NudgeWidget moves a widget by an arrow-key step.
func (s *Session) NudgeWidget(id string, dir layout.Direction, large bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return false
	}

	w.Position = layout.Nudge(w.Position, dir, large)

	return true
}

// Resize sets a widget's pixel size; both dimensions stay positive.
func (s *Session) Resize(id string, size models.Size) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil || size.Width <= 0 || size.Height <= 0 {
		return false
	}

	w.Size = size

	return true
}

// Replace swaps the entire collection, used when loading a saved page.
// Every replaced widget's removal hooks fire so stale timers die.
func (s *Session) Replace(widgets []*models.Widget) {
	s.mu.Lock()

	removed := make([]string, 0, len(s.widgets))
	for _, w := range s.widgets {
		removed = append(removed, w.ID)
	}

	s.widgets = make([]*models.Widget, 0, len(widgets))
	for _, w := range widgets {
		clone := w.Clone()
		s.usedIDs[clone.ID] = true
		s.widgets = append(s.widgets, clone)
	}

	s.selectedID = ""

	hooks := make([]func(string), len(s.removedHooks))
	copy(hooks, s.removedHooks)
	s.mu.Unlock()

	for _, hook := range hooks {
		for _, id := range removed {
			hook(id)
		}
	}
}

func (s *Session) find(id string) *models.Widget {
	for _, w := range s.widgets {
		if w.ID == id {
			return w
		}
	}

	return nil
}
