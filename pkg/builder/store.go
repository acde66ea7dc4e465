package builder

import (
	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

// Session satisfies the engine's WidgetStore contract.
var _ protocol.WidgetStore = (*Session)(nil)

// SetVisible shows or hides a widget; missing ids are a no-op.
func (s *Session) SetVisible(id string, visible bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return false
	}

	w.IsVisible = visible

	return true
}

// MergeProps shallow-merges a patch into a widget's props.
func (s *Session) MergeProps(id string, props map[string]any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(id)
	if w == nil {
		return false
	}

	if w.Props == nil {
		w.Props = make(map[string]any, len(props))
	}

	for k, v := range props {
		w.Props[k] = v
	}

	return true
}

// FindByEventID locates the widget owning the event with the given id.
func (s *Session) FindByEventID(eventID string) (*models.Widget, models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.widgets {
		if ev, ok := w.EventByID(eventID); ok {
			return w.Clone(), ev, true
		}
	}

	return nil, models.Event{}, false
}
