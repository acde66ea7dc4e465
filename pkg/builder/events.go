package builder

import (
	"fmt"
	"time"

	"github.com/pageforge/pageforge/pkg/models"
)

// Event and action editing operations. Ids follow the widget convention:
// a kind prefix plus a millisecond timestamp, deduplicated per session.

// AddEvent attaches an empty event with the given trigger to a widget and
// returns its id.
func (s *Session) AddEvent(widgetID string, trigger models.EventTrigger) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(widgetID)
	if w == nil {
		return "", false
	}

	id := s.nextItemID("event")
	w.Events = append(w.Events, models.Event{
		ID:      id,
		Trigger: trigger,
		Actions: []models.EventAction{},
	})

	return id, true
}

// RemoveEvent deletes an event from a widget.
func (s *Session) RemoveEvent(widgetID, eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(widgetID)
	if w == nil {
		return false
	}

	for i, ev := range w.Events {
		if ev.ID == eventID {
			w.Events = append(w.Events[:i], w.Events[i+1:]...)

			return true
		}
	}

	return false
}

// AddAction appends a new action of the given type to an event and returns
// the action id. Remaining fields are filled in via UpdateAction.
func (s *Session) AddAction(widgetID, eventID string, actionType models.ActionType) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(widgetID)
	if w == nil {
		return "", false
	}

	for i := range w.Events {
		if w.Events[i].ID != eventID {
			continue
		}

		id := s.nextItemID("action")
		w.Events[i].Actions = append(w.Events[i].Actions, models.EventAction{
			ID:   id,
			Type: actionType,
		})

		return id, true
	}

	return "", false
}

// UpdateAction replaces an action's definition, keeping its id and place
// in the chain.
func (s *Session) UpdateAction(widgetID, eventID, actionID string, action models.EventAction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(widgetID)
	if w == nil {
		return false
	}

	for i := range w.Events {
		if w.Events[i].ID != eventID {
			continue
		}

		for j := range w.Events[i].Actions {
			if w.Events[i].Actions[j].ID == actionID {
				action.ID = actionID
				w.Events[i].Actions[j] = action.Clone()

				return true
			}
		}
	}

	return false
}

// RemoveAction deletes one action from an event's chain.
func (s *Session) RemoveAction(widgetID, eventID, actionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(widgetID)
	if w == nil {
		return false
	}

	for i := range w.Events {
		if w.Events[i].ID != eventID {
			continue
		}

		for j, act := range w.Events[i].Actions {
			if act.ID == actionID {
				w.Events[i].Actions = append(w.Events[i].Actions[:j], w.Events[i].Actions[j+1:]...)

				return true
			}
		}
	}

	return false
}

func (s *Session) nextItemID(kind string) string {
	id := fmt.Sprintf("%s_%d", kind, time.Now().UnixMilli())

	for s.usedIDs[id] {
		s.seq++
		id = fmt.Sprintf("%s_%d_%d", kind, time.Now().UnixMilli(), s.seq)
	}

	s.usedIDs[id] = true

	return id
}
