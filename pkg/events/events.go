// Package events defines the event types published on the bus as pages
// are saved and widget events fire.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageforge/pageforge/pkg/models"
)

type EventType string

// Topic carries every bus event; consumers filter on the event_type
// metadata key.
const Topic = "pageforge.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	PageSavedEvent          EventType = "page.saved"
	WidgetEventFiredEvent   EventType = "widget.event.fired"
	WidgetActionFailedEvent EventType = "widget.action.failed"
)

type BaseEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	AppID     string         `json:"app_id"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// PageSaved announces a page definition written to persistence.
type PageSaved struct {
	BaseEvent

	PageID      string `json:"page_id"`
	PageName    string `json:"page_name"`
	WidgetCount int    `json:"widget_count"`
}

func (p PageSaved) GetType() EventType {
	return PageSavedEvent
}

// WidgetEventFired announces one completed event firing, including how
// many actions ran.
type WidgetEventFired struct {
	BaseEvent

	ExecutionID string              `json:"execution_id"`
	WidgetID    string              `json:"widget_id"`
	Trigger     models.EventTrigger `json:"trigger"`
	ActionsRun  int                 `json:"actions_run"`
	DurationMs  int64               `json:"duration_ms"`
}

func (w WidgetEventFired) GetType() EventType {
	return WidgetEventFiredEvent
}

// WidgetActionFailed announces one action that returned an error. The
// chain it belonged to kept running.
type WidgetActionFailed struct {
	BaseEvent

	ExecutionID string            `json:"execution_id"`
	WidgetID    string            `json:"widget_id"`
	ActionID    string            `json:"action_id"`
	ActionType  models.ActionType `json:"action_type"`
	Error       string            `json:"error"`
}

func (w WidgetActionFailed) GetType() EventType {
	return WidgetActionFailedEvent
}

func NewBaseEvent(eventType EventType, appID string) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		AppID:     appID,
		Metadata:  make(map[string]any),
	}
}
