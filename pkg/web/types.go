// Package web provides the REST API for saving, listing, rendering and
// firing events on pages.
package web

import (
	"github.com/pageforge/pageforge/pkg/models"
)

// SavePageRequest is the body for saving a page definition.
type SavePageRequest struct {
	AppID      string                `json:"appId"      validate:"required"`
	PageID     string                `json:"pageId"`
	Name       string                `json:"name"       validate:"required,min=1"`
	Definition models.PageDefinition `json:"definition" validate:"required"`
}

// FireEventRequest is the body for firing a widget event server-side.
type FireEventRequest struct {
	PageID   string              `json:"pageId"   validate:"required"`
	WidgetID string              `json:"widgetId" validate:"required"`
	Trigger  models.EventTrigger `json:"trigger"  validate:"required,oneof=onClick onChange onSubmit"`
}

// FireEventResponse reports the side effects the event surfaced to the
// user: notifications shown and any navigation requested.
type FireEventResponse struct {
	ExecutionID   string                `json:"executionId"`
	Notifications []models.Notification `json:"notifications"`
	NavigatedTo   string                `json:"navigatedTo,omitempty"`
	Widgets       []*models.Widget      `json:"widgets"`
}

// PageSummary is the list-endpoint projection of a stored page.
type PageSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
