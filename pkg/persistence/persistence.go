// Package persistence provides the storage abstraction for saved pages.
package persistence

import (
	"context"

	"github.com/pageforge/pageforge/pkg/models"
)

type Persistence interface {
	Pages(ctx context.Context, appID string) ([]*models.Page, error)
	PageByID(ctx context.Context, appID, pageID string) (*models.Page, error)
	SavePage(ctx context.Context, appID string, page *models.Page) error
	DeletePage(ctx context.Context, appID, pageID string) error
	HealthCheck(ctx context.Context) error

	Close(ctx context.Context) error
}
