// Package postgresql provides PostgreSQL persistence for saved pages.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq" // registers the postgres driver

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/persistence/sqlbase"
)

// Persistence implements the persistence layer for PostgreSQL.
type Persistence struct {
	db       *sql.DB
	logger   *slog.Logger
	pageRepo *PageRepository
}

// NewPersistence connects, runs migrations and returns a ready store.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) (*Persistence, error) {
	database, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	err = database.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	migrationManager := sqlbase.NewMigrationManager(logger, database, migrations())
	pageRepo := NewPageRepository(database, logger)

	postgres := &Persistence{
		db:       database,
		logger:   logger,
		pageRepo: pageRepo,
	}

	err = migrationManager.RunMigrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return postgres, nil
}

// Close closes the database connection.
func (p *Persistence) Close(_ context.Context) error {
	if p.db != nil {
		err := p.db.Close()
		if err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}

// HealthCheck verifies the database connection is healthy.
func (p *Persistence) HealthCheck(ctx context.Context) error {
	err := p.db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// Pages returns all pages of an app.
func (p *Persistence) Pages(ctx context.Context, appID string) ([]*models.Page, error) {
	return p.pageRepo.GetAll(ctx, appID)
}

// PageByID returns a page by its ID.
func (p *Persistence) PageByID(ctx context.Context, appID, pageID string) (*models.Page, error) {
	return p.pageRepo.GetByID(ctx, appID, pageID)
}

// SavePage saves a page to the database.
func (p *Persistence) SavePage(ctx context.Context, appID string, page *models.Page) error {
	return p.pageRepo.Save(ctx, appID, page)
}

// DeletePage soft deletes a page by setting the deleted_at timestamp.
func (p *Persistence) DeletePage(ctx context.Context, appID, pageID string) error {
	return p.pageRepo.Delete(ctx, appID, pageID)
}
