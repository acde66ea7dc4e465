package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/persistence"
)

// PageRepository handles page-related database operations.
type PageRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPageRepository creates a new page repository.
func NewPageRepository(db *sql.DB, logger *slog.Logger) *PageRepository {
	return &PageRepository{db: db, logger: logger}
}

// GetAll returns all pages of an app, newest first.
func (r *PageRepository) GetAll(ctx context.Context, appID string) ([]*models.Page, error) {
	query := `
		SELECT
			id
		  , name
		  , definition
		FROM pages
		WHERE app_id = $1 AND deleted_at IS NULL
		ORDER BY updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, appID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}

	defer func(ctx context.Context, r *PageRepository) {
		err := rows.Close()
		if err != nil {
			r.logger.ErrorContext(ctx, "failed to close rows", "error", err)
		}
	}(ctx, r)

	pages := make([]*models.Page, 0)

	for rows.Next() {
		var page models.Page

		err := rows.Scan(&page.ID, &page.Name, &page.Definition)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}

		pages = append(pages, &page)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating pages: %w", err)
	}

	return pages, nil
}

// GetByID retrieves one page; no row maps to ErrPageNotFound.
func (r *PageRepository) GetByID(ctx context.Context, appID, pageID string) (*models.Page, error) {
	query := `
		SELECT
			id
		  , name
		  , definition
		FROM pages
		WHERE app_id = $1 AND id = $2 AND deleted_at IS NULL
	`

	var page models.Page

	err := r.db.QueryRowContext(ctx, query, appID, pageID).Scan(&page.ID, &page.Name, &page.Definition)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.NewPageError("PageByID", appID, pageID, persistence.ErrPageNotFound)
		}

		return nil, fmt.Errorf("failed to scan page: %w", err)
	}

	return &page, nil
}

// Save upserts a page, minting an id when the page has none.
func (r *PageRepository) Save(ctx context.Context, appID string, page *models.Page) error {
	if page.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate page ID: %w", err)
		}

		page.ID = id.String()
	}

	now := time.Now().UTC()

	query := `
		INSERT INTO pages (app_id, id, name, definition, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (app_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			definition = EXCLUDED.definition,
			updated_at = EXCLUDED.updated_at,
			deleted_at = NULL
	`

	_, err := r.db.ExecContext(ctx, query, appID, page.ID, page.Name, page.Definition, now)
	if err != nil {
		return persistence.NewPageError("Save", appID, page.ID, err)
	}

	return nil
}

// Delete soft deletes a page; deleting a missing page maps to
// ErrPageNotFound.
func (r *PageRepository) Delete(ctx context.Context, appID, pageID string) error {
	query := `
		UPDATE pages
		SET deleted_at = NOW()
		WHERE app_id = $1 AND id = $2 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, appID, pageID)
	if err != nil {
		return persistence.NewPageError("Delete", appID, pageID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return persistence.NewPageError("Delete", appID, pageID, err)
	}

	if affected == 0 {
		return persistence.NewPageError("Delete", appID, pageID, persistence.ErrPageNotFound)
	}

	return nil
}
