package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pageforge/pageforge/pkg/persistence"
	"github.com/pageforge/pageforge/pkg/persistence/file"
	"github.com/pageforge/pageforge/pkg/persistence/postgresql"
)

// NewPersistence selects the page store from the database URL scheme:
// postgres:// connects to PostgreSQL, anything else is treated as a file
// root.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) (persistence.Persistence, error) {
	switch parseProvider(databaseURL) {
	case "postgres", "postgresql":
		p, err := postgresql.NewPersistence(ctx, logger, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres persistence: %w", err)
		}

		return p, nil
	default:
		return file.NewPersistence(databaseURL), nil
	}
}

func parseProvider(databaseURL string) string {
	parts := strings.SplitN(databaseURL, "://", 2)
	if len(parts) < 2 {
		return "file"
	}

	return parts[0]
}
