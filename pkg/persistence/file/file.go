// Package file provides file-based persistence for saved pages. Each page
// lives in pages/<app-id>/<page-id>.json under the configured root.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/persistence"
)

// Persistence implements the persistence.Persistence interface using the
// file system.
type Persistence struct {
	root string
}

// NewPersistence creates a file persistence rooted at the given directory.
// A file:// prefix on the root is stripped so storage URLs from config can
// be passed straight through.
func NewPersistence(root string) *Persistence {
	cleanRoot := strings.Replace(root, "file://", "", 1)

	return &Persistence{root: cleanRoot}
}

// Close performs any necessary cleanup. For file-based persistence, there
// is nothing to clean up.
func (fp *Persistence) Close(_ context.Context) error {
	return nil
}

// HealthCheck verifies the root directory exists.
func (fp *Persistence) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(fp.root); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

// Pages returns every saved page of an app, sorted by page id for stable
// listing. An app without a directory has no pages.
func (fp *Persistence) Pages(_ context.Context, appID string) ([]*models.Page, error) {
	dir := fp.appDir(appID)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []*models.Page{}, nil
	}

	jsonFiles, err := fs.Glob(os.DirFS(dir), "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list page files: %w", err)
	}

	pages := make([]*models.Page, 0, len(jsonFiles))

	for _, file := range jsonFiles {
		pageID := strings.TrimSuffix(file, ".json")

		page, err := fp.readPage(appID, pageID)
		if err != nil {
			return nil, fmt.Errorf("failed to load page %s: %w", pageID, err)
		}

		pages = append(pages, page)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].ID < pages[j].ID })

	return pages, nil
}

// PageByID retrieves one page; a missing file maps to ErrPageNotFound.
func (fp *Persistence) PageByID(_ context.Context, appID, pageID string) (*models.Page, error) {
	page, err := fp.readPage(appID, pageID)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, persistence.NewPageError("PageByID", appID, pageID, persistence.ErrPageNotFound)
		}

		return nil, persistence.NewPageError("PageByID", appID, pageID, err)
	}

	return page, nil
}

// SavePage writes a page document, creating the app directory on first
// save. Saving an existing page id overwrites it.
func (fp *Persistence) SavePage(_ context.Context, appID string, page *models.Page) error {
	if err := os.MkdirAll(fp.appDir(appID), 0o755); err != nil {
		return persistence.NewPageError("Save", appID, page.ID, err)
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return persistence.NewPageError("Save", appID, page.ID, err)
	}

	if err := os.WriteFile(fp.pagePath(appID, page.ID), data, 0o644); err != nil {
		return persistence.NewPageError("Save", appID, page.ID, err)
	}

	return nil
}

// DeletePage removes a page file; deleting a missing page maps to
// ErrPageNotFound.
func (fp *Persistence) DeletePage(_ context.Context, appID, pageID string) error {
	err := os.Remove(fp.pagePath(appID, pageID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return persistence.NewPageError("Delete", appID, pageID, persistence.ErrPageNotFound)
		}

		return persistence.NewPageError("Delete", appID, pageID, err)
	}

	return nil
}

func (fp *Persistence) appDir(appID string) string {
	return filepath.Join(fp.root, "pages", appID)
}

func (fp *Persistence) pagePath(appID, pageID string) string {
	return filepath.Join(fp.appDir(appID), pageID+".json")
}

func (fp *Persistence) readPage(appID, pageID string) (*models.Page, error) {
	data, err := os.ReadFile(fp.pagePath(appID, pageID))
	if err != nil {
		return nil, err
	}

	var page models.Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to parse page file: %w", err)
	}

	return &page, nil
}
