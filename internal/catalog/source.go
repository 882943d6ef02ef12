package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/meur/blueprintlabs/internal/models"
)

// Source provides the two static documents a session is built from
type Source interface {
	Catalog(ctx context.Context) (*models.CatalogDocument, error)
	Changelog(ctx context.Context) ([]models.ChangelogEntry, error)
}

// FileSource reads the documents from local paths
type FileSource struct {
	CatalogPath   string
	ChangelogPath string
}

// Catalog reads and parses the catalog file
func (f FileSource) Catalog(_ context.Context) (*models.CatalogDocument, error) {
	var doc models.CatalogDocument
	if err := readJSONFile(f.CatalogPath, &doc); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return &doc, nil
}

// Changelog reads and parses the changelog file
func (f FileSource) Changelog(_ context.Context) ([]models.ChangelogEntry, error) {
	var entries []models.ChangelogEntry
	if err := readJSONFile(f.ChangelogPath, &entries); err != nil {
		return nil, fmt.Errorf("failed to read changelog: %w", err)
	}
	return entries, nil
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// HTTPSource fetches the documents from URLs
type HTTPSource struct {
	Client       *http.Client
	CatalogURL   string
	ChangelogURL string
}

// NewHTTPSource creates an HTTPSource with a bounded client timeout
func NewHTTPSource(catalogURL, changelogURL string) *HTTPSource {
	return &HTTPSource{
		Client:       &http.Client{Timeout: 10 * time.Second},
		CatalogURL:   catalogURL,
		ChangelogURL: changelogURL,
	}
}

// Catalog fetches and parses the catalog document
func (h *HTTPSource) Catalog(ctx context.Context) (*models.CatalogDocument, error) {
	var doc models.CatalogDocument
	if err := h.getJSON(ctx, h.CatalogURL, &doc); err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	return &doc, nil
}

// Changelog fetches and parses the changelog document
func (h *HTTPSource) Changelog(ctx context.Context) ([]models.ChangelogEntry, error) {
	var entries []models.ChangelogEntry
	if err := h.getJSON(ctx, h.ChangelogURL, &entries); err != nil {
		return nil, fmt.Errorf("failed to fetch changelog: %w", err)
	}
	return entries, nil
}

func (h *HTTPSource) getJSON(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
