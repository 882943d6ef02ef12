package catalog

import (
	"context"

	"github.com/meur/blueprintlabs/internal/filter"
	"github.com/meur/blueprintlabs/internal/models"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// Session holds the rows and changelog loaded once at startup.
// Nothing in a Session changes after OpenSession returns.
type Session struct {
	rows      []models.Row
	changelog []models.ChangelogEntry
	pools     []string
}

// OpenSession loads the catalog and changelog independently.
// A failure on either side is logged and leaves that list empty.
func OpenSession(ctx context.Context, src Source, logger *zap.Logger) *Session {
	s := &Session{
		rows:      []models.Row{},
		changelog: []models.ChangelogEntry{},
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		doc, err := src.Catalog(ctx)
		if err != nil {
			logger.Warn("Catalog unavailable, serving no rows", zap.Error(err))
			return
		}
		if doc == nil {
			logger.Warn("Catalog source returned no document, serving no rows")
			return
		}
		for _, issue := range Audit(doc) {
			logger.Warn("Unknown category code",
				zap.String("weapon", issue.Weapon),
				zap.String("code", issue.Code),
			)
		}
		s.rows = Load(doc)
		logger.Info("Catalog loaded",
			zap.Int("weapons", len(doc.Weapons)),
			zap.Int("blueprints", CountBlueprints(doc)),
			zap.Int("rows", len(s.rows)),
		)
	})
	wg.Go(func() {
		entries, err := src.Changelog(ctx)
		if err != nil {
			logger.Warn("Changelog unavailable", zap.Error(err))
			return
		}
		if entries != nil {
			s.changelog = entries
		}
		logger.Info("Changelog loaded", zap.Int("entries", len(s.changelog)))
	})
	wg.Wait()

	s.pools = filter.DistinctPools(s.rows)
	return s
}

// NewSession wraps already loaded data
func NewSession(rows []models.Row, changelog []models.ChangelogEntry) *Session {
	if rows == nil {
		rows = []models.Row{}
	}
	if changelog == nil {
		changelog = []models.ChangelogEntry{}
	}
	return &Session{
		rows:      rows,
		changelog: changelog,
		pools:     filter.DistinctPools(rows),
	}
}

// Rows returns every row. Callers must not modify the slice.
func (s *Session) Rows() []models.Row {
	return s.rows
}

// Changelog returns the entries in source order
func (s *Session) Changelog() []models.ChangelogEntry {
	return s.changelog
}

// Pools returns the distinct pool options
func (s *Session) Pools() []string {
	return s.pools
}

// Version returns the first changelog entry's version, or "" without one
func (s *Session) Version() string {
	if len(s.changelog) == 0 {
		return ""
	}
	return s.changelog[0].Version
}

// Search filters the session rows
func (s *Session) Search(criteria models.Criteria) []models.Row {
	return filter.Apply(s.rows, criteria)
}

// Options returns the values offered by the select filters
func (s *Session) Options() models.FilterOptions {
	return models.FilterOptions{
		Statuses:   filter.Statuses(),
		Categories: Categories(),
		Pools:      s.pools,
	}
}
