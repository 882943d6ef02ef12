package api

import (
	"net/http"

	"github.com/meur/blueprintlabs/internal/catalog"
	"github.com/meur/blueprintlabs/internal/filter"
	"github.com/meur/blueprintlabs/internal/models"
	"go.uber.org/zap"
)

// handleGetBlueprints returns the rows matching the query filters
func (s *Server) handleGetBlueprints(w http.ResponseWriter, r *http.Request) {
	criteria := filter.ParseCriteria(r.URL.Query())
	rows := s.session.Search(criteria)

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="blueprints.csv"`)
		if err := catalog.WriteCSV(w, rows); err != nil {
			s.logger.Error("Failed to write CSV", zap.Error(err))
		}
		return
	}

	respondJSON(w, http.StatusOK, models.RowList{
		Rows:       rows,
		TotalCount: len(rows),
	})
}

// handleGetFilters returns the options for each select filter
func (s *Server) handleGetFilters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.session.Options())
}
