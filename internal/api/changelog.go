package api

import (
	"net/http"

	"go.uber.org/zap"
)

// handleGetChangelog returns the changelog in source order
func (s *Server) handleGetChangelog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.session.Changelog())
}

// handleGetVersion returns the latest changelog version
func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"version": s.session.Version()})
}

// handleGetSnapshots lists imported snapshots when a store is configured
func (s *Server) handleGetSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondJSON(w, http.StatusOK, []interface{}{})
		return
	}

	snapshots, err := s.store.GetSnapshots(r.Context())
	if err != nil {
		s.logger.Error("Failed to list snapshots", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch snapshots")
		return
	}
	respondJSON(w, http.StatusOK, snapshots)
}
