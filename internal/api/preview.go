package api

import (
	"net/http"
	"strings"

	"github.com/meur/blueprintlabs/internal/catalog"
	"go.uber.org/zap"
)

// previewResponse is the outcome of probing one image base
type previewResponse struct {
	ImageBase string   `json:"image_base"`
	State     string   `json:"state"`
	Src       string   `json:"src,omitempty"`
	Attempts  []string `json:"attempts"`
}

// handleGetPreview resolves the image of a row by probing its extensions
func (s *Server) handleGetPreview(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	if base == "" {
		respondError(w, http.StatusBadRequest, "base is required")
		return
	}
	if !validImageBase(base) {
		respondError(w, http.StatusBadRequest, "base must be an image path")
		return
	}
	if s.prober == nil {
		respondError(w, http.StatusServiceUnavailable, "Previews are not configured")
		return
	}

	result, err := s.resolver.Resolve(r.Context(), s.prober, base)
	if err != nil {
		s.logger.Warn("Preview resolution aborted", zap.String("base", base), zap.Error(err))
		respondError(w, http.StatusServiceUnavailable, "Preview resolution aborted")
		return
	}

	attempts := result.Attempts
	if attempts == nil {
		attempts = []string{}
	}
	respondJSON(w, http.StatusOK, previewResponse{
		ImageBase: base,
		State:     result.State.Phase.String(),
		Src:       result.Src(),
		Attempts:  attempts,
	})
}

// validImageBase accepts paths under the image root with no parent segments.
// Dots inside a name ("Wait...") are fine.
func validImageBase(base string) bool {
	if !strings.HasPrefix(base, catalog.ImageRoot) {
		return false
	}
	for _, segment := range strings.Split(base, "/") {
		if segment == ".." {
			return false
		}
	}
	return true
}
