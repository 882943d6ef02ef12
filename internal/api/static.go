package api

import (
	"fmt"
	"net/http"
	"strings"
)

// MountStatic serves files from root under prefix. The bare prefix redirects
// to its trailing-slash form; "/" serves root for every unmatched path.
func (s *Server) MountStatic(prefix string, root http.FileSystem) error {
	if !strings.HasPrefix(prefix, "/") || strings.ContainsAny(prefix, "{}*") {
		return fmt.Errorf("invalid static prefix %q", prefix)
	}

	files := http.FileServer(root)
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		s.router.Get("/*", files.ServeHTTP)
		return nil
	}

	s.router.Get(prefix, http.RedirectHandler(prefix+"/", http.StatusMovedPermanently).ServeHTTP)
	s.router.Get(prefix+"/*", http.StripPrefix(prefix, files).ServeHTTP)
	return nil
}
