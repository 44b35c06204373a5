package web

import (
	"net/http"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/plantadash/plantsearch/internal/logger"
)

// staticHandler serves the site directory. Files matching an exclude
// pattern answer 404, and "/?id=..." resolves like /go/{id}.
func (s *Server) staticHandler() http.Handler {
	files := http.FileServer(http.Dir(s.opts.SiteDir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")

		if id := r.URL.Query().Get("id"); id != "" && (rel == "" || rel == "index.html") {
			s.serveResolution(w, r, id)
			return
		}

		if s.excluded(rel) {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// excluded reports whether a site-relative path matches any exclude pattern.
func (s *Server) excluded(rel string) bool {
	if rel == "" {
		return false
	}
	for _, pattern := range s.opts.Exclude {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			logger.Warn("bad exclude pattern %q: %v", pattern, err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
