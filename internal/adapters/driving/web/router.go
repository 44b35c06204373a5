package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthzHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(rateLimit(s.opts.RateLimit))
		r.Get("/search", s.searchHandler)
		r.Get("/resolve", s.resolveHandler)
		r.Get("/reltime", s.reltimeHandler)
	})

	r.Get("/go/{id}", s.goHandler)
	r.Get("/lang", s.langHandler)

	if s.opts.SiteDir != "" {
		r.Handle("/*", s.staticHandler())
	}

	return r
}
