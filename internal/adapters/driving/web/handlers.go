package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/services"
)

// sessionInfo is implemented by search services that own a dataset session.
type sessionInfo interface {
	ID() string
	Loaded() bool
}

// healthResponse is the body of GET /healthz. Session changes after each
// dataset reload.
type healthResponse struct {
	Status  string `json:"status"`
	Session string `json:"session,omitempty"`
	Loaded  *bool  `json:"loaded,omitempty"`
}

func (s *Server) healthzHandler(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{Status: "ok"}
	if info, ok := s.currentPorts().Search.(sessionInfo); ok {
		loaded := info.Loaded()
		resp.Session = info.ID()
		resp.Loaded = &loaded
	}
	writeJSON(w, http.StatusOK, resp)
}

// searchResponse is the body of GET /api/search.
type searchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []searchResult `json:"results"`
}

// searchResult is one hit with pre-rendered highlights.
type searchResult struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	URL         string  `json:"url"`
	Score       float64 `json:"score"`
	TitleHTML   string  `json:"titleHtml"`
	SnippetHTML string  `json:"snippetHtml"`
}

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, fmt.Errorf("limit %q: %w", raw, domain.ErrInvalidInput))
			return
		}
		limit = n
	}

	resp := searchResponse{Query: query, Results: []searchResult{}}
	if utf8.RuneCountInString(query) < s.opts.MinQueryLength {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	results, err := s.currentPorts().Search.Search(r.Context(), query, domain.SearchOptions{Limit: limit})
	if err != nil {
		writeError(w, err)
		return
	}

	for i := range results {
		rec := &results[i].Record
		resp.Results = append(resp.Results, searchResult{
			ID:          rec.ID,
			Title:       rec.Title,
			Type:        rec.Type.String(),
			URL:         rec.URL,
			Score:       results[i].Score,
			TitleHTML:   services.HighlightedTitle(&results[i], services.MarkHTML),
			SnippetHTML: services.Snippet(&results[i], services.MarkHTML),
		})
	}
	resp.Count = len(resp.Results)

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) resolveHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.currentPorts().Redirect.Resolve(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) reltimeHandler(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = s.opts.Language
	}

	rel, err := services.DescribeTimestamp(r.URL.Query().Get("ts"), s.opts.Now(), lang)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rel)
}

// goHandler redirects an item ID to its page, or renders a choice or
// not-found page.
func (s *Server) goHandler(w http.ResponseWriter, r *http.Request) {
	s.serveResolution(w, r, chi.URLParam(r, "id"))
}

func (s *Server) serveResolution(w http.ResponseWriter, r *http.Request, id string) {
	res, err := s.currentPorts().Redirect.Resolve(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, err)
		return
	}

	switch res.Kind {
	case domain.ResolutionRedirect:
		http.Redirect(w, r, siteURL(res.Target()), http.StatusFound)
	case domain.ResolutionMultiple:
		renderPage(w, http.StatusMultipleChoices, multipleMatchesPage, res)
	default:
		renderPage(w, http.StatusNotFound, noMatchesPage, res)
	}
}

// siteURL makes a dataset URL absolute to the site root. Absolute URLs
// pass through.
func siteURL(target string) string {
	ref, err := url.Parse(target)
	if err != nil {
		return "/"
	}
	if ref.IsAbs() {
		return ref.String()
	}
	root := &url.URL{Path: "/"}
	return root.ResolveReference(ref).String()
}

// langHandler redirects to the same page in another language.
func (s *Server) langHandler(w http.ResponseWriter, r *http.Request) {
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if !slices.Contains(s.opts.Languages, to) {
		writeError(w, fmt.Errorf("language %q: %w", to, domain.ErrInvalidInput))
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		writeError(w, fmt.Errorf("path %q must be site-relative: %w", path, domain.ErrInvalidInput))
		return
	}

	http.Redirect(w, r, services.SwitchLanguagePath(path, to, s.opts.Languages), http.StatusFound)
}
