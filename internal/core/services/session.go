package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/ports/driven"
	"github.com/plantadash/plantsearch/internal/core/ports/driving"
	"github.com/plantadash/plantsearch/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SearchService = (*Session)(nil)

// Session owns one loaded dataset and the last rendered result list.
// The dataset is fetched at most once; a failed fetch leaves the session
// empty for its whole lifetime.
type Session struct {
	id     string
	source driven.DatasetSource

	once    sync.Once
	mu      sync.RWMutex
	records []domain.Record
	loaded  bool
	loadErr error
	last    []domain.ScoredResult
}

// NewSession creates a session that lazily loads from source.
// A nil source behaves like a source that always fails.
func NewSession(source driven.DatasetSource) *Session {
	return &Session{
		id:     uuid.NewString(),
		source: source,
	}
}

// NewSessionWithRecords creates an already loaded session.
func NewSessionWithRecords(records []domain.Record) *Session {
	s := &Session{
		id:      uuid.NewString(),
		records: append([]domain.Record(nil), records...),
		loaded:  true,
	}
	s.once.Do(func() {})
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Load fetches the dataset on first call. Later calls return the outcome
// of the first one without touching the source again.
func (s *Session) Load(ctx context.Context) error {
	s.once.Do(func() {
		s.load(ctx)
	})

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

func (s *Session) load(ctx context.Context) {
	logger.Section("Dataset Load")

	if s.source == nil {
		s.mu.Lock()
		s.loadErr = fmt.Errorf("no dataset source: %w", domain.ErrDatasetUnavailable)
		s.mu.Unlock()
		logger.Error("Error loading search data: %v", s.loadErr)
		return
	}

	logger.Debug("Session %s loading %s", s.id, s.source.Location())
	records, err := s.source.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.loadErr = fmt.Errorf("load %s: %w: %w", s.source.Location(), domain.ErrDatasetUnavailable, err)
		logger.Error("Error loading search data: %v", err)
		return
	}

	s.records = records
	s.loaded = true
	logger.Info("Loaded %d records", len(records))
}

// Loaded reports whether the dataset was loaded successfully.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Search loads the dataset if needed and ranks it against query.
// Dataset failures are not returned; they produce an empty result.
func (s *Session) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.ScoredResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_ = s.Load(ctx)

	logger.Debug("Query: %q, limit: %d", query, opts.EffectiveLimit())
	results := s.rank(Tokenize(query), opts.EffectiveLimit())
	logger.Debug("Results: %d", len(results))

	return results, nil
}

// SearchItems ranks the already loaded dataset against query.
// It never fetches; an unloaded session returns no results.
func (s *Session) SearchItems(query string) []domain.ScoredResult {
	return s.rank(Tokenize(query), domain.MaxResults)
}

func (s *Session) rank(tokens []string, limit int) []domain.ScoredResult {
	s.mu.RLock()
	records := s.records
	s.mu.RUnlock()

	results := Rank(records, tokens, limit)

	s.mu.Lock()
	s.last = results
	s.mu.Unlock()

	return results
}

// Records loads the dataset if needed and returns a copy of it.
func (s *Session) Records(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_ = s.Load(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Record{}, s.records...), nil
}

// LastResults returns the result list of the most recent search.
func (s *Session) LastResults() []domain.ScoredResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}
