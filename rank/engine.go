package rank

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/selekta/selekta/ai"
	"github.com/selekta/selekta/core"
	"github.com/selekta/selekta/storage"
)

// Engine scores candidates against interpreted queries using embeddings.
// It holds an in-process vector cache keyed by candidate ID, optionally
// backed by a persistent storage.VectorCache so restarts skip re-embedding.
//
// Engine is safe for concurrent use once constructed.
type Engine struct {
	embedder ai.Embedder
	model    string
	cache    storage.VectorCache

	mu      sync.RWMutex
	vectors map[string][]float32 // profile ID -> embedding

	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithVectorCache attaches a persistent vector cache. Without it, vectors
// live only in process memory.
func WithVectorCache(cache storage.VectorCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewEngine creates a ranking engine backed by the given provider.
func NewEngine(provider ai.Provider, opts ...Option) (*Engine, error) {
	if provider == nil {
		return nil, ErrEmbedderRequired
	}

	e := &Engine{
		embedder: provider.Embedder(),
		model:    provider.Model(),
		vectors:  make(map[string][]float32),
		logger:   slog.Default().With("component", "rank-engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// RankAll scores every candidate against the query and returns the full set
// ordered by descending similarity. The result is always a permutation of
// the input; ranking never filters. Ties keep input order (stable sort).
func (e *Engine) RankAll(ctx context.Context, req *core.QueryRequirements, candidates []*core.CandidateProfile) ([]*core.RankedCandidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	queryText := BuildQueryText(req)
	queryVec, err := e.embedder.EmbedText(ctx, queryText)
	if err != nil {
		return nil, err
	}

	ranked := make([]*core.RankedCandidate, len(candidates))
	for i, candidate := range candidates {
		vec, err := e.candidateVector(ctx, candidate)
		if err != nil {
			return nil, err
		}
		ranked[i] = &core.RankedCandidate{
			Profile: candidate,
			Score:   Cosine(queryVec, vec),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	e.logger.Debug("ranked candidates", "count", len(ranked), "query", queryText)
	return ranked, nil
}

// candidateVector returns the embedding for a profile, consulting the
// in-memory map first, then the persistent cache, then the embedder.
func (e *Engine) candidateVector(ctx context.Context, profile *core.CandidateProfile) ([]float32, error) {
	e.mu.RLock()
	vec, ok := e.vectors[profile.ID]
	e.mu.RUnlock()
	if ok {
		return vec, nil
	}

	text := BuildCandidateText(profile)

	if e.cache != nil {
		cached, err := e.cache.GetVector(ctx, e.vectorID(text), e.model)
		if err == nil {
			e.remember(profile.ID, cached.Vector)
			return cached.Vector, nil
		}
		if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrModelMismatch) {
			return nil, err
		}
	}

	vec, err := e.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	e.remember(profile.ID, vec)
	if e.cache != nil {
		if err := e.persist(ctx, text, vec); err != nil {
			e.logger.Warn("failed to persist candidate vector", "id", profile.ID, "err", err)
		}
	}
	return vec, nil
}

// vectorID derives the content-based cache key for a candidate text.
// Including the model name means a model switch invalidates every entry.
func (e *Engine) vectorID(candidateText string) core.ID {
	return core.IDFromContent(candidateText + "|" + e.model)
}

func (e *Engine) remember(profileID string, vec []float32) {
	e.mu.Lock()
	e.vectors[profileID] = vec
	e.mu.Unlock()
}

func (e *Engine) persist(ctx context.Context, candidateText string, vec []float32) error {
	return e.cache.PutVectors(ctx, &core.CandidateVector{
		Id:        e.vectorID(candidateText),
		Model:     e.model,
		Vector:    vec,
		UpdatedAt: time.Now().UTC(),
	})
}
