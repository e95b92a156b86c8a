// Copyright 2025 Selekta
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package selekta matches Spanish-language recruiting queries against a
// candidate pool, combining semantic embedding ranking with deterministic
// lexical filters.
package selekta

import (
	"context"
	"log/slog"

	"github.com/selekta/selekta/ai"
	"github.com/selekta/selekta/ai/openai"
	"github.com/selekta/selekta/catalog"
	"github.com/selekta/selekta/core"
	"github.com/selekta/selekta/pipeline"
	"github.com/selekta/selekta/query"
	"github.com/selekta/selekta/rank"
	"github.com/selekta/selekta/storage"
	"github.com/selekta/selekta/store"
)

// Matcher is the top-level entry point. It owns the catalog, the candidate
// set, the embedding provider and the full pipeline.
type Matcher struct {
	provider   ai.Provider
	engine     *rank.Engine
	pipe       *pipeline.Orchestrator
	cache      storage.VectorCache
	candidates []*core.CandidateProfile
	logger     *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*matcherOptions)

type matcherOptions struct {
	aiConfig       *ai.Config
	provider       ai.Provider
	cat            *catalog.Catalog
	cache          storage.VectorCache
	relevanceCheck bool
}

// WithAIConfig sets the embedding service configuration.
// Ignored when WithProvider is also given.
func WithAIConfig(config *ai.Config) MatcherOption {
	return func(o *matcherOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built embedding provider. The matcher takes
// ownership and closes it on Close.
func WithProvider(provider ai.Provider) MatcherOption {
	return func(o *matcherOptions) {
		o.provider = provider
	}
}

// WithCatalog replaces the embedded default reference catalog.
func WithCatalog(cat *catalog.Catalog) MatcherOption {
	return func(o *matcherOptions) {
		o.cat = cat
	}
}

// WithVectorCache attaches a persistent vector cache for candidate
// embeddings. The matcher takes ownership and closes it on Close.
func WithVectorCache(cache storage.VectorCache) MatcherOption {
	return func(o *matcherOptions) {
		o.cache = cache
	}
}

// WithoutRelevanceCheck disables the job-query gate.
func WithoutRelevanceCheck() MatcherOption {
	return func(o *matcherOptions) {
		o.relevanceCheck = false
	}
}

// NewMatcher loads all candidates from the store and wires the pipeline.
// The store is only read during construction and may be closed afterwards
// by the caller.
func NewMatcher(ctx context.Context, candidateStore store.CandidateStore, opts ...MatcherOption) (*Matcher, error) {
	options := &matcherOptions{
		aiConfig:       ai.DefaultConfig(),
		relevanceCheck: true,
	}
	for _, opt := range opts {
		opt(options)
	}

	cat := options.cat
	if cat == nil {
		loaded, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		cat = loaded
	}

	candidates, err := candidateStore.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	var engineOpts []rank.Option
	if options.cache != nil {
		engineOpts = append(engineOpts, rank.WithVectorCache(options.cache))
	}
	engine, err := rank.NewEngine(provider, engineOpts...)
	if err != nil {
		provider.Close()
		return nil, err
	}

	interpreter, err := query.NewInterpreter(cat)
	if err != nil {
		provider.Close()
		return nil, err
	}

	var pipeOpts []pipeline.Option
	if !options.relevanceCheck {
		pipeOpts = append(pipeOpts, pipeline.WithoutRelevanceCheck())
	}
	pipe, err := pipeline.NewOrchestrator(interpreter, engine, candidates, pipeOpts...)
	if err != nil {
		provider.Close()
		return nil, err
	}

	return &Matcher{
		provider:   provider,
		engine:     engine,
		pipe:       pipe,
		cache:      options.cache,
		candidates: candidates,
		logger:     slog.Default(),
	}, nil
}

// Search runs the full pipeline for one utterance and returns the ranked,
// filtered, truncated candidate list.
func (m *Matcher) Search(ctx context.Context, raw string) ([]*core.RankedCandidate, error) {
	return m.pipe.Run(ctx, raw)
}

// Interpret parses an utterance into structured requirements without
// ranking anything.
func (m *Matcher) Interpret(raw string) (*core.QueryRequirements, error) {
	return m.pipe.Interpret(raw)
}

// Warm precomputes candidate embeddings so the first search does not pay
// the batch embedding cost.
func (m *Matcher) Warm(ctx context.Context) error {
	return m.engine.Warm(ctx, m.candidates)
}

// Candidates returns the candidate set loaded at construction.
func (m *Matcher) Candidates() []*core.CandidateProfile {
	return m.candidates
}

// Close releases the embedding provider and the vector cache.
func (m *Matcher) Close() error {
	if err := m.provider.Close(); err != nil {
		m.logger.Error("error closing embedding provider", "err", err)
		return err
	}
	if m.cache != nil {
		if err := m.cache.Close(); err != nil {
			m.logger.Error("error closing vector cache", "err", err)
			return err
		}
	}
	return nil
}
