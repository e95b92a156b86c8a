package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/selekta/selekta/core"
	"github.com/selekta/selekta/filter"
	"github.com/selekta/selekta/query"
	"github.com/selekta/selekta/rank"
)

// DefaultTopN caps the result size when the query does not ask for an
// explicit number of candidates.
const DefaultTopN = 50

// Orchestrator runs the full matching pipeline over a fixed candidate set.
// It holds no per-request mutable state and is safe for concurrent use.
type Orchestrator struct {
	interpreter *query.Interpreter
	engine      *rank.Engine
	filters     *filter.Chain
	candidates  []*core.CandidateProfile

	relevanceCheck bool
	logger         *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithoutRelevanceCheck disables the job-query gate, letting any utterance
// through to interpretation. Useful when the caller has already vetted the
// input.
func WithoutRelevanceCheck() Option {
	return func(o *Orchestrator) {
		o.relevanceCheck = false
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// NewOrchestrator creates an orchestrator over the given candidate set.
func NewOrchestrator(interpreter *query.Interpreter, engine *rank.Engine, candidates []*core.CandidateProfile, opts ...Option) (*Orchestrator, error) {
	if interpreter == nil {
		return nil, ErrInterpreterRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}

	o := &Orchestrator{
		interpreter:    interpreter,
		engine:         engine,
		candidates:     candidates,
		relevanceCheck: true,
		logger:         slog.Default().With("component", "pipeline"),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.filters = filter.NewChain(filter.WithLogger(o.logger))
	return o, nil
}

// Interpret exposes the interpreter for callers that only want the
// structured requirements without running the full pipeline.
func (o *Orchestrator) Interpret(raw string) (*core.QueryRequirements, error) {
	return o.interpreter.Interpret(raw)
}

// Run executes the full pipeline for one utterance.
//
// Sequence: relevance check, interpret, rank all, filter chain, truncate.
// Returns core.ErrNoCandidatesFound when the chain ends empty, so callers
// always distinguish "no match" from an empty candidate store upfront.
func (o *Orchestrator) Run(ctx context.Context, raw string) ([]*core.RankedCandidate, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, core.ErrEmptyQuery
	}

	if o.relevanceCheck {
		isJob, score := query.AnalyzeJobQuery(core.Normalize(text))
		if !isJob {
			o.logger.Debug("utterance rejected as non-job query", "score", score)
			return nil, core.ErrNotAJobQuery
		}
	}

	req, err := o.interpreter.Interpret(text)
	if err != nil {
		return nil, err
	}
	if err := core.ValidateQueryRequirements(req); err != nil {
		return nil, err
	}

	ranked, err := o.engine.RankAll(ctx, req, o.candidates)
	if err != nil {
		return nil, err
	}

	result := o.filters.Apply(ranked, req)
	if len(result) == 0 {
		return nil, core.ErrNoCandidatesFound
	}

	result = truncate(result, req.NumCandidates)

	o.logger.Debug("pipeline finished",
		"candidates", len(o.candidates),
		"returned", len(result),
	)
	return result, nil
}

// truncate applies the final size policy: an explicit request is honored
// exactly (bounded by what survived the filters), otherwise the default cap
// applies.
func truncate(result []*core.RankedCandidate, requested *int) []*core.RankedCandidate {
	limit := DefaultTopN
	if requested != nil {
		limit = *requested
	}
	if len(result) > limit {
		return result[:limit]
	}
	return result
}
