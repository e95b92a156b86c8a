package filter

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/selekta/selekta/core"
)

// SemanticFallbackThreshold is the minimum top-of-ranking cosine similarity
// at which an empty role filter result is replaced by the full semantic
// ranking. Below it the system reports no matches instead of returning an
// irrelevant list.
const SemanticFallbackThreshold = 0.40

// Chain applies the deterministic filter stages to a ranked candidate list.
type Chain struct {
	logger *slog.Logger
}

// Option configures a Chain.
type Option func(*Chain)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chain) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewChain creates a filter chain.
func NewChain(opts ...Option) *Chain {
	c := &Chain{
		logger: slog.Default().With("component", "filter"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Apply runs the filter chain over a ranked candidate list.
// The input slice is never mutated; stages return subsequences of it.
func (c *Chain) Apply(ranked []*core.RankedCandidate, req *core.QueryRequirements) []*core.RankedCandidate {
	result := c.filterByRole(ranked, req.Role)
	result = filterByLocation(result, req.Location)
	result = filterByExperience(result, req.YearsExperience)
	return result
}

// filterByRole keeps candidates matching the requested role.
//
// General roles (single token) match when the candidate's tokenized role
// contains the head token exactly. Specific roles first try containment of
// the full role phrase in the candidate role, then fall back to the head
// token. Either way, when the lexical passes come up empty the semantic
// fallback decides between dropping the role constraint and returning
// nothing.
func (c *Chain) filterByRole(ranked []*core.RankedCandidate, role *core.RoleQuery) []*core.RankedCandidate {
	if role == nil || len(ranked) == 0 {
		return ranked
	}

	if role.General {
		if matched := keepByHeadWord(ranked, role.HeadWord); len(matched) > 0 {
			return matched
		}
		return c.semanticFallback(ranked, role.HeadWord)
	}

	phrase := role.Text
	if role.CatalogRole != "" {
		phrase = role.CatalogRole
	}
	phrase = core.Normalize(phrase)

	var matched []*core.RankedCandidate
	for _, rc := range ranked {
		if strings.Contains(core.Normalize(rc.Profile.Role), phrase) {
			matched = append(matched, rc)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	if matched = keepByHeadWord(ranked, role.HeadWord); len(matched) > 0 {
		return matched
	}

	return c.semanticFallback(ranked, phrase)
}

// semanticFallback decides what an empty role filter result becomes. If the
// best semantic score clears the threshold, the role was likely a synonym or
// typo the catalog missed, so trust the ranking instead.
func (c *Chain) semanticFallback(ranked []*core.RankedCandidate, role string) []*core.RankedCandidate {
	if ranked[0].Score >= SemanticFallbackThreshold {
		c.logger.Debug("role filter empty, semantic fallback engaged",
			"role", role, "topScore", ranked[0].Score)
		return ranked
	}

	c.logger.Debug("role filter empty, top score below fallback threshold",
		"role", role, "topScore", ranked[0].Score)
	return nil
}

func keepByHeadWord(ranked []*core.RankedCandidate, headWord string) []*core.RankedCandidate {
	if headWord == "" {
		return nil
	}
	var matched []*core.RankedCandidate
	for _, rc := range ranked {
		if slices.Contains(core.Tokenize(rc.Profile.Role), headWord) {
			matched = append(matched, rc)
		}
	}
	return matched
}

// filterByLocation keeps candidates whose normalized location equals the
// requested one exactly. Substring matches do not count: "bogota" must not
// match "bogota norte".
func filterByLocation(ranked []*core.RankedCandidate, location string) []*core.RankedCandidate {
	if location == "" {
		return ranked
	}

	want := core.Normalize(location)
	var matched []*core.RankedCandidate
	for _, rc := range ranked {
		if core.Normalize(rc.Profile.Location) == want {
			matched = append(matched, rc)
		}
	}
	return matched
}

// filterByExperience keeps candidates with at least the requested years.
// A requested minimum of 0 ("sin experiencia") keeps everyone but is still
// a real constraint, distinct from no constraint at all.
func filterByExperience(ranked []*core.RankedCandidate, minYears *int) []*core.RankedCandidate {
	if minYears == nil {
		return ranked
	}

	var matched []*core.RankedCandidate
	for _, rc := range ranked {
		if rc.Profile.YearsExperience >= *minYears {
			matched = append(matched, rc)
		}
	}
	return matched
}
