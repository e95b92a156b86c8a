package query

import (
	"log/slog"
	"strings"

	"github.com/selekta/selekta/catalog"
	"github.com/selekta/selekta/core"
)

// Interpreter extracts structured requirements from free-text queries.
// It holds only read-only catalog data and is safe for concurrent use.
type Interpreter struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) error {
		if logger == nil {
			logger = slog.Default()
		}
		i.logger = logger
		return nil
	}
}

// NewInterpreter creates a new interpreter over the given catalog.
func NewInterpreter(cat *catalog.Catalog, opts ...Option) (*Interpreter, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}

	i := &Interpreter{
		catalog: cat,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}

	return i, nil
}

// Interpret parses one user utterance into QueryRequirements.
// Returns core.ErrEmptyQuery if the input is blank after trimming.
func (i *Interpreter) Interpret(raw string) (*core.QueryRequirements, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, core.ErrEmptyQuery
	}

	norm := core.Normalize(text)

	req := &core.QueryRequirements{
		RawText:         text,
		Role:            i.extractRole(norm),
		Skills:          i.extractSkills(norm),
		Location:        i.extractLocation(norm),
		YearsExperience: extractExperience(norm),
		NumCandidates:   extractNumCandidates(norm),
		Languages:       i.extractLanguages(norm),
	}

	i.logger.Debug("interpreted query",
		"role", req.Role,
		"skills", req.Skills,
		"location", req.Location,
		"years", req.YearsExperience,
		"count", req.NumCandidates,
		"languages", req.Languages,
	)

	return req, nil
}
