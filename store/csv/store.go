// Package csv loads candidate profiles from CSV files.
//
// Expected columns (with header row):
//
//	id,role,skills,location,years_experience,languages
//
// Skills and languages are semicolon-separated within their cells.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/selekta/selekta/core"
	"github.com/selekta/selekta/store"
)

const listSeparator = ";"

// Store implements store.CandidateStore backed by a CSV file.
type Store struct {
	path   string
	logger *slog.Logger
}

var _ store.CandidateStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used by the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Open creates a CSV-backed candidate store for the given file path.
// The file is read on each LoadAll call, not held open.
//
// Returns store.CandidateStore interface to enforce abstraction.
func Open(path string, opts ...Option) (store.CandidateStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	s := &Store{
		path:   path,
		logger: slog.Default().With("component", "csv-store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// LoadAll reads and parses every candidate row in the file.
// Rows that fail validation are skipped with a warning.
func (s *Store) LoadAll(ctx context.Context) ([]*core.CandidateProfile, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s.parse(ctx, f)
}

func (s *Store) parse(ctx context.Context, r io.Reader) ([]*core.CandidateProfile, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrMalformedRecord, err)
	}
	if len(header) < 6 {
		return nil, fmt.Errorf("%w: expected 6 columns, got %d", store.ErrMalformedRecord, len(header))
	}

	var profiles []*core.CandidateProfile
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", store.ErrMalformedRecord, line, err)
		}

		profile, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", store.ErrMalformedRecord, line, err)
		}

		if err := core.ValidateCandidateProfile(profile); err != nil {
			s.logger.Warn("skipping invalid candidate row", "line", line, "err", err)
			continue
		}
		profiles = append(profiles, profile)
	}

	s.logger.Debug("loaded candidates", "path", s.path, "count", len(profiles))
	return profiles, nil
}

// Close is a no-op; the file is not held open between loads.
func (s *Store) Close() error {
	return nil
}

func parseRecord(record []string) (*core.CandidateProfile, error) {
	if len(record) < 6 {
		return nil, fmt.Errorf("expected 6 columns, got %d", len(record))
	}

	years := 0
	if raw := strings.TrimSpace(record[4]); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("years_experience: %w", err)
		}
		years = parsed
	}

	return &core.CandidateProfile{
		ID:              strings.TrimSpace(record[0]),
		Role:            strings.TrimSpace(record[1]),
		Skills:          splitList(record[2]),
		Location:        strings.TrimSpace(record[3]),
		YearsExperience: years,
		Languages:       splitList(record[5]),
	}, nil
}

func splitList(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, listSeparator)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
