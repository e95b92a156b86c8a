package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/selekta/selekta/core"
	"github.com/selekta/selekta/store"
)

// listSeparator joins multi-valued columns (skills, languages) in a single
// TEXT cell.
const listSeparator = ";"

// Store implements store.CandidateStore backed by a SQLite database.
type Store struct {
	pool   *sql.DB
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

// Open opens (and migrates) a candidate database at the given path.
//
// Returns store.CandidateStore interface to enforce abstraction.
func Open(path string, opts ...Option) (store.CandidateStore, error) {
	return open(path, opts...)
}

func open(path string, opts ...Option) (*Store, error) {
	pool, err := openPool(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(pool); err != nil {
		_ = pool.Close()
		return nil, err
	}

	s := &Store{
		pool:   pool,
		logger: slog.Default().With("component", "sqlite-store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// LoadAll returns every candidate profile in the database.
// Rows that fail validation are skipped with a warning.
func (s *Store) LoadAll(ctx context.Context) ([]*core.CandidateProfile, error) {
	rows, err := s.pool.QueryContext(ctx, `
SELECT id, role, skills, location, years_experience, languages
FROM candidates
ORDER BY id;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*core.CandidateProfile
	for rows.Next() {
		var (
			profile   core.CandidateProfile
			skills    string
			languages string
		)
		if err := rows.Scan(&profile.ID, &profile.Role, &skills, &profile.Location, &profile.YearsExperience, &languages); err != nil {
			return nil, err
		}
		profile.Skills = splitList(skills)
		profile.Languages = splitList(languages)

		if err := core.ValidateCandidateProfile(&profile); err != nil {
			s.logger.Warn("skipping invalid candidate row", "id", profile.ID, "err", err)
			continue
		}
		profiles = append(profiles, &profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug("loaded candidates", "count", len(profiles))
	return profiles, nil
}

// Upsert inserts or replaces candidate profiles.
func (s *Store) Upsert(ctx context.Context, profiles ...*core.CandidateProfile) error {
	tx, err := s.pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO candidates (id, role, skills, location, years_experience, languages)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  role = excluded.role,
  skills = excluded.skills,
  location = excluded.location,
  years_experience = excluded.years_experience,
  languages = excluded.languages;
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, profile := range profiles {
		if err := core.ValidateCandidateProfile(profile); err != nil {
			return err
		}
		_, err := stmt.ExecContext(ctx,
			profile.ID,
			profile.Role,
			joinList(profile.Skills),
			profile.Location,
			profile.YearsExperience,
			joinList(profile.Languages),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	if s == nil || s.pool == nil {
		return nil
	}
	return s.pool.Close()
}

func splitList(value string) []string {
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

func joinList(values []string) string {
	return strings.Join(values, listSeparator)
}
