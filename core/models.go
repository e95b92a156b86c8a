package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for derived entities such as cached vectors.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// CandidateProfile is a single candidate record loaded from a candidate store.
// Profiles are immutable once loaded; the ranking pipeline never mutates them.
type CandidateProfile struct {
	ID              string
	Role            string
	Skills          []string // ordered as stored
	Location        string
	YearsExperience int
	Languages       []string
}

// RoleQuery describes the role a query asks for.
//
// A role is "general" when the user asked for a single-word title
// ("ingeniero") and "specific" when the title is qualified
// ("ingeniero de mantenimiento"). General roles filter more permissively.
type RoleQuery struct {
	// Text is the role phrase as extracted from the query, normalized.
	Text string

	// CatalogRole is the catalog label the phrase resolved to, or empty if
	// no catalog entry matched closely enough. Only specific roles are
	// matched against the catalog.
	CatalogRole string

	// HeadWord is the first token of the role phrase ("ingeniero",
	// "tecnico", "peluquero").
	HeadWord string

	// General is true when the role phrase is a single token.
	General bool
}

// QueryRequirements holds the structured fields extracted from one user
// utterance. Absence (nil pointer, empty string or empty slice) always means
// "unconstrained", never "zero". The one exception is YearsExperience: a
// pointer to 0 is a real constraint produced by an explicit "sin experiencia"
// phrase.
type QueryRequirements struct {
	RawText         string     // original utterance, kept as semantic context
	Role            *RoleQuery // nil when no role was recognized
	Skills          []string
	Location        string
	YearsExperience *int // nil = unconstrained; 0 = "sin experiencia"
	NumCandidates   *int // nil = caller applies the default cap
	Languages       []string
}

// RankedCandidate pairs a candidate profile with its similarity score for one
// query. Scores are cosine similarities in [-1, 1], near [0, 1] in practice.
// Ranked candidates are created fresh per query and never persisted.
type RankedCandidate struct {
	Profile *CandidateProfile
	Score   float32
}

// CandidateVector is a cached embedding for one candidate profile.
// The Id is content-based (profile text plus model name) so a profile or
// model change invalidates the entry naturally.
type CandidateVector struct {
	Id        ID
	Model     string
	Vector    []float32
	UpdatedAt time.Time
}
