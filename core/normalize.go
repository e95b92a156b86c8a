package core

import (
	"regexp"
	"strings"
)

var (
	nonWordRE    = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

var accentFold = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U",
	"ñ", "n", "Ñ", "N",
)

// StripAccents removes Spanish diacritics ("Bogotá" -> "Bogota") without
// touching case. Letters outside the Spanish accent set pass through.
func StripAccents(s string) string {
	return accentFold.Replace(s)
}

// Normalize canonicalizes free text for lexical comparison: lower-case,
// fold accents, replace punctuation with spaces, collapse whitespace.
// Pure and idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = accentFold.Replace(s)
	s = nonWordRE.ReplaceAllString(s, " ")
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits normalized text into tokens.
func Tokenize(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	return strings.Fields(n)
}
