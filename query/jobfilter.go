package query

import "regexp"

// JobQueryThreshold is the minimum heuristic score for a text to count as a
// candidate-search request. An intent verb (0.5) or a profession hint (0.4)
// is enough on its own; an experience mention (0.3) alone is not.
const JobQueryThreshold = 0.4

var (
	// Verbs typical of requesting or hiring people.
	jobVerbRE = regexp.MustCompile(
		`\b(necesito|busco|requiero|solicito|contrato|contratar|se busca|se requiere|oferto|ofrecemos)\b`,
	)

	// Mention of years of experience (normalized text, "anos").
	jobExperienceRE = regexp.MustCompile(`\b\d+\s+anos?\s+de\s+experiencia\b`)

	// Profession stems, deliberately generic.
	jobRoleHintRE = regexp.MustCompile(
		`\b(ingenier\w*|tecnic\w*|analist\w*|desarrollador\w*|programador\w*|` +
			`contador\w*|abogad\w*|medic\w*|enfermer\w*|disenador\w*|` +
			`operari\w*|jefe|coordinador\w*|auxiliar\w*|piloto\w*|peluquer\w*)\b`,
	)
)

// AnalyzeJobQuery scores how much a normalized text looks like a
// candidate-search request. It is a cheap lexical heuristic, not a model:
// the caller uses it to short-circuit unrelated utterances before any
// embedding work happens.
func AnalyzeJobQuery(norm string) (bool, float64) {
	if norm == "" {
		return false, 0.0
	}

	score := 0.0
	if jobVerbRE.MatchString(norm) {
		score += 0.5
	}
	if jobExperienceRE.MatchString(norm) {
		score += 0.3
	}
	if jobRoleHintRE.MatchString(norm) {
		score += 0.4
	}
	if score > 1.0 {
		score = 1.0
	}

	return score >= JobQueryThreshold, score
}
