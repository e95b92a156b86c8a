package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/selekta/selekta/core"
)

// Patterns below run against normalized text (lower-case, accents folded),
// so "años" appears as "anos" and "mínimo" as "minimo".
var (
	// "sin experiencia", "sin experiencia previa"
	noExperienceRE = regexp.MustCompile(`sin\s+experiencia(\s+previa)?`)

	// "5 anos de experiencia"
	yearsExperienceRE = regexp.MustCompile(`(\d+)\s+anos?\s+de\s+experiencia`)

	// "minimo 3 anos", "al menos 2 anos"
	yearsExperienceAltRE = regexp.MustCompile(`(minimo|al menos)\s+(\d+)\s+anos?`)

	// "3 candidatos", "2 perfiles", "5 personas"
	numCandidatesRE = regexp.MustCompile(`(\d+)\s+(candidatos?|perfiles?|personas?|ingenieros?|tecnicos?)`)

	// "1 soldador", "1 ingeniero"
	oneOfSomethingRE = regexp.MustCompile(`\b1\s+\w+`)

	// "necesito un ...", "busco una ..."
	singularDeterminerRE = regexp.MustCompile(`\b(un|una)\s+\w+`)
)

// Words that signal the user wants several results, suppressing the
// singular-determiner heuristic.
var pluralHints = []string{"varios", "algunos", "muchos"}

// extractExperience extracts the minimum years of experience.
//
// Pattern families in priority order:
//  1. explicit negation ("sin experiencia previa") returns 0 and wins over
//     any number elsewhere in the utterance
//  2. "<N> anos de experiencia"
//  3. "minimo|al menos <N> anos"
//
// Returns nil (unconstrained) when none match; nil and 0 mean different
// things.
func extractExperience(norm string) *int {
	if noExperienceRE.MatchString(norm) {
		zero := 0
		return &zero
	}

	m := yearsExperienceRE.FindStringSubmatch(norm)
	if m != nil {
		return atoiPtr(m[1])
	}

	m = yearsExperienceAltRE.FindStringSubmatch(norm)
	if m != nil {
		return atoiPtr(m[2])
	}

	return nil
}

// extractNumCandidates extracts how many candidates the user asked for.
// An explicit "<N> candidatos" style mention wins; otherwise a singular
// determiner ("un ingeniero") is read as exactly one, unless the text hints
// at several ("varios", "algunos", "muchos"). Returns nil when
// unconstrained; the orchestrator applies the default cap.
func extractNumCandidates(norm string) *int {
	if m := numCandidatesRE.FindStringSubmatch(norm); m != nil {
		return atoiPtr(m[1])
	}

	for _, hint := range pluralHints {
		if strings.Contains(norm, hint) {
			return nil
		}
	}

	if oneOfSomethingRE.MatchString(norm) || singularDeterminerRE.MatchString(norm) {
		one := 1
		return &one
	}

	return nil
}

// extractLocation returns the first catalog city mentioned in the text.
// First match wins; multiple city mentions are not ranked.
func (i *Interpreter) extractLocation(norm string) string {
	for _, city := range i.catalog.Cities {
		if strings.Contains(norm, core.Normalize(city)) {
			return city
		}
	}
	return ""
}

// extractLanguages returns every catalog language mentioned in the text,
// not just the first.
func (i *Interpreter) extractLanguages(norm string) []string {
	var found []string
	for _, lang := range i.catalog.Languages {
		if strings.Contains(norm, core.Normalize(lang)) {
			found = append(found, lang)
		}
	}
	return found
}

// extractSkills returns the catalog skills literally mentioned in the text.
//
// One compound rule: "mantenimiento preventivo y correctivo" names two
// skills while spelling out only one of them, so when both "mantenimiento
// preventivo" and "correctivo" appear the catalog entries for both are
// emitted even though "mantenimiento correctivo" is not contiguous.
func (i *Interpreter) extractSkills(norm string) []string {
	var found []string
	seen := map[string]bool{}

	if strings.Contains(norm, "mantenimiento preventivo") && strings.Contains(norm, "correctivo") {
		for _, target := range []string{"mantenimiento preventivo", "mantenimiento correctivo"} {
			if label, ok := i.catalogSkill(target); ok && !seen[label] {
				found = append(found, label)
				seen[label] = true
			}
		}
	}

	for _, skill := range i.catalog.Skills {
		if seen[skill] {
			continue
		}
		if strings.Contains(norm, core.Normalize(skill)) {
			found = append(found, skill)
			seen[skill] = true
		}
	}

	return found
}

// catalogSkill looks up a normalized skill name in the catalog and returns
// the catalog's own label for it.
func (i *Interpreter) catalogSkill(normalized string) (string, bool) {
	for _, skill := range i.catalog.Skills {
		if core.Normalize(skill) == normalized {
			return skill, true
		}
	}
	return "", false
}

func atoiPtr(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
