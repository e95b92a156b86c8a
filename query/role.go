package query

import (
	"regexp"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/selekta/selekta/core"
)

// CatalogRoleThreshold is the minimum Jaro-Winkler similarity for a role
// phrase to resolve to a catalog label. Deliberately strict: adjacent
// professions share most of their characters ("ingeniero civil" vs
// "ingeniero de mantenimiento") and a lower threshold would conflate them.
const CatalogRoleThreshold = 0.9

// maxRoleTokens bounds the extracted role phrase. Anything longer is a
// sentence, not a job title, and is rejected as no-role.
const maxRoleTokens = 8

// Leading intent verbs typical of staffing requests.
var intentVerbRE = regexp.MustCompile(
	`^(necesito|busco|requiero|solicito|quiero|deseo|contrato|contratar|` +
		`estoy buscando|estamos buscando|se necesita|se requiere|se busca)\s+(.+)$`,
)

var leadingNumberRE = regexp.MustCompile(`^\d+\s+`)

// Determiners that may precede the role ("busco un ingeniero").
var determiners = map[string]bool{
	"un": true, "una": true, "el": true, "la": true,
	"los": true, "las": true, "unos": true, "unas": true,
}

// Tokens that introduce trailing context clauses: location ("en cartagena"),
// purpose ("para planta") and requirements ("con 5 anos"). "de" is kept so
// compound titles like "ingeniero de mantenimiento" survive.
var clauseStopTokens = map[string]bool{
	"en": true, "para": true, "con": true,
}

// extractRole pulls the requested job title out of a normalized query, or
// returns nil when the text carries no recognizable role.
func (i *Interpreter) extractRole(norm string) *core.RoleQuery {
	rest := norm
	if m := intentVerbRE.FindStringSubmatch(norm); m != nil {
		rest = m[2]
	}
	rest = leadingNumberRE.ReplaceAllString(rest, "")

	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return nil
	}

	if determiners[tokens[0]] && len(tokens) >= 2 {
		tokens = tokens[1:]
	}

	tokens = trimClause(tokens)
	if len(tokens) == 0 || len(tokens) > maxRoleTokens {
		return nil
	}

	tokens = normalizeEngineering(tokens)

	role := &core.RoleQuery{
		Text:     strings.Join(tokens, " "),
		HeadWord: tokens[0],
		General:  len(tokens) == 1,
	}

	// Catalog resolution only makes sense for specific roles; a bare head
	// word like "ingeniero" matches every engineering label equally badly.
	if !role.General {
		role.CatalogRole = i.matchCatalogRole(role.Text)
	}

	return role
}

// trimClause cuts the token list at the first context clause marker.
func trimClause(tokens []string) []string {
	for idx, tok := range tokens {
		if clauseStopTokens[tok] && idx > 0 {
			return tokens[:idx]
		}
	}
	return tokens
}

// normalizeEngineering maps the discipline noun onto the profession:
// "ingenieria" alone becomes "ingeniero", "ingenieria civil" becomes
// "ingeniero civil".
func normalizeEngineering(tokens []string) []string {
	if len(tokens) == 0 || !strings.HasPrefix(tokens[0], "ingenieria") {
		return tokens
	}
	out := make([]string, len(tokens))
	copy(out, tokens)
	out[0] = "ingeniero"
	return out
}

// matchCatalogRole finds the catalog label closest to the role phrase,
// accepting it only above CatalogRoleThreshold. Character-level similarity,
// not token overlap: "analista de datos" and "analista de riesgos" must
// stay apart.
func (i *Interpreter) matchCatalogRole(roleText string) string {
	best := ""
	bestScore := 0.0

	for _, label := range i.catalog.Roles {
		s := smetrics.JaroWinkler(roleText, core.Normalize(label), 0.7, 4)
		if s > bestScore {
			bestScore = s
			best = label
		}
	}

	if bestScore < CatalogRoleThreshold {
		return ""
	}
	return best
}
