package filter

import (
	"testing"

	"github.com/selekta/selekta/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func ranked(entries ...*core.RankedCandidate) []*core.RankedCandidate {
	return entries
}

func rc(id, role, location string, years int, score float32) *core.RankedCandidate {
	return &core.RankedCandidate{
		Profile: &core.CandidateProfile{
			ID:              id,
			Role:            role,
			Location:        location,
			YearsExperience: years,
		},
		Score: score,
	}
}

func TestApply_NoConstraintsKeepsAll(t *testing.T) {
	in := ranked(
		rc("c-001", "Ingeniero de Mantenimiento", "Bogotá", 5, 0.9),
		rc("c-002", "Técnico Electricista", "Medellín", 2, 0.5),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{})
	assert.Equal(t, in, out)
}

func TestRoleFilter_GeneralMatchesHeadToken(t *testing.T) {
	in := ranked(
		rc("c-001", "Ingeniero de Mantenimiento", "", 0, 0.9),
		rc("c-002", "Ingeniero Civil", "", 0, 0.8),
		rc("c-003", "Técnico Electricista", "", 0, 0.7),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{
		Role: &core.RoleQuery{Text: "ingeniero", HeadWord: "ingeniero", General: true},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "c-001", out[0].Profile.ID)
	assert.Equal(t, "c-002", out[1].Profile.ID)
}

func TestRoleFilter_GeneralRequiresExactToken(t *testing.T) {
	// "ingenieros" as a token must not match head word "ingeniero".
	in := ranked(
		rc("c-001", "Ingeniero Civil", "", 0, 0.9),
		rc("c-002", "Coordinador de Ingenieros", "", 0, 0.8),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{
		Role: &core.RoleQuery{Text: "ingeniero", HeadWord: "ingeniero", General: true},
	})

	require.Len(t, out, 1)
	assert.Equal(t, "c-001", out[0].Profile.ID)
}

func TestRoleFilter_GeneralSemanticFallbackAboveThreshold(t *testing.T) {
	// No candidate role carries the head token, but the top score clears
	// the threshold: the full ranking flows on.
	in := ranked(
		rc("c-001", "Ingeniero de Mantenimiento", "", 0, 0.55),
		rc("c-002", "Ingeniero Civil", "", 0, 0.50),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{
		Role: &core.RoleQuery{Text: "peluquero", HeadWord: "peluquero", General: true},
	})

	assert.Equal(t, in, out)
}

func TestRoleFilter_GeneralSemanticFallbackBelowThreshold(t *testing.T) {
	in := ranked(
		rc("c-001", "Ingeniero de Mantenimiento", "", 0, 0.2),
		rc("c-002", "Ingeniero Civil", "", 0, 0.1),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{
		Role: &core.RoleQuery{Text: "peluquero", HeadWord: "peluquero", General: true},
	})

	assert.Empty(t, out)
}

func TestRoleFilter_SpecificFullPhrase(t *testing.T) {
	in := ranked(
		rc("c-001", "Ingeniero de Mantenimiento Industrial", "", 0, 0.9),
		rc("c-002", "Ingeniero Civil", "", 0, 0.8),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{
		Role: &core.RoleQuery{
			Text:        "ingeniero de mantenimiento",
			CatalogRole: "ingeniero de mantenimiento",
			HeadWord:    "ingeniero",
		},
	})

	require.Len(t, out, 1)
	assert.Equal(t, "c-001", out[0].Profile.ID)
}

func TestRoleFilter_SpecificFallsBackToHeadWord(t *testing.T) {
	in := ranked(
		rc("c-001", "Ingeniero Civil", "", 0, 0.9),
		rc("c-002", "Técnico Electricista", "", 0, 0.8),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{
		Role: &core.RoleQuery{Text: "ingeniero de sistemas", HeadWord: "ingeniero"},
	})

	require.Len(t, out, 1)
	assert.Equal(t, "c-001", out[0].Profile.ID)
}

func TestRoleFilter_SemanticFallbackAboveThreshold(t *testing.T) {
	// No lexical match at all, but the top score clears the threshold:
	// the full ranking flows on.
	in := ranked(
		rc("c-001", "Analista de Datos", "", 0, 0.55),
		rc("c-002", "Técnico Electricista", "", 0, 0.45),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{
		Role: &core.RoleQuery{Text: "analizador de datos", HeadWord: "analizador"},
	})

	assert.Equal(t, in, out)
}

func TestRoleFilter_SemanticFallbackBelowThreshold(t *testing.T) {
	in := ranked(
		rc("c-001", "Analista de Datos", "", 0, 0.1),
		rc("c-002", "Técnico Electricista", "", 0, 0.05),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{
		Role: &core.RoleQuery{Text: "peluquero canino", HeadWord: "peluquero"},
	})

	assert.Empty(t, out)
}

func TestRoleFilter_AccentInsensitive(t *testing.T) {
	in := ranked(rc("c-001", "Técnico Electricista", "", 0, 0.9))

	out := NewChain().Apply(in, &core.QueryRequirements{
		Role: &core.RoleQuery{Text: "tecnico", HeadWord: "tecnico", General: true},
	})

	require.Len(t, out, 1)
}

func TestLocationFilter_ExactNormalizedMatch(t *testing.T) {
	in := ranked(
		rc("c-001", "Operario", "Bogotá", 0, 0.9),
		rc("c-002", "Operario", "Bogotá Norte", 0, 0.8),
		rc("c-003", "Operario", "Medellín", 0, 0.7),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{Location: "bogota"})

	require.Len(t, out, 1)
	assert.Equal(t, "c-001", out[0].Profile.ID)
}

func TestLocationFilter_EmptiesChain(t *testing.T) {
	in := ranked(rc("c-001", "Operario", "Cali", 0, 0.9))

	out := NewChain().Apply(in, &core.QueryRequirements{Location: "cartagena"})
	assert.Empty(t, out)
}

func TestExperienceFilter_InclusiveMinimum(t *testing.T) {
	in := ranked(
		rc("c-001", "Operario", "", 5, 0.9),
		rc("c-002", "Operario", "", 3, 0.8),
		rc("c-003", "Operario", "", 2, 0.7),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{YearsExperience: intPtr(3)})

	require.Len(t, out, 2)
	assert.Equal(t, "c-001", out[0].Profile.ID)
	assert.Equal(t, "c-002", out[1].Profile.ID)
}

func TestExperienceFilter_ZeroKeepsEveryone(t *testing.T) {
	in := ranked(
		rc("c-001", "Operario", "", 0, 0.9),
		rc("c-002", "Operario", "", 10, 0.8),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{YearsExperience: intPtr(0)})
	assert.Len(t, out, 2)
}

func TestApply_StagesChain(t *testing.T) {
	in := ranked(
		rc("c-001", "Ingeniero de Mantenimiento", "Bogotá", 5, 0.9),
		rc("c-002", "Ingeniero de Mantenimiento", "Medellín", 5, 0.8),
		rc("c-003", "Ingeniero de Mantenimiento", "Bogotá", 1, 0.7),
		rc("c-004", "Técnico Electricista", "Bogotá", 5, 0.6),
	)

	out := NewChain().Apply(in, &core.QueryRequirements{
		Role:            &core.RoleQuery{Text: "ingeniero de mantenimiento", HeadWord: "ingeniero"},
		Location:        "bogota",
		YearsExperience: intPtr(3),
	})

	require.Len(t, out, 1)
	assert.Equal(t, "c-001", out[0].Profile.ID)
}

func TestApply_LaterStageEmptyStaysEmpty(t *testing.T) {
	// Semantic fallback applies only to the role stage. A location that
	// matches nobody yields an empty result, never the previous list.
	in := ranked(rc("c-001", "Ingeniero de Mantenimiento", "Bogotá", 5, 0.95))

	out := NewChain().Apply(in, &core.QueryRequirements{
		Role:     &core.RoleQuery{Text: "ingeniero", HeadWord: "ingeniero", General: true},
		Location: "remoto",
	})
	assert.Empty(t, out)
}
