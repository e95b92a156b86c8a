package rank

import (
	"strconv"
	"strings"

	"github.com/selekta/selekta/core"
)

// fieldSeparator joins labeled fields into one embedding text.
const fieldSeparator = " | "

// emptyQueryText is embedded when a query carries no structured fields at
// all, so the engine still produces a usable query vector.
const emptyQueryText = "Búsqueda de candidato para un puesto."

// BuildQueryText concatenates the present requirement fields into a single
// labeled string for embedding. Absent fields are omitted entirely.
func BuildQueryText(req *core.QueryRequirements) string {
	var parts []string

	if req.Role != nil {
		role := req.Role.CatalogRole
		if role == "" {
			role = req.Role.Text
		}
		parts = append(parts, "Rol buscado: "+role)
	}
	if len(req.Skills) > 0 {
		parts = append(parts, "Requisitos y descripción: "+strings.Join(req.Skills, "; "))
	}
	if req.Location != "" {
		parts = append(parts, "Ubicación deseada: "+req.Location)
	}
	if req.YearsExperience != nil {
		parts = append(parts, "Años de experiencia mínimos: "+strconv.Itoa(*req.YearsExperience))
	}
	if len(req.Languages) > 0 {
		parts = append(parts, "Idiomas requeridos: "+strings.Join(req.Languages, "; "))
	}

	if len(parts) == 0 {
		if req.RawText != "" {
			return req.RawText
		}
		return emptyQueryText
	}

	return strings.Join(parts, fieldSeparator)
}

// BuildCandidateText concatenates a candidate profile into a single labeled
// string for embedding. All fields are always present so candidate texts
// share a uniform shape.
func BuildCandidateText(profile *core.CandidateProfile) string {
	parts := []string{
		"Rol: " + profile.Role,
		"Skills: " + strings.Join(profile.Skills, "; "),
		"Ubicación: " + profile.Location,
		"Años de experiencia: " + strconv.Itoa(profile.YearsExperience),
		"Idiomas: " + strings.Join(profile.Languages, "; "),
	}
	return strings.Join(parts, fieldSeparator)
}
