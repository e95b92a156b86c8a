package query

import (
	"testing"

	"github.com/selekta/selekta/core"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeJobQuery(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantOK bool
	}{
		{
			name:   "intent verb plus role hint",
			text:   "necesito un ingeniero de mantenimiento",
			wantOK: true,
		},
		{
			name:   "intent verb alone",
			text:   "busco alguien para el turno de la noche",
			wantOK: true,
		},
		{
			name:   "role hint alone",
			text:   "el tecnico llego tarde ayer",
			wantOK: true,
		},
		{
			name:   "experience mention alone is not enough",
			text:   "tengo 5 años de experiencia cocinando",
			wantOK: false,
		},
		{
			name:   "unrelated text",
			text:   "me gusta la pizza con piña",
			wantOK: false,
		},
		{
			name:   "empty",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, score := AnalyzeJobQuery(core.Normalize(tt.text))
			assert.Equal(t, tt.wantOK, ok, "score=%f", score)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}
