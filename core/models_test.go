package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "same content produces same ID", content: "ingeniero de mantenimiento | bogota"},
		{name: "empty string", content: ""},
		{name: "long content", content: "Rol: ingeniero civil | Requisitos: autocad; estructuras | Ubicación: Cartagena"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("ingeniero civil")
	id2 := IDFromContent("ingeniero de mantenimiento")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}
