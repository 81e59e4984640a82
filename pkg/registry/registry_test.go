// pkg/registry/registry_test.go
package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	selecttemplate "toolrouter/internal/engine/select-template"
	"toolrouter/internal/models"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistry_Valid(t *testing.T) {
	path := writeRegistry(t, `{
		"version": "1.0.0",
		"lastUpdated": "2026-08-28",
		"templates": [
			{
				"id": "newsletter",
				"name": "Newsletter",
				"triggers": ["newsletter"],
				"complexity": "simple",
				"steps": [
					{"order": 1, "name": "Draft", "category": "text"}
				]
			}
		]
	}`)

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", reg.Version)
	require.Len(t, reg.Templates, 1)
	assert.Equal(t, "newsletter", reg.Templates[0].ID)
	assert.Equal(t, models.CategoryText, reg.Templates[0].Steps[0].Category)
}

func TestLoadRegistry_CompiledTemplatesRoundTrip(t *testing.T) {
	reg := TemplateRegistry{
		Version:     "1.0.0",
		LastUpdated: "2026-08-28",
		Templates:   selecttemplate.BuiltinTemplates(),
	}
	raw, err := json.Marshal(reg)
	require.NoError(t, err)

	loaded, err := LoadRegistry(writeRegistry(t, string(raw)))
	require.NoError(t, err)
	assert.Equal(t, selecttemplate.BuiltinTemplates(), loaded.Templates)
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadRegistry_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{broken`},
		{"missing version", `{"templates": []}`},
		{"template without triggers", `{
			"version": "1",
			"templates": [{"id": "x", "name": "X", "triggers": [], "steps": [{"order": 1, "name": "S", "category": "text"}]}]
		}`},
		{"step without category", `{
			"version": "1",
			"templates": [{"id": "x", "name": "X", "triggers": ["x"], "steps": [{"order": 1, "name": "S"}]}]
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRegistry(writeRegistry(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadRegistry_UnknownCategory(t *testing.T) {
	path := writeRegistry(t, `{
		"version": "1",
		"templates": [{"id": "x", "name": "X", "triggers": ["x"], "steps": [{"order": 1, "name": "S", "category": "hologram"}]}]
	}`)

	_, err := LoadRegistry(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hologram")
}
