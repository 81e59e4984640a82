// pkg/registry/schema.go
package registry

import "toolrouter/internal/models"

// TemplateRegistry is the on-disk workflow template library. Deployments
// can ship their own templates without rebuilding; absent a file, the
// compiled-in library is used.
type TemplateRegistry struct {
	Version     string                    `json:"version"`
	LastUpdated string                    `json:"lastUpdated"`
	Templates   []models.WorkflowTemplate `json:"templates"`
}

// templateSchemaJSON validates the structural shape of a registry file
// before it is trusted. Category values are checked separately against the
// known set.
const templateSchemaJSON = `{
  "type": "object",
  "required": ["version", "templates"],
  "properties": {
    "version": {"type": "string"},
    "lastUpdated": {"type": "string"},
    "templates": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "triggers", "steps"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "triggers": {"type": "array", "items": {"type": "string"}, "minItems": 1},
          "complexity": {"enum": ["simple", "medium", "complex", ""]},
          "steps": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["order", "name", "category"],
              "properties": {
                "order": {"type": "integer", "minimum": 1},
                "name": {"type": "string", "minLength": 1},
                "category": {"type": "string", "minLength": 1}
              }
            }
          }
        }
      }
    }
  }
}`
