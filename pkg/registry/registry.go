// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"toolrouter/internal/models"
)

// LoadRegistry reads and validates a template registry file.
func LoadRegistry(path string) (*TemplateRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("registry %s: %w", path, err)
	}

	var reg TemplateRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}

	for _, tpl := range reg.Templates {
		for _, step := range tpl.Steps {
			if !models.IsValidCategory(step.Category) {
				return nil, fmt.Errorf("registry %s: template %s step %d has unknown category %q",
					path, tpl.ID, step.Order, step.Category)
			}
		}
	}
	return &reg, nil
}

func validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(templateSchemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return err
	}
	if !result.Valid() {
		return fmt.Errorf("schema violation: %v", result.Errors())
	}
	return nil
}
