// Package detectcategory maps free-text queries to tool categories using
// substring keyword matching. It is the zero-cost first stage of intent
// parsing and the fallback when the reasoning service is down.
package detectcategory

import (
	"strings"

	"toolrouter/internal/models"
)

// Detect returns the first category whose keyword list matches the query,
// walking categories in their canonical order. Returns false when nothing
// matches.
func Detect(query string) (models.Category, bool) {
	lower := strings.ToLower(query)

	for _, category := range models.AllCategories {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category, true
			}
		}
	}

	return "", false
}
