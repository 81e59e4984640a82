// internal/engine/rank-tools/scorer.go
package ranktools

import (
	"strings"

	"toolrouter/internal/models"
)

// defaultStrength substitutes for tools seeded without a quality prior.
const defaultStrength = 8

// ScoreOptions tune a single scoring pass.
type ScoreOptions struct {
	// Capabilities, when set, replace the intent's keywords as the affinity
	// signal and carry a higher per-match bonus. Used by the workflow step
	// assigner.
	Capabilities []string
	// PricingFilter overrides the intent's pricing constraint.
	PricingFilter string
}

// ScoreTool computes the additive match score for one tool. Base score is
// the tool's strength; bonuses reward capability/keyword affinity and
// constraint alignment. The only negative adjustment is the paid-only
// penalty under a free pricing preference, so the score never drops more
// than 2 below strength.
func ScoreTool(tool models.Tool, intent *models.ParsedIntent, opts ScoreOptions) float64 {
	score := tool.Strength
	if score == 0 {
		score = defaultStrength
	}

	lowerBestFor := lowerAll(tool.BestFor)
	lowerFeatures := lowerAll(tool.Features)

	if len(opts.Capabilities) > 0 {
		for _, capability := range opts.Capabilities {
			needle := strings.ToLower(capability)
			if matchesAny(lowerBestFor, needle) {
				score += 1.5
			}
			if containsSubstring(lowerFeatures, needle) {
				score += 0.5
			}
		}
	} else if intent != nil {
		for _, keyword := range intent.Keywords {
			kw := strings.ToLower(keyword)
			if matchesAny(lowerBestFor, kw) || containsSubstring(lowerFeatures, kw) {
				score += 0.5
			}
		}
	}

	pricingPref := opts.PricingFilter
	if pricingPref == "" && intent != nil {
		pricingPref = intent.Constraints.Pricing
	}
	switch pricingPref {
	case models.PricingFree:
		if tool.Pricing.Free {
			score += 2
		} else if tool.Pricing.Freemium {
			score += 1
		} else if tool.Pricing.PaidOnly {
			score -= 2
		}
	case models.PricingPaid:
		if tool.Pricing.PaidOnly || tool.Pricing.Freemium {
			score += 0.5
		}
	}

	if intent != nil && intent.Constraints.Expertise == models.ExpertiseBeginner {
		if tool.Pricing.Free {
			score += 0.5
		}
		if tool.Strength > 0 && tool.Strength < 9 {
			score += 0.3
		}
	}

	if intent != nil && intent.Constraints.Speed == models.SpeedFast {
		for _, feature := range lowerFeatures {
			if strings.Contains(feature, "fast") || strings.Contains(feature, "quick") {
				score += 0.5
				break
			}
		}
	}

	return score
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.ToLower(item)
	}
	return out
}

// matchesAny reports a bidirectional substring match between needle and any
// entry, so "logo" matches "logo design" and vice versa.
func matchesAny(entries []string, needle string) bool {
	for _, entry := range entries {
		if strings.Contains(entry, needle) || strings.Contains(needle, entry) {
			return true
		}
	}
	return false
}

func containsSubstring(entries []string, needle string) bool {
	for _, entry := range entries {
		if strings.Contains(entry, needle) {
			return true
		}
	}
	return false
}
