// internal/engine/select-template/handler.go
// ============================================
// WORKFLOW TEMPLATE MATCHER
// Scores the template library against a query and its workflow hints,
// returning the best template or nothing when no template fits.
// ============================================
package selecttemplate

import (
	"sort"
	"strings"

	"toolrouter/internal/common/logger"
	"toolrouter/internal/models"
)

const (
	triggerPhraseScore = 10
	triggerWordScore   = 3
	hintTriggerScore   = 5
	hintTagScore       = 3

	// Trigger words this short ("yap", "ai") would match almost any query.
	minTriggerWordLen = 4
)

// Input carries the raw query plus the workflow hints extracted during
// intent analysis.
type Input struct {
	Query string
	Hints []string
}

// Output is the best-scoring template, nil when nothing reached the
// threshold.
type Output struct {
	Template *models.WorkflowTemplate
	Score    float64
}

// Handler matches queries against a workflow template library.
type Handler struct {
	config    Config
	templates []models.WorkflowTemplate
	logger    logger.Logger
}

// NewHandler creates a template matcher over the given library. A nil or
// empty library falls back to the builtin one.
func NewHandler(config Config, templates []models.WorkflowTemplate, log logger.Logger) *Handler {
	if config.MinScore <= 0 {
		config.MinScore = DefaultConfig().MinScore
	}
	if len(templates) == 0 {
		templates = builtinTemplates
	}
	return &Handler{
		config:    config,
		templates: templates,
		logger:    log.WithFields(map[string]interface{}{"component": "select-template"}),
	}
}

// Execute scores every template and returns the winner, or a nil template
// when the best score stays under the threshold.
func (h *Handler) Execute(input Input) *Output {
	query := strings.ToLower(input.Query)
	hints := make([]string, 0, len(input.Hints))
	for _, hint := range input.Hints {
		hints = append(hints, strings.ToLower(hint))
	}

	type candidate struct {
		template *models.WorkflowTemplate
		score    float64
	}

	scored := make([]candidate, 0, len(h.templates))
	for i := range h.templates {
		tpl := &h.templates[i]
		scored = append(scored, candidate{template: tpl, score: scoreTemplate(tpl, query, hints)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) == 0 || scored[0].score < h.config.MinScore {
		h.logger.Debug("No workflow template matched", map[string]interface{}{
			"query": input.Query,
		})
		return &Output{}
	}

	best := scored[0]
	h.logger.Info("Workflow template selected", map[string]interface{}{
		"templateId": best.template.ID,
		"score":      best.score,
	})
	return &Output{Template: best.template, Score: best.score}
}

func scoreTemplate(tpl *models.WorkflowTemplate, query string, hints []string) float64 {
	var score float64

	for _, trigger := range tpl.Triggers {
		trigger = strings.ToLower(trigger)
		if matchesTrigger(query, trigger) {
			score += triggerPhraseScore
		}
		for _, word := range strings.Fields(trigger) {
			if len(word) >= minTriggerWordLen && strings.Contains(query, word) {
				score += triggerWordScore
			}
		}
	}

	for _, hint := range hints {
		if hint == "" {
			continue
		}
		for _, trigger := range tpl.Triggers {
			if strings.Contains(strings.ToLower(trigger), hint) {
				score += hintTriggerScore
				break
			}
		}
		for _, tag := range tpl.Tags {
			if strings.Contains(strings.ToLower(tag), hint) {
				score += hintTagScore
				break
			}
		}
	}

	return score
}

// matchesTrigger checks phrase containment. Triggers shorter than
// minTriggerWordLen ("bi") must match a whole word, otherwise they hit
// inside unrelated words.
func matchesTrigger(query, trigger string) bool {
	if len(trigger) >= minTriggerWordLen {
		return strings.Contains(query, trigger)
	}
	for _, word := range strings.Fields(query) {
		if word == trigger {
			return true
		}
	}
	return false
}
