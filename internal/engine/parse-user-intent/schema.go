// internal/engine/parse-user-intent/schema.go
package parseuserintent

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const systemPrompt = `You are an intent analyzer for an AI tool recommendation engine. Analyze the user's request and return structured JSON.

**Categories:**
- visual: logos, posters, graphic design, photo editing
- text: blogs, articles, copywriting, content writing
- audio: music, podcasts, voiceovers, sound effects
- research: academic research, paper analysis, literature review
- video: video generation, editing, animation
- data: data analysis, visualization, dashboards, statistics
- code: programming, software development, debugging

**Your tasks:**
1. Identify the user's primary goal (primaryCategory)
2. Capture side needs if any (secondaryCategories)
3. Extract implicit constraints:
   - "free", "without paying" -> pricing: free
   - "fast", "urgent" -> speed: fast
   - "just starting", "simple" -> expertise: beginner
4. Assign a confidence score (0 to 1)
5. Explain why you chose the category

**WORKFLOW / COMPLEXITY DETECTION (VERY IMPORTANT):**
If the request needs multiple steps or tools, mark it multi-step!

Multi-step examples (all MUST have complexity "multi-step"):
- "Create a comic" -> story + script + characters + panels + editing = multi-step (5 steps)
- "Make a video course" -> script + slides + recording + editing = multi-step (4 steps)
- "Build a brand identity" -> research + logo + colors + guidelines = multi-step (4 steps)
- "Launch a podcast" -> script + recording + editing + distribution = multi-step (4 steps)
- "Write a blog post" -> research + writing + visuals = multi-step (3 steps)
- "Prepare a presentation" -> content + slide design + export = multi-step (3 steps)
- "Write an ebook" -> outline + writing + cover + formatting = multi-step (4 steps)
- "YouTube video" -> topic + script + thumbnail + video + SEO = multi-step (5 steps)
- "Social media campaign" -> strategy + visuals + copy = multi-step (4 steps)
- "Produce a song" -> lyrics + melody + mix + cover = multi-step (4 steps)
- "Design a mobile app" -> UX + design system + screens + prototype = multi-step (4 steps)
- "Build a dashboard" -> analysis + visualization + layout = multi-step (3 steps)

Simple examples (complexity "simple"):
- "Design a logo" -> one step = simple
- "Generate an image" -> one step = simple
- "Write an email" -> one step = simple
- "Edit an audio recording" -> one step = simple
- "Translate something" -> one step = simple

For multi-step requests:
- set complexity to "multi-step"
- set estimatedSteps (between 2 and 6)
- list the main steps in workflowHints (e.g. ["story", "visuals", "editing"])
- include every needed category in secondaryCategories

**Rules:**
- Ambiguous queries must get low confidence (< 0.5)
- Detect multi-intent cases (e.g. "music for my video" -> primary: video, secondary: audio)
- Pay attention to context (e.g. "social media content" usually means visual)
- ONLY genuinely complex multi-stage projects are multi-step!
- Anything needing a single tool is SIMPLE!`

// intentSchemaJSON is the strict response schema sent to the reasoning
// service and used to validate its reply before decoding.
const intentSchemaJSON = `{
  "type": "object",
  "properties": {
    "primaryCategory": {
      "type": "string",
      "enum": ["visual", "text", "audio", "research", "video", "data", "code"]
    },
    "secondaryCategories": {
      "type": "array",
      "items": {
        "type": "string",
        "enum": ["visual", "text", "audio", "research", "video", "data", "code"]
      }
    },
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "userGoal": {"type": "string"},
    "constraints": {
      "type": "object",
      "properties": {
        "pricing": {"type": "string", "enum": ["free", "freemium", "paid", ""]},
        "speed": {"type": "string", "enum": ["fast", "quality", ""]},
        "expertise": {"type": "string", "enum": ["beginner", "advanced", ""]},
        "language": {"type": "string"}
      },
      "required": ["pricing", "speed", "expertise", "language"],
      "additionalProperties": false
    },
    "keywords": {"type": "array", "items": {"type": "string"}},
    "reasoning": {"type": "string"},
    "complexity": {"type": "string", "enum": ["simple", "multi-step"]},
    "estimatedSteps": {"type": "integer", "minimum": 1, "maximum": 10},
    "workflowHints": {"type": "array", "items": {"type": "string"}}
  },
  "required": [
    "primaryCategory",
    "secondaryCategories",
    "confidence",
    "userGoal",
    "constraints",
    "keywords",
    "reasoning",
    "complexity",
    "estimatedSteps",
    "workflowHints"
  ],
  "additionalProperties": false
}`

var intentSchema = gojsonschema.NewStringLoader(intentSchemaJSON)

// rawSchema implements json.Marshaler for the request's response_format.
type rawSchema json.RawMessage

func (r rawSchema) MarshalJSON() ([]byte, error) {
	return json.RawMessage(r), nil
}

// validateIntentPayload checks the reply against the intent schema.
func validateIntentPayload(content string) error {
	result, err := gojsonschema.Validate(intentSchema, gojsonschema.NewStringLoader(content))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("reply violates intent schema: %v", result.Errors())
	}
	return nil
}
