// internal/models/tool.go
package models

// Category is the fixed set of domains a tool can belong to.
type Category string

const (
	CategoryVisual   Category = "visual"
	CategoryText     Category = "text"
	CategoryAudio    Category = "audio"
	CategoryResearch Category = "research"
	CategoryVideo    Category = "video"
	CategoryData     Category = "data"
	CategoryCode     Category = "code"
)

// AllCategories lists every category in its canonical order. The order is
// load-bearing: keyword detection iterates it and the first match wins.
var AllCategories = []Category{
	CategoryVisual,
	CategoryText,
	CategoryAudio,
	CategoryResearch,
	CategoryVideo,
	CategoryData,
	CategoryCode,
}

// IsValidCategory reports whether c is a known category.
func IsValidCategory(c Category) bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Pricing describes a tool's plan flags. The flags are not mutually
// exclusive: a tool may be both free and freemium.
type Pricing struct {
	Free          bool    `json:"free"`
	Freemium      bool    `json:"freemium"`
	PaidOnly      bool    `json:"paidOnly"`
	StartingPrice float64 `json:"startingPrice,omitempty"`
	Currency      string  `json:"currency"`
}

// Label returns the pricing tag used in search metadata and logs. Free wins
// over freemium when both flags are set.
func (p Pricing) Label() string {
	switch {
	case p.Free:
		return "free"
	case p.Freemium:
		return "freemium"
	case p.PaidOnly:
		return "paid"
	default:
		return "unknown"
	}
}

// Tool is a recommendable item. Name is the identity key; there is no
// separate id. Tools are seeded in bulk and replaced wholesale on update.
type Tool struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Pricing     Pricing  `json:"pricing"`
	BestFor     []string `json:"bestFor"`
	Strength    float64  `json:"strength"`
	Features    []string `json:"features,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
}
