package detectcategory

import "toolrouter/internal/models"

// categoryKeywords maps each category to its trigger substrings. Detection
// walks categories in models.AllCategories order and substrings within each
// list in order, so earlier entries shadow later ones. Turkish and English
// triggers are mixed because the user base queries in both.
var categoryKeywords = map[models.Category][]string{
	models.CategoryVisual: {
		"görsel", "resim", "fotoğraf", "logo", "image", "art",
		"çiz", "tasarım", "design", "picture", "photo", "grafik",
	},
	models.CategoryText: {
		"yazı", "metin", "blog", "yazma", "content", "writing",
		"makale", "article", "text", "yaz", "içerik", "copy",
	},
	models.CategoryAudio: {
		"müzik", "ses", "podcast", "voice", "audio", "music",
		"sound", "voice-over", "voiceover", "seslendirme",
	},
	models.CategoryResearch: {
		"akademik", "makale", "tez", "research", "paper",
		"bilimsel", "araştırma", "kaynak", "literature",
	},
	models.CategoryVideo: {
		"video", "animasyon", "film", "clip", "animation", "movie", "klip",
	},
	models.CategoryData: {
		"veri", "analiz", "data", "excel", "chart", "grafik",
		"istatistik", "statistics", "dashboard",
	},
	models.CategoryCode: {
		"kod", "code", "programlama", "coding", "yazılım", "software",
		"geliştirme", "development", "python", "javascript", "react",
		"github", "api", "function", "algoritma",
	},
}

// KeywordsFor returns the trigger substrings for a category.
func KeywordsFor(category models.Category) []string {
	return categoryKeywords[category]
}
