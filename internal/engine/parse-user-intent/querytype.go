// internal/engine/parse-user-intent/querytype.go
package parseuserintent

import (
	"regexp"
	"strings"
)

// multiStepKeywords mark projects that genuinely need several tools across
// categories. Only these promote a query to a workflow.
var multiStepKeywords = []string{
	// comics and graphic novels
	"çizgi roman", "comic", "manga", "webtoon", "graphic novel",
	// full brand identity
	"marka kimliği", "brand identity", "kurumsal kimlik",
	// full video production
	"video kurs", "online kurs", "eğitim videosu", "kısa film", "belgesel", "tanıtım filmi",
	// books
	"e-kitap", "ebook", "kitap yaz",
	// channel or series strategy
	"youtube kanalı", "içerik stratejisi",
	// app design
	"mobil uygulama tasarımı", "app tasarla", "uygulama tasarla",
	// full music production
	"albüm yap", "ep yap",
}

// simpleKeywords mark single-action requests that always get one tool, even
// when a multi-step keyword also matches.
var simpleKeywords = []string{
	// explicit tool questions
	"hangi araç", "which tool", "en iyi", "best", "öner", "recommend",
	// logos
	"logo", "logo tasarla", "logo yap", "amblem",
	// images
	"görsel", "resim", "image", "fotoğraf", "poster", "banner", "thumbnail", "kapak",
	// text
	"yaz", "write", "metin", "email", "mail", "makale", "article",
	// presentations
	"sunum", "presentation", "slayt", "powerpoint", "pitch deck",
	// audio
	"seslendirme", "voiceover", "ses", "müzik", "şarkı", "beat",
	// editing
	"düzenle", "edit", "değiştir", "dönüştür", "convert",
	// translation
	"çevir", "çeviri", "translate", "translation",
	// code
	"kod", "code", "program", "script", "debug",
	// data
	"analiz", "grafik", "chart", "dashboard", "rapor",
	// simple video edits
	"video düzenle", "video edit", "montaj",
	// single social posts
	"post", "story", "reel",
}

// toolQuestionPatterns detect "which tool should I use" phrasings. A match
// forces a simple recommendation regardless of other signals.
var toolQuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)hangi (araç|tool|ai|yapay zeka)`),
	regexp.MustCompile(`(?i)ne kullan`),
	regexp.MustCompile(`(?i)öner`),
	regexp.MustCompile(`(?i)(en iyi|best).*(araç|tool|ai)`),
	regexp.MustCompile(`(?i)\?(.*)(araç|tool)`),
}

// multiStepIndicators catch process-oriented phrasings like "step by step"
// or "from scratch".
var multiStepIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)oluştur.*baştan`),
	regexp.MustCompile(`(?i)tam.*süreç`),
	regexp.MustCompile(`(?i)adım.*adım`),
	regexp.MustCompile(`(?i)sıfırdan`),
	regexp.MustCompile(`(?i)komple`),
	regexp.MustCompile(`(?i)bütün.*süreç`),
	regexp.MustCompile(`(?i)step.by.step`),
	regexp.MustCompile(`(?i)from scratch`),
	regexp.MustCompile(`(?i)entire process`),
}

// queryType is the heuristic classification of a query, computed before and
// independently of the reasoning service.
type queryType struct {
	isMultiStep      bool
	isExplicitSimple bool
	hints            []string
}

// detectQueryType classifies the query. Explicit tool questions win
// outright; otherwise simple keywords suppress the multi-step promotion
// unless a multi-step keyword matched too.
func detectQueryType(query string) queryType {
	for _, pattern := range toolQuestionPatterns {
		if pattern.MatchString(query) {
			return queryType{isExplicitSimple: true}
		}
	}

	lower := strings.ToLower(query)

	hasSimple := false
	for _, keyword := range simpleKeywords {
		if strings.Contains(lower, keyword) {
			hasSimple = true
			break
		}
	}

	var hints []string
	hasMultiStep := false
	for _, keyword := range multiStepKeywords {
		if strings.Contains(lower, keyword) {
			hasMultiStep = true
			hints = append(hints, keyword)
		}
	}

	hasIndicator := false
	for _, pattern := range multiStepIndicators {
		if pattern.MatchString(query) {
			hasIndicator = true
			break
		}
	}

	return queryType{
		isMultiStep:      hasMultiStep || hasIndicator,
		isExplicitSimple: hasSimple && !hasMultiStep,
		hints:            hints,
	}
}
