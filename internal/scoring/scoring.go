// Package scoring computes deterministic quality proxies for generated content.
// The scores are bounded heuristics over surface text statistics, not real SEO
// or readability analysis.
package scoring

import (
	"encoding/json"
	"strings"

	"github.com/marketops/content-engine/internal/types"
)

// ScoreSet holds the quality scores for the content-creation flow.
type ScoreSet struct {
	SEOScore         int
	ReadabilityScore int
}

const (
	seoBase       = 70
	seoPerMention = 5
	seoFloor      = 50
	seoCeiling    = 100

	readabilityLow  = 70
	readabilityHigh = 85
	wordCountMin    = 300
	wordCountMax    = 800
)

// Score computes the SEO and readability scores for a document. Both scores
// derive from the JSON serialization of the document's prose fields, so
// structural characters contribute to the word count. Scoring is pure: the
// same document and keywords always yield the same scores.
func Score(doc types.ContentDocument, keywords []string) ScoreSet {
	text := serialize(doc)

	seo := seoBase + seoPerMention*mentions(text, keywords)
	if seo > seoCeiling {
		seo = seoCeiling
	}
	if seo < seoFloor {
		seo = seoFloor
	}

	readability := readabilityLow
	if words := len(strings.Fields(text)); words >= wordCountMin && words <= wordCountMax {
		readability = readabilityHigh
	}

	return ScoreSet{SEOScore: seo, ReadabilityScore: readability}
}

// serialize renders the document's prose fields as a single text
// representation. Tags are excluded so that keywords echoed back into the
// document's tag list do not count as mentions.
func serialize(doc types.ContentDocument) string {
	payload := struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		CTA     string `json:"cta"`
	}{doc.Title, doc.Content, doc.CTA}

	b, _ := json.Marshal(payload)
	return string(b)
}

// mentions counts case-insensitive substring occurrences of each keyword in
// text, summed over all keywords.
func mentions(text string, keywords []string) int {
	lower := strings.ToLower(text)
	total := 0
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		total += strings.Count(lower, keyword)
	}
	return total
}
