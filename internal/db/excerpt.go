package db

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const excerptMaxLen = 500

// HTMLExcerpt extracts the visible text of an HTML fragment, collapses
// whitespace, and truncates the result to excerptMaxLen runes.
func HTMLExcerpt(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	text := strings.Join(strings.Fields(doc.Text()), " ")
	runes := []rune(text)
	if len(runes) > excerptMaxLen {
		return string(runes[:excerptMaxLen]), nil
	}
	return text, nil
}
