package parsing

import (
	"fmt"
	"strings"

	"github.com/marketops/content-engine/internal/types"
)

// defaultCTA is used when the original request carried no call-to-action.
const defaultCTA = "Learn more"

// defaultTemplateVariables is the fixed personalization set for fallback templates.
var defaultTemplateVariables = []string{"first_name", "company"}

// contentFallback synthesizes a ContentDocument from the original request,
// carrying the raw generated text verbatim as the content body.
func contentFallback(raw string, req *types.CreateContentRequest) types.ContentDocument {
	cta := req.CTA
	if cta == "" {
		cta = defaultCTA
	}
	return types.ContentDocument{
		Title:   req.Title,
		Content: raw,
		CTA:     cta,
		Tags:    req.Keywords,
	}
}

// templateFallback synthesizes an EmailTemplateDocument from the original request.
func templateFallback(req *types.CreateTemplateRequest) types.EmailTemplateDocument {
	label := capitalize(req.EmailType)
	return types.EmailTemplateDocument{
		Subject:   label + " Email",
		HTML:      fmt.Sprintf("<h1>%s</h1><p>%s</p>", label, req.ContentBrief),
		Text:      label + "\n\n" + req.ContentBrief,
		Variables: defaultTemplateVariables,
	}
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
