// Package parsing interprets raw model output as structured documents.
// Interpretation failure is not an error: the parser recovers locally by
// synthesizing a fallback document from the original request, so this step
// never fails outward.
package parsing

import (
	"encoding/json"

	"github.com/marketops/content-engine/internal/llm"
	"github.com/marketops/content-engine/internal/types"
)

// Source identifies how a document was obtained.
type Source string

const (
	// SourceModel means the model output parsed as structured data and was
	// accepted verbatim.
	SourceModel Source = "model"
	// SourceFallback means the document was synthesized from the request.
	SourceFallback Source = "fallback"
)

// ContentOutcome is the parse result for the content-creation flow.
type ContentOutcome struct {
	Document types.ContentDocument
	Source   Source
}

// Fallback reports whether the document was synthesized rather than parsed.
func (o ContentOutcome) Fallback() bool { return o.Source == SourceFallback }

// TemplateOutcome is the parse result for the email-template flow.
type TemplateOutcome struct {
	Document types.EmailTemplateDocument
	Source   Source
}

// Fallback reports whether the document was synthesized rather than parsed.
func (o TemplateOutcome) Fallback() bool { return o.Source == SourceFallback }

// Content interprets raw generated text as a ContentDocument. Parseable output
// is accepted as-is with no semantic validation of sub-fields.
func Content(raw string, req *types.CreateContentRequest) ContentOutcome {
	var doc types.ContentDocument
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &doc); err == nil {
		return ContentOutcome{Document: doc, Source: SourceModel}
	}
	return ContentOutcome{Document: contentFallback(raw, req), Source: SourceFallback}
}

// Template interprets raw generated text as an EmailTemplateDocument.
func Template(raw string, req *types.CreateTemplateRequest) TemplateOutcome {
	var doc types.EmailTemplateDocument
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &doc); err == nil {
		return TemplateOutcome{Document: doc, Source: SourceModel}
	}
	return TemplateOutcome{Document: templateFallback(req), Source: SourceFallback}
}
