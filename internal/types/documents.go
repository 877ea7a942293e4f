package types

// ContentDocument is the structured artifact produced by the content-creation flow.
// The parser guarantees a well-formed document even when the upstream generation
// output was not parseable.
type ContentDocument struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	CTA     string   `json:"cta"`
	Tags    []string `json:"tags"`
}

// EmailTemplateDocument is the structured artifact produced by the email-template flow.
type EmailTemplateDocument struct {
	Subject   string   `json:"subject"`
	HTML      string   `json:"html"`
	Text      string   `json:"text"`
	Variables []string `json:"variables"`
}
