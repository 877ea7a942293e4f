package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketops/content-engine/internal/types"
)

func contentRequest() *types.CreateContentRequest {
	return &types.CreateContentRequest{
		Title:          "Launch",
		ContentType:    "blog_post",
		TargetAudience: "SMBs",
		KeyMessages:    []string{"save time", "grow faster"},
		Platform:       "linkedin",
		Keywords:       []string{"automation", "growth"},
	}
}

func TestContent_ParseableOutput(t *testing.T) {
	raw := `{"title": "Why Automation Wins", "content": "Body text", "cta": "Try it", "tags": ["automation"]}`

	outcome := Content(raw, contentRequest())

	assert.Equal(t, SourceModel, outcome.Source)
	assert.False(t, outcome.Fallback())
	assert.Equal(t, "Why Automation Wins", outcome.Document.Title)
	assert.Equal(t, "Body text", outcome.Document.Content)
	assert.Equal(t, "Try it", outcome.Document.CTA)
	assert.Equal(t, []string{"automation"}, outcome.Document.Tags)
}

func TestContent_FencedOutput(t *testing.T) {
	raw := "```json\n{\"title\": \"T\", \"content\": \"C\", \"cta\": \"X\", \"tags\": []}\n```"

	outcome := Content(raw, contentRequest())

	assert.Equal(t, SourceModel, outcome.Source)
	assert.Equal(t, "T", outcome.Document.Title)
}

func TestContent_MalformedButParseableAcceptedVerbatim(t *testing.T) {
	// Missing keys are not repaired; a parseable document is taken as-is.
	raw := `{"title": "Only a title"}`

	outcome := Content(raw, contentRequest())

	assert.Equal(t, SourceModel, outcome.Source)
	assert.Equal(t, "Only a title", outcome.Document.Title)
	assert.Empty(t, outcome.Document.Content)
}

func TestContent_FallbackEchoesRequest(t *testing.T) {
	raw := "Great post about automation and growth boosting growth"
	req := contentRequest()

	outcome := Content(raw, req)

	assert.Equal(t, SourceFallback, outcome.Source)
	assert.True(t, outcome.Fallback())
	assert.Equal(t, req.Title, outcome.Document.Title)
	assert.Equal(t, raw, outcome.Document.Content)
	assert.Equal(t, "Learn more", outcome.Document.CTA)
	assert.Equal(t, req.Keywords, outcome.Document.Tags)
}

func TestContent_FallbackKeepsRequestCTA(t *testing.T) {
	req := contentRequest()
	req.CTA = "Book a demo"

	outcome := Content("not json", req)

	assert.Equal(t, "Book a demo", outcome.Document.CTA)
}

func TestTemplate_ParseableOutput(t *testing.T) {
	raw := `{"subject": "Welcome aboard", "html": "<p>Hi</p>", "text": "Hi", "variables": ["first_name"]}`
	req := &types.CreateTemplateRequest{Name: "w1", EmailType: "welcome", ContentBrief: "Greet users"}

	outcome := Template(raw, req)

	assert.Equal(t, SourceModel, outcome.Source)
	assert.Equal(t, "Welcome aboard", outcome.Document.Subject)
}

func TestTemplate_Fallback(t *testing.T) {
	req := &types.CreateTemplateRequest{Name: "w1", EmailType: "welcome", ContentBrief: "Greet users"}

	outcome := Template("Sure! Here's a template for you.", req)

	assert.Equal(t, SourceFallback, outcome.Source)
	assert.Equal(t, "Welcome Email", outcome.Document.Subject)
	assert.Equal(t, "<h1>Welcome</h1><p>Greet users</p>", outcome.Document.HTML)
	assert.Equal(t, "Welcome\n\nGreet users", outcome.Document.Text)
	assert.Equal(t, []string{"first_name", "company"}, outcome.Document.Variables)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Nurture", capitalize("nurture"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "X", capitalize("x"))
}
