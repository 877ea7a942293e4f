package compose

import (
	"strings"
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
		Tone:           "professional",
		Length:         "medium",
		Keywords:       []string{},
	}
}

func TestContent_BaseInstruction(t *testing.T) {
	inst := Content(contentRequest())

	assert.Equal(t, "You are an expert content creator. Always respond with valid JSON.", inst.System)
	assert.Contains(t, inst.User, "Create blog_post content for linkedin platform.")
	assert.Contains(t, inst.User, "Target Audience: SMBs")
	assert.Contains(t, inst.User, "Tone: professional")
	assert.Contains(t, inst.User, "Length: medium")
	assert.Contains(t, inst.User, "Key Messages: save time, grow faster")
	assert.Contains(t, inst.User, "Format as JSON with keys: title, content, cta, tags")
}

func TestContent_OmitsEmptyOptionalLines(t *testing.T) {
	inst := Content(contentRequest())

	assert.NotContains(t, inst.User, "Keywords to include")
	assert.NotContains(t, inst.User, "Call to Action")
}

func TestContent_IncludesKeywordsAndCTA(t *testing.T) {
	req := contentRequest()
	req.Keywords = []string{"automation", "growth"}
	req.CTA = "Sign up today"

	inst := Content(req)

	assert.Contains(t, inst.User, "Keywords to include: automation, growth")
	assert.Contains(t, inst.User, "Call to Action: Sign up today")
}

func TestContent_Deterministic(t *testing.T) {
	req := contentRequest()
	assert.Equal(t, Content(req), Content(req))
}

func TestPost_QuotesOriginalContent(t *testing.T) {
	req := &types.OptimizePostRequest{
		Platform:      "twitter",
		Content:       "Check out our new product",
		ScheduledTime: "2026-01-15T10:00:00Z",
	}

	inst := Post(req)

	assert.Equal(t, "You are a twitter content optimization expert.", inst.System)
	assert.Contains(t, inst.User, "Optimize this content for twitter:")
	assert.Contains(t, inst.User, `"Check out our new product"`)
	assert.Contains(t, inst.User, "Twitter: Concise, up to 280 chars, engaging")
	assert.Contains(t, inst.User, "Return only the optimized content, no explanations.")
}

func TestTemplate_KnownType(t *testing.T) {
	req := &types.CreateTemplateRequest{
		Name:           "Welcome Series #1",
		EmailType:      "welcome",
		ContentBrief:   "Greet new users and point them at the docs",
		TargetAudience: "general",
	}

	inst := Template(req)

	assert.Equal(t, "You are an expert email marketing copywriter. Always respond with valid JSON.", inst.System)
	assert.Contains(t, inst.User, "Create an email template for welcome email:")
	assert.Contains(t, inst.User, "Purpose: Welcome new subscribers and set expectations")
	assert.Contains(t, inst.User, "Content Brief: Greet new users and point them at the docs")
	assert.Contains(t, inst.User, "{{variable_name}} format")
}

func TestTemplate_UnknownTypeUsesDefaultSpec(t *testing.T) {
	req := &types.CreateTemplateRequest{
		Name:           "Quarterly recap",
		EmailType:      "newsletter",
		ContentBrief:   "Summarize the quarter",
		TargetAudience: "general",
	}

	inst := Template(req)

	// Unrecognized types keep their name but take the nurture specification.
	assert.Contains(t, inst.User, "Create an email template for newsletter email:")
	assert.Contains(t, inst.User, "Purpose: Educate and build relationship with prospects")
}

func TestTemplate_NoUnresolvedPlaceholders(t *testing.T) {
	req := &types.CreateTemplateRequest{
		Name:           "n",
		EmailType:      "promotional",
		ContentBrief:   "b",
		TargetAudience: "general",
	}

	inst := Template(req)
	assert.False(t, strings.Contains(inst.User, "{{."), "all {{.Key}} placeholders should be substituted")
}
