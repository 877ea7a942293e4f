// Package pipeline orchestrates the generation flows. Every flow progresses
// linearly: validate, compose, generate, parse (with local fallback), then the
// flow-specific enforce and score stages, and finally response assembly with a
// best-effort persistence write.
package pipeline

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/marketops/content-engine/internal/compose"
	"github.com/marketops/content-engine/internal/llm"
	"github.com/marketops/content-engine/internal/parsing"
	"github.com/marketops/content-engine/internal/platform"
	"github.com/marketops/content-engine/internal/scoring"
	"github.com/marketops/content-engine/internal/types"
)

// Generation parameters per flow. Temperature is fixed; token ceilings differ.
const (
	generationTemperature = 0.7

	contentMaxTokens  = 2000
	postMaxTokens     = 500
	templateMaxTokens = 2500
)

// Statuses assigned by the response assembler.
const (
	statusDraft     = "draft"
	statusScheduled = "scheduled"
)

// engagementPrediction is a static placeholder; no real engagement inference happens.
const engagementPrediction = 0.7

// Store persists generated artifacts. Writes are best-effort: the engine logs
// and swallows failures after the response payload is finalized.
type Store interface {
	SaveContent(ctx context.Context, resp *types.ContentResponse) error
	SavePost(ctx context.Context, resp *types.PostResponse) error
	SaveTemplate(ctx context.Context, resp *types.TemplateResponse) error
	SaveContact(ctx context.Context, resp *types.ContactResponse) error
}

// Engine runs the generation flows against injected collaborators.
type Engine struct {
	llm   llm.Client
	store Store
}

// New creates an engine. store may be nil to disable persistence.
func New(client llm.Client, store Store) *Engine {
	return &Engine{llm: client, store: store}
}

// CreateContent runs the content-creation flow.
func (e *Engine) CreateContent(ctx context.Context, req *types.CreateContentRequest) (*types.ContentResponse, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inst := compose.Content(req)
	raw, err := e.llm.Generate(ctx, llm.Request{
		System:      inst.System,
		Prompt:      inst.User,
		Temperature: generationTemperature,
		MaxTokens:   contentMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	outcome := parsing.Content(raw, req)
	scores := scoring.Score(outcome.Document, req.Keywords)

	resp := &types.ContentResponse{
		ContentID:            newID("content", req.ContentType),
		Content:              outcome.Document,
		SEOScore:             scores.SEOScore,
		ReadabilityScore:     scores.ReadabilityScore,
		EngagementPrediction: engagementPrediction,
		Status:               statusDraft,
		CreatedAt:            nowISO(),
	}

	if e.store != nil {
		if err := e.store.SaveContent(ctx, resp); err != nil {
			log.Printf("Warning: failed to persist content %s: %v", resp.ContentID, err)
		}
	}
	return resp, nil
}

// OptimizePost runs the post-optimization flow.
func (e *Engine) OptimizePost(ctx context.Context, req *types.OptimizePostRequest) (*types.PostResponse, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	scheduled, err := parseScheduledTime(req.ScheduledTime)
	if err != nil {
		return nil, &types.InvalidFieldError{Field: "scheduled_time", Message: err.Error()}
	}

	inst := compose.Post(req)
	raw, err := e.llm.Generate(ctx, llm.Request{
		System:      inst.System,
		Prompt:      inst.User,
		Temperature: generationTemperature,
		MaxTokens:   postMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	optimized := platform.Enforce(strings.TrimSpace(raw), req.Platform)

	resp := &types.PostResponse{
		PostID:            newID("post", req.Platform),
		Platform:          req.Platform,
		Content:           optimized,
		MediaURLs:         req.MediaURLs,
		Hashtags:          req.Hashtags,
		ScheduledTime:     scheduled.UTC().Format(time.RFC3339),
		Status:            statusScheduled,
		CreatedAt:         nowISO(),
		EngagementMetrics: map[string]any{},
	}

	if e.store != nil {
		if err := e.store.SavePost(ctx, resp); err != nil {
			log.Printf("Warning: failed to persist post %s: %v", resp.PostID, err)
		}
	}
	return resp, nil
}

// CreateTemplate runs the email-template creation flow.
func (e *Engine) CreateTemplate(ctx context.Context, req *types.CreateTemplateRequest) (*types.TemplateResponse, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inst := compose.Template(req)
	raw, err := e.llm.Generate(ctx, llm.Request{
		System:      inst.System,
		Prompt:      inst.User,
		Temperature: generationTemperature,
		MaxTokens:   templateMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	outcome := parsing.Template(raw, req)

	resp := &types.TemplateResponse{
		TemplateID:  newID("template", req.EmailType),
		Name:        req.Name,
		EmailType:   req.EmailType,
		SubjectLine: outcome.Document.Subject,
		HTMLContent: outcome.Document.HTML,
		TextContent: outcome.Document.Text,
		Variables:   outcome.Document.Variables,
		CreatedAt:   nowISO(),
	}

	if e.store != nil {
		if err := e.store.SaveTemplate(ctx, resp); err != nil {
			log.Printf("Warning: failed to persist template %s: %v", resp.TemplateID, err)
		}
	}
	return resp, nil
}

// AddContact runs the contact-creation flow. No generation call is involved.
func (e *Engine) AddContact(ctx context.Context, req *types.AddContactRequest) (*types.ContactResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp := &types.ContactResponse{
		ContactID:  newContactID(),
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Company:    req.Company,
		Tags:       []string{},
		Subscribed: true,
		CreatedAt:  nowISO(),
	}

	if e.store != nil {
		if err := e.store.SaveContact(ctx, resp); err != nil {
			log.Printf("Warning: failed to persist contact %s: %v", resp.ContactID, err)
		}
	}
	return resp, nil
}

// scheduledTimeLayouts are accepted input formats for scheduled_time, tried in order.
var scheduledTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseScheduledTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range scheduledTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
