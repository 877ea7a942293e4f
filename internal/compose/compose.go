// Package compose builds deterministic generation instructions from validated
// requests. Composition is a pure function of the request: the same request
// always yields the same instruction pair.
package compose

import (
	"strings"

	"github.com/marketops/content-engine/internal/prompts"
	"github.com/marketops/content-engine/internal/types"
)

const promptFile = "generation.json"

// Instruction is a system/user prompt pair for the generation client.
type Instruction struct {
	System string
	User   string
}

// emailTypeSpec carries the purpose, tone and structure guidance embedded in
// the template prompt for a given email type.
type emailTypeSpec struct {
	purpose   string
	tone      string
	structure string
}

var emailTypeSpecs = map[string]emailTypeSpec{
	"welcome": {
		purpose:   "Welcome new subscribers and set expectations",
		tone:      "friendly and welcoming",
		structure: "greeting, value proposition, next steps, contact info",
	},
	"nurture": {
		purpose:   "Educate and build relationship with prospects",
		tone:      "helpful and educational",
		structure: "valuable content, insights, soft CTA",
	},
	"promotional": {
		purpose:   "Drive sales and conversions",
		tone:      "persuasive and urgent",
		structure: "attention-grabbing headline, offer details, strong CTA",
	},
}

// defaultEmailType is the specification used when the email type is unrecognized.
const defaultEmailType = "nurture"

// Content composes the instruction for the content-creation flow.
func Content(req *types.CreateContentRequest) Instruction {
	var sb strings.Builder
	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "content_base"), map[string]string{
		"ContentType":    req.ContentType,
		"Platform":       req.Platform,
		"TargetAudience": req.TargetAudience,
		"Tone":           req.Tone,
		"Length":         req.Length,
		"KeyMessages":    strings.Join(req.KeyMessages, ", "),
	}))

	if len(req.Keywords) > 0 {
		sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "content_keywords"), map[string]string{
			"Keywords": strings.Join(req.Keywords, ", "),
		}))
	}
	if req.CTA != "" {
		sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "content_cta"), map[string]string{
			"CTA": req.CTA,
		}))
	}

	sb.WriteString(prompts.MustGet(promptFile, "content_closing"))

	return Instruction{
		System: prompts.MustGet(promptFile, "content_system"),
		User:   sb.String(),
	}
}

// Post composes the instruction for the post-optimization flow. The original
// content is quoted verbatim inside the prompt.
func Post(req *types.OptimizePostRequest) Instruction {
	return Instruction{
		System: prompts.Format(prompts.MustGet(promptFile, "post_system"), map[string]string{
			"Platform": req.Platform,
		}),
		User: prompts.Format(prompts.MustGet(promptFile, "post_prompt"), map[string]string{
			"Platform": req.Platform,
			"Content":  req.Content,
		}),
	}
}

// Template composes the instruction for email-template creation. Unrecognized
// email types fall back to the nurture specification.
func Template(req *types.CreateTemplateRequest) Instruction {
	spec, ok := emailTypeSpecs[req.EmailType]
	if !ok {
		spec = emailTypeSpecs[defaultEmailType]
	}

	return Instruction{
		System: prompts.MustGet(promptFile, "template_system"),
		User: prompts.Format(prompts.MustGet(promptFile, "template_prompt"), map[string]string{
			"EmailType":      req.EmailType,
			"ContentBrief":   req.ContentBrief,
			"TargetAudience": req.TargetAudience,
			"Purpose":        spec.purpose,
			"Tone":           spec.tone,
			"Structure":      spec.structure,
		}),
	}
}
