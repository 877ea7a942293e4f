// Package types provides type definitions for structured data used throughout the content-engine system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Flow discriminants for the externally visible request kinds.
const (
	FlowCreateContent  = "create_content"
	FlowOptimizePost   = "optimize_post"
	FlowCreateTemplate = "create_email_template"
	FlowAddContact     = "add_contact"
)

// CreateContentRequest represents the request body for the content-creation flow.
type CreateContentRequest struct {
	Title          string   `json:"title" validate:"required"`
	ContentType    string   `json:"content_type" validate:"required"`
	TargetAudience string   `json:"target_audience" validate:"required"`
	KeyMessages    []string `json:"key_messages" validate:"required,min=1"`
	Platform       string   `json:"platform" validate:"required"`
	Tone           string   `json:"tone,omitempty"`
	Length         string   `json:"length,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	CTA            string   `json:"cta,omitempty"`
}

// RequiredContentFields is the required set for the content-creation flow.
var RequiredContentFields = []string{"title", "content_type", "target_audience", "key_messages", "platform"}

// ApplyDefaults fills optional fields with their documented defaults.
func (r *CreateContentRequest) ApplyDefaults() {
	if r.Tone == "" {
		r.Tone = "professional"
	}
	if r.Length == "" {
		r.Length = "medium"
	}
	if r.Keywords == nil {
		r.Keywords = []string{}
	}
}

// Validate validates the CreateContentRequest using the validator.
func (r *CreateContentRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return &MissingFieldsError{Flow: FlowCreateContent, Fields: RequiredContentFields}
	}
	return nil
}

// OptimizePostRequest represents the request body for the post-optimization flow.
type OptimizePostRequest struct {
	Platform      string   `json:"platform" validate:"required"`
	Content       string   `json:"content" validate:"required"`
	ScheduledTime string   `json:"scheduled_time" validate:"required"`
	MediaURLs     []string `json:"media_urls,omitempty"`
	Hashtags      []string `json:"hashtags,omitempty"`
}

// RequiredPostFields is the required set for the post-optimization flow.
var RequiredPostFields = []string{"platform", "content", "scheduled_time"}

// ApplyDefaults fills optional fields with their documented defaults.
func (r *OptimizePostRequest) ApplyDefaults() {
	if r.MediaURLs == nil {
		r.MediaURLs = []string{}
	}
	if r.Hashtags == nil {
		r.Hashtags = []string{}
	}
}

// Validate validates the OptimizePostRequest using the validator.
func (r *OptimizePostRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return &MissingFieldsError{Flow: FlowOptimizePost, Fields: RequiredPostFields}
	}
	return nil
}

// CreateTemplateRequest represents the request body for email-template creation.
type CreateTemplateRequest struct {
	Name           string `json:"name" validate:"required"`
	EmailType      string `json:"email_type" validate:"required"`
	ContentBrief   string `json:"content_brief" validate:"required"`
	TargetAudience string `json:"target_audience,omitempty"`
}

// RequiredTemplateFields is the required set for email-template creation.
var RequiredTemplateFields = []string{"name", "email_type", "content_brief"}

// ApplyDefaults fills optional fields with their documented defaults.
func (r *CreateTemplateRequest) ApplyDefaults() {
	if r.TargetAudience == "" {
		r.TargetAudience = "general"
	}
}

// Validate validates the CreateTemplateRequest using the validator.
func (r *CreateTemplateRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return &MissingFieldsError{Flow: FlowCreateTemplate, Fields: RequiredTemplateFields}
	}
	return nil
}

// AddContactRequest represents the request body for contact creation.
type AddContactRequest struct {
	Email     string `json:"email" validate:"required"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Company   string `json:"company,omitempty"`
}

// RequiredContactFields is the required set for contact creation.
var RequiredContactFields = []string{"email"}

// Validate validates the AddContactRequest using the validator.
func (r *AddContactRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return &MissingFieldsError{Flow: FlowAddContact, Fields: RequiredContactFields}
	}
	return nil
}
