package types

// ContentResponse is the response envelope for POST /create-content.
type ContentResponse struct {
	ContentID            string          `json:"content_id"`
	Content              ContentDocument `json:"content"`
	SEOScore             int             `json:"seo_score"`
	ReadabilityScore     int             `json:"readability_score"`
	EngagementPrediction float64         `json:"engagement_prediction"`
	Status               string          `json:"status"`
	CreatedAt            string          `json:"created_at"`
}

// PostResponse is the response envelope for POST /schedule-social.
type PostResponse struct {
	PostID            string         `json:"post_id"`
	Platform          string         `json:"platform"`
	Content           string         `json:"content"`
	MediaURLs         []string       `json:"media_urls"`
	Hashtags          []string       `json:"hashtags"`
	ScheduledTime     string         `json:"scheduled_time"`
	Status            string         `json:"status"`
	CreatedAt         string         `json:"created_at"`
	EngagementMetrics map[string]any `json:"engagement_metrics"`
}

// TemplateResponse is the response envelope for the create_template action of POST /send-email.
type TemplateResponse struct {
	TemplateID  string   `json:"template_id"`
	Name        string   `json:"name"`
	EmailType   string   `json:"email_type"`
	SubjectLine string   `json:"subject_line"`
	HTMLContent string   `json:"html_content"`
	TextContent string   `json:"text_content"`
	Variables   []string `json:"variables"`
	CreatedAt   string   `json:"created_at"`
}

// ContactResponse is the response envelope for the add_contact action of POST /send-email.
type ContactResponse struct {
	ContactID  string   `json:"contact_id"`
	Email      string   `json:"email"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Company    string   `json:"company"`
	Tags       []string `json:"tags"`
	Subscribed bool     `json:"subscribed"`
	CreatedAt  string   `json:"created_at"`
}
