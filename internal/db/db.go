// Package db provides PostgreSQL persistence for generated marketing artifacts.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marketops/content-engine/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// SaveContent stores a generated content document
func (db *DB) SaveContent(ctx context.Context, resp *types.ContentResponse) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO generated_content (content_id, title, body, cta, tags, seo_score, readability_score, engagement_prediction, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (content_id) DO NOTHING`,
		resp.ContentID, resp.Content.Title, resp.Content.Content, resp.Content.CTA, resp.Content.Tags,
		resp.SEOScore, resp.ReadabilityScore, resp.EngagementPrediction, resp.Status, resp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save content %s: %w", resp.ContentID, err)
	}
	return nil
}

// SavePost stores an optimized social post
func (db *DB) SavePost(ctx context.Context, resp *types.PostResponse) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO social_posts (post_id, platform, body, media_urls, hashtags, scheduled_time, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (post_id) DO NOTHING`,
		resp.PostID, resp.Platform, resp.Content, resp.MediaURLs, resp.Hashtags,
		resp.ScheduledTime, resp.Status, resp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save post %s: %w", resp.PostID, err)
	}
	return nil
}

// SaveTemplate stores an email template along with a plain-text excerpt of its
// HTML body for search and listing views.
func (db *DB) SaveTemplate(ctx context.Context, resp *types.TemplateResponse) error {
	excerpt, err := HTMLExcerpt(resp.HTMLContent)
	if err != nil {
		excerpt = ""
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO email_templates (template_id, name, email_type, subject_line, html_content, text_content, text_excerpt, variables, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (template_id) DO NOTHING`,
		resp.TemplateID, resp.Name, resp.EmailType, resp.SubjectLine, resp.HTMLContent,
		resp.TextContent, excerpt, resp.Variables, resp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save template %s: %w", resp.TemplateID, err)
	}
	return nil
}

// SaveContact stores an email contact
func (db *DB) SaveContact(ctx context.Context, resp *types.ContactResponse) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO email_contacts (contact_id, email, first_name, last_name, company, tags, subscribed, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (email) DO UPDATE SET first_name = $3, last_name = $4, company = $5, tags = $6, subscribed = $7`,
		resp.ContactID, resp.Email, resp.FirstName, resp.LastName, resp.Company,
		resp.Tags, resp.Subscribed, resp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact %s: %w", resp.ContactID, err)
	}
	return nil
}
