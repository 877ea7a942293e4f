package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketops/content-engine/internal/llm"
	"github.com/marketops/content-engine/internal/pipeline"
)

// fakeClient implements llm.Client with canned output.
type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) Generate(_ context.Context, _ llm.Request) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

func newTestServer(client llm.Client) *Server {
	return &Server{engine: pipeline.New(client, nil)}
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const validContentBody = `{
	"title": "Launch",
	"content_type": "blog_post",
	"target_audience": "SMBs",
	"key_messages": ["save time"],
	"platform": "linkedin"
}`

func TestCreateContent_OK(t *testing.T) {
	s := newTestServer(&fakeClient{response: `{"title": "T", "content": "Body", "cta": "Go", "tags": []}`})

	rec := doRequest(t, s, http.MethodPost, "/create-content", validContentBody)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "draft", body["status"])
	assert.Contains(t, body["content_id"], "content_blog_post_")
	assert.Equal(t, 0.7, body["engagement_prediction"])
}

func TestCreateContent_MissingFields(t *testing.T) {
	s := newTestServer(&fakeClient{response: "{}"})

	rec := doRequest(t, s, http.MethodPost, "/create-content", `{"title": "only"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields: title, content_type, target_audience, key_messages, platform", body["error"])
}

func TestCreateContent_InvalidJSON(t *testing.T) {
	s := newTestServer(&fakeClient{response: "{}"})

	rec := doRequest(t, s, http.MethodPost, "/create-content", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateContent_GenerationFailure(t *testing.T) {
	s := newTestServer(&fakeClient{err: &llm.GenerationError{Err: errors.New("upstream timeout")}})

	rec := doRequest(t, s, http.MethodPost, "/create-content", validContentBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to create content", body["error"])
	assert.Contains(t, body["details"], "upstream timeout")
}

func TestMethodNotAllowed_JSONBody(t *testing.T) {
	s := newTestServer(&fakeClient{})

	for _, path := range []string{"/create-content", "/schedule-social", "/send-email"} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodGet, path, "")
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			body := decodeBody(t, rec)
			assert.Equal(t, "Method not allowed", body["error"])
		})
	}
}

func TestScheduleSocial_OK(t *testing.T) {
	s := newTestServer(&fakeClient{response: "Optimized tweet"})

	rec := doRequest(t, s, http.MethodPost, "/schedule-social",
		`{"platform": "twitter", "content": "draft text", "scheduled_time": "2026-01-15T10:00:00Z"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "scheduled", body["status"])
	assert.Equal(t, "Optimized tweet", body["content"])
	assert.Equal(t, "2026-01-15T10:00:00Z", body["scheduled_time"])
	assert.NotNil(t, body["engagement_metrics"])
}

func TestScheduleSocial_MissingFields(t *testing.T) {
	s := newTestServer(&fakeClient{response: "x"})

	rec := doRequest(t, s, http.MethodPost, "/schedule-social", `{"platform": "twitter"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields: platform, content, scheduled_time", body["error"])
}

func TestScheduleSocial_InvalidScheduledTime(t *testing.T) {
	s := newTestServer(&fakeClient{response: "x"})

	rec := doRequest(t, s, http.MethodPost, "/schedule-social",
		`{"platform": "twitter", "content": "text", "scheduled_time": "whenever"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "Invalid scheduled_time")
}

func TestSendEmail_CreateTemplate(t *testing.T) {
	s := newTestServer(&fakeClient{response: `{"subject": "Hi", "html": "<p>Hi</p>", "text": "Hi", "variables": []}`})

	rec := doRequest(t, s, http.MethodPost, "/send-email",
		`{"action": "create_template", "name": "Welcome", "email_type": "welcome", "content_brief": "greet"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Hi", body["subject_line"])
	assert.Contains(t, body["template_id"], "template_welcome_")
}

func TestSendEmail_AddContact(t *testing.T) {
	s := newTestServer(&fakeClient{})

	rec := doRequest(t, s, http.MethodPost, "/send-email",
		`{"action": "add_contact", "email": "a@b.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "a@b.com", body["email"])
	assert.Equal(t, true, body["subscribed"])
	assert.Equal(t, "", body["first_name"])
}

func TestSendEmail_UnrecognizedAction(t *testing.T) {
	s := newTestServer(&fakeClient{})

	rec := doRequest(t, s, http.MethodPost, "/send-email", `{"action": "send_blast"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, `Invalid action. Use "create_template" or "add_contact"`, body["error"])
}

func TestSendEmail_MissingTemplateFields(t *testing.T) {
	s := newTestServer(&fakeClient{response: "{}"})

	rec := doRequest(t, s, http.MethodPost, "/send-email", `{"action": "create_template"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Missing required fields: name, email_type, content_brief", body["error"])
}

func TestOptionsRequest(t *testing.T) {
	s := newTestServer(&fakeClient{})

	rec := doRequest(t, s, http.MethodOptions, "/create-content", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Body.String())
}

func TestHealth(t *testing.T) {
	s := newTestServer(&fakeClient{})

	rec := doRequest(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
}
