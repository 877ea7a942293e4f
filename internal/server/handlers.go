package server

import (
	"encoding/json"
	"net/http"

	"github.com/marketops/content-engine/internal/types"
)

// handleCreateContent runs the content-creation flow
func (s *Server) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	var req types.CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	resp, err := s.engine.CreateContent(r.Context(), &req)
	if err != nil {
		s.flowError(w, err, contentFailureMessage)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScheduleSocial runs the post-optimization flow
func (s *Server) handleScheduleSocial(w http.ResponseWriter, r *http.Request) {
	var req types.OptimizePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	resp, err := s.engine.OptimizePost(r.Context(), &req)
	if err != nil {
		s.flowError(w, err, postFailureMessage)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// emailRequest is the combined body for the email endpoint. The action field
// selects the flow; the remaining fields belong to the selected flow only.
type emailRequest struct {
	Action string `json:"action"`
	types.CreateTemplateRequest
	types.AddContactRequest
}

// handleSendEmail dispatches on the action discriminant
func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	switch req.Action {
	case "create_template":
		resp, err := s.engine.CreateTemplate(r.Context(), &req.CreateTemplateRequest)
		if err != nil {
			s.flowError(w, err, emailFailureMessage)
			return
		}
		s.jsonResponse(w, http.StatusOK, resp)
	case "add_contact":
		resp, err := s.engine.AddContact(r.Context(), &req.AddContactRequest)
		if err != nil {
			s.flowError(w, err, emailFailureMessage)
			return
		}
		s.jsonResponse(w, http.StatusOK, resp)
	default:
		s.errorResponse(w, http.StatusBadRequest, `Invalid action. Use "create_template" or "add_contact"`)
	}
}
