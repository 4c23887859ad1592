package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sandevgo/triagebot/internal/analysis"
	"github.com/sandevgo/triagebot/internal/core"
	"github.com/sandevgo/triagebot/internal/service/session"
	"github.com/sandevgo/triagebot/internal/service/triage"
	"github.com/sandevgo/triagebot/pkg/log"
)

type handler struct {
	triage   *triage.Service
	sessions *session.Manager
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type matchView struct {
	Name     string        `json:"name"`
	Score    float64       `json:"score"`
	Severity core.Severity `json:"severity"`
}

type chatResponse struct {
	SessionID    string         `json:"sessionId"`
	Response     string         `json:"response"`
	Analysis     *core.Analysis `json:"analysis,omitempty"`
	LocalMatches []matchView    `json:"localMatches"`
}

func (h *handler) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.triage.Turn(r.Context(), req.SessionID, req.Message)
	if err != nil {
		writeTaxonomyError(r, w, err)
		return
	}

	matches := make([]matchView, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, matchView{
			Name:     m.Condition.Name,
			Score:    m.Score,
			Severity: m.Condition.Severity,
		})
	}

	writeJSON(w, http.StatusOK, chatResponse{
		SessionID:    result.SessionID,
		Response:     result.Reply,
		Analysis:     result.Analysis,
		LocalMatches: matches,
	})
}

func (h *handler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.ListAll(r.Context())
	if err != nil {
		writeTaxonomyError(r, w, err)
		return
	}
	if sessions == nil {
		sessions = []core.Session{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

// messageView is a stored message plus the fields derived from its raw
// content on every read: assistant messages carry the clean display text and
// the re-parsed analysis block.
type messageView struct {
	core.Message
	Display  string         `json:"display"`
	Analysis *core.Analysis `json:"analysis,omitempty"`
}

type sessionView struct {
	core.Session
	Messages []messageView `json:"messages"`
}

func (h *handler) getSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		writeTaxonomyError(r, w, err)
		return
	}
	messages, err := h.sessions.Messages(r.Context(), id)
	if err != nil {
		writeTaxonomyError(r, w, err)
		return
	}

	views := make([]messageView, 0, len(messages))
	for _, m := range messages {
		v := messageView{Message: m, Display: m.Content}
		if m.Role == core.RoleAssistant {
			v.Display, v.Analysis = analysis.Parse(m.Content)
		}
		views = append(views, v)
	}

	writeJSON(w, http.StatusOK, sessionView{Session: *sess, Messages: views})
}

type renameRequest struct {
	Title string `json:"title"`
}

func (h *handler) renameSession(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.sessions.Rename(r.Context(), chi.URLParam(r, "id"), req.Title)
	if err != nil {
		writeTaxonomyError(r, w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (h *handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeTaxonomyError(r, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *handler) deleteAllSessions(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.DeleteAll(r.Context()); err != nil {
		writeTaxonomyError(r, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeTaxonomyError maps the core error taxonomy onto HTTP status codes.
func writeTaxonomyError(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, core.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, core.ErrUpstreamUnavailable):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		log.FromCtx(r.Context()).Error().Err(err).Msg("internal error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
