package assignments

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/auth"
	"github.com/lasville/giustizia/pkg/handlers"
	"github.com/lasville/giustizia/pkg/routes"
)

// Handler provides HTTP endpoints for the assignment workflow.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// AssignRequest identifies the act and the collaborator to assign.
type AssignRequest struct {
	DocumentID uuid.UUID `json:"document_id"`
	AssigneeID uuid.UUID `json:"assignee_id"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "assignments"),
	}
}

// Routes returns the route group definition for assignment endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/assignments",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/documents", Handler: h.Board},
			{Method: "GET", Pattern: "/candidates/{documentId}", Handler: h.Candidates},
			{Method: "POST", Pattern: "", Handler: h.Assign},
		},
	}
}

// Board returns the acts awaiting assignment for the session collaborator.
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	if session == nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, auth.ErrMissingToken)
		return
	}

	docs, err := h.sys.Board(r.Context(), session.Profile.Level, session.Profile.Function)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, docs)
}

// Candidates returns the eligible assignees for an act.
func (h *Handler) Candidates(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("documentId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	candidates, err := h.sys.Candidates(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, candidates)
}

// Assign applies an assignment.
func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if req.DocumentID == uuid.Nil || req.AssigneeID == uuid.Nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotEligible)
		return
	}

	result, err := h.sys.Assign(r.Context(), req.DocumentID, req.AssigneeID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
