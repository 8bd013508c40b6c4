package auth

import (
	"log/slog"
	"net/http"

	"github.com/lasville/giustizia/internal/ranks"
	"github.com/lasville/giustizia/pkg/handlers"
	"github.com/lasville/giustizia/pkg/routes"
)

// Handler provides HTTP endpoints for session introspection.
type Handler struct {
	logger *slog.Logger
}

// SessionResponse describes the authenticated collaborator: profile,
// resolved rank title, and the evaluated gate map that drives client
// menu visibility.
type SessionResponse struct {
	Profile Profile         `json:"profile"`
	Title   string          `json:"title"`
	Gates   map[string]bool `json:"gates"`
}

// NewHandler creates a Handler with the given logger.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger.With("handler", "auth"),
	}
}

// Routes returns the route group definition for session endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/session",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Session},
		},
	}
}

// Session returns the current session profile with its rank title and
// evaluated permission gates.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())
	if session == nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrMissingToken)
		return
	}

	gates := make(map[string]bool)
	for _, gate := range AllGates() {
		gates[gate.Name] = session.Allowed(gate)
	}

	handlers.RespondJSON(w, http.StatusOK, SessionResponse{
		Profile: session.Profile,
		Title:   ranks.Title(session.Profile.Level, session.Profile.Function),
		Gates:   gates,
	})
}
