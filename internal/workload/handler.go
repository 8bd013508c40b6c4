package workload

import (
	"log/slog"
	"net/http"

	"github.com/lasville/giustizia/pkg/handlers"
	"github.com/lasville/giustizia/pkg/routes"
)

// Handler provides the HTTP endpoint for the workload view.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "workload"),
	}
}

// Routes returns the route group definition for the workload endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/workload",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Overview},
		},
	}
}

// Overview returns the roster's aggregated caseload.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	entries, err := h.sys.Overview(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, entries)
}
