package realtime

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/lasville/giustizia/internal/auth"
	"github.com/lasville/giustizia/pkg/handlers"
	"github.com/lasville/giustizia/pkg/routes"
)

// Handler upgrades authenticated requests to websocket subscriptions
// on the change feed.
type Handler struct {
	hub    *Hub
	logger *slog.Logger
	up     websocket.Upgrader
}

// NewHandler creates a Handler bound to the given hub.
func NewHandler(hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger.With("handler", "realtime"),
		up: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Bearer auth gates the upgrade; origins are not restricted here.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Routes returns the route group definition for the change feed endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/realtime",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Subscribe},
		},
	}
}

// Subscribe upgrades the connection and streams change events for the
// requested tables (`?tables=documents,procedimenti`; empty means all).
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	if session == nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, auth.ErrMissingToken)
		return
	}

	conn, err := h.up.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	sub := h.hub.subscribe(parseTables(r.URL.Query().Get("tables")), session.Profile.ID)
	defer h.hub.unsubscribe(sub)

	// Reader drains control frames and signals peer disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case e, ok := <-sub.send:
			if !ok {
				conn.WriteMessage(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				)
				conn.Close()
				return
			}
			if err := conn.WriteJSON(e); err != nil {
				conn.Close()
				return
			}
		case <-done:
			conn.Close()
			return
		}
	}
}

func parseTables(raw string) []string {
	if raw == "" {
		return nil
	}

	var tables []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tables = append(tables, t)
		}
	}
	return tables
}
