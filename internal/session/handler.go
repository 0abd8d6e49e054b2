package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/inamate/core2d/internal/auth"
	"github.com/inamate/core2d/internal/store"
	"github.com/inamate/core2d/internal/typeid"
)

// Journal reads back recorded history changes.
type Journal interface {
	Recent(ctx context.Context, sessionID string, limit int) ([]store.Entry, error)
}

type Handler struct {
	hub            *Hub
	auth           *auth.Service
	originPatterns []string
	journal        Journal
}

// NewHandler serves the session routes. journal may be nil when no
// database is configured.
func NewHandler(hub *Hub, authService *auth.Service, originPatterns []string, journal Journal) *Handler {
	return &Handler{hub: hub, auth: authService, originPatterns: originPatterns, journal: journal}
}

// ServeWS handles /ws/session/{sessionId}.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if err := typeid.Validate(sessionID, typeid.PrefixSession); err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	user, err := h.auth.Authenticate(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := NewClient(h.hub, conn, user.ID, user.DisplayName, sessionID, clientID)

	if err := h.hub.Register(client); err != nil {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}

type createResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Create handles POST /sessions. The session itself starts when the
// first client joins.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id := typeid.NewSessionID()
	writeJSON(w, http.StatusCreated, createResponse{ID: id, URL: "/ws/session/" + id})
}

// List handles GET /sessions.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.hub.Sessions(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	if sessions == nil {
		sessions = []Info{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

// History handles GET /sessions/{sessionId}/journal?limit=n.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if h.journal == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "journal disabled"})
		return
	}
	sessionID := mux.Vars(r)["sessionId"]

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = min(n, 500)
	}

	entries, err := h.journal.Recent(r.Context(), sessionID, limit)
	if err != nil {
		slog.Error("read journal", "error", err, "session", sessionID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read journal"})
		return
	}
	if entries == nil {
		entries = []store.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
