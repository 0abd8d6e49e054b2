// Package export serves the page of a live session as an SVG or PNG file.
package export

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/inamate/core2d/internal/engine"
	"github.com/inamate/core2d/internal/render"
	"github.com/inamate/core2d/internal/session"
)

// Sessions runs fn against the engine of a live session. It is
// implemented by *session.Hub.
type Sessions interface {
	WithSession(ctx context.Context, sessionID string, fn func(*engine.Engine) error) error
}

type Handler struct {
	sessions Sessions
	assets   render.Assets
}

func NewHandler(sessions Sessions, assets render.Assets) *Handler {
	return &Handler{sessions: sessions, assets: assets}
}

// Export handles GET /sessions/{sessionId}/export.{format}.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	format := vars["format"]

	var contentType string
	switch format {
	case "svg":
		contentType = "image/svg+xml"
	case "png":
		contentType = "image/png"
	default:
		http.Error(w, "invalid format: must be svg or png", http.StatusBadRequest)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = "drawing"
	}
	// Sanitize filename
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)

	var buf bytes.Buffer
	err := h.sessions.WithSession(r.Context(), sessionID, func(e *engine.Engine) error {
		if format == "svg" {
			e.ExportSVG(&buf, h.assets)
			return nil
		}
		return e.ExportPNG(&buf, h.assets)
	})
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		slog.Error("export failed", "error", err, "session", sessionID, "format", format)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	slog.Info("export complete", "session", sessionID, "format", format, "size", buf.Len())

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+"."+format+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
