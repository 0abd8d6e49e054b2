package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/inamate/core2d/internal/config"
	"github.com/inamate/core2d/internal/engine"
	"github.com/inamate/core2d/internal/session"
	"github.com/inamate/core2d/internal/typeid"
)

type fakeSessions map[string]*engine.Engine

func (f fakeSessions) WithSession(_ context.Context, id string, fn func(*engine.Engine) error) error {
	e, ok := f[id]
	if !ok {
		return session.ErrSessionNotFound
	}
	return fn(e)
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/sessions/{sessionId}/export.{format}", h.Export).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestExport(t *testing.T) {
	h := NewHandler(fakeSessions{"s1": engine.NewEngine(config.DefaultEditor())}, nil)

	rec := serve(h, "/sessions/s1/export.svg?name=my%20drawing")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="my-drawing.svg"`) {
		t.Errorf("Unexpected disposition %q", cd)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("Expected an SVG document")
	}

	rec = serve(h, "/sessions/s1/export.png")
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Body.String(), "\x89PNG") {
		t.Errorf("Expected a PNG, got %d", rec.Code)
	}
}

func TestExportErrors(t *testing.T) {
	h := NewHandler(fakeSessions{}, nil)
	if rec := serve(h, "/sessions/s1/export.svg"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for an unknown session, got %d", rec.Code)
	}
	if rec := serve(h, "/sessions/s1/export.gif"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for an unknown format, got %d", rec.Code)
	}
}

func TestExportLiveSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := session.NewHub(config.DefaultEditor(), nil)
	go hub.Run(ctx)

	id := typeid.NewSessionID()
	if err := hub.Register(session.NewClient(hub, nil, "u1", "Ann", id, "c1")); err != nil {
		t.Fatal(err)
	}

	rec := serve(NewHandler(hub, nil), "/sessions/"+id+"/export.svg")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="drawing.svg"`) {
		t.Errorf("Unexpected disposition %q", cd)
	}

	if rec := serve(NewHandler(hub, nil), "/sessions/"+typeid.NewSessionID()+"/export.png"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for a session nobody joined, got %d", rec.Code)
	}
}
