package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/gorilla/mux"

	"github.com/inamate/core2d/internal/auth"
	"github.com/inamate/core2d/internal/store"
	"github.com/inamate/core2d/internal/typeid"
)

type fakeJournal struct {
	entries []store.Entry
	err     error
	limit   int
}

func (f *fakeJournal) Recent(_ context.Context, sessionID string, limit int) ([]store.Entry, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	var out []store.Entry
	for _, e := range f.entries {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/sessions", h.Create).Methods("POST")
	r.HandleFunc("/sessions", h.List).Methods("GET")
	r.HandleFunc("/sessions/{sessionId}/journal", h.History).Methods("GET")
	r.HandleFunc("/ws/session/{sessionId}", h.ServeWS)
	return r
}

func TestCreateAndList(t *testing.T) {
	hub, _ := startHub(t, nil)
	r := newRouter(NewHandler(hub, auth.NewService(""), nil, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/sessions", nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}
	var created createResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if err := typeid.Validate(created.ID, typeid.PrefixSession); err != nil {
		t.Errorf("Expected a session id, got %q: %v", created.ID, err)
	}
	if created.URL != "/ws/session/"+created.ID {
		t.Errorf("Unexpected url %q", created.URL)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/sessions", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("Expected an empty list, got %s", body)
	}
}

func TestJournalRoute(t *testing.T) {
	hub, _ := startHub(t, nil)
	id := typeid.NewSessionID()

	rec := httptest.NewRecorder()
	newRouter(NewHandler(hub, auth.NewService(""), nil, nil)).
		ServeHTTP(rec, httptest.NewRequest("GET", "/sessions/"+id+"/journal", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 without a journal, got %d", rec.Code)
	}

	journal := &fakeJournal{entries: []store.Entry{
		{ID: "1", SessionID: id, Op: "push", Label: "Create Rectangle"},
		{ID: "2", SessionID: "other", Op: "push", Label: "Move"},
	}}
	r := newRouter(NewHandler(hub, auth.NewService(""), nil, journal))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/sessions/"+id+"/journal?limit=10", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var entries []store.Entry
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Label != "Create Rectangle" {
		t.Errorf("Unexpected entries %+v", entries)
	}
	if journal.limit != 10 {
		t.Errorf("Expected limit 10, got %d", journal.limit)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/sessions/"+id+"/journal?limit=9999", nil))
	if journal.limit != 500 {
		t.Errorf("Expected limit capped at 500, got %d", journal.limit)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/sessions/"+id+"/journal?limit=-1", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a bad limit, got %d", rec.Code)
	}

	journal.err = errors.New("db down")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/sessions/"+id+"/journal", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
}

func TestServeWSRejects(t *testing.T) {
	hub, _ := startHub(t, nil)
	r := newRouter(NewHandler(hub, auth.NewService("secret"), nil, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/ws/session/not-a-session", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a bad id, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/ws/session/"+typeid.NewSessionID(), nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a token, got %d", rec.Code)
	}
}

func TestWebSocketSession(t *testing.T) {
	hub, _ := startHub(t, nil)
	srv := httptest.NewServer(newRouter(NewHandler(hub, auth.NewService(""), nil, nil)))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := typeid.NewSessionID()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/session/" + id
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	read := func(msgType string) *Message {
		t.Helper()
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				t.Fatalf("read failed waiting for %s: %v", msgType, err)
			}
			var msg Message
			if err := json.Unmarshal(data, &msg); err != nil {
				t.Fatal(err)
			}
			if msg.Type == msgType {
				return &msg
			}
		}
	}

	welcome := read(TypeWelcome)
	if welcome.SessionID != id {
		t.Errorf("Expected session %s, got %s", id, welcome.SessionID)
	}
	var w WelcomePayload
	if err := json.Unmarshal(welcome.Payload, &w); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(w.UserID, "anon-") {
		t.Errorf("Expected an anonymous user, got %q", w.UserID)
	}
	read(TypeRender)

	if err := conn.Write(ctx, websocket.MessageText, []byte(`{"type":"tool.set","payload":{"tool":"ellipse"}}`)); err != nil {
		t.Fatal(err)
	}
	var p RenderPayload
	if err := json.Unmarshal(read(TypeRender).Payload, &p); err != nil {
		t.Fatal(err)
	}
	if p.Tool != "ellipse" {
		t.Errorf("Expected ellipse tool, got %q", p.Tool)
	}

	if err := conn.Write(ctx, websocket.MessageText, []byte(`{"type":"tool.options","payload":{"ellipseMode":"circle"}}`)); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(read(TypeRender).Payload, &p); err != nil {
		t.Fatal(err)
	}
	if p.Options.EllipseMode == nil || *p.Options.EllipseMode != "circle" {
		t.Errorf("Expected circle mode, got %+v", p.Options)
	}

	// Unknown types, and server-only types, are answered without
	// reaching the editor.
	for _, msgType := range []string{"bogus", TypeError, TypeWelcome} {
		if err := conn.Write(ctx, websocket.MessageText, []byte(`{"type":"`+msgType+`"}`)); err != nil {
			t.Fatal(err)
		}
		var e ErrorPayload
		if err := json.Unmarshal(read(TypeError).Payload, &e); err != nil {
			t.Fatal(err)
		}
		if e.Type != msgType || !strings.Contains(e.Message, "unknown message type") {
			t.Errorf("Expected %s to be rejected, got %+v", msgType, e)
		}
	}

	conn.Close(websocket.StatusNormalClosure, "")
	deadline := time.Now().Add(2 * time.Second)
	for {
		infos, err := hub.Sessions(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if len(infos) == 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Expected the session to close, still have %+v", infos)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
