package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/inamate/core2d/internal/config"
	"github.com/inamate/core2d/internal/engine"
	"github.com/inamate/core2d/internal/history"
	"github.com/inamate/core2d/internal/tools"
	"github.com/inamate/core2d/internal/typeid"
)

type recorded struct {
	session, user string
	op            history.Op
	label         string
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []recorded
}

func (f *fakeRecorder) Record(sessionID, userID string, op history.Op, label string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, recorded{sessionID, userID, op, label})
}

func (f *fakeRecorder) all() []recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recorded(nil), f.entries...)
}

func startHub(t *testing.T, recorder Recorder) (*Hub, context.Context) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(config.DefaultEditor(), recorder)
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.Done()
	})
	return hub, ctx
}

func join(t *testing.T, hub *Hub, sessionID, userID, clientID string) *Client {
	t.Helper()
	c := NewClient(hub, nil, userID, "name-"+userID, sessionID, clientID)
	if err := hub.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return c
}

// next returns the next message on c of the given type, skipping others.
func next(t *testing.T, c *Client, msgType string) *Message {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				t.Fatalf("send channel of %s closed while waiting for %s", c.ClientID, msgType)
			}
			var msg Message
			if err := json.Unmarshal(data, &msg); err != nil {
				t.Fatalf("invalid message: %v", err)
			}
			if msg.Type == msgType {
				return &msg
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s on %s", msgType, c.ClientID)
		}
	}
}

func send(t *testing.T, hub *Hub, ctx context.Context, c *Client, msgType string, payload interface{}) {
	t.Helper()
	msg := &Message{Type: msgType, UserID: c.UserID, ClientID: c.ClientID, SessionID: c.SessionID}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		msg.Payload = data
	}
	if !hub.dispatch(ctx, c, msg) {
		t.Fatalf("dispatch of %s failed", msgType)
	}
}

func renderOf(t *testing.T, msg *Message) RenderPayload {
	t.Helper()
	var p RenderPayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		t.Fatalf("invalid render payload: %v", err)
	}
	return p
}

func TestJoinSendsWelcomeStateAndRender(t *testing.T) {
	hub, _ := startHub(t, nil)
	id := typeid.NewSessionID()
	c := join(t, hub, id, "u1", "c1")

	welcome := next(t, c, TypeWelcome)
	var w WelcomePayload
	if err := json.Unmarshal(welcome.Payload, &w); err != nil {
		t.Fatal(err)
	}
	if w.ClientID != "c1" || w.UserID != "u1" {
		t.Errorf("Expected welcome for c1/u1, got %+v", w)
	}
	if len(w.Tools) == 0 {
		t.Error("Expected the welcome to list tools")
	}
	if w.Width != 1200 || w.Height != 800 {
		t.Errorf("Expected a 1200x800 page, got %vx%v", w.Width, w.Height)
	}

	next(t, c, TypePresenceState)
	render := next(t, c, TypeRender)
	if render.Seq != 1 {
		t.Errorf("Expected first render seq 1, got %d", render.Seq)
	}
	if p := renderOf(t, render); len(p.Commands) != 0 {
		t.Errorf("Expected an empty page, got %d commands", len(p.Commands))
	}
}

func TestDrawingBroadcastsRender(t *testing.T) {
	rec := &fakeRecorder{}
	hub, ctx := startHub(t, rec)
	id := typeid.NewSessionID()

	a := join(t, hub, id, "u1", "c1")
	next(t, a, TypeRender)
	b := join(t, hub, id, "u2", "c2")
	next(t, b, TypeRender)

	joined := next(t, a, TypePresenceJoin)
	if joined.UserID != "u2" {
		t.Errorf("Expected join of u2, got %q", joined.UserID)
	}

	send(t, hub, ctx, a, TypeToolSet, ToolPayload{Tool: "rectangle"})
	if p := renderOf(t, next(t, b, TypeRender)); p.Tool != "rectangle" {
		t.Errorf("Expected rectangle tool in render, got %q", p.Tool)
	}

	send(t, hub, ctx, a, TypeInputDown, tools.InputArgs{X: 10, Y: 10})
	send(t, hub, ctx, a, TypeInputMove, tools.InputArgs{X: 60, Y: 40})
	send(t, hub, ctx, a, TypeInputDown, tools.InputArgs{X: 60, Y: 40})

	// The sessions listing runs on the hub loop after the inputs.
	infos, err := hub.Sessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 || infos[0].ID != id || infos[0].Clients != 2 || infos[0].Shapes != 1 {
		t.Fatalf("Expected one session with 2 clients and 1 shape, got %+v", infos)
	}

	entries := rec.all()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 recorded entry, got %d", len(entries))
	}
	if entries[0].session != id || entries[0].user != "u1" || entries[0].op != history.OpPush {
		t.Errorf("Unexpected entry %+v", entries[0])
	}
	if !strings.HasPrefix(entries[0].label, "Create ") {
		t.Errorf("Expected a create label, got %q", entries[0].label)
	}

	send(t, hub, ctx, b, TypeUndo, nil)
	if _, err := hub.Sessions(ctx); err != nil {
		t.Fatal(err)
	}
	entries = rec.all()
	if len(entries) != 2 || entries[1].user != "u2" || entries[1].op != history.OpUndo {
		t.Errorf("Expected an undo by u2, got %+v", entries)
	}
}

func TestErrorsGoToSender(t *testing.T) {
	hub, ctx := startHub(t, nil)
	id := typeid.NewSessionID()
	a := join(t, hub, id, "u1", "c1")
	next(t, a, TypeRender)

	send(t, hub, ctx, a, "bogus", nil)
	msg := next(t, a, TypeError)
	var p ErrorPayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		t.Fatal(err)
	}
	if p.Type != "bogus" || !strings.Contains(p.Message, "unknown message type") {
		t.Errorf("Unexpected error payload %+v", p)
	}

	send(t, hub, ctx, a, TypeCommand, engine.Command{Name: "explode"})
	msg = next(t, a, TypeError)
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		t.Fatal(err)
	}
	if p.Type != TypeCommand || !strings.Contains(p.Message, "explode") {
		t.Errorf("Unexpected command error %+v", p)
	}
}

func TestPresenceRelayedToOthers(t *testing.T) {
	hub, ctx := startHub(t, nil)
	id := typeid.NewSessionID()
	a := join(t, hub, id, "u1", "c1")
	b := join(t, hub, id, "u2", "c2")
	next(t, b, TypeRender)

	send(t, hub, ctx, a, TypePresenceUpdate, PresencePayload{Cursor: &CursorPos{X: 5, Y: 7}})
	msg := next(t, b, TypePresenceUpdate)
	var p PresencePayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		t.Fatal(err)
	}
	if p.Cursor == nil || p.Cursor.X != 5 || p.DisplayName != "name-u1" {
		t.Errorf("Unexpected presence %+v", p)
	}
}

func TestLastClientClosesSession(t *testing.T) {
	hub, ctx := startHub(t, nil)
	id := typeid.NewSessionID()
	a := join(t, hub, id, "u1", "c1")
	b := join(t, hub, id, "u2", "c2")
	next(t, b, TypeRender)

	hub.Unregister(b)
	next(t, a, TypePresenceLeave)
	hub.Unregister(a)
	// A second unregister of the same client is ignored.
	hub.Unregister(a)

	infos, err := hub.Sessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 0 {
		t.Errorf("Expected no sessions, got %+v", infos)
	}

	err = hub.WithSession(ctx, id, func(*engine.Engine) error { return nil })
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestWithSessionBroadcastsChanges(t *testing.T) {
	hub, ctx := startHub(t, nil)
	id := typeid.NewSessionID()
	a := join(t, hub, id, "u1", "c1")
	first := next(t, a, TypeRender)

	err := hub.WithSession(ctx, id, func(e *engine.Engine) error {
		return e.SetTool("line")
	})
	if err != nil {
		t.Fatal(err)
	}
	msg := next(t, a, TypeRender)
	if msg.Seq != first.Seq+1 {
		t.Errorf("Expected seq %d, got %d", first.Seq+1, msg.Seq)
	}
	if p := renderOf(t, msg); p.Tool != "line" {
		t.Errorf("Expected line tool, got %q", p.Tool)
	}
}

func TestMessageAfterUnregisterIsDropped(t *testing.T) {
	hub := NewHub(config.DefaultEditor(), nil)
	id := typeid.NewSessionID()
	a := NewClient(hub, nil, "u1", "", id, "c1")
	b := NewClient(hub, nil, "u2", "", id, "c2")
	hub.addClient(a)
	hub.addClient(b)
	hub.removeClient(a)

	// a's send channel is closed; replying to it would panic.
	hub.handleMessage(a, &Message{Type: TypeRender})
	hub.handleMessage(a, &Message{Type: "bogus"})
	hub.handleMessage(a, &Message{Type: TypeToolSet, Payload: []byte(`{"tool":"line"}`)})

	if tool := hub.sessions[id].engine.GetTool(); tool == "line" {
		t.Error("Expected the departed client's tool change to be ignored")
	}
	for len(b.send) > 0 {
		data := <-b.send
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatal(err)
		}
		if msg.Type == TypeError {
			t.Errorf("Expected no error traffic, got %s", data)
		}
	}
}

func TestStoppedHub(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(config.DefaultEditor(), nil)
	go hub.Run(ctx)
	cancel()
	<-hub.Done()

	c := NewClient(hub, nil, "u1", "", typeid.NewSessionID(), "c1")
	if err := hub.Register(c); !errors.Is(err, ErrHubStopped) {
		t.Errorf("Expected ErrHubStopped, got %v", err)
	}
	if _, err := hub.Sessions(context.Background()); !errors.Is(err, ErrHubStopped) {
		t.Errorf("Expected ErrHubStopped from Sessions, got %v", err)
	}
}

func TestPresenceOutlivesOneOfTwoTabs(t *testing.T) {
	hub := NewHub(config.DefaultEditor(), nil)
	id := typeid.NewSessionID()
	a := NewClient(hub, nil, "u1", "", id, "c1")
	a2 := NewClient(hub, nil, "u1", "", id, "c2")
	b := NewClient(hub, nil, "u2", "", id, "c3")
	hub.addClient(a)
	hub.addClient(a2)
	hub.addClient(b)
	hub.handleMessage(a, &Message{Type: TypePresenceUpdate, Payload: []byte(`{"cursor":{"x":1,"y":2}}`)})

	hub.removeClient(a)
	s := hub.sessions[id]
	if _, ok := s.presence["u1"]; !ok {
		t.Error("Expected u1's cursor to stay while c2 is connected")
	}
	for len(b.send) > 0 {
		var msg Message
		if err := json.Unmarshal(<-b.send, &msg); err != nil {
			t.Fatal(err)
		}
		if msg.Type == TypePresenceLeave {
			t.Error("Expected no leave while u1 has another connection")
		}
	}

	hub.removeClient(a2)
	if _, ok := s.presence["u1"]; ok {
		t.Error("Expected u1's cursor to go with the last connection")
	}
	next(t, b, TypePresenceLeave)
}
