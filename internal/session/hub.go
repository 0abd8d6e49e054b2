// Package session serves editing sessions over websockets. One hub
// goroutine owns every session, so each editor sees its events one at a
// time.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"

	"github.com/inamate/core2d/internal/config"
	"github.com/inamate/core2d/internal/engine"
	"github.com/inamate/core2d/internal/history"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrHubStopped      = errors.New("hub stopped")
)

// Recorder receives every history change of every session.
type Recorder interface {
	Record(sessionID, userID string, op history.Op, label string)
}

type inbound struct {
	client *Client
	msg    *Message
}

type Hub struct {
	options  config.Editor
	recorder Recorder

	// owned by the Run goroutine
	sessions map[string]*Session

	register   chan *Client
	unregister chan *Client
	inbound    chan inbound
	requests   chan func()
	done       chan struct{}
}

// NewHub creates a hub whose sessions use options. recorder may be nil.
func NewHub(options config.Editor, recorder Recorder) *Hub {
	return &Hub{
		options:    options,
		recorder:   recorder,
		sessions:   make(map[string]*Session),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inbound, 64),
		requests:   make(chan func()),
		done:       make(chan struct{}),
	}
}

// Run processes hub events until ctx is cancelled. It must run exactly once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case in := <-h.inbound:
			h.handleMessage(in.client, in.msg)
		case fn := <-h.requests:
			fn()
		case <-ctx.Done():
			h.shutdown()
			return
		}
	}
}

// Done is closed when Run has returned.
func (h *Hub) Done() <-chan struct{} { return h.done }

func (h *Hub) Register(client *Client) error {
	select {
	case h.register <- client:
		return nil
	case <-h.done:
		return ErrHubStopped
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) dispatch(ctx context.Context, client *Client, msg *Message) bool {
	select {
	case h.inbound <- inbound{client: client, msg: msg}:
		return true
	case <-ctx.Done():
		return false
	case <-h.done:
		return false
	}
}

// do runs fn on the hub goroutine and waits for it.
func (h *Hub) do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}
	select {
	case h.requests <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return ErrHubStopped
	}
	<-finished
	return nil
}

// WithSession runs fn against the engine of a live session on the hub
// goroutine.
func (h *Hub) WithSession(ctx context.Context, sessionID string, fn func(*engine.Engine) error) error {
	var err error
	if doErr := h.do(ctx, func() {
		s, ok := h.sessions[sessionID]
		if !ok {
			err = ErrSessionNotFound
			return
		}
		err = fn(s.engine)
		if s.engine.NeedsRender() {
			s.broadcastRender()
		}
	}); doErr != nil {
		return doErr
	}
	return err
}

// Info summarizes a live session.
type Info struct {
	ID      string `json:"id"`
	Clients int    `json:"clients"`
	Shapes  int    `json:"shapes"`
}

// Sessions lists the live sessions by id.
func (h *Hub) Sessions(ctx context.Context) ([]Info, error) {
	var out []Info
	err := h.do(ctx, func() {
		for _, s := range h.sessions {
			out = append(out, s.info())
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (h *Hub) addClient(client *Client) {
	s, ok := h.sessions[client.SessionID]
	if !ok {
		s = newSession(client.SessionID, h.options, h.recorder)
		h.sessions[client.SessionID] = s
		slog.Info("session created", "session", client.SessionID)
	}
	s.join(client)
	slog.Info("client joined", "user", client.UserID, "session", client.SessionID)
}

func (h *Hub) removeClient(client *Client) {
	s, ok := h.sessions[client.SessionID]
	if !ok {
		return
	}
	if _, ok := s.clients[client.ClientID]; !ok {
		return
	}

	s.leave(client)
	close(client.send)

	if len(s.clients) == 0 {
		delete(h.sessions, client.SessionID)
		slog.Info("session closed", "session", client.SessionID)
		return
	}
	slog.Info("client left", "user", client.UserID, "session", client.SessionID)
}

func (h *Hub) shutdown() {
	for id, s := range h.sessions {
		for _, c := range s.clients {
			close(c.send)
		}
		delete(h.sessions, id)
	}
	slog.Info("hub stopped")
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	s, ok := h.sessions[sender.SessionID]
	if !ok {
		return
	}
	// The sender may have been unregistered after queueing msg.
	if _, ok := s.clients[sender.ClientID]; !ok {
		return
	}
	switch msg.Type {
	case TypeError:
		sender.Send(msg)
		return
	case TypePresenceUpdate:
		s.handlePresenceUpdate(sender, msg)
		return
	case TypeRender:
		sender.Send(s.renderMessage())
		return
	}

	if err := s.handleEdit(sender, msg); err != nil {
		slog.Warn("message failed", "type", msg.Type, "error", err, "user", sender.UserID, "session", s.ID)
		sender.Send(errorMessage(msg.Type, err))
	}
	if s.engine.NeedsRender() {
		s.broadcastRender()
	}
}

func errorMessage(msgType string, err error) *Message {
	payload, _ := json.Marshal(ErrorPayload{Type: msgType, Message: err.Error()})
	return &Message{Type: TypeError, Payload: payload}
}
