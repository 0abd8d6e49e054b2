package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"

	"github.com/inamate/core2d/internal/config"
	"github.com/inamate/core2d/internal/editor"
	"github.com/inamate/core2d/internal/engine"
	"github.com/inamate/core2d/internal/history"
	"github.com/inamate/core2d/internal/tools"
)

// Session is one shared editor and the clients connected to it.
type Session struct {
	ID       string
	engine   *engine.Engine
	clients  map[string]*Client          // clientID -> client
	presence map[string]*PresencePayload // userID -> last cursor
	seq      int64

	// user whose message is being handled, for the journal
	actor string
}

func newSession(id string, options config.Editor, recorder Recorder) *Session {
	s := &Session{
		ID:       id,
		engine:   engine.NewEngine(options, editor.WithLogger(slog.Default().With("session", id))),
		clients:  make(map[string]*Client),
		presence: make(map[string]*PresencePayload),
	}
	if recorder != nil {
		s.engine.Editor().History().Observe(func(op history.Op, e history.Entry) {
			recorder.Record(s.ID, s.actor, op, e.Label)
		})
	}
	return s
}

func (s *Session) info() Info {
	return Info{ID: s.ID, Clients: len(s.clients), Shapes: s.engine.Editor().Page().CurrentLayer().Len()}
}

// handleEdit applies an input, tool, command or history message.
func (s *Session) handleEdit(sender *Client, msg *Message) error {
	s.actor = sender.UserID
	defer func() { s.actor = "" }()

	switch msg.Type {
	case TypeInputDown, TypeInputUp, TypeInputAltDown, TypeInputAltUp, TypeInputMove:
		var args tools.InputArgs
		if err := json.Unmarshal(msg.Payload, &args); err != nil {
			return fmt.Errorf("invalid input payload: %w", err)
		}
		s.input(msg.Type, args)
		return nil
	case TypeToolSet:
		var p ToolPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("invalid tool payload: %w", err)
		}
		return s.engine.SetTool(p.Tool)
	case TypeToolOptions:
		var o engine.ToolOptions
		if err := json.Unmarshal(msg.Payload, &o); err != nil {
			return fmt.Errorf("invalid tool options payload: %w", err)
		}
		return s.engine.SetToolOptions(o)
	case TypeCommand:
		var cmd engine.Command
		if err := json.Unmarshal(msg.Payload, &cmd); err != nil {
			return fmt.Errorf("invalid command payload: %w", err)
		}
		return s.engine.Execute(cmd)
	case TypeUndo:
		s.engine.Undo()
		return nil
	case TypeRedo:
		s.engine.Redo()
		return nil
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (s *Session) input(msgType string, args tools.InputArgs) {
	switch msgType {
	case TypeInputDown:
		s.engine.PointerDown(args)
	case TypeInputUp:
		s.engine.PointerUp(args)
	case TypeInputAltDown:
		s.engine.AltDown(args)
	case TypeInputAltUp:
		s.engine.AltUp(args)
	case TypeInputMove:
		s.engine.PointerMove(args)
	}
}

// join greets c with the editor state and the cursors of everyone else,
// then announces c to the others.
func (s *Session) join(c *Client) {
	s.clients[c.ClientID] = c

	c.Send(s.welcomeMessage(c))
	if state, err := json.Marshal(PresenceStatePayload{Presences: maps.Clone(s.presence)}); err == nil {
		c.Send(&Message{Type: TypePresenceState, SessionID: s.ID, Payload: state})
	} else {
		slog.Error("marshal presence state", "error", err, "session", s.ID)
	}
	c.Send(s.renderMessage())

	joinPayload, _ := json.Marshal(PresenceJoinPayload{UserID: c.UserID, DisplayName: c.DisplayName})
	s.broadcast(&Message{Type: TypePresenceJoin, UserID: c.UserID, Payload: joinPayload}, c.ClientID)
}

// leave drops c. A user's cursor goes only with their last connection.
func (s *Session) leave(c *Client) {
	delete(s.clients, c.ClientID)
	if s.connected(c.UserID) {
		return
	}
	delete(s.presence, c.UserID)

	leavePayload, _ := json.Marshal(PresenceLeavePayload{UserID: c.UserID})
	s.broadcast(&Message{Type: TypePresenceLeave, UserID: c.UserID, Payload: leavePayload}, "")
}

func (s *Session) connected(userID string) bool {
	for _, c := range s.clients {
		if c.UserID == userID {
			return true
		}
	}
	return false
}

func (s *Session) handlePresenceUpdate(sender *Client, msg *Message) {
	var presence PresencePayload
	if err := json.Unmarshal(msg.Payload, &presence); err != nil {
		slog.Warn("invalid presence payload", "error", err)
		return
	}

	presence.DisplayName = sender.DisplayName
	s.presence[sender.UserID] = &presence

	// Broadcast to other clients in session
	outPayload, _ := json.Marshal(presence)
	s.broadcast(&Message{
		Type:    TypePresenceUpdate,
		UserID:  sender.UserID,
		Payload: outPayload,
	}, sender.ClientID)
}

func (s *Session) welcomeMessage(c *Client) *Message {
	page := s.engine.Editor().Page()
	payload, _ := json.Marshal(WelcomePayload{
		ClientID: c.ClientID,
		UserID:   c.UserID,
		Tools:    s.engine.Editor().ToolNames(),
		Tool:     s.engine.GetTool(),
		Width:    page.Width,
		Height:   page.Height,
		Options:  s.engine.ToolOptions(),
		Scale:    s.engine.Scale(),
	})
	return &Message{Type: TypeWelcome, SessionID: s.ID, ClientID: c.ClientID, Payload: payload}
}

// renderMessage compiles the current frame. Every frame gets the next
// sequence number.
func (s *Session) renderMessage() *Message {
	s.seq++
	payload, err := json.Marshal(RenderPayload{
		Commands:  s.engine.Frame(),
		Selection: s.engine.SelectionIDs(),
		Tool:      s.engine.GetTool(),
		Options:   s.engine.ToolOptions(),
		History:   s.engine.HistoryState(),
	})
	if err != nil {
		slog.Error("marshal render", "error", err, "session", s.ID)
		return errorMessage(TypeRender, err)
	}
	return &Message{Type: TypeRender, SessionID: s.ID, Seq: s.seq, Payload: payload}
}

func (s *Session) broadcastRender() {
	s.broadcast(s.renderMessage(), "")
}

func (s *Session) broadcast(msg *Message, excludeClientID string) {
	for _, c := range s.clients {
		if c.ClientID != excludeClientID {
			c.Send(msg)
		}
	}
}
