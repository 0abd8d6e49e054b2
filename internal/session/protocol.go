package session

import (
	"encoding/json"

	"github.com/inamate/core2d/internal/engine"
	"github.com/inamate/core2d/internal/render"
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type PresencePayload struct {
	Cursor      *CursorPos `json:"cursor,omitempty"`
	DisplayName string     `json:"displayName,omitempty"`
}

type CursorPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PresenceStatePayload struct {
	Presences map[string]*PresencePayload `json:"presences"`
}

type PresenceJoinPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

type PresenceLeavePayload struct {
	UserID string `json:"userId"`
}

// WelcomePayload is the first message a client receives.
type WelcomePayload struct {
	ClientID string   `json:"clientId"`
	UserID   string   `json:"userId"`
	Tools    []string `json:"tools"`
	Tool     string   `json:"tool"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`

	Options engine.ToolOptions `json:"toolOptions"`
	Scale   float64            `json:"scale"`
}

type ToolPayload struct {
	Tool string `json:"tool"`
}

// RenderPayload carries the whole draw list; clients repaint from scratch.
type RenderPayload struct {
	Commands  []render.DrawCommand `json:"commands"`
	Selection []string             `json:"selection"`
	Tool      string               `json:"tool"`
	Options   engine.ToolOptions   `json:"toolOptions"`
	History   engine.HistoryState  `json:"history"`
}

type ErrorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	TypePresenceUpdate = "presence.update"
	TypePresenceState  = "presence.state"
	TypePresenceJoin   = "presence.join"
	TypePresenceLeave  = "presence.leave"
	TypeError          = "error"

	// Connection
	TypeWelcome = "welcome"

	// Pointer input, payload is tools.InputArgs
	TypeInputDown    = "input.down"
	TypeInputUp      = "input.up"
	TypeInputAltDown = "input.alt.down"
	TypeInputAltUp   = "input.alt.up"
	TypeInputMove    = "input.move"

	// Editing
	TypeToolSet     = "tool.set"
	TypeToolOptions = "tool.options" // payload is engine.ToolOptions
	TypeCommand     = "command"      // payload is engine.Command
	TypeUndo        = "history.undo"
	TypeRedo        = "history.redo"

	// Server → client draw list, also sent on request
	TypeRender = "render"
)

// fromClient reports whether clients may send messages of type t.
func fromClient(t string) bool {
	switch t {
	case TypePresenceUpdate,
		TypeInputDown, TypeInputUp, TypeInputAltDown, TypeInputAltUp, TypeInputMove,
		TypeToolSet, TypeToolOptions, TypeCommand, TypeUndo, TypeRedo,
		TypeRender:
		return true
	}
	return false
}
