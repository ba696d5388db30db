// Package protocol defines the JSON envelope spoken with the bomberman server
// and the closed set of message types carried inside it.
package protocol

import "encoding/json"

// MessageType is the wire-level tag of an Envelope.
type MessageType string

const (
	Welcome            MessageType = "welcome"
	BackToLobby        MessageType = "back_to_lobby"
	UpdateLobby        MessageType = "update_lobby"
	PlayerStatusUpdate MessageType = "player_status_update"
	Error              MessageType = "error"
	ClassicInput       MessageType = "classic_input"
	ClassicState       MessageType = "classic_state"
	GameStart          MessageType = "game_start"
)

// MessageTypes lists every known type in declaration order.
var MessageTypes = []MessageType{
	Welcome,
	BackToLobby,
	UpdateLobby,
	PlayerStatusUpdate,
	Error,
	ClassicInput,
	ClassicState,
	GameStart,
}

// Known reports whether t is one of the enumerated message types.
func (t MessageType) Known() bool {
	switch t {
	case Welcome, BackToLobby, UpdateLobby, PlayerStatusUpdate, Error, ClassicInput, ClassicState, GameStart:
		return true
	}
	return false
}

// Envelope is the outer {type, payload} frame. Raw holds the undecoded payload
// so the type can be inspected before committing to a payload shape.
type Envelope struct {
	Type MessageType     `json:"type"`
	Raw  json.RawMessage `json:"payload"`
}

// Payload is implemented by every message body. The set is closed: only the
// types in this package satisfy it.
type Payload interface {
	MessageType() MessageType
	isPayload()
}
