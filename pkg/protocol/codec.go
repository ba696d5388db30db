package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMalformedEnvelope  = errors.New("malformed envelope")
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrEmptyPayload       = errors.New("empty payload")
)

// Encode wraps p in an Envelope tagged with its message type and returns a
// single self-contained text frame.
func Encode(p Payload) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("trying to encode nil payload")
	}
	pb, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", p.MessageType(), err)
	}
	return json.Marshal(Envelope{Type: p.MessageType(), Raw: pb})
}

// Decode parses the outer envelope only. Unknown types decode successfully so
// callers can log them; use Envelope.Payload to get the typed body.
func Decode(b []byte) (Envelope, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return Envelope{}, fmt.Errorf("%w: empty frame", ErrMalformedEnvelope)
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if e.Type == "" {
		return Envelope{}, fmt.Errorf("%w: missing type", ErrMalformedEnvelope)
	}
	return e, nil
}

// DecodePayload unmarshals the raw payload of env into T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if isEmpty(env.Raw) {
		return out, fmt.Errorf("%w for type %q", ErrEmptyPayload, env.Type)
	}
	if err := json.Unmarshal(env.Raw, &out); err != nil {
		return out, fmt.Errorf("%w: %s payload: %v", ErrMalformedEnvelope, env.Type, err)
	}
	return out, nil
}

// Payload decodes the body according to the envelope type.
func (e Envelope) Payload() (Payload, error) {
	switch e.Type {
	case Welcome:
		return decodeAs[WelcomePayload](e)
	case BackToLobby:
		// the server may omit the body entirely
		if isEmpty(e.Raw) {
			return BackToLobbyPayload{}, nil
		}
		return decodeAs[BackToLobbyPayload](e)
	case UpdateLobby:
		return decodeAs[LobbyUpdatePayload](e)
	case PlayerStatusUpdate:
		return decodeAs[PlayerStatusUpdatePayload](e)
	case Error:
		return decodeAs[ErrorPayload](e)
	case ClassicInput:
		return decodeAs[ClassicInputPayload](e)
	case ClassicState:
		return decodeAs[ClassicStatePayload](e)
	case GameStart:
		return decodeAs[GameStartPayload](e)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, e.Type)
	}
}

// Unmarshal is Decode followed by Envelope.Payload.
func Unmarshal(b []byte) (Payload, error) {
	env, err := Decode(b)
	if err != nil {
		return nil, err
	}
	return env.Payload()
}

func decodeAs[T Payload](e Envelope) (Payload, error) {
	p, err := DecodePayload[T](e)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func isEmpty(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
