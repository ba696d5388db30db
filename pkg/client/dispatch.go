package client

import (
	"errors"

	"github.com/bombahead/client/pkg/bot"
	"github.com/bombahead/client/pkg/logger"
	"github.com/bombahead/client/pkg/protocol"
)

// Sender accepts outbound payloads. Delivery is at most once; a sender may drop.
type Sender interface {
	Send(p protocol.Payload)
}

// Sink presents lobby rosters and snapshots to the user.
type Sink interface {
	RenderLobby(selfID string, lobby protocol.LobbyUpdatePayload)
	RenderState(selfID string, state protocol.ClassicStatePayload)
}

type nopSink struct{}

func (nopSink) RenderLobby(string, protocol.LobbyUpdatePayload)  {}
func (nopSink) RenderState(string, protocol.ClassicStatePayload) {}

// Dispatcher routes decoded envelopes by type. It is the only place the agent
// is asked for a move. Not safe for concurrent use: frames must be handed in
// one at a time, in arrival order.
type Dispatcher struct {
	session *Session
	agent   bot.Agent
	sink    Sink
	sender  Sender
	logger  *logger.Logger
}

// NewDispatcher wires a dispatcher. The agent is wrapped in a bot.Guard so a
// snapshot always produces exactly one valid move.
func NewDispatcher(session *Session, agent bot.Agent, sink Sink, sender Sender, l *logger.Logger) *Dispatcher {
	if l == nil {
		l = logger.Default()
	}
	if agent == nil {
		agent = bot.Idle{}
	}
	if _, ok := agent.(*bot.Guard); !ok {
		agent = bot.NewGuard(agent, func(err error) {
			l.Warn("Agent fault, sending %s instead: %v", protocol.DoNothing, err)
		})
	}
	if sink == nil {
		sink = nopSink{}
	}
	return &Dispatcher{
		session: session,
		agent:   agent,
		sink:    sink,
		sender:  sender,
		logger:  l,
	}
}

// Dispatch decodes a raw frame and handles it. It reports false when the frame
// was not a valid envelope; such frames are logged and dropped.
func (d *Dispatcher) Dispatch(frame []byte) (protocol.Envelope, bool) {
	env, err := protocol.Decode(frame)
	if err != nil {
		d.logger.Warn("Dropping frame: %v", err)
		d.logger.Debug("Dropped frame: %q", frame)
		return env, false
	}
	d.Handle(env)
	return env, true
}

// Handle runs the built-in handler for env.
func (d *Dispatcher) Handle(env protocol.Envelope) {
	p, err := env.Payload()
	if err != nil {
		if errors.Is(err, protocol.ErrUnknownMessageType) {
			d.logger.Debug("Received unknown message type: %s", env.Type)
		} else {
			d.logger.Debug("Ignoring %s message: %v", env.Type, err)
		}
		return
	}

	switch p := p.(type) {
	case protocol.WelcomePayload:
		d.onWelcome(p)
	case protocol.LobbyUpdatePayload:
		d.sink.RenderLobby(d.session.ID(), p)
	case protocol.ErrorPayload:
		d.logger.Warn("Server Error: %s", p.Message)
	case protocol.GameStartPayload:
		d.logger.Info("A new %s has started", p.Name)
	case protocol.ClassicStatePayload:
		d.onClassicState(p)
	case protocol.BackToLobbyPayload:
		d.logger.Info("You are back inside the lobby")
		d.sender.Send(protocol.PlayerStatusUpdatePayload{IsReady: true, AuthToken: ""})
	default:
		// player_status_update and classic_input only travel client -> server
		d.logger.Debug("Ignoring %s message from server", p.MessageType())
	}
}

func (d *Dispatcher) onWelcome(p protocol.WelcomePayload) {
	if !d.session.AssignID(p.ClientID) {
		d.logger.Debug("Ignoring welcome for %q, identity already %q", p.ClientID, d.session.ID())
		return
	}
	d.logger.Success("You connected to the bomberman server: %s", p.ClientID)
	d.logger.Info("Available Games:")
	for _, g := range p.CurrentGames {
		d.logger.Info("- %s: %s", g.Name, g.Description)
	}
}

func (d *Dispatcher) onClassicState(s protocol.ClassicStatePayload) {
	selfID := d.session.ID()
	move := d.agent.NextMove(selfID, s)
	d.sender.Send(protocol.ClassicInputPayload{Move: move})
	d.sink.RenderState(selfID, s)
}
