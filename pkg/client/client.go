package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bombahead/client/pkg/bot"
	"github.com/bombahead/client/pkg/logger"
	"github.com/bombahead/client/pkg/protocol"
	"github.com/gorilla/websocket"
)

const (
	AuthTokenEnv = "BOMBERMAN_CLIENT_AUTH_TOKEN"

	defaultWriteTimeout = 10 * time.Second
	closeReason         = "Normal Closure"
)

// Handler is a lightweight callback run after the built-in dispatch for every
// decoded envelope, unknown types included.
type Handler func(c *Client, env protocol.Envelope)

// Client owns the websocket connection to a bomberman server. It is fail-fast:
// there is no reconnection, and outbound messages are dropped, not queued,
// while the connection is not open.
type Client struct {
	// connection
	Address   string
	AuthToken string
	Dialer    *websocket.Dialer
	// WriteTimeout bounds every frame write, close frame included.
	WriteTimeout time.Duration

	Logger *logger.Logger
	Agent  bot.Agent
	Sink   Sink

	session  *Session
	handlers []Handler

	writeMu sync.Mutex
	conn    *websocket.Conn

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New creates a client for the given ws:// or wss:// address. Set Sink and
// register handlers before calling Run.
func New(address string, agent bot.Agent) *Client {
	return &Client{
		Address:      address,
		Dialer:       websocket.DefaultDialer,
		WriteTimeout: defaultWriteTimeout,
		Logger:       logger.Default(),
		Agent:        agent,
		session:      NewSession(),
	}
}

func (c *Client) Session() *Session { return c.session }

// ID returns the server-assigned identity, or "" before the welcome arrives.
func (c *Client) ID() string { return c.session.ID() }

func (c *Client) State() State { return c.session.State() }

// GetAddress returns the server address (satisfies tui.ClientInterface).
func (c *Client) GetAddress() string { return c.Address }

// StateName returns the lifecycle state as text (satisfies tui.ClientInterface).
func (c *Client) StateName() string { return c.State().String() }

// RegisterHandler appends a callback. Handlers run on the dispatch goroutine.
func (c *Client) RegisterHandler(h Handler) {
	c.handlers = append(c.handlers, h)
}

// Send encodes p and writes it if the connection is open. Otherwise the message
// is dropped without retry.
func (c *Client) Send(p protocol.Payload) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.conn == nil || c.session.State() != StateOpen {
		c.Logger.Debug("Dropping %s: connection is %s", p.MessageType(), c.session.State())
		return
	}
	b, err := protocol.Encode(p)
	if err != nil {
		c.Logger.Error("Error marshalling %s for send: %v", p.MessageType(), err)
		return
	}
	_ = c.conn.SetWriteDeadline(c.writeDeadline())
	if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		// the read side observes the broken connection and ends Run
		c.Logger.Error("Write Error: %v", err)
	}
}

// Disconnect asks a running client to close the connection the same way an
// interrupt does. It is a no-op when Run is not active.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

// Run connects, announces readiness and processes frames until the connection
// ends. Cancelling ctx is treated as an interrupt: an open connection is closed
// with a normal-closure frame and Run returns nil. A server-initiated close also
// returns nil. Setup failures wrap ErrConnectionSetupFailed, broken connections
// wrap ErrTransportFault.
func (c *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	c.session.setState(StateConnecting)
	c.Logger.Info("Trying to connect to %s...", c.Address)

	dialer := c.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	conn, _, err := dialer.DialContext(ctx, c.Address, nil)
	if err != nil {
		c.session.setState(StateClosed)
		if ctx.Err() != nil {
			c.Logger.Info("Interrupted before the connection was established")
			return nil
		}
		c.Logger.Error("Error while trying to connect: %v", err)
		return fmt.Errorf("%w: %v", ErrConnectionSetupFailed, err)
	}

	c.writeMu.Lock()
	c.conn = conn
	c.session.setState(StateOpen)
	c.writeMu.Unlock()
	c.Logger.Info("Connection established")

	dispatcher := NewDispatcher(c.session, c.Agent, c.Sink, c, c.Logger)

	c.Send(protocol.PlayerStatusUpdatePayload{IsReady: true, AuthToken: c.AuthToken})

	frames := make(chan []byte)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go c.readPump(conn, frames, readErr, done)

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Detected interrupt, closing connection")
			c.closeGracefully()
			return nil

		case frame := <-frames:
			env, ok := dispatcher.Dispatch(frame)
			if !ok {
				continue
			}
			for _, h := range c.handlers {
				h(c, env)
			}

		case err := <-readErr:
			c.shutdown()
			if isServerClose(err) {
				c.Logger.Info("The server closed the connection")
				return nil
			}
			c.Logger.Error("WebSocket error: %v", err)
			return fmt.Errorf("%w: %v", ErrTransportFault, err)
		}
	}
}

// readPump hands frames over one at a time; the next read starts only after the
// previous frame was accepted by Run.
func (c *Client) readPump(conn *websocket.Conn, frames chan<- []byte, readErr chan<- error, done <-chan struct{}) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			readErr <- err
			return
		}
		select {
		case frames <- data:
		case <-done:
			return
		}
	}
}

func (c *Client) closeGracefully() {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.conn == nil {
		c.session.setState(StateClosed)
		return
	}
	if c.session.State() == StateOpen {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, closeReason)
		if err := c.conn.WriteControl(websocket.CloseMessage, msg, c.writeDeadline()); err != nil {
			c.Logger.Error("Error while closing connection: %v", err)
		}
	}
	c.session.setState(StateClosed)
	_ = c.conn.Close()
}

func (c *Client) writeDeadline() time.Time {
	timeout := c.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	return time.Now().Add(timeout)
}

func (c *Client) shutdown() {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.session.setState(StateClosed)
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// isServerClose reports whether err is a close frame sent by the peer, as
// opposed to the connection dropping without one.
func isServerClose(err error) bool {
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		return ce.Code != websocket.CloseAbnormalClosure
	}
	return false
}
