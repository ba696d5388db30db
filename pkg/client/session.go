package client

import "sync"

// State is the transport lifecycle state.
type State int32

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Session is the per-connection identity and lifecycle state. The id is
// assigned once, by the first welcome message.
type Session struct {
	mu    sync.RWMutex
	id    string
	state State
}

func NewSession() *Session {
	return &Session{state: StateConnecting}
}

// ID returns the server-assigned identity, or "" before the welcome arrives.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// AssignID sets the identity. It reports false and keeps the current value if
// an id was already assigned or id is empty.
func (s *Session) AssignID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id != "" || id == "" {
		return false
	}
	s.id = id
	return true
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
