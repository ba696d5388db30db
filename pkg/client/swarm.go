package client

import (
	"context"
	"sync"

	"github.com/bombahead/client/pkg/bot"
	"golang.org/x/sync/errgroup"
)

// Swarm runs several independent clients in one process, e.g. to fill a lobby
// with bots. Each client has its own session and connection.
type Swarm struct {
	mu      sync.RWMutex
	clients []*Client
}

func NewSwarm() *Swarm {
	return &Swarm{}
}

// NewClient creates a client within this swarm.
func (s *Swarm) NewClient(address string, agent bot.Agent) *Client {
	c := New(address, agent)
	s.mu.Lock()
	s.clients = append(s.clients, c)
	s.mu.Unlock()
	return c
}

// Clients returns all clients in the swarm.
func (s *Swarm) Clients() []*Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Start runs all clients concurrently. The first client to fail cancels the
// others, which then close their connections normally; its error is returned.
func (s *Swarm) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range s.Clients() {
		g.Go(func() error {
			return c.Run(ctx)
		})
	}
	return g.Wait()
}
