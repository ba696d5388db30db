package client

import (
	"context"
	"errors"
	"testing"

	"github.com/bombahead/client/pkg/bot"
	"github.com/bombahead/client/pkg/logger"
	"github.com/bombahead/client/pkg/protocol"
)

func TestSwarmRunsIndependentSessions(t *testing.T) {
	fs := newFakeServer(t)
	s := NewSwarm()
	for range 2 {
		c := s.NewClient(fs.wsURL(), bot.Idle{})
		c.Logger = logger.Discard()
	}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Start(ctx) }()

	first := fs.accept(t)
	second := fs.accept(t)
	readPayload(t, first)
	readPayload(t, second)

	writePayload(t, first, protocol.WelcomePayload{ClientID: "one"})
	writePayload(t, second, protocol.WelcomePayload{ClientID: "two"})
	// a snapshot round trip on each proves both welcomes were handled
	writePayload(t, first, snapshot())
	writePayload(t, second, snapshot())
	readPayload(t, first)
	readPayload(t, second)

	ids := map[string]bool{}
	for _, c := range s.Clients() {
		ids[c.ID()] = true
	}
	if !ids["one"] || !ids["two"] {
		t.Errorf("session ids = %v, want one and two", ids)
	}

	cancel()
	if err := waitRun(t, errc); err != nil {
		t.Errorf("Start = %v, want nil", err)
	}
}

func TestSwarmFailureStopsOthers(t *testing.T) {
	fs := newFakeServer(t)
	s := NewSwarm()
	good := s.NewClient(fs.wsURL(), bot.Idle{})
	good.Logger = logger.Discard()
	bad := s.NewClient("::not a url::", bot.Idle{})
	bad.Logger = logger.Discard()

	errc := make(chan error, 1)
	go func() { errc <- s.Start(context.Background()) }()

	err := waitRun(t, errc)
	if !errors.Is(err, ErrConnectionSetupFailed) {
		t.Errorf("Start = %v, want ErrConnectionSetupFailed", err)
	}
	if good.State() != StateClosed {
		t.Errorf("healthy client state = %s, want closed", good.State())
	}
}
