// Package bot holds the decision agent contract and a few stock agents.
package bot

import (
	"math/rand/v2"

	"github.com/bombahead/client/pkg/protocol"
)

// Agent turns a snapshot into the next move. It is called once per received
// snapshot, on the dispatch goroutine, so a slow agent stalls the connection.
// Implementations keep any cross-tick memory themselves; no history is passed in.
type Agent interface {
	NextMove(selfID string, state protocol.ClassicStatePayload) protocol.PlayerMove
}

// AgentFunc adapts a plain function to Agent.
type AgentFunc func(selfID string, state protocol.ClassicStatePayload) protocol.PlayerMove

func (f AgentFunc) NextMove(selfID string, state protocol.ClassicStatePayload) protocol.PlayerMove {
	return f(selfID, state)
}

// Idle never does anything.
type Idle struct{}

func (Idle) NextMove(string, protocol.ClassicStatePayload) protocol.PlayerMove {
	return protocol.DoNothing
}

// Random picks uniformly among the moves that don't walk into a wall, box or
// bomb. Bomb placement and standing still are always candidates.
type Random struct {
	// Intn defaults to math/rand/v2.IntN. Tests replace it.
	Intn func(n int) int
}

func (r *Random) NextMove(selfID string, state protocol.ClassicStatePayload) protocol.PlayerMove {
	me, ok := state.Player(selfID)
	if !ok {
		return protocol.DoNothing
	}

	candidates := []protocol.PlayerMove{protocol.DoNothing, protocol.PlaceBomb}
	for _, m := range []protocol.PlayerMove{protocol.MoveUp, protocol.MoveRight, protocol.MoveDown, protocol.MoveLeft} {
		if state.Walkable(me.Pos.Add(m.Delta())) {
			candidates = append(candidates, m)
		}
	}

	intn := r.Intn
	if intn == nil {
		intn = rand.IntN
	}
	return candidates[intn(len(candidates))]
}
