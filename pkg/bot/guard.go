package bot

import (
	"fmt"

	"github.com/bombahead/client/pkg/protocol"
)

// Guard makes an agent total: a panic or an out-of-range move becomes
// DoNothing, and OnFault (if set) is told why.
type Guard struct {
	Agent   Agent
	OnFault func(err error)
}

func NewGuard(a Agent, onFault func(err error)) *Guard {
	return &Guard{Agent: a, OnFault: onFault}
}

func (g *Guard) NextMove(selfID string, state protocol.ClassicStatePayload) (move protocol.PlayerMove) {
	if g.Agent == nil {
		return protocol.DoNothing
	}
	defer func() {
		if r := recover(); r != nil {
			g.fault(fmt.Errorf("agent panicked: %v", r))
			move = protocol.DoNothing
		}
	}()

	move = g.Agent.NextMove(selfID, state)
	if !move.Valid() {
		g.fault(fmt.Errorf("agent returned invalid move %q", move))
		return protocol.DoNothing
	}
	return move
}

func (g *Guard) fault(err error) {
	if g.OnFault != nil {
		g.OnFault(err)
	}
}
