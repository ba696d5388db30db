package bot

import (
	"github.com/bombahead/client/pkg/protocol"
)

// Hunter walks towards the closest opponent and drops a bomb next to it. When
// standing in a bomb's reach it runs for the nearest safe cell first.
type Hunter struct {
	// MaxNodes bounds each path search; zero means DefaultMaxNodes.
	MaxNodes int
}

func (h *Hunter) NextMove(selfID string, state protocol.ClassicStatePayload) protocol.PlayerMove {
	me, ok := state.Player(selfID)
	if !ok {
		return protocol.DoNothing
	}

	if Danger(state, me.Pos) {
		_, move, _ := NearestSafe(state, me.Pos)
		return move
	}

	target, ok := closestOpponent(state, me)
	if !ok {
		return protocol.DoNothing
	}
	if me.Pos.Manhattan(target.Pos) <= 1 {
		return protocol.PlaceBomb
	}

	path, err := FindPath(state, me.Pos, target.Pos, h.MaxNodes)
	if err != nil || len(path) < 2 {
		return protocol.DoNothing
	}
	next := path[1]
	// never step into a blast on purpose
	if Danger(state, next) {
		return protocol.DoNothing
	}
	return Step(me.Pos, next)
}

func closestOpponent(state protocol.ClassicStatePayload, me protocol.PlayerState) (protocol.PlayerState, bool) {
	var best protocol.PlayerState
	found := false
	for _, p := range state.Players {
		if p.ID == me.ID || p.Health <= 0 {
			continue
		}
		if !found || me.Pos.Manhattan(p.Pos) < me.Pos.Manhattan(best.Pos) ||
			(me.Pos.Manhattan(p.Pos) == me.Pos.Manhattan(best.Pos) && p.ID < best.ID) {
			best, found = p, true
		}
	}
	return best, found
}
