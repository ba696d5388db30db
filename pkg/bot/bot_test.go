package bot

import (
	"strings"
	"testing"

	"github.com/bombahead/client/pkg/protocol"
	"github.com/bombahead/client/pkg/types"
)

// 3x3 interior surrounded by walls, player in the middle, box to the right.
func corridorState() protocol.ClassicStatePayload {
	W, A, B := protocol.TileWall, protocol.TileAir, protocol.TileBox
	return protocol.ClassicStatePayload{
		Players: []protocol.PlayerState{{ID: "me", Pos: types.Vec2{X: 2, Y: 2}, Health: 3}},
		Field: protocol.FieldState{
			Width:  5,
			Height: 5,
			Field: []protocol.Tile{
				W, W, W, W, W,
				W, A, W, A, W,
				W, A, A, B, W,
				W, A, A, A, W,
				W, W, W, W, W,
			},
		},
		Bombs: []protocol.BombState{{Pos: types.Vec2{X: 1, Y: 2}, Fuse: 3}},
	}
}

func TestIdle(t *testing.T) {
	if got := (Idle{}).NextMove("me", corridorState()); got != protocol.DoNothing {
		t.Errorf("Idle.NextMove = %q, want nothing", got)
	}
}

func TestAgentFunc(t *testing.T) {
	var gotID string
	a := AgentFunc(func(selfID string, _ protocol.ClassicStatePayload) protocol.PlayerMove {
		gotID = selfID
		return protocol.MoveLeft
	})
	if got := a.NextMove("abc", protocol.ClassicStatePayload{}); got != protocol.MoveLeft {
		t.Errorf("NextMove = %q", got)
	}
	if gotID != "abc" {
		t.Errorf("selfID = %q, want abc", gotID)
	}
}

func TestRandomCandidates(t *testing.T) {
	// up is a wall, right is a box, left is a bomb: only down moves
	seen := map[protocol.PlayerMove]bool{}
	for i := range 3 {
		r := &Random{Intn: func(n int) int {
			if n != 3 {
				t.Fatalf("candidate count = %d, want 3", n)
			}
			return i
		}}
		seen[r.NextMove("me", corridorState())] = true
	}
	for _, want := range []protocol.PlayerMove{protocol.DoNothing, protocol.PlaceBomb, protocol.MoveDown} {
		if !seen[want] {
			t.Errorf("move %q never chosen; saw %v", want, seen)
		}
	}
}

func TestRandomUnknownSelf(t *testing.T) {
	r := &Random{}
	if got := r.NextMove("ghost", corridorState()); got != protocol.DoNothing {
		t.Errorf("NextMove for absent player = %q, want nothing", got)
	}
}

func TestRandomDefaultSource(t *testing.T) {
	r := &Random{}
	for range 50 {
		if m := r.NextMove("me", corridorState()); !m.Valid() {
			t.Fatalf("invalid move %q", m)
		}
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	var faults []error
	g := NewGuard(AgentFunc(func(string, protocol.ClassicStatePayload) protocol.PlayerMove {
		panic("index out of range")
	}), func(err error) { faults = append(faults, err) })

	if got := g.NextMove("me", corridorState()); got != protocol.DoNothing {
		t.Errorf("NextMove = %q, want nothing", got)
	}
	if len(faults) != 1 || !strings.Contains(faults[0].Error(), "panicked") {
		t.Errorf("faults = %v", faults)
	}
}

func TestGuardRejectsInvalidMove(t *testing.T) {
	var faults int
	g := NewGuard(AgentFunc(func(string, protocol.ClassicStatePayload) protocol.PlayerMove {
		return "teleport"
	}), func(error) { faults++ })

	if got := g.NextMove("me", corridorState()); got != protocol.DoNothing {
		t.Errorf("NextMove = %q, want nothing", got)
	}
	if faults != 1 {
		t.Errorf("faults = %d, want 1", faults)
	}
}

func TestGuardPassesValidMove(t *testing.T) {
	g := NewGuard(AgentFunc(func(string, protocol.ClassicStatePayload) protocol.PlayerMove {
		return protocol.PlaceBomb
	}), nil)
	if got := g.NextMove("me", corridorState()); got != protocol.PlaceBomb {
		t.Errorf("NextMove = %q, want place_bomb", got)
	}
	if got := (&Guard{}).NextMove("me", corridorState()); got != protocol.DoNothing {
		t.Errorf("nil agent NextMove = %q", got)
	}
}
