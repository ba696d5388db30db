package bot

import (
	"errors"
	"testing"

	"github.com/bombahead/client/pkg/protocol"
	"github.com/bombahead/client/pkg/types"
)

// 5x3 interior with two pillars in the middle row.
func arenaState(players ...protocol.PlayerState) protocol.ClassicStatePayload {
	W, A := protocol.TileWall, protocol.TileAir
	return protocol.ClassicStatePayload{
		Players: players,
		Field: protocol.FieldState{
			Width:  7,
			Height: 5,
			Field: []protocol.Tile{
				W, W, W, W, W, W, W,
				W, A, A, A, A, A, W,
				W, A, W, A, W, A, W,
				W, A, A, A, A, A, W,
				W, W, W, W, W, W, W,
			},
		},
	}
}

func player(id string, x, y int) protocol.PlayerState {
	return protocol.PlayerState{ID: id, Pos: types.Vec2{X: x, Y: y}, Health: 3}
}

func TestFindPath(t *testing.T) {
	s := arenaState()
	start, goal := types.Vec2{X: 1, Y: 1}, types.Vec2{X: 5, Y: 3}
	path, err := FindPath(s, start, goal, 0)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if len(path) != 7 {
		t.Fatalf("len(path) = %d, want 7: %v", len(path), path)
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Errorf("path endpoints = %v..%v", path[0], path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		if path[i-1].Manhattan(path[i]) != 1 {
			t.Errorf("step %d not adjacent: %v -> %v", i, path[i-1], path[i])
		}
		if !s.Walkable(path[i]) {
			t.Errorf("step %d not walkable: %v", i, path[i])
		}
	}
}

func TestFindPathNoRoute(t *testing.T) {
	s := protocol.ClassicStatePayload{Field: protocol.FieldState{
		Width: 3, Height: 1,
		Field: []protocol.Tile{protocol.TileAir, protocol.TileWall, protocol.TileAir},
	}}
	_, err := FindPath(s, types.Vec2{X: 0, Y: 0}, types.Vec2{X: 2, Y: 0}, 0)
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("err = %v, want ErrNoPath", err)
	}
}

func TestFindPathNodeLimit(t *testing.T) {
	_, err := FindPath(arenaState(), types.Vec2{X: 1, Y: 1}, types.Vec2{X: 5, Y: 3}, 2)
	if err == nil || errors.Is(err, ErrNoPath) {
		t.Errorf("err = %v, want node limit error", err)
	}
}

func TestDanger(t *testing.T) {
	s := arenaState()
	s.Bombs = []protocol.BombState{{Pos: types.Vec2{X: 3, Y: 1}, Fuse: 2}}
	s.Explosions = []types.Vec2{{X: 5, Y: 3}}

	tests := []struct {
		pos  types.Vec2
		want bool
	}{
		{types.Vec2{X: 3, Y: 1}, true},  // on the bomb
		{types.Vec2{X: 1, Y: 1}, true},  // same row, in reach
		{types.Vec2{X: 3, Y: 3}, true},  // same column through open floor
		{types.Vec2{X: 1, Y: 3}, false}, // not aligned
		{types.Vec2{X: 5, Y: 3}, true},  // exploding now
	}
	for _, tt := range tests {
		if got := Danger(s, tt.pos); got != tt.want {
			t.Errorf("Danger(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}

	s.Bombs = []protocol.BombState{{Pos: types.Vec2{X: 2, Y: 1}}}
	if Danger(s, types.Vec2{X: 2, Y: 3}) {
		t.Error("blast passed through a wall")
	}
}

func TestStep(t *testing.T) {
	from := types.Vec2{X: 2, Y: 2}
	tests := map[types.Vec2]protocol.PlayerMove{
		{X: 2, Y: 1}: protocol.MoveUp,
		{X: 3, Y: 2}: protocol.MoveRight,
		{X: 2, Y: 3}: protocol.MoveDown,
		{X: 1, Y: 2}: protocol.MoveLeft,
		{X: 4, Y: 4}: protocol.DoNothing,
	}
	for to, want := range tests {
		if got := Step(from, to); got != want {
			t.Errorf("Step(%v, %v) = %s, want %s", from, to, got, want)
		}
	}
}

func TestHunterBombsAdjacentOpponent(t *testing.T) {
	s := arenaState(player("me", 1, 1), player("them", 2, 1))
	h := &Hunter{}
	if got := h.NextMove("me", s); got != protocol.PlaceBomb {
		t.Errorf("NextMove = %s, want %s", got, protocol.PlaceBomb)
	}
}

func TestHunterWalksTowardsOpponent(t *testing.T) {
	s := arenaState(player("me", 1, 1), player("them", 5, 1))
	h := &Hunter{}
	if got := h.NextMove("me", s); got != protocol.MoveRight {
		t.Errorf("NextMove = %s, want %s", got, protocol.MoveRight)
	}
}

func TestHunterFleesOwnBomb(t *testing.T) {
	s := arenaState(player("me", 1, 1), player("them", 5, 3))
	s.Bombs = []protocol.BombState{{Pos: types.Vec2{X: 1, Y: 1}, Fuse: 3}}
	h := &Hunter{}
	if got := h.NextMove("me", s); got != protocol.MoveRight {
		t.Errorf("NextMove = %s, want %s", got, protocol.MoveRight)
	}
}

func TestHunterIgnoresDeadOpponents(t *testing.T) {
	dead := player("them", 2, 1)
	dead.Health = 0
	s := arenaState(player("me", 1, 1), dead)
	h := &Hunter{}
	if got := h.NextMove("me", s); got != protocol.DoNothing {
		t.Errorf("NextMove = %s, want %s", got, protocol.DoNothing)
	}
	if got := h.NextMove("ghost", s); got != protocol.DoNothing {
		t.Errorf("NextMove for unknown self = %s, want %s", got, protocol.DoNothing)
	}
}
