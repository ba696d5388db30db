package protocol

import "github.com/bombahead/client/pkg/types"

// Tile is a single field cell.
type Tile string

const (
	TileAir  Tile = "AIR"
	TileWall Tile = "WALL"
	TileBox  Tile = "BOX"
)

// TileEmpty is an alias for TileAir.
const TileEmpty = TileAir

// Blocked reports whether a player cannot walk onto the tile.
func (t Tile) Blocked() bool {
	return t == TileWall || t == TileBox
}

// PlayerMove is the single action a bot submits per tick.
type PlayerMove string

const (
	DoNothing PlayerMove = "nothing"
	MoveUp    PlayerMove = "move_up"
	MoveRight PlayerMove = "move_right"
	MoveDown  PlayerMove = "move_down"
	MoveLeft  PlayerMove = "move_left"
	PlaceBomb PlayerMove = "place_bomb"
)

// AllMoves lists every valid move.
var AllMoves = []PlayerMove{DoNothing, MoveUp, MoveRight, MoveDown, MoveLeft, PlaceBomb}

func (m PlayerMove) Valid() bool {
	switch m {
	case DoNothing, MoveUp, MoveRight, MoveDown, MoveLeft, PlaceBomb:
		return true
	}
	return false
}

// Delta returns the grid offset a movement produces. Non-movement moves return
// the zero vector. Y grows downwards.
func (m PlayerMove) Delta() types.Vec2 {
	switch m {
	case MoveUp:
		return types.Vec2{X: 0, Y: -1}
	case MoveDown:
		return types.Vec2{X: 0, Y: 1}
	case MoveLeft:
		return types.Vec2{X: -1, Y: 0}
	case MoveRight:
		return types.Vec2{X: 1, Y: 0}
	}
	return types.Vec2{}
}

type PlayerState struct {
	ID     string     `json:"id"`
	Pos    types.Vec2 `json:"pos"`
	Health int        `json:"health"`
	Score  int        `json:"score"`
}

// FieldState is the row-major field, index = y*Width + x.
type FieldState struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Field  []Tile `json:"field"`
}

type BombState struct {
	Pos  types.Vec2 `json:"pos"`
	Fuse int        `json:"fuse"`
}

// ClassicStatePayload is one authoritative snapshot. Each snapshot replaces the
// previous one entirely.
type ClassicStatePayload struct {
	Players    []PlayerState `json:"players"`
	Field      FieldState    `json:"field"`
	Bombs      []BombState   `json:"bombs"`
	Explosions []types.Vec2  `json:"explosions"`
}

func (f FieldState) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// TileAt returns the tile at (x, y). Positions outside the field, or beyond a
// short tile sequence, read as TileAir.
func (f FieldState) TileAt(x, y int) Tile {
	if !f.InBounds(x, y) {
		return TileAir
	}
	idx := y*f.Width + x
	if idx >= len(f.Field) {
		return TileAir
	}
	return f.Field[idx]
}

// Player returns the player with the given id.
func (s ClassicStatePayload) Player(id string) (PlayerState, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return PlayerState{}, false
}

// BombAt returns the bomb lying on pos, if any.
func (s ClassicStatePayload) BombAt(pos types.Vec2) (BombState, bool) {
	for _, b := range s.Bombs {
		if b.Pos == pos {
			return b, true
		}
	}
	return BombState{}, false
}

// Walkable reports whether pos is inside the field and free of walls, boxes and bombs.
func (s ClassicStatePayload) Walkable(pos types.Vec2) bool {
	if !s.Field.InBounds(pos.X, pos.Y) {
		return false
	}
	if s.Field.TileAt(pos.X, pos.Y).Blocked() {
		return false
	}
	_, hasBomb := s.BombAt(pos)
	return !hasBomb
}
