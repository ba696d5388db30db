package bot

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/bombahead/client/pkg/protocol"
	"github.com/bombahead/client/pkg/types"
)

const (
	DefaultMaxNodes = 2000
	// DangerRadius is how far along a row or column a bomb is assumed to reach.
	DangerRadius    = 2
	dangerCost      = 10
)

var ErrNoPath = errors.New("pathfinding: no path found")

var directions = []protocol.PlayerMove{protocol.MoveUp, protocol.MoveRight, protocol.MoveDown, protocol.MoveLeft}

// pathNode is a node in the A* search.
type pathNode struct {
	Pos    types.Vec2
	G, F   int
	Parent *pathNode
	index  int // for heap
}

// Danger reports whether pos is exploding now or lies in reach of a bomb.
// Walls stop the blast.
func Danger(s protocol.ClassicStatePayload, pos types.Vec2) bool {
	for _, e := range s.Explosions {
		if e == pos {
			return true
		}
	}
	for _, b := range s.Bombs {
		if b.Pos == pos {
			return true
		}
		d := pos.Sub(b.Pos)
		if d.X != 0 && d.Y != 0 {
			continue
		}
		if b.Pos.Manhattan(pos) > DangerRadius {
			continue
		}
		if clearLine(s, b.Pos, pos) {
			return true
		}
	}
	return false
}

func clearLine(s protocol.ClassicStatePayload, from, to types.Vec2) bool {
	step := types.Vec2{X: sign(to.X - from.X), Y: sign(to.Y - from.Y)}
	for p := from.Add(step); p != to; p = p.Add(step) {
		if s.Field.TileAt(p.X, p.Y) == protocol.TileWall {
			return false
		}
	}
	return true
}

// FindPath returns the cells from start to goal inclusive, walking only on
// walkable cells. Cells in a bomb's reach cost extra. The goal itself may be
// occupied by a player.
func FindPath(s protocol.ClassicStatePayload, start, goal types.Vec2, maxNodes int) ([]types.Vec2, error) {
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}
	open := &nodeHeap{{Pos: start, F: start.Manhattan(goal)}}
	heap.Init(open)

	closed := make(map[types.Vec2]bool)
	explored := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		if current.Pos == goal {
			return reconstructPath(current), nil
		}
		if closed[current.Pos] {
			continue
		}
		closed[current.Pos] = true
		explored++
		if explored >= maxNodes {
			return nil, fmt.Errorf("pathfinding: max nodes (%d) reached", maxNodes)
		}

		for _, m := range directions {
			next := current.Pos.Add(m.Delta())
			if closed[next] || !s.Walkable(next) {
				continue
			}
			cost := 1
			if Danger(s, next) {
				cost += dangerCost
			}
			g := current.G + cost
			heap.Push(open, &pathNode{Pos: next, G: g, F: g + next.Manhattan(goal), Parent: current})
		}
	}
	return nil, ErrNoPath
}

// Step returns the move that walks from one cell to an adjacent one.
func Step(from, to types.Vec2) protocol.PlayerMove {
	for _, m := range directions {
		if from.Add(m.Delta()) == to {
			return m
		}
	}
	return protocol.DoNothing
}

// NearestSafe finds the closest walkable cell outside every bomb's reach by
// breadth-first search, and the first move towards it.
func NearestSafe(s protocol.ClassicStatePayload, start types.Vec2) (types.Vec2, protocol.PlayerMove, bool) {
	type item struct {
		pos   types.Vec2
		first protocol.PlayerMove
	}
	seen := map[types.Vec2]bool{start: true}
	queue := []item{{pos: start, first: protocol.DoNothing}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if !Danger(s, it.pos) {
			return it.pos, it.first, true
		}
		for _, m := range directions {
			next := it.pos.Add(m.Delta())
			if seen[next] || !s.Walkable(next) {
				continue
			}
			seen[next] = true
			first := it.first
			if first == protocol.DoNothing {
				first = m
			}
			queue = append(queue, item{pos: next, first: first})
		}
	}
	return types.Vec2{}, protocol.DoNothing, false
}

func reconstructPath(node *pathNode) []types.Vec2 {
	var path []types.Vec2
	for n := node; n != nil; n = n.Parent {
		path = append(path, n.Pos)
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// nodeHeap implements heap.Interface for pathNode priority queue.
type nodeHeap []*pathNode

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].F < h[j].F }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }

func (h *nodeHeap) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}
