// Package render draws snapshots and lobby rosters for a terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bombahead/client/pkg/protocol"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	GlyphSelf      = "🤖"
	GlyphWall      = "🧱"
	GlyphBox       = "📦"
	GlyphBomb      = "💣"
	GlyphExplosion = "💥"
	GlyphEmpty     = "  "

	cellWidth = 2
)

// OtherGlyphs are handed out to opponents in id order.
var OtherGlyphs = []string{"🏃", "🚶", "💃", "🕺"}

var boardStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder())

// PlayerGlyphs assigns each player its glyph. Self is matched by id, the rest
// are sorted by id so icons stay stable across snapshots.
func PlayerGlyphs(players []protocol.PlayerState, selfID string) map[string]string {
	glyphs := make(map[string]string, len(players))
	var others []string
	for _, p := range players {
		if selfID != "" && p.ID == selfID {
			glyphs[p.ID] = GlyphSelf
		} else {
			others = append(others, p.ID)
		}
	}
	sort.Strings(others)
	for i, id := range others {
		glyphs[id] = OtherGlyphs[i%len(OtherGlyphs)]
	}
	return glyphs
}

// Grid lays out the field as one glyph per cell. Later layers win:
// tiles, explosions, bombs, players.
func Grid(s protocol.ClassicStatePayload, selfID string) [][]string {
	f := s.Field
	if f.Width <= 0 || f.Height <= 0 {
		return nil
	}

	grid := make([][]string, f.Height)
	for y := range grid {
		grid[y] = make([]string, f.Width)
		for x := range grid[y] {
			switch f.TileAt(x, y) {
			case protocol.TileWall:
				grid[y][x] = GlyphWall
			case protocol.TileBox:
				grid[y][x] = GlyphBox
			default:
				grid[y][x] = GlyphEmpty
			}
		}
	}

	for _, exp := range s.Explosions {
		if f.InBounds(exp.X, exp.Y) {
			grid[exp.Y][exp.X] = GlyphExplosion
		}
	}
	for _, b := range s.Bombs {
		if f.InBounds(b.Pos.X, b.Pos.Y) {
			grid[b.Pos.Y][b.Pos.X] = GlyphBomb
		}
	}
	glyphs := PlayerGlyphs(s.Players, selfID)
	for _, p := range s.Players {
		if f.InBounds(p.Pos.X, p.Pos.Y) {
			grid[p.Pos.Y][p.Pos.X] = glyphs[p.ID]
		}
	}
	return grid
}

// Board renders the framed field.
func Board(s protocol.ClassicStatePayload, selfID string) string {
	grid := Grid(s, selfID)
	if grid == nil {
		return ""
	}
	rows := make([]string, len(grid))
	for y, row := range grid {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(pad(cell))
		}
		rows[y] = sb.String()
	}
	return boardStyle.Render(strings.Join(rows, "\n"))
}

// Snapshot renders the board followed by the player and bomb tables.
func Snapshot(s protocol.ClassicStatePayload, selfID string) string {
	var sb strings.Builder
	if board := Board(s, selfID); board != "" {
		sb.WriteString(board)
		sb.WriteString("\n")
	}

	glyphs := PlayerGlyphs(s.Players, selfID)
	players := make([]protocol.PlayerState, len(s.Players))
	copy(players, s.Players)
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	sb.WriteString("--- PLAYERS ---\n")
	for _, p := range players {
		fmt.Fprintf(&sb, "%s Player ...%s | Health: %d, Score: %d\n", glyphs[p.ID], ShortID(p.ID), p.Health, p.Score)
	}

	if len(s.Bombs) > 0 {
		sb.WriteString("--- BOMBS ---\n")
		for _, b := range s.Bombs {
			fmt.Fprintf(&sb, "%s at (%d,%d) | Fuse: %d\n", GlyphBomb, b.Pos.X, b.Pos.Y, b.Fuse)
		}
	}
	return sb.String()
}

// ShortID returns the last four characters of id.
func ShortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}

// pad fills a glyph to exactly two terminal columns.
func pad(glyph string) string {
	w := runewidth.StringWidth(glyph)
	if w >= cellWidth {
		return runewidth.Truncate(glyph, cellWidth, "")
	}
	return glyph + strings.Repeat(" ", cellWidth-w)
}
