package render

import (
	"io"
	"os"

	"github.com/bombahead/client/pkg/logger"
	"github.com/bombahead/client/pkg/protocol"
)

const clearScreen = "\033[H\033[2J"

// Terminal redraws the whole screen on every snapshot and logs lobby rosters
// line by line.
type Terminal struct {
	Out    io.Writer
	Logger *logger.Logger
	// NoClear disables the clear-screen escape, mostly for tests and piping.
	NoClear bool
}

func NewTerminal(l *logger.Logger) *Terminal {
	return &Terminal{Out: os.Stdout, Logger: l}
}

func (t *Terminal) RenderState(selfID string, s protocol.ClassicStatePayload) {
	out := Snapshot(s, selfID)
	if !t.NoClear {
		out = clearScreen + out
	}
	_, _ = io.WriteString(t.Out, out)
}

func (t *Terminal) RenderLobby(selfID string, lobby protocol.LobbyUpdatePayload) {
	for _, line := range LobbyLines(lobby, selfID) {
		t.Logger.Info("%s", line)
	}
}
