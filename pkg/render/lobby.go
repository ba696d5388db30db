package render

import (
	"fmt"
	"sort"

	"github.com/bombahead/client/pkg/logger"
	"github.com/bombahead/client/pkg/protocol"
)

// LobbyLines lists every player sorted by id. The entry whose id equals selfID
// is shown as "You".
func LobbyLines(lobby protocol.LobbyUpdatePayload, selfID string) []string {
	ids := make([]string, 0, len(lobby.Players))
	for id := range lobby.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := []string{"Lobby:"}
	for _, id := range ids {
		info := lobby.Players[id]
		if IsSelf(id, selfID) {
			lines = append(lines, fmt.Sprintf("You (...%s):", ShortID(id)))
		} else {
			lines = append(lines, fmt.Sprintf("Player ...%s:", ShortID(id)))
		}

		ready := logger.Red("NOT READY")
		if info.IsReady {
			ready = logger.Green("READY")
		}
		inGame := logger.Green("IS AVAILABLE")
		if info.InGame {
			inGame = logger.Red("IS IN A GAME")
		}
		lines = append(lines,
			fmt.Sprintf("- Score: %d", info.Score),
			"- State:",
			"  - "+ready,
			"  - "+inGame,
		)
	}
	return lines
}

// IsSelf compares identities; an unassigned self id never matches.
func IsSelf(id, selfID string) bool {
	return selfID != "" && id == selfID
}
