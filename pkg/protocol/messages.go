package protocol

type GameInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WelcomePayload assigns the client its identity.
type WelcomePayload struct {
	ClientID     string     `json:"clientId"`
	CurrentGames []GameInfo `json:"currentGames"`
}

// BackToLobbyPayload carries no fields; the server sends it when a game ends.
type BackToLobbyPayload struct{}

type PlayerInfo struct {
	InGame  bool `json:"inGame"`
	IsReady bool `json:"isReady"`
	Score   int  `json:"score"`
}

// LobbyUpdatePayload maps player ids to their lobby status.
type LobbyUpdatePayload struct {
	Players map[string]PlayerInfo `json:"players"`
}

type PlayerStatusUpdatePayload struct {
	IsReady   bool   `json:"isReady"`
	AuthToken string `json:"authToken"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type ClassicInputPayload struct {
	Move PlayerMove `json:"move"`
}

type GameStartPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GameID      string `json:"gameId"`
}

func (WelcomePayload) MessageType() MessageType            { return Welcome }
func (BackToLobbyPayload) MessageType() MessageType        { return BackToLobby }
func (LobbyUpdatePayload) MessageType() MessageType        { return UpdateLobby }
func (PlayerStatusUpdatePayload) MessageType() MessageType { return PlayerStatusUpdate }
func (ErrorPayload) MessageType() MessageType              { return Error }
func (ClassicInputPayload) MessageType() MessageType       { return ClassicInput }
func (ClassicStatePayload) MessageType() MessageType       { return ClassicState }
func (GameStartPayload) MessageType() MessageType          { return GameStart }

func (WelcomePayload) isPayload()            {}
func (BackToLobbyPayload) isPayload()        {}
func (LobbyUpdatePayload) isPayload()        {}
func (PlayerStatusUpdatePayload) isPayload() {}
func (ErrorPayload) isPayload()              {}
func (ClassicInputPayload) isPayload()       {}
func (ClassicStatePayload) isPayload()       {}
func (GameStartPayload) isPayload()          {}
