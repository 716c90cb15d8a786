package models

type Game struct {
	Id      string
	Name    string
	Status  string // "open", "in progress", "finished"
	Players int
}

type GameCreateDto struct {
	Name string
}

type VerifyGameDto struct {
	Code string
}

// LobbyPlayer is one seat reservation in a not-yet-started game.
type LobbyPlayer struct {
	User_id  string
	Game_id  string
	Username string
}
