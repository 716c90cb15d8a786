package models

// PlayerSnapshot is the wire form of one seat, sent on game start and on
// demand so late clients can render the table.
type PlayerSnapshot struct {
	PlayerID   int    `json:"playerId"`
	Name       string `json:"name"`
	Balance    int    `json:"balance"`
	Pos        int    `json:"currentPosition"`
	InJail     bool   `json:"inJail"`
	Bankrupt   bool   `json:"bankrupt"`
	Properties []int  `json:"properties"`
}
