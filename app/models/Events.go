package models

// Outbound event payloads. The socket layer marshals these to JSON strings
// before emitting, so clients see the same shape regardless of transport.

type RollUpdate struct {
	PlayerID int    `json:"playerId"`
	Dice1    int    `json:"dice1"`
	Dice2    int    `json:"dice2"`
	Pos      int    `json:"currentPosition"`
	Message  string `json:"message"`
}

type TurnUpdate struct {
	CurrentPlayer int `json:"currentPlayer"`
	TurnCount     int `json:"turnCount"`
}

type PlayerStats struct {
	PlayerID   int   `json:"playerId"`
	Balance    int   `json:"balance"`
	Wealth     int   `json:"wealth"`
	Properties []int `json:"properties"`
	InJail     bool  `json:"inJail"`
	Bankrupt   bool  `json:"bankrupt"`
}

type PropertyUpdate struct {
	PropertyID int    `json:"propertyId"`
	Name       string `json:"name"`
	OwnerID    int    `json:"ownerId"`
	Houses     int    `json:"houses"`
	Hotel      bool   `json:"hotel"`
	Mortgaged  bool   `json:"mortgaged"`
}

type CardShown struct {
	PlayerID int    `json:"playerId"`
	Deck     string `json:"deck"`
	Text     string `json:"text"`
}

type PurchaseOffer struct {
	PlayerID   int    `json:"playerId"`
	PropertyID int    `json:"propertyId"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
}

type AuctionUpdate struct {
	PropertyID    int `json:"propertyId"`
	HighBid       int `json:"highBid"`
	HighBidder    int `json:"highBidder"`
	CurrentBidder int `json:"currentBidder"`
}

type AuctionResult struct {
	PropertyID int  `json:"propertyId"`
	WinnerID   int  `json:"winnerId"`
	Price      int  `json:"price"`
	Sold       bool `json:"sold"`
}

type TradeNotice struct {
	From           int   `json:"from"`
	To             int   `json:"to"`
	OfferedCash    int   `json:"offeredCash"`
	RequestedCash  int   `json:"requestedCash"`
	OfferedProps   []int `json:"offeredProps"`
	RequestedProps []int `json:"requestedProps"`
}

type LeaderboardEntry struct {
	PlayerID int    `json:"playerId"`
	Name     string `json:"name"`
	Wealth   int    `json:"wealth"`
}

type GameOver struct {
	WinnerID   int    `json:"winnerId"`
	WinnerName string `json:"winnerName"`
}

type Info struct {
	Message string `json:"message"`
}
