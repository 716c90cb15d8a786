package game

import (
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/logging"
	"github.com/sirupsen/logrus"
)

const GoReward = 200

// Emitter is the outbound half of the transport contract. The socket layer
// implements it; the engine never sees wire bytes.
type Emitter interface {
	Broadcast(event string, payload interface{})
	ToPlayer(playerID int, event string, payload interface{})
}

// NopEmitter discards everything. Used by tests and before a transport is
// attached.
type NopEmitter struct{}

func (NopEmitter) Broadcast(string, interface{})     {}
func (NopEmitter) ToPlayer(int, string, interface{}) {}

// GameState is the aggregate root. Every manager works against this one
// struct; transient protocol state (auction, pending trade) lives here too
// so there is a single source of truth.
type GameState struct {
	Board   *board.Board
	Players []*Player
	Props   map[int]*Property

	Turn   *TurnManager
	Decks  *CardDeck
	Log    *UndoLog
	Ledger *TxLedger
	Dice   Dice

	Auction      *Auction
	PendingTrade *TradeOffer
	OfferTile    int // tile with an open purchase offer, -1 when none

	Over     bool
	WinnerID int

	emitter Emitter
	log     *logrus.Entry
}

func NewGame(names []string, dice Dice, emitter Emitter) *GameState {
	if emitter == nil {
		emitter = NopEmitter{}
	}
	b := board.Classic()

	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(i+1, name)
	}

	props := make(map[int]*Property, len(b.Defs))
	for id, def := range b.Defs {
		props[id] = &Property{PropertyDef: def}
	}

	return &GameState{
		Board:     b,
		Players:   players,
		Props:     props,
		Turn:      NewTurnManager(players),
		Decks:     NewCardDeck(),
		Log:       NewUndoLog(),
		Ledger:    NewTxLedger(),
		Dice:      dice,
		OfferTile: -1,
		emitter:   emitter,
		log:       logging.For("game"),
	}
}

func (g *GameState) PlayerByID(id int) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PropAt returns the property on a tile, or nil for non-property tiles.
func (g *GameState) PropAt(pos int) *Property {
	return g.Props[pos]
}

func (g *GameState) Broadcast(event string, payload interface{}) {
	g.emitter.Broadcast(event, payload)
}

func (g *GameState) ToPlayer(playerID int, event string, payload interface{}) {
	g.emitter.ToPlayer(playerID, event, payload)
}

// credit pays p from the bank and records the change for undo.
func (g *GameState) credit(p *Player, amount int) {
	old := p.Balance
	p.Balance += amount
	g.Log.Record(GameAction{Type: MoneyChange, PlayerID: p.ID, OldValue: old, NewValue: p.Balance})
	g.emitStats(p)
}

// charge takes amount from p, paying creditor (nil means the bank). A
// player who cannot cover the full amount never goes negative: whatever
// cash remains goes to the creditor and the player is liquidated. Returns
// false when bankruptcy fired.
func (g *GameState) charge(p *Player, amount int, creditor *Player) bool {
	if p.Balance < amount {
		g.ProcessBankruptcy(p, creditor)
		return false
	}
	old := p.Balance
	p.Balance -= amount
	g.Log.Record(GameAction{Type: MoneyChange, PlayerID: p.ID, OldValue: old, NewValue: p.Balance})
	if creditor != nil {
		cold := creditor.Balance
		creditor.Balance += amount
		g.Log.Record(GameAction{Type: MoneyChange, PlayerID: creditor.ID, OldValue: cold, NewValue: creditor.Balance})
		g.Ledger.Record(p.ID, creditor.ID, amount)
		g.emitStats(creditor)
	}
	g.emitStats(p)
	return true
}

// MoveTo places p on dest, paying the GO bonus only when the move wraps
// past tile 0, then resolves the destination tile. Card effects that say
// "advance to X" funnel through here, so a card landing on another
// actionable tile triggers a second resolution pass.
func (g *GameState) MoveTo(p *Player, dest int, collectGo bool) {
	old := p.Position
	p.Position = dest
	g.Log.Record(GameAction{Type: Movement, PlayerID: p.ID, OldValue: old, NewValue: dest})
	if collectGo && dest < old {
		g.credit(p, GoReward)
		g.Broadcast("info", models.Info{Message: fmt.Sprintf("%s passed GO and collected $%d", p.Name, GoReward)})
	}
	g.Broadcast("roll-update", models.RollUpdate{PlayerID: p.ID, Pos: dest})
	g.ResolveTile(p, dest)
}

// SendToJail is the direct route: no movement record, no pass-GO money.
func (g *GameState) SendToJail(p *Player) {
	p.Status = InJail
	p.Position = board.JailPos
	p.JailTurns = 0
	g.Broadcast("roll-update", models.RollUpdate{PlayerID: p.ID, Pos: board.JailPos, Message: "GO TO JAIL!"})
	g.log.WithField("player", p.Name).Info("sent to jail")
}

func (g *GameState) ReleaseFromJail(p *Player) {
	p.Status = Active
	p.JailTurns = 0
	g.Broadcast("info", models.Info{Message: p.Name + " is out of jail"})
}

// CheckGameOver flips the game into its terminal state once at most one
// non-bankrupt player remains.
func (g *GameState) CheckGameOver() {
	if g.Over {
		return
	}
	count := 0
	var winner *Player
	for _, p := range g.Players {
		if p.Status != Bankrupt {
			count++
			winner = p
		}
	}
	if count <= 1 {
		g.Over = true
		if winner != nil {
			g.WinnerID = winner.ID
			g.Broadcast("game-over", models.GameOver{WinnerID: winner.ID, WinnerName: winner.Name})
			g.log.WithField("winner", winner.Name).Info("game over")
		}
	}
}

func (g *GameState) emitStats(p *Player) {
	g.Broadcast("player-stats", models.PlayerStats{
		PlayerID:   p.ID,
		Balance:    p.Balance,
		Wealth:     g.TotalWealth(p),
		Properties: p.OwnedIDs(),
		InJail:     p.Status == InJail,
		Bankrupt:   p.Status == Bankrupt,
	})
}

func (g *GameState) emitProperty(pr *Property) {
	g.Broadcast("property-update", models.PropertyUpdate{
		PropertyID: pr.ID,
		Name:       pr.Name,
		OwnerID:    pr.OwnerID,
		Houses:     pr.Houses,
		Hotel:      pr.Hotel,
		Mortgaged:  pr.Mortgaged,
	})
}

// Snapshot renders every seat for clients joining the table.
func (g *GameState) Snapshot() []models.PlayerSnapshot {
	out := make([]models.PlayerSnapshot, len(g.Players))
	for i, p := range g.Players {
		out[i] = models.PlayerSnapshot{
			PlayerID:   p.ID,
			Name:       p.Name,
			Balance:    p.Balance,
			Pos:        p.Position,
			InJail:     p.Status == InJail,
			Bankrupt:   p.Status == Bankrupt,
			Properties: p.OwnedIDs(),
		}
	}
	return out
}
