package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/logging"
	"github.com/sirupsen/logrus"
)

const jailFine = 50

// Controller is the one synchronized entry point the transport layer calls
// into. Every command mutates the whole game state under a single lock; the
// sub-managers are never locked on their own.
type Controller struct {
	mu        sync.Mutex
	Game      *GameState
	hasRolled bool
	log       *logrus.Entry
}

func NewController(g *GameState) *Controller {
	return &Controller{Game: g, log: logging.For("controller")}
}

// HandleCommand dispatches one already-tokenized command for a player. A
// returned error is a rule violation for that player only; game state is
// left untouched by it.
func (c *Controller) HandleCommand(cmd string, playerID int, arg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.Game
	p := g.PlayerByID(playerID)
	if p == nil {
		return fmt.Errorf("unknown player %d", playerID)
	}

	c.log.WithFields(logrus.Fields{"cmd": cmd, "player": playerID}).Debug("command")

	if cmd == "GET_TOP_K" {
		return c.handleTopK(p, arg)
	}
	if g.Over {
		return errors.New("the game is over")
	}
	if p.Status == Bankrupt {
		return errors.New("you are bankrupt")
	}

	// trade settlement and auction participation are the only commands
	// open to players out of turn
	switch cmd {
	case "ACCEPT_TRADE":
		return g.AcceptTrade(p)
	case "REJECT_TRADE":
		return g.RejectTrade(p)
	case "BID":
		amount, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return errors.New("usage: BID <amount>")
		}
		err = g.PlaceBid(p, amount)
		c.afterCommand()
		return err
	case "PASS":
		if g.Auction != nil {
			err := g.PassBid(p)
			c.afterCommand()
			return err
		}
	}

	if g.Turn.Current() != p {
		return errors.New("it is not your turn")
	}
	if g.Auction != nil {
		return errors.New("an auction is in progress")
	}

	var err error
	switch cmd {
	case "ROLL":
		err = c.handleRoll(p)
	case "BUY":
		err = g.BuyProperty(p)
	case "PASS":
		err = c.handleDecline(p)
	case "BUILD":
		err = c.withPropArg(arg, func(id int) error { return g.BuildHouse(p, id) })
	case "MORTGAGE":
		err = c.withPropArg(arg, func(id int) error { return g.MortgageProperty(p, id) })
	case "UNMORTGAGE":
		err = c.withPropArg(arg, func(id int) error { return g.UnmortgageProperty(p, id) })
	case "PAY_JAIL":
		err = c.handlePayJail(p)
	case "USE_JAIL_CARD":
		err = c.handleJailCard(p)
	case "TRADE":
		err = c.handleTrade(p, arg)
	case "END_TURN":
		err = c.handleEndTurn()
	case "UNDO":
		g.UndoLast()
	case "REDO":
		g.RedoLast()
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}

	c.afterCommand()
	return err
}

// afterCommand keeps the table moving: if the acting player went bankrupt
// mid-command the turn advances immediately.
func (c *Controller) afterCommand() {
	g := c.Game
	if !g.Over && g.Turn.Current().Status == Bankrupt {
		c.advanceTurn()
	}
}

func (c *Controller) advanceTurn() {
	next := c.Game.Turn.PassTurn()
	c.hasRolled = false
	c.Game.OfferTile = -1 // an unanswered offer dies with the turn
	c.Game.Broadcast("change-turn", models.TurnUpdate{CurrentPlayer: next.ID, TurnCount: c.Game.Turn.TurnCount()})
}

func (c *Controller) handleRoll(p *Player) error {
	g := c.Game
	if c.hasRolled {
		return errors.New("you have already rolled the dice")
	}
	d1, d2 := g.Dice.Roll()

	if p.Status == InJail {
		return c.handleJailRoll(p, d1, d2)
	}

	doubles := d1 == d2
	if doubles {
		if g.Turn.RegisterDoubles() >= 3 {
			g.Broadcast("info", models.Info{Message: p.Name + " rolled three doubles in a row"})
			g.SendToJail(p)
			c.advanceTurn()
			return nil
		}
	} else {
		c.hasRolled = true
	}

	sum := d1 + d2
	dest := board.Next(p.Position, sum)
	g.Broadcast("roll-update", models.RollUpdate{
		PlayerID: p.ID, Dice1: d1, Dice2: d2, Pos: dest,
		Message: fmt.Sprintf("%s rolled %d", p.Name, sum),
	})
	g.MoveTo(p, dest, true)

	// landing in jail forfeits the extra roll doubles would have granted
	if p.Status != Active {
		c.hasRolled = true
	}
	return nil
}

// handleJailRoll: doubles walk free, the third failed attempt forces the
// fine and a normal move.
func (c *Controller) handleJailRoll(p *Player, d1, d2 int) error {
	g := c.Game
	c.hasRolled = true

	if d1 == d2 {
		g.ReleaseFromJail(p)
		g.MoveTo(p, board.Next(p.Position, d1+d2), true)
		return nil
	}

	p.JailTurns++
	if p.JailTurns < 3 {
		g.Broadcast("info", models.Info{Message: fmt.Sprintf("%s stays in jail (attempt %d)", p.Name, p.JailTurns)})
		return nil
	}
	if !g.charge(p, jailFine, nil) {
		return nil // liquidated over the fine
	}
	g.ReleaseFromJail(p)
	g.MoveTo(p, board.Next(p.Position, d1+d2), true)
	return nil
}

func (c *Controller) handlePayJail(p *Player) error {
	if p.Status != InJail {
		return errors.New("you are not in jail")
	}
	if c.hasRolled {
		return errors.New("too late, you already rolled")
	}
	if p.Balance < jailFine {
		return fmt.Errorf("insufficient funds, the fine is $%d", jailFine)
	}
	c.Game.charge(p, jailFine, nil)
	c.Game.ReleaseFromJail(p)
	return nil
}

func (c *Controller) handleJailCard(p *Player) error {
	if p.Status != InJail {
		return errors.New("you are not in jail")
	}
	if !p.UseJailCard() {
		return errors.New("you hold no get-out-of-jail-free card")
	}
	c.Game.ReleaseFromJail(p)
	return nil
}

// handleDecline turns down the outstanding purchase offer and puts the
// property under the hammer. An unowned tile alone is not enough: the
// offer must still be open, or PASS could re-auction a tile that already
// went unsold.
func (c *Controller) handleDecline(p *Player) error {
	g := c.Game
	if g.OfferTile < 0 || g.OfferTile != p.Position {
		return errors.New("there is no purchase offer to decline")
	}
	prop := g.Props[p.Position]
	if prop == nil || prop.OwnerID != 0 {
		return errors.New("there is nothing to decline here")
	}
	g.OfferTile = -1
	g.StartAuction(prop.ID)
	return nil
}

// handleTrade parses "<targetId> <offerCash> [requestCash] [offerProps] [requestProps]"
// where the property lists are comma-separated tile ids.
func (c *Controller) handleTrade(p *Player, arg string) error {
	fields := strings.Fields(arg)
	if len(fields) < 2 {
		return errors.New("usage: TRADE <targetId> <cash> [requestCash] [offerProps] [requestProps]")
	}
	offer := TradeOffer{From: p.ID}
	var err error
	if offer.To, err = strconv.Atoi(fields[0]); err != nil {
		return errors.New("invalid target id")
	}
	if offer.OfferedCash, err = strconv.Atoi(fields[1]); err != nil {
		return errors.New("invalid cash amount")
	}
	if len(fields) > 2 {
		if offer.RequestedCash, err = strconv.Atoi(fields[2]); err != nil {
			return errors.New("invalid requested cash amount")
		}
	}
	if len(fields) > 3 {
		if offer.OfferedProps, err = parseIDList(fields[3]); err != nil {
			return err
		}
	}
	if len(fields) > 4 {
		if offer.RequestedProps, err = parseIDList(fields[4]); err != nil {
			return err
		}
	}
	return c.Game.ProposeTrade(offer)
}

func (c *Controller) withPropArg(arg string, fn func(int) error) error {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return errors.New("invalid property id")
	}
	return fn(id)
}

func parseIDList(s string) ([]int, error) {
	if s == "" || s == "-" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid property id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *Controller) handleEndTurn() error {
	if !c.hasRolled {
		return errors.New("you must roll the dice first")
	}
	if c.Game.PendingTrade != nil {
		// a dangling offer dies with the turn
		c.Game.PendingTrade = nil
	}
	c.advanceTurn()
	return nil
}

func (c *Controller) handleTopK(p *Player, arg string) error {
	k := 3
	if n, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil && n > 0 {
		k = n
	}
	top := c.Game.TopK(k)
	entries := make([]models.LeaderboardEntry, len(top))
	for i, tp := range top {
		entries[i] = models.LeaderboardEntry{PlayerID: tp.ID, Name: tp.Name, Wealth: c.Game.TotalWealth(tp)}
	}
	c.Game.ToPlayer(p.ID, "leaderboard", entries)
	return nil
}

// GameOver reports the terminal state under the command lock.
func (c *Controller) GameOver() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Game.Over
}

// Snapshot renders the table under the command lock.
func (c *Controller) Snapshot() []models.PlayerSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Game.Snapshot()
}

// HandleDisconnect treats a dropped connection as immediate bankruptcy so
// the game never stalls waiting on an absent player.
func (c *Controller) HandleDisconnect(playerID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.Game
	p := g.PlayerByID(playerID)
	if p == nil || p.Status == Bankrupt || g.Over {
		return
	}
	g.Broadcast("info", models.Info{Message: p.Name + " disconnected"})
	g.ProcessBankruptcy(p, nil)
	if !g.Over && g.Turn.Current().Status == Bankrupt {
		c.advanceTurn()
	}
}
