package game

import (
	"errors"
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
)

const auctionFloor = 10

// Auction is the bidding sub-protocol for a declined property. Bidding
// rotates through the active bidders in original join order; a removed
// bidder never re-enters.
type Auction struct {
	PropertyID int
	bidders    []*Player
	HighBid    int
	HighBidder *Player
	idx        int
}

// StartAuction opens bidding on prop for every non-bankrupt player.
func (g *GameState) StartAuction(propID int) {
	prop := g.Props[propID]
	a := &Auction{PropertyID: propID, HighBid: auctionFloor}
	for _, p := range g.Players {
		if p.Status != Bankrupt {
			a.bidders = append(a.bidders, p)
		}
	}
	g.Auction = a
	g.Broadcast("auction-start", models.AuctionUpdate{
		PropertyID:    propID,
		HighBid:       a.HighBid,
		CurrentBidder: a.CurrentBidder().ID,
	})
	g.log.WithField("property", prop.Name).Info("auction started")
}

func (a *Auction) CurrentBidder() *Player {
	if len(a.bidders) == 0 {
		return nil
	}
	return a.bidders[a.idx]
}

func (a *Auction) isBidder(p *Player) bool {
	for _, b := range a.bidders {
		if b == p {
			return true
		}
	}
	return false
}

func (a *Auction) remove(p *Player) {
	for i, b := range a.bidders {
		if b == p {
			a.bidders = append(a.bidders[:i], a.bidders[i+1:]...)
			if i < a.idx {
				a.idx--
			}
			if len(a.bidders) > 0 {
				a.idx %= len(a.bidders)
			} else {
				a.idx = 0
			}
			return
		}
	}
}

// PlaceBid accepts a strictly higher bid from the bidder in turn. A bid
// the player cannot cover is not merely rejected: it forces bankruptcy and
// removal from the auction.
func (g *GameState) PlaceBid(p *Player, amount int) error {
	a := g.Auction
	if a == nil {
		return errors.New("no auction in progress")
	}
	if a.CurrentBidder() != p {
		return errors.New("not your turn to bid")
	}
	if amount <= a.HighBid {
		return fmt.Errorf("bid must exceed $%d", a.HighBid)
	}
	if p.Balance < amount {
		// resource exhaustion, not a plain rejection: the bankruptcy
		// handler also removes the bidder and may settle the auction
		g.Broadcast("info", models.Info{Message: p.Name + " bid beyond their means and is out"})
		g.ProcessBankruptcy(p, nil)
		return nil
	}

	a.HighBid = amount
	a.HighBidder = p
	a.idx = (a.idx + 1) % len(a.bidders)
	g.Broadcast("auction-update", models.AuctionUpdate{
		PropertyID:    a.PropertyID,
		HighBid:       a.HighBid,
		HighBidder:    p.ID,
		CurrentBidder: a.CurrentBidder().ID,
	})
	return nil
}

// PassBid removes p from the active-bidder set. The auction finishes when
// at most one bidder remains.
func (g *GameState) PassBid(p *Player) error {
	a := g.Auction
	if a == nil {
		return errors.New("no auction in progress")
	}
	if !a.isBidder(p) {
		return errors.New("you are not part of this auction")
	}
	a.remove(p)
	if len(a.bidders) <= 1 {
		g.finishAuction()
		return nil
	}
	g.Broadcast("auction-update", models.AuctionUpdate{
		PropertyID:    a.PropertyID,
		HighBid:       a.HighBid,
		HighBidder:    highBidderID(a),
		CurrentBidder: a.CurrentBidder().ID,
	})
	return nil
}

func highBidderID(a *Auction) int {
	if a.HighBidder == nil {
		return 0
	}
	return a.HighBidder.ID
}

// finishAuction settles the sale. The winner pays exactly their last bid;
// with no bids the property dissolves back to the bank unowned.
func (g *GameState) finishAuction() {
	a := g.Auction
	g.Auction = nil
	prop := g.Props[a.PropertyID]

	winner := a.HighBidder
	if winner == nil || winner.Status == Bankrupt {
		g.Broadcast("auction-end", models.AuctionResult{PropertyID: a.PropertyID, Sold: false})
		g.log.WithField("property", prop.Name).Info("auction dissolved with no sale")
		return
	}

	winner.Balance -= a.HighBid
	winner.Properties[prop.ID] = true
	prop.OwnerID = winner.ID
	g.Broadcast("auction-end", models.AuctionResult{
		PropertyID: a.PropertyID,
		WinnerID:   winner.ID,
		Price:      a.HighBid,
		Sold:       true,
	})
	g.emitProperty(prop)
	g.emitStats(winner)
	g.log.WithFields(map[string]interface{}{"property": prop.Name, "winner": winner.Name, "price": a.HighBid}).Info("auction won")
}
