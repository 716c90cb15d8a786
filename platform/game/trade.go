package game

import (
	"errors"
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// TradeOffer is the single pending negotiation. At most one exists
// system-wide; a new proposal is rejected until the current one settles.
type TradeOffer struct {
	From           int
	To             int
	OfferedCash    int
	RequestedCash  int
	OfferedProps   []int
	RequestedProps []int
}

// ProposeTrade validates the whole offer before storing anything. It never
// partially applies.
func (g *GameState) ProposeTrade(offer TradeOffer) error {
	if g.PendingTrade != nil {
		return errors.New("another trade is already pending")
	}
	sender := g.PlayerByID(offer.From)
	receiver := g.PlayerByID(offer.To)
	if receiver == nil || receiver.Status == Bankrupt {
		return errors.New("no such trade partner")
	}
	if sender.ID == receiver.ID {
		return errors.New("cannot trade with yourself")
	}
	if offer.OfferedCash < 0 || offer.RequestedCash < 0 {
		return errors.New("cash amounts must not be negative")
	}
	if sender.Balance < offer.OfferedCash {
		return errors.New("insufficient funds for offered cash")
	}
	for _, id := range offer.OfferedProps {
		prop := g.Props[id]
		if prop == nil || prop.OwnerID != sender.ID {
			return fmt.Errorf("you do not own property %d", id)
		}
		if prop.Mortgaged {
			return errors.New("cannot trade mortgaged properties")
		}
	}
	for _, id := range offer.RequestedProps {
		prop := g.Props[id]
		if prop == nil || prop.OwnerID != receiver.ID {
			return fmt.Errorf("partner does not own property %d", id)
		}
		if prop.Mortgaged {
			return errors.New("cannot request mortgaged properties")
		}
	}

	g.PendingTrade = &offer
	g.ToPlayer(receiver.ID, "trade-offer", models.TradeNotice{
		From:           offer.From,
		To:             offer.To,
		OfferedCash:    offer.OfferedCash,
		RequestedCash:  offer.RequestedCash,
		OfferedProps:   offer.OfferedProps,
		RequestedProps: offer.RequestedProps,
	})
	g.log.WithField("from", sender.Name).WithField("to", receiver.Name).Info("trade proposed")
	return nil
}

// AcceptTrade settles the pending offer atomically: both cash legs, both
// property lists, ledger entries and one undo record. Validation runs
// entirely before the first mutation.
func (g *GameState) AcceptTrade(p *Player) error {
	offer := g.PendingTrade
	if offer == nil {
		return errors.New("no trade pending")
	}
	if offer.To != p.ID {
		return errors.New("this trade is not addressed to you")
	}
	sender := g.PlayerByID(offer.From)
	receiver := p
	if sender.Status == Bankrupt {
		g.PendingTrade = nil
		return errors.New("trade partner is bankrupt")
	}
	if sender.Balance < offer.OfferedCash {
		return errors.New("sender can no longer cover the offered cash")
	}
	if receiver.Balance < offer.RequestedCash {
		return errors.New("insufficient funds for requested cash")
	}
	for _, id := range offer.OfferedProps {
		if g.Props[id].OwnerID != sender.ID {
			return errors.New("offered property changed hands")
		}
	}
	for _, id := range offer.RequestedProps {
		if g.Props[id].OwnerID != receiver.ID {
			return errors.New("requested property changed hands")
		}
	}

	g.applyTrade(sender, receiver, offer.OfferedCash, offer.RequestedCash, offer.OfferedProps, offer.RequestedProps)
	g.Ledger.Record(sender.ID, receiver.ID, offer.OfferedCash)
	g.Ledger.Record(receiver.ID, sender.ID, offer.RequestedCash)
	g.Log.Record(GameAction{
		Type:           Trade,
		PlayerID:       sender.ID,
		OtherID:        receiver.ID,
		OfferedCash:    offer.OfferedCash,
		RequestedCash:  offer.RequestedCash,
		OfferedProps:   offer.OfferedProps,
		RequestedProps: offer.RequestedProps,
	})
	g.PendingTrade = nil
	g.Broadcast("trade-result", models.Info{Message: fmt.Sprintf("Trade between %s and %s completed", sender.Name, receiver.Name)})
	return nil
}

// RejectTrade clears the pending slot and tells the sender.
func (g *GameState) RejectTrade(p *Player) error {
	offer := g.PendingTrade
	if offer == nil {
		return errors.New("no trade pending")
	}
	if offer.To != p.ID {
		return errors.New("this trade is not addressed to you")
	}
	g.PendingTrade = nil
	g.ToPlayer(offer.From, "trade-result", models.Info{Message: p.Name + " rejected your trade"})
	g.log.WithField("by", p.Name).Info("trade rejected")
	return nil
}
