package game

import (
	"errors"
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
)

// BuyProperty sells the tile the player stands on at list price. Validation
// precedes every mutation; success records a single undoable purchase.
func (g *GameState) BuyProperty(p *Player) error {
	prop := g.Props[p.Position]
	if prop == nil {
		return errors.New("nothing to buy here")
	}
	if prop.OwnerID != 0 {
		return errors.New("property already owned")
	}
	if p.Balance < prop.Price {
		return errors.New("insufficient funds")
	}

	p.Balance -= prop.Price
	p.Properties[prop.ID] = true
	prop.OwnerID = p.ID
	if g.OfferTile == prop.ID {
		g.OfferTile = -1
	}
	g.Log.Record(GameAction{Type: PropertyPurchase, PlayerID: p.ID, TargetID: prop.ID})
	g.emitProperty(prop)
	g.emitStats(p)
	g.Broadcast("info", models.Info{Message: fmt.Sprintf("%s bought %s for $%d", p.Name, prop.Name, prop.Price)})
	return nil
}

// BuildHouse adds one house (or the hotel after four houses) on an owned
// property. Requires the full color set, an unmortgaged deed and even
// building across the group.
func (g *GameState) BuildHouse(p *Player, propID int) error {
	prop := g.Props[propID]
	if prop == nil || prop.OwnerID != p.ID {
		return errors.New("you do not own this property")
	}
	if prop.Group == "Railroad" || prop.Group == "Utility" {
		return errors.New("cannot build here")
	}
	if g.countGroup(p, prop.Group) < board.GroupSize(prop.Group) {
		return errors.New("you need the full color set to build")
	}
	if prop.Mortgaged {
		return errors.New("cannot build on a mortgaged property")
	}
	if prop.Hotel {
		return errors.New("already fully developed")
	}
	if !g.buildingBalanced(p, prop) {
		return errors.New("you must build evenly across the group")
	}
	if p.Balance < prop.HouseCost {
		return errors.New("insufficient funds")
	}

	p.Balance -= prop.HouseCost
	if prop.Houses < 4 {
		prop.Houses++
	} else {
		prop.Houses = 0
		prop.Hotel = true
	}
	g.Log.Record(GameAction{Type: Construction, PlayerID: p.ID, TargetID: prop.ID})
	g.emitProperty(prop)
	g.emitStats(p)
	return nil
}

// buildingBalanced enforces the even-building rule: after this build no
// sister property may trail by more than one house.
func (g *GameState) buildingBalanced(p *Player, target *Property) bool {
	after := target.Houses + 1
	if target.Houses == 4 {
		after = 5
	}
	for id := range p.Properties {
		prop := g.Props[id]
		if prop.Group != target.Group || prop.ID == target.ID {
			continue
		}
		level := prop.Houses
		if prop.Hotel {
			level = 5
		}
		if after-level > 1 {
			return false
		}
	}
	return true
}

// MortgageProperty disables rent in exchange for immediate cash.
func (g *GameState) MortgageProperty(p *Player, propID int) error {
	prop := g.Props[propID]
	if prop == nil || prop.OwnerID != p.ID {
		return errors.New("you do not own this property")
	}
	if prop.Mortgaged {
		return errors.New("property is already mortgaged")
	}
	if prop.Houses > 0 || prop.Hotel {
		return errors.New("sell the buildings first")
	}

	old := p.Balance
	prop.Mortgaged = true
	p.Balance += prop.Mortgage
	g.Log.Record(GameAction{Type: Mortgage, PlayerID: p.ID, TargetID: prop.ID, OldValue: old, NewValue: p.Balance, Flag: true})
	g.emitProperty(prop)
	g.emitStats(p)
	return nil
}

// UnmortgageProperty lifts a mortgage at a 10% premium.
func (g *GameState) UnmortgageProperty(p *Player, propID int) error {
	prop := g.Props[propID]
	if prop == nil || prop.OwnerID != p.ID {
		return errors.New("you do not own this property")
	}
	if !prop.Mortgaged {
		return errors.New("property is not mortgaged")
	}
	cost := prop.Mortgage * 11 / 10
	if p.Balance < cost {
		return fmt.Errorf("insufficient funds, need $%d", cost)
	}

	old := p.Balance
	prop.Mortgaged = false
	p.Balance -= cost
	g.Log.Record(GameAction{Type: Mortgage, PlayerID: p.ID, TargetID: prop.ID, OldValue: old, NewValue: p.Balance, Flag: false})
	g.emitProperty(prop)
	g.emitStats(p)
	return nil
}
