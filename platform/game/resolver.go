package game

import (
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
)

// ResolveTile applies the consequence of p standing on pos. It is pure
// dispatch on tile kind; all money movement funnels through charge/credit
// so insolvency always lands in the bankruptcy handler.
func (g *GameState) ResolveTile(p *Player, pos int) {
	// a new landing supersedes any offer still open from the last one
	g.OfferTile = -1
	tile := g.Board.TileAt(pos)

	switch tile.Kind {
	case board.Go, board.FreeParking, board.Jail:
		// just visiting

	case board.Tax:
		tax := 100
		if tile.ID == 4 {
			tax = 200
		}
		g.Broadcast("info", models.Info{Message: fmt.Sprintf("%s paid $%d %s", p.Name, tax, tile.Name)})
		g.charge(p, tax, nil)

	case board.GoToJail:
		g.SendToJail(p)

	case board.Card:
		g.resolveCard(p, pos)

	case board.PropertyTile:
		g.resolveProperty(p, pos)
	}
}

func (g *GameState) resolveCard(p *Player, pos int) {
	var card Card
	deck := "Community Chest"
	if board.IsChancePos(pos) {
		deck = "Chance"
		card = g.Decks.DrawChance()
	} else {
		card = g.Decks.DrawChest()
	}
	g.Broadcast("show-card", models.CardShown{PlayerID: p.ID, Deck: deck, Text: card.Description})
	card.Effect(p, g)
}

func (g *GameState) resolveProperty(p *Player, pos int) {
	prop := g.Props[pos]

	switch {
	case prop.OwnerID == 0:
		g.OfferTile = prop.ID
		g.ToPlayer(p.ID, "purchase-offer", models.PurchaseOffer{
			PlayerID:   p.ID,
			PropertyID: prop.ID,
			Name:       prop.Name,
			Price:      prop.Price,
		})

	case prop.OwnerID == p.ID:
		// home turf

	case prop.Mortgaged:
		// mortgaged property collects nothing

	default:
		owner := g.PlayerByID(prop.OwnerID)
		rent := g.rentFor(prop, owner)
		g.Broadcast("info", models.Info{Message: fmt.Sprintf("%s owes $%d rent to %s", p.Name, rent, owner.Name)})
		g.charge(p, rent, owner)
	}
}

// rentFor prices a visit on an owned, unmortgaged property.
func (g *GameState) rentFor(prop *Property, owner *Player) int {
	switch prop.Group {
	case "Railroad":
		// 25, 50, 100, 200 for 1-4 stations held
		owned := g.countGroup(owner, "Railroad")
		return 25 << (owned - 1)
	case "Utility":
		// fresh roll, independent of the movement roll
		d1, d2 := g.Dice.Roll()
		if g.countGroup(owner, "Utility") == 1 {
			return (d1 + d2) * 4
		}
		return (d1 + d2) * 10
	default:
		full := g.countGroup(owner, prop.Group) >= board.GroupSize(prop.Group)
		return prop.Rent(full)
	}
}

func (g *GameState) countGroup(p *Player, group string) int {
	count := 0
	for id := range p.Properties {
		if g.Props[id].Group == group {
			count++
		}
	}
	return count
}
