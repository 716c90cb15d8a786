package game

import (
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
)

// Card is a named effect. Effects take the acting player and the aggregate
// explicitly so nothing is captured and every card can be exercised in
// isolation.
type Card struct {
	Description string
	Effect      func(p *Player, g *GameState)
}

// CardDeck holds the two independent rotations. A drawn card goes straight
// to the back, so a deck of N cards cycles with period N.
type CardDeck struct {
	chance []Card
	chest  []Card
}

func NewCardDeck() *CardDeck {
	return &CardDeck{chance: chanceCards(), chest: chestCards()}
}

func (d *CardDeck) DrawChance() Card {
	c := d.chance[0]
	d.chance = append(d.chance[1:], c)
	return c
}

func (d *CardDeck) DrawChest() Card {
	c := d.chest[0]
	d.chest = append(d.chest[1:], c)
	return c
}

// nearest walks the ring forward from pos to the closest of the targets.
func nearest(pos int, targets []int) int {
	best, bestDist := targets[0], board.Size
	for _, t := range targets {
		dist := board.Next(t, -pos)
		if dist < bestDist {
			best, bestDist = t, dist
		}
	}
	return best
}

// repairs charges per building across everything the player owns.
func repairs(p *Player, g *GameState, perHouse, perHotel int) {
	cost := 0
	for id := range p.Properties {
		prop := g.Props[id]
		cost += prop.Houses * perHouse
		if prop.Hotel {
			cost += perHotel
		}
	}
	if cost > 0 {
		g.Broadcast("info", models.Info{Message: fmt.Sprintf("%s pays $%d for repairs", p.Name, cost)})
		g.charge(p, cost, nil)
	}
}

func chanceCards() []Card {
	return []Card{
		{"Advance to GO (Collect $200)", func(p *Player, g *GameState) {
			g.MoveTo(p, board.GoPos, true)
		}},
		{"Advance to Mayfair", func(p *Player, g *GameState) {
			g.MoveTo(p, 39, true)
		}},
		{"Advance to Old Kent Road", func(p *Player, g *GameState) {
			g.MoveTo(p, 1, true)
		}},
		{"Advance to the nearest Railroad", func(p *Player, g *GameState) {
			g.MoveTo(p, nearest(p.Position, board.RailroadPositions), true)
		}},
		{"Advance to the nearest Utility", func(p *Player, g *GameState) {
			g.MoveTo(p, nearest(p.Position, board.UtilityPositions), true)
		}},
		{"Bank pays you dividend of $50", func(p *Player, g *GameState) {
			g.credit(p, 50)
		}},
		{"Get Out of Jail Free", func(p *Player, g *GameState) {
			p.AddJailCard(true)
		}},
		{"Go Back 3 Spaces", func(p *Player, g *GameState) {
			g.MoveTo(p, board.Next(p.Position, -3), false)
		}},
		{"Go to Jail. Do not pass GO", func(p *Player, g *GameState) {
			g.SendToJail(p)
		}},
		{"Make general repairs: $25 per house, $100 per hotel", func(p *Player, g *GameState) {
			repairs(p, g, 25, 100)
		}},
		{"Pay poor tax of $15", func(p *Player, g *GameState) {
			g.charge(p, 15, nil)
		}},
		{"Advance to Whitechapel Road", func(p *Player, g *GameState) {
			g.MoveTo(p, 3, true)
		}},
		{"Your building loan matures. Collect $150", func(p *Player, g *GameState) {
			g.credit(p, 150)
		}},
		{"Elected Chairman of the Board. Pay each player $50", func(p *Player, g *GameState) {
			for _, op := range g.Players {
				if op != p && op.Status != Bankrupt {
					if !g.charge(p, 50, op) {
						return
					}
				}
			}
		}},
		{"You are assessed for street repairs: $40 per house, $115 per hotel", func(p *Player, g *GameState) {
			repairs(p, g, 40, 115)
		}},
	}
}

func chestCards() []Card {
	return []Card{
		{"Advance to GO (Collect $200)", func(p *Player, g *GameState) {
			g.MoveTo(p, board.GoPos, true)
		}},
		{"Bank error in your favor. Collect $200", func(p *Player, g *GameState) {
			g.credit(p, 200)
		}},
		{"Doctor's fee. Pay $50", func(p *Player, g *GameState) {
			g.charge(p, 50, nil)
		}},
		{"From sale of stock you get $50", func(p *Player, g *GameState) {
			g.credit(p, 50)
		}},
		{"Get Out of Jail Free", func(p *Player, g *GameState) {
			p.AddJailCard(false)
		}},
		{"Go to Jail. Do not pass GO", func(p *Player, g *GameState) {
			g.SendToJail(p)
		}},
		{"Holiday fund matures. Collect $100", func(p *Player, g *GameState) {
			g.credit(p, 100)
		}},
		{"Income tax refund. Collect $20", func(p *Player, g *GameState) {
			g.credit(p, 20)
		}},
		{"It is your birthday. Collect $10 from every player", func(p *Player, g *GameState) {
			for _, op := range g.Players {
				if op != p && op.Status != Bankrupt {
					g.charge(op, 10, p)
				}
			}
		}},
		{"Life insurance matures. Collect $100", func(p *Player, g *GameState) {
			g.credit(p, 100)
		}},
		{"Hospital fees. Pay $100", func(p *Player, g *GameState) {
			g.charge(p, 100, nil)
		}},
		{"School fees. Pay $50", func(p *Player, g *GameState) {
			g.charge(p, 50, nil)
		}},
		{"Receive $25 consultancy fee", func(p *Player, g *GameState) {
			g.credit(p, 25)
		}},
		{"Street repairs: $40 per house, $115 per hotel", func(p *Player, g *GameState) {
			repairs(p, g, 40, 115)
		}},
		{"You inherit $100", func(p *Player, g *GameState) {
			g.credit(p, 100)
		}},
		{"You win second prize in a beauty contest. Collect $10", func(p *Player, g *GameState) {
			g.credit(p, 10)
		}},
	}
}
