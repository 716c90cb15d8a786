package game

import "sort"

// TxLedger records every player-to-player cash transfer (rent, trade legs,
// card transfers, bankruptcy remittance) for reporting. Bank payments are
// not recorded; only money moving between seats.
type TxLedger struct {
	transfers map[int]map[int]int
}

func NewTxLedger() *TxLedger {
	return &TxLedger{transfers: make(map[int]map[int]int)}
}

func (l *TxLedger) Record(from, to, amount int) {
	if amount <= 0 {
		return
	}
	if l.transfers[from] == nil {
		l.transfers[from] = make(map[int]int)
	}
	l.transfers[from][to] += amount
}

// Total is the cumulative amount from has paid to.
func (l *TxLedger) Total(from, to int) int {
	return l.transfers[from][to]
}

func (l *TxLedger) TotalPaid(from int) int {
	sum := 0
	for _, amount := range l.transfers[from] {
		sum += amount
	}
	return sum
}

// TotalWealth is cash plus the sticker value of held properties and their
// buildings. Mortgaged holdings still count at full purchase price.
func (g *GameState) TotalWealth(p *Player) int {
	sum := p.Balance
	for id := range p.Properties {
		prop := g.Props[id]
		sum += prop.Price + prop.Houses*prop.HouseCost
		if prop.Hotel {
			sum += prop.HouseCost
		}
	}
	return sum
}

// TopK returns the k wealthiest non-bankrupt players, richest first.
func (g *GameState) TopK(k int) []*Player {
	active := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Status != Bankrupt {
			active = append(active, p)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		wi, wj := g.TotalWealth(active[i]), g.TotalWealth(active[j])
		if wi != wj {
			return wi > wj
		}
		return active[i].ID < active[j].ID
	})
	if k > len(active) {
		k = len(active)
	}
	return active[:k]
}
