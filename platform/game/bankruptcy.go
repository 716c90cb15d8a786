package game

import "github.com/DedS3t/monopoly-engine/app/models"

// ProcessBankruptcy liquidates a player who cannot satisfy an obligation.
// Remaining cash goes to the creditor (nil means the bank), the balance is
// zeroed and every holding returns to the bank stripped of buildings and
// mortgages. Liquidation is terminal and not undoable.
func (g *GameState) ProcessBankruptcy(p *Player, creditor *Player) {
	if p.Status == Bankrupt {
		return
	}
	p.Status = Bankrupt
	g.log.WithField("player", p.Name).Warn("bankrupt")

	if creditor != nil && p.Balance > 0 {
		creditor.Balance += p.Balance
		g.Ledger.Record(p.ID, creditor.ID, p.Balance)
		g.emitStats(creditor)
	}
	p.Balance = 0

	for id := range p.Properties {
		prop := g.Props[id]
		prop.ReleaseToBank()
		delete(p.Properties, id)
		g.emitProperty(prop)
	}

	// a bankrupt seat cannot keep a trade or an auction slot alive
	if g.PendingTrade != nil && (g.PendingTrade.From == p.ID || g.PendingTrade.To == p.ID) {
		g.PendingTrade = nil
	}
	if g.Auction != nil && g.Auction.isBidder(p) {
		g.Auction.remove(p)
		if len(g.Auction.bidders) <= 1 {
			g.finishAuction()
		}
	}

	g.emitStats(p)
	g.Broadcast("info", models.Info{Message: p.Name + " is bankrupt"})
	g.CheckGameOver()
}
