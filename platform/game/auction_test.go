package game

import (
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
)

func TestAuctionBidAndWin(t *testing.T) {
	g, em := newTestGame(t, nil)
	alice, bob, carol, dave := g.Players[0], g.Players[1], g.Players[2], g.Players[3]

	g.StartAuction(1)
	a := g.Auction
	if a.HighBid != auctionFloor {
		t.Fatalf("opening bid = %d, want floor %d", a.HighBid, auctionFloor)
	}
	if a.CurrentBidder() != alice {
		t.Fatalf("opening bidder = %s, want Alice", a.CurrentBidder().Name)
	}

	if err := g.PlaceBid(alice, 15); err != nil {
		t.Fatal(err)
	}
	if a.HighBid != 15 || a.HighBidder != alice {
		t.Fatalf("after bid: high = %d by %v", a.HighBid, a.HighBidder)
	}
	if a.CurrentBidder() != bob {
		t.Fatalf("pointer did not advance, current = %s", a.CurrentBidder().Name)
	}

	for _, p := range []*Player{bob, carol, dave} {
		if err := g.PassBid(p); err != nil {
			t.Fatal(err)
		}
	}

	if g.Auction != nil {
		t.Fatal("auction should have settled")
	}
	if alice.Balance != 1500-15 {
		t.Fatalf("winner balance = %d, want payment of exactly 15", alice.Balance)
	}
	if g.Props[1].OwnerID != alice.ID {
		t.Fatalf("owner = %d, want %d", g.Props[1].OwnerID, alice.ID)
	}
	ev, _ := em.last("auction-end")
	res := ev.Payload.(models.AuctionResult)
	if !res.Sold || res.WinnerID != alice.ID || res.Price != 15 {
		t.Fatalf("result = %+v", res)
	}
}

func TestAuctionAllPassUnsold(t *testing.T) {
	g, em := newTestGame(t, nil)

	g.StartAuction(1)
	for _, p := range g.Players {
		if g.Auction == nil {
			break
		}
		if err := g.PassBid(p); err != nil {
			t.Fatal(err)
		}
	}

	if g.Auction != nil {
		t.Fatal("auction should have dissolved")
	}
	if g.Props[1].OwnerID != 0 {
		t.Fatalf("owner = %d, want bank", g.Props[1].OwnerID)
	}
	ev, ok := em.last("auction-end")
	if !ok {
		t.Fatal("expected an auction-end event")
	}
	if res := ev.Payload.(models.AuctionResult); res.Sold {
		t.Fatal("property must remain unsold with no bids")
	}
	checkInvariants(t, g)
}

func TestAuctionBidErrors(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice, bob := g.Players[0], g.Players[1]

	if err := g.PlaceBid(alice, 20); err == nil {
		t.Fatal("bid with no auction must fail")
	}

	g.StartAuction(1)
	if err := g.PlaceBid(bob, 20); err == nil {
		t.Fatal("out-of-rotation bid must fail")
	}
	if err := g.PlaceBid(alice, auctionFloor); err == nil {
		t.Fatal("bid equal to the high bid must fail")
	}
	if err := g.PlaceBid(alice, 5); err == nil {
		t.Fatal("bid below the high bid must fail")
	}
}

func TestAuctionOverbidForcesBankruptcy(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice, bob, carol, dave := g.Players[0], g.Players[1], g.Players[2], g.Players[3]
	alice.Balance = 50

	g.StartAuction(1)
	if err := g.PlaceBid(alice, 200); err != nil {
		t.Fatal(err)
	}
	if alice.Status != Bankrupt {
		t.Fatalf("status = %v, want Bankrupt", alice.Status)
	}
	a := g.Auction
	if a == nil {
		t.Fatal("auction should survive with three bidders left")
	}
	if a.isBidder(alice) {
		t.Fatal("bankrupt player must leave the auction")
	}
	if a.CurrentBidder() != bob {
		t.Fatalf("current = %s, want Bob", a.CurrentBidder().Name)
	}

	if err := g.PlaceBid(bob, 15); err != nil {
		t.Fatal(err)
	}
	if err := g.PassBid(carol); err != nil {
		t.Fatal(err)
	}
	if err := g.PassBid(dave); err != nil {
		t.Fatal(err)
	}
	if g.Props[1].OwnerID != bob.ID {
		t.Fatalf("owner = %d, want Bob", g.Props[1].OwnerID)
	}
	checkInvariants(t, g)
}

func TestAuctionLastHighBidderWinsAfterOthersLeave(t *testing.T) {
	g, _ := newTestGame(t, nil, "Alice", "Bob")
	alice, bob := g.Players[0], g.Players[1]

	g.StartAuction(3)
	if err := g.PlaceBid(alice, 30); err != nil {
		t.Fatal(err)
	}
	if err := g.PassBid(bob); err != nil {
		t.Fatal(err)
	}

	if g.Auction != nil {
		t.Fatal("auction should settle once one bidder remains")
	}
	if g.Props[3].OwnerID != alice.ID || alice.Balance != 1500-30 {
		t.Fatalf("owner=%d balance=%d", g.Props[3].OwnerID, alice.Balance)
	}
}

func TestAuctionPassByOutsiderRejected(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice := g.Players[0]

	g.StartAuction(1)
	if err := g.PassBid(alice); err != nil {
		t.Fatal(err)
	}
	if err := g.PassBid(alice); err == nil {
		t.Fatal("a player who already passed must not pass again")
	}
}

func TestAuctionNotUndoable(t *testing.T) {
	g, _ := newTestGame(t, nil, "Alice", "Bob")
	alice, bob := g.Players[0], g.Players[1]

	g.StartAuction(1)
	if err := g.PlaceBid(alice, 25); err != nil {
		t.Fatal(err)
	}
	if err := g.PassBid(bob); err != nil {
		t.Fatal(err)
	}

	if g.Log.UndoDepth() != 0 {
		t.Fatalf("undo depth = %d, auction wins must leave no undo record", g.Log.UndoDepth())
	}
	if g.UndoLast() {
		t.Fatal("nothing should undo after an auction")
	}
	if g.Props[1].OwnerID != alice.ID {
		t.Fatal("auction result must stand")
	}
}
