package game

import "testing"

func TestUndoPropertyPurchase(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice := g.Players[0]

	alice.Position = 1 // priced 60
	if err := g.BuyProperty(alice); err != nil {
		t.Fatal(err)
	}
	if alice.Balance != 1440 {
		t.Fatalf("balance = %d, want 1440", alice.Balance)
	}
	if g.Props[1].OwnerID != alice.ID {
		t.Fatal("purchase did not transfer ownership")
	}

	if !g.UndoLast() {
		t.Fatal("undo should have applied")
	}
	if alice.Balance != 1500 {
		t.Fatalf("balance after undo = %d, want 1500", alice.Balance)
	}
	if g.Props[1].OwnerID != 0 {
		t.Fatal("ownership should revert to the bank")
	}
	if alice.Properties[1] {
		t.Fatal("player list should drop the property")
	}

	if !g.RedoLast() {
		t.Fatal("redo should have applied")
	}
	if alice.Balance != 1440 || g.Props[1].OwnerID != alice.ID {
		t.Fatalf("redo state: balance=%d owner=%d", alice.Balance, g.Props[1].OwnerID)
	}
}

func TestUndoMovementAndGoBonus(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice := g.Players[0]
	alice.Position = 38

	g.MoveTo(alice, 5, true) // wraps past GO onto an unowned station

	if alice.Balance != 1700 {
		t.Fatalf("balance = %d, want the GO bonus", alice.Balance)
	}

	// one movement record plus the GO credit
	g.UndoLast()
	g.UndoLast()
	if alice.Position != 38 {
		t.Fatalf("position = %d, want 38", alice.Position)
	}
	if alice.Balance != 1500 {
		t.Fatalf("balance = %d, want 1500", alice.Balance)
	}
}

func TestUndoRentRestoresBothSides(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice, bob := g.Players[0], g.Players[1]
	give(g, bob, 1)

	alice.Position = 1
	g.ResolveTile(alice, 1)
	if alice.Balance != 1498 || bob.Balance != 1502 {
		t.Fatalf("rent state: alice=%d bob=%d", alice.Balance, bob.Balance)
	}

	// rent is two balance records, payer and payee
	g.UndoLast()
	g.UndoLast()
	if alice.Balance != 1500 || bob.Balance != 1500 {
		t.Fatalf("after undo: alice=%d bob=%d", alice.Balance, bob.Balance)
	}
}

func TestUndoConstructionRestoresHotel(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice := g.Players[0]
	give(g, alice, 1)
	give(g, alice, 3)
	g.Props[1].Houses = 4
	g.Props[3].Houses = 4

	if err := g.BuildHouse(alice, 1); err != nil {
		t.Fatal(err)
	}
	if !g.Props[1].Hotel || g.Props[1].Houses != 0 {
		t.Fatalf("hotel state: houses=%d hotel=%v", g.Props[1].Houses, g.Props[1].Hotel)
	}

	if !g.UndoLast() {
		t.Fatal("undo should have applied")
	}
	if g.Props[1].Hotel || g.Props[1].Houses != 4 {
		t.Fatalf("undo must restore four houses, got houses=%d hotel=%v", g.Props[1].Houses, g.Props[1].Hotel)
	}
	if alice.Balance != 1500 {
		t.Fatalf("balance = %d, want refund of the house cost", alice.Balance)
	}
}

func TestUndoMortgageRoundTrip(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice := g.Players[0]
	prop := give(g, alice, 1) // mortgage value 30

	if err := g.MortgageProperty(alice, 1); err != nil {
		t.Fatal(err)
	}
	if !prop.Mortgaged || alice.Balance != 1530 {
		t.Fatalf("mortgage state: flag=%v balance=%d", prop.Mortgaged, alice.Balance)
	}

	g.UndoLast()
	if prop.Mortgaged || alice.Balance != 1500 {
		t.Fatalf("after undo: flag=%v balance=%d", prop.Mortgaged, alice.Balance)
	}

	g.RedoLast()
	if !prop.Mortgaged || alice.Balance != 1530 {
		t.Fatalf("after redo: flag=%v balance=%d", prop.Mortgaged, alice.Balance)
	}
}

func TestUndoUnmortgagePremium(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice := g.Players[0]
	prop := give(g, alice, 1)
	prop.Mortgaged = true

	if err := g.UnmortgageProperty(alice, 1); err != nil {
		t.Fatal(err)
	}
	if prop.Mortgaged || alice.Balance != 1500-33 {
		t.Fatalf("unmortgage state: flag=%v balance=%d", prop.Mortgaged, alice.Balance)
	}

	g.UndoLast()
	if !prop.Mortgaged || alice.Balance != 1500 {
		t.Fatalf("after undo: flag=%v balance=%d", prop.Mortgaged, alice.Balance)
	}
}

func TestNewActionClearsRedo(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice := g.Players[0]

	g.credit(alice, 100)
	g.UndoLast()
	if g.Log.RedoDepth() != 1 {
		t.Fatalf("redo depth = %d, want 1", g.Log.RedoDepth())
	}

	g.credit(alice, 50)
	if g.Log.RedoDepth() != 0 {
		t.Fatal("a fresh action must invalidate the redo branch")
	}
	if g.RedoLast() {
		t.Fatal("redo after invalidation must be a no-op")
	}
}

func TestUndoEmptyLogIsNoop(t *testing.T) {
	g, em := newTestGame(t, nil)
	alice := g.Players[0]

	if g.UndoLast() {
		t.Fatal("empty undo should report false")
	}
	if g.RedoLast() {
		t.Fatal("empty redo should report false")
	}
	if !em.has("info") {
		t.Fatal("the empty case is announced, not silent")
	}
	if alice.Balance != 1500 || alice.Position != 0 {
		t.Fatal("state must not change")
	}
}
