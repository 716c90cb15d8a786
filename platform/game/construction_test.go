package game

import "testing"

func TestBuildHouseRequiresFullSet(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice := g.Players[0]
	give(g, alice, 1) // one of two Browns

	if err := g.BuildHouse(alice, 1); err == nil {
		t.Fatal("building without the full set must fail")
	}

	give(g, alice, 3)
	if err := g.BuildHouse(alice, 1); err != nil {
		t.Fatal(err)
	}
	if g.Props[1].Houses != 1 {
		t.Fatalf("houses = %d, want 1", g.Props[1].Houses)
	}
	if alice.Balance != 1500-50 {
		t.Fatalf("balance = %d, want the house cost deducted", alice.Balance)
	}
}

func TestBuildHouseEvenAcrossGroup(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice := g.Players[0]
	give(g, alice, 1)
	give(g, alice, 3)
	g.Props[1].Houses = 1

	if err := g.BuildHouse(alice, 1); err == nil {
		t.Fatal("a second house here outruns the sister property")
	}
	if err := g.BuildHouse(alice, 3); err != nil {
		t.Fatal(err)
	}
	if err := g.BuildHouse(alice, 1); err != nil {
		t.Fatalf("level once more, building continues: %v", err)
	}
}

func TestBuildRejections(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice, bob := g.Players[0], g.Players[1]
	give(g, alice, 1)
	give(g, alice, 3)
	give(g, alice, 5)
	give(g, alice, 12)
	give(g, bob, 39)

	tests := []struct {
		name string
		prep func()
		prop int
	}{
		{"not owned", func() {}, 39},
		{"railroad", func() {}, 5},
		{"utility", func() {}, 12},
		{"mortgaged", func() { g.Props[1].Mortgaged = true }, 1},
		{"hotel already", func() { g.Props[1].Mortgaged = false; g.Props[1].Hotel = true; g.Props[3].Hotel = true }, 1},
		{"broke", func() { g.Props[1].Hotel = false; g.Props[3].Hotel = false; alice.Balance = 10 }, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prep()
			if err := g.BuildHouse(alice, tt.prop); err == nil {
				t.Fatal("expected rejection")
			}
		})
	}
}

func TestFifthBuildRaisesHotel(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice := g.Players[0]
	give(g, alice, 1)
	give(g, alice, 3)
	g.Props[1].Houses = 4
	g.Props[3].Houses = 4

	if err := g.BuildHouse(alice, 1); err != nil {
		t.Fatal(err)
	}
	prop := g.Props[1]
	if !prop.Hotel || prop.Houses != 0 {
		t.Fatalf("houses=%d hotel=%v, want the hotel to replace the houses", prop.Houses, prop.Hotel)
	}
}

func TestMortgageRules(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice, bob := g.Players[0], g.Players[1]
	give(g, alice, 1)
	give(g, bob, 3)

	if err := g.MortgageProperty(alice, 3); err == nil {
		t.Fatal("cannot mortgage another player's deed")
	}

	g.Props[1].Houses = 2
	if err := g.MortgageProperty(alice, 1); err == nil {
		t.Fatal("buildings must go before the mortgage")
	}
	g.Props[1].Houses = 0

	if err := g.MortgageProperty(alice, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.MortgageProperty(alice, 1); err == nil {
		t.Fatal("cannot mortgage twice")
	}
	if err := g.UnmortgageProperty(alice, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.UnmortgageProperty(alice, 1); err == nil {
		t.Fatal("cannot lift a mortgage that is not there")
	}
}

func TestUnmortgageNeedsTheFunds(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice := g.Players[0]
	prop := give(g, alice, 39) // mortgage 200, premium makes 220
	prop.Mortgaged = true
	alice.Balance = 219

	if err := g.UnmortgageProperty(alice, 39); err == nil {
		t.Fatal("one dollar short is still short")
	}
	alice.Balance = 220
	if err := g.UnmortgageProperty(alice, 39); err != nil {
		t.Fatal(err)
	}
	if alice.Balance != 0 {
		t.Fatalf("balance = %d, want 0", alice.Balance)
	}
}

func TestBuyPropertyRejections(t *testing.T) {
	g, _ := newTestGame(t, nil)
	alice, bob := g.Players[0], g.Players[1]

	alice.Position = 0
	if err := g.BuyProperty(alice); err == nil {
		t.Fatal("GO is not for sale")
	}

	give(g, bob, 1)
	alice.Position = 1
	if err := g.BuyProperty(alice); err == nil {
		t.Fatal("an owned deed is not for sale")
	}

	alice.Position = 39
	alice.Balance = 399
	if err := g.BuyProperty(alice); err == nil {
		t.Fatal("insufficient funds must reject the purchase")
	}
	if g.Log.UndoDepth() != 0 {
		t.Fatal("a rejected purchase records nothing")
	}
}
