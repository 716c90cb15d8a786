package game

import (
	"github.com/DedS3t/monopoly-engine/platform/board"
)

// Property is the mutable economic state of one ownable tile. OwnerID 0
// means the bank holds it.
type Property struct {
	board.PropertyDef

	OwnerID   int
	Houses    int
	Hotel     bool
	Mortgaged bool
}

// Rent returns what a visitor owes. fullGroup doubles bare-land rent when
// the owner holds the entire color set. Railroads and utilities are priced
// by the resolver, not here.
func (pr *Property) Rent(fullGroup bool) int {
	if pr.Mortgaged || pr.OwnerID == 0 {
		return 0
	}
	level := pr.Houses
	if pr.Hotel {
		level = 5
	}
	rent := pr.Rents[level]
	if level == 0 && fullGroup {
		rent *= 2
	}
	return rent
}

// ReleaseToBank strips all economic state, leaving the property buildable
// from scratch by a future owner.
func (pr *Property) ReleaseToBank() {
	pr.OwnerID = 0
	pr.Houses = 0
	pr.Hotel = false
	pr.Mortgaged = false
}
