package game

type Status int

const (
	Active Status = iota
	InJail
	Bankrupt
)

const StartingBalance = 1500

// Player is one seat's mutable account. Everything here is guarded by the
// controller lock; nothing outside the game package mutates it.
type Player struct {
	ID       int
	Name     string
	Balance  int
	Position int
	Status   Status

	JailTurns      int
	ChanceJailCard bool
	ChestJailCard  bool

	// owned property ids
	Properties map[int]bool
}

func NewPlayer(id int, name string) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Balance:    StartingBalance,
		Status:     Active,
		Properties: make(map[int]bool),
	}
}

func (p *Player) AddJailCard(fromChance bool) {
	if fromChance {
		p.ChanceJailCard = true
	} else {
		p.ChestJailCard = true
	}
}

// UseJailCard consumes one get-out-of-jail-free card if the player holds
// any, preferring the Chance one.
func (p *Player) UseJailCard() bool {
	if p.ChanceJailCard {
		p.ChanceJailCard = false
		return true
	}
	if p.ChestJailCard {
		p.ChestJailCard = false
		return true
	}
	return false
}

func (p *Player) OwnedIDs() []int {
	ids := make([]int, 0, len(p.Properties))
	for id := range p.Properties {
		ids = append(ids, id)
	}
	return ids
}
