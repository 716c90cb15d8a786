package board

// The board is a fixed ring of 40 tiles. It is built once at startup and
// never mutated; all per-game economic state lives in the game package.

type Kind int

const (
	Go Kind = iota
	PropertyTile
	Tax
	Card
	Jail
	GoToJail
	FreeParking
)

const (
	Size    = 40
	GoPos   = 0
	JailPos = 10
)

type Tile struct {
	ID   int
	Kind Kind
	Name string
}

// PropertyDef is the static half of a property: identity, pricing and the
// rent schedule. Rents index 0 is bare land, 1-4 houses, 5 hotel.
type PropertyDef struct {
	ID        int
	Name      string
	Group     string
	Price     int
	Rents     [6]int
	HouseCost int
	Mortgage  int
}

type Board struct {
	Tiles [Size]Tile
	Defs  map[int]PropertyDef
}

// Next walks steps tiles forward along the ring.
func Next(pos, steps int) int {
	return ((pos+steps)%Size + Size) % Size
}

// GroupSize is how many properties complete a color set.
func GroupSize(group string) int {
	switch group {
	case "Brown", "Dark Blue", "Utility":
		return 2
	case "Railroad":
		return 4
	default:
		return 3
	}
}

// IsChancePos reports whether a card tile draws from the Chance deck. The
// tile position decides the deck, never chance.
func IsChancePos(pos int) bool {
	return pos == 7 || pos == 22 || pos == 36
}

var RailroadPositions = []int{5, 15, 25, 35}
var UtilityPositions = []int{12, 28}

func (b *Board) TileAt(pos int) Tile {
	return b.Tiles[Next(pos, 0)]
}

// Classic builds the standard London board.
func Classic() *Board {
	b := &Board{Defs: make(map[int]PropertyDef)}

	special := func(id int, kind Kind, name string) {
		b.Tiles[id] = Tile{ID: id, Kind: kind, Name: name}
	}
	prop := func(id int, name, group string, price int, rents [6]int, houseCost, mortgage int) {
		b.Tiles[id] = Tile{ID: id, Kind: PropertyTile, Name: name}
		b.Defs[id] = PropertyDef{
			ID: id, Name: name, Group: group, Price: price,
			Rents: rents, HouseCost: houseCost, Mortgage: mortgage,
		}
	}
	station := func(id int, name string) {
		prop(id, name, "Railroad", 200, [6]int{}, 0, 100)
	}
	utility := func(id int, name string) {
		prop(id, name, "Utility", 150, [6]int{}, 0, 75)
	}

	special(0, Go, "GO")
	prop(1, "Old Kent Road", "Brown", 60, [6]int{2, 10, 30, 90, 160, 250}, 50, 30)
	special(2, Card, "Community Chest")
	prop(3, "Whitechapel Road", "Brown", 60, [6]int{4, 20, 60, 180, 320, 450}, 50, 30)
	special(4, Tax, "Income Tax")
	station(5, "King's Cross Station")
	prop(6, "The Angel Islington", "Light Blue", 100, [6]int{6, 30, 90, 270, 400, 550}, 50, 50)
	special(7, Card, "Chance")
	prop(8, "Euston Road", "Light Blue", 100, [6]int{6, 30, 90, 270, 400, 550}, 50, 50)
	prop(9, "Pentonville Road", "Light Blue", 120, [6]int{8, 40, 100, 300, 450, 600}, 50, 60)
	special(10, Jail, "Jail")
	prop(11, "Pall Mall", "Pink", 140, [6]int{10, 50, 150, 450, 625, 750}, 100, 70)
	utility(12, "Electric Company")
	prop(13, "Whitehall", "Pink", 140, [6]int{10, 50, 150, 450, 625, 750}, 100, 70)
	prop(14, "Northumberland Avenue", "Pink", 160, [6]int{12, 60, 180, 500, 700, 900}, 100, 80)
	station(15, "Marylebone Station")
	prop(16, "Bow Street", "Orange", 180, [6]int{14, 70, 200, 550, 750, 950}, 100, 90)
	special(17, Card, "Community Chest")
	prop(18, "Marlborough Street", "Orange", 180, [6]int{14, 70, 200, 550, 750, 950}, 100, 90)
	prop(19, "Vine Street", "Orange", 200, [6]int{16, 80, 220, 600, 800, 1000}, 100, 100)
	special(20, FreeParking, "Free Parking")
	prop(21, "Strand", "Red", 220, [6]int{18, 90, 250, 700, 875, 1050}, 150, 110)
	special(22, Card, "Chance")
	prop(23, "Fleet Street", "Red", 220, [6]int{18, 90, 250, 700, 875, 1050}, 150, 110)
	prop(24, "Trafalgar Square", "Red", 240, [6]int{20, 100, 300, 750, 925, 1100}, 150, 120)
	station(25, "Fenchurch St Station")
	prop(26, "Leicester Square", "Yellow", 260, [6]int{22, 110, 330, 800, 975, 1150}, 150, 130)
	prop(27, "Coventry Street", "Yellow", 260, [6]int{22, 110, 330, 800, 975, 1150}, 150, 130)
	utility(28, "Water Works")
	prop(29, "Piccadilly", "Yellow", 280, [6]int{24, 120, 360, 850, 1025, 1200}, 150, 140)
	special(30, GoToJail, "Go To Jail")
	prop(31, "Regent Street", "Green", 300, [6]int{26, 130, 390, 900, 1100, 1275}, 200, 150)
	prop(32, "Oxford Street", "Green", 300, [6]int{26, 130, 390, 900, 1100, 1275}, 200, 150)
	special(33, Card, "Community Chest")
	prop(34, "Bond Street", "Green", 320, [6]int{28, 150, 450, 1000, 1200, 1400}, 200, 160)
	station(35, "Liverpool St Station")
	special(36, Card, "Chance")
	prop(37, "Park Lane", "Dark Blue", 350, [6]int{35, 175, 500, 1100, 1300, 1500}, 200, 175)
	special(38, Tax, "Luxury Tax")
	prop(39, "Mayfair", "Dark Blue", 400, [6]int{50, 200, 600, 1400, 1700, 2000}, 200, 200)

	return b
}
