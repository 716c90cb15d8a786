package game

// TurnManager owns whose turn it is and the consecutive-doubles streak.
// Nothing else moves the turn pointer.
type TurnManager struct {
	players   []*Player
	current   int
	doubles   int
	turnCount int
}

func NewTurnManager(players []*Player) *TurnManager {
	return &TurnManager{players: players, turnCount: 1}
}

func (t *TurnManager) Current() *Player {
	return t.players[t.current]
}

// RegisterDoubles bumps the streak and returns it. A streak of 3 means the
// roll must be converted into a trip to jail by the caller.
func (t *TurnManager) RegisterDoubles() int {
	t.doubles++
	return t.doubles
}

func (t *TurnManager) DoublesStreak() int {
	return t.doubles
}

// PassTurn advances to the next non-bankrupt player and resets the doubles
// streak. Calling it with no active players left is a broken invariant; the
// game must have ended first.
func (t *TurnManager) PassTurn() *Player {
	t.doubles = 0
	for i := 0; i < len(t.players); i++ {
		t.current = (t.current + 1) % len(t.players)
		if t.players[t.current].Status != Bankrupt {
			t.turnCount++
			return t.players[t.current]
		}
	}
	panic("turn: passTurn with no active players")
}

func (t *TurnManager) TurnCount() int {
	return t.turnCount
}
