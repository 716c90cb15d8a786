package game

import "testing"

// scriptDice replays a fixed list of rolls, cycling when exhausted.
type scriptDice struct {
	rolls [][2]int
	i     int
}

func (d *scriptDice) Roll() (int, int) {
	r := d.rolls[d.i%len(d.rolls)]
	d.i++
	return r[0], r[1]
}

// recEmitter records every outbound event for assertions.
type recEvent struct {
	Event   string
	To      int // 0 = broadcast
	Payload interface{}
}

type recEmitter struct {
	events []recEvent
}

func (e *recEmitter) Broadcast(event string, payload interface{}) {
	e.events = append(e.events, recEvent{Event: event, Payload: payload})
}

func (e *recEmitter) ToPlayer(playerID int, event string, payload interface{}) {
	e.events = append(e.events, recEvent{Event: event, To: playerID, Payload: payload})
}

func (e *recEmitter) has(event string) bool {
	for _, ev := range e.events {
		if ev.Event == event {
			return true
		}
	}
	return false
}

func (e *recEmitter) last(event string) (recEvent, bool) {
	for i := len(e.events) - 1; i >= 0; i-- {
		if e.events[i].Event == event {
			return e.events[i], true
		}
	}
	return recEvent{}, false
}

func newTestGame(t *testing.T, rolls [][2]int, names ...string) (*GameState, *recEmitter) {
	t.Helper()
	if len(names) == 0 {
		names = []string{"Alice", "Bob", "Carol", "Dave"}
	}
	em := &recEmitter{}
	dice := &scriptDice{rolls: rolls}
	if len(rolls) == 0 {
		dice.rolls = [][2]int{{1, 2}}
	}
	return NewGame(names, dice, em), em
}

// give hands a property to a player directly, bypassing purchase.
func give(g *GameState, p *Player, propID int) *Property {
	prop := g.Props[propID]
	prop.OwnerID = p.ID
	p.Properties[propID] = true
	return prop
}

func checkInvariants(t *testing.T, g *GameState) {
	t.Helper()
	for _, p := range g.Players {
		if p.Status == Bankrupt && (p.Balance != 0 || len(p.Properties) != 0) {
			t.Fatalf("bankrupt player %s holds balance=%d properties=%d", p.Name, p.Balance, len(p.Properties))
		}
	}
	for id, prop := range g.Props {
		if prop.OwnerID == 0 && (prop.Mortgaged || prop.Houses != 0 || prop.Hotel) {
			t.Fatalf("bank-held property %d has state: mortgaged=%v houses=%d hotel=%v", id, prop.Mortgaged, prop.Houses, prop.Hotel)
		}
	}
}
