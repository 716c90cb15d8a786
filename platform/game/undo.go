package game

import "github.com/DedS3t/monopoly-engine/app/models"

type ActionType int

const (
	MoneyChange ActionType = iota
	PropertyPurchase
	Construction
	Mortgage
	Movement
	Trade
)

// GameAction is one reversible mutation. The tag decides which fields are
// meaningful; values are typed ints instead of loose interface pairs so
// replay never casts.
type GameAction struct {
	Type     ActionType
	PlayerID int
	TargetID int // property id, when relevant

	// MoneyChange: balances. Movement: positions. Mortgage: balances.
	OldValue int
	NewValue int

	// Mortgage: the flag state after the action.
	Flag bool

	// Trade legs.
	OtherID        int
	OfferedCash    int
	RequestedCash  int
	OfferedProps   []int
	RequestedProps []int
}

// UndoLog is the linear, single-branch history. Any new action invalidates
// whatever was undone.
type UndoLog struct {
	undo []GameAction
	redo []GameAction
}

func NewUndoLog() *UndoLog {
	return &UndoLog{}
}

func (l *UndoLog) Record(a GameAction) {
	l.undo = append(l.undo, a)
	l.redo = l.redo[:0]
}

func (l *UndoLog) UndoDepth() int { return len(l.undo) }
func (l *UndoLog) RedoDepth() int { return len(l.redo) }

// UndoLast reverts the most recent action. An empty history is a normal
// boundary condition, not an error.
func (g *GameState) UndoLast() bool {
	n := len(g.Log.undo)
	if n == 0 {
		g.Broadcast("info", models.Info{Message: "Nothing to undo"})
		return false
	}
	a := g.Log.undo[n-1]
	g.Log.undo = g.Log.undo[:n-1]
	g.applyAction(a, false)
	g.Log.redo = append(g.Log.redo, a)
	g.log.WithField("action", a.Type).Debug("undo")
	return true
}

// RedoLast re-applies the most recently undone action.
func (g *GameState) RedoLast() bool {
	n := len(g.Log.redo)
	if n == 0 {
		g.Broadcast("info", models.Info{Message: "Nothing to redo"})
		return false
	}
	a := g.Log.redo[n-1]
	g.Log.redo = g.Log.redo[:n-1]
	g.applyAction(a, true)
	g.Log.undo = append(g.Log.undo, a)
	g.log.WithField("action", a.Type).Debug("redo")
	return true
}

// applyAction replays an action forward or applies its exact inverse.
// Mutations here are raw field writes; replay must never re-enter the
// recording paths.
func (g *GameState) applyAction(a GameAction, forward bool) {
	p := g.PlayerByID(a.PlayerID)

	switch a.Type {
	case MoneyChange:
		delta := a.NewValue - a.OldValue
		if forward {
			p.Balance += delta
		} else {
			p.Balance -= delta
		}
		g.emitStats(p)

	case Movement:
		if forward {
			p.Position = a.NewValue
		} else {
			p.Position = a.OldValue
		}
		g.Broadcast("roll-update", models.RollUpdate{PlayerID: p.ID, Pos: p.Position})

	case PropertyPurchase:
		prop := g.Props[a.TargetID]
		if forward {
			p.Balance -= prop.Price
			prop.OwnerID = p.ID
			p.Properties[prop.ID] = true
		} else {
			p.Balance += prop.Price
			prop.OwnerID = 0
			delete(p.Properties, prop.ID)
		}
		g.emitProperty(prop)
		g.emitStats(p)

	case Construction:
		prop := g.Props[a.TargetID]
		if forward {
			p.Balance -= prop.HouseCost
			if prop.Houses < 4 {
				prop.Houses++
			} else {
				prop.Houses = 0
				prop.Hotel = true
			}
		} else {
			p.Balance += prop.HouseCost
			if prop.Hotel {
				prop.Hotel = false
				prop.Houses = 4
			} else {
				prop.Houses--
			}
		}
		g.emitProperty(prop)
		g.emitStats(p)

	case Mortgage:
		prop := g.Props[a.TargetID]
		delta := a.NewValue - a.OldValue
		if forward {
			prop.Mortgaged = a.Flag
			p.Balance += delta
		} else {
			prop.Mortgaged = !a.Flag
			p.Balance -= delta
		}
		g.emitProperty(prop)
		g.emitStats(p)

	case Trade:
		other := g.PlayerByID(a.OtherID)
		if forward {
			g.applyTrade(p, other, a.OfferedCash, a.RequestedCash, a.OfferedProps, a.RequestedProps)
		} else {
			// the exact inverse: cash legs and property lists swap roles
			g.applyTrade(p, other, a.RequestedCash, a.OfferedCash, a.RequestedProps, a.OfferedProps)
		}
	}
}

// applyTrade moves cash and properties between sender and receiver in both
// directions. Undo swaps the roles.
func (g *GameState) applyTrade(sender, receiver *Player, offCash, reqCash int, offProps, reqProps []int) {
	sender.Balance += reqCash - offCash
	receiver.Balance += offCash - reqCash
	for _, id := range offProps {
		prop := g.Props[id]
		delete(sender.Properties, id)
		receiver.Properties[id] = true
		prop.OwnerID = receiver.ID
		g.emitProperty(prop)
	}
	for _, id := range reqProps {
		prop := g.Props[id]
		delete(receiver.Properties, id)
		sender.Properties[id] = true
		prop.OwnerID = sender.ID
		g.emitProperty(prop)
	}
	g.emitStats(sender)
	g.emitStats(receiver)
}
