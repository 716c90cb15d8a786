package socket

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/DedS3t/monopoly-engine/platform/game"
	"github.com/DedS3t/monopoly-engine/platform/logging"
	"github.com/DedS3t/monopoly-engine/platform/queries"
	"github.com/gomodule/redigo/redis"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// table is the one live game this process hosts. The engine serializes all
// commands behind its own lock; this layer only translates socket events
// into (command, playerId, argument) tuples and delivers events back out.
//
// Socket handlers run on per-connection goroutines, so a table must be
// fully populated by newTable before it is published and seats is never
// written afterwards.
type table struct {
	gameID     string
	controller *game.Controller

	seats map[string]int // user_id -> seat, fixed at creation

	mu    sync.RWMutex
	conns map[int]socketio.Conn // seat -> connection
}

// newTable seats every lobby player in join order. The controller is
// attached by the caller before the table is shared with other goroutines.
func newTable(gameID string, players []models.LobbyPlayer) *table {
	t := &table{
		gameID: gameID,
		seats:  make(map[string]int, len(players)),
		conns:  make(map[int]socketio.Conn),
	}
	for i, p := range players {
		t.seats[p.User_id] = i + 1
	}
	return t
}

func (t *table) seatOf(userID string) (int, bool) {
	seat, ok := t.seats[userID]
	return seat, ok
}

func (t *table) registerConn(seat int, c socketio.Conn) {
	t.mu.Lock()
	t.conns[seat] = c
	t.mu.Unlock()
}

func (t *table) connOf(seat int) (socketio.Conn, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.conns[seat]
	return c, ok
}

// roomEmitter delivers engine events to the socket room and mirrors the
// numbers the lobby API serves (current turn, leaderboard) into redis.
type roomEmitter struct {
	server *socketio.Server
	table  *table
	pool   *redis.Pool
	log    *logrus.Entry
}

func (e *roomEmitter) Broadcast(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		e.log.WithError(err).Error("marshal broadcast")
		return
	}
	e.server.BroadcastToRoom("/", e.table.gameID, event, string(data))
	e.mirror(event, payload)
}

func (e *roomEmitter) ToPlayer(playerID int, event string, payload interface{}) {
	conn, ok := e.table.connOf(playerID)
	if !ok {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		e.log.WithError(err).Error("marshal direct event")
		return
	}
	conn.Emit(event, string(data))
}

func (e *roomEmitter) mirror(event string, payload interface{}) {
	conn := e.pool.Get()
	defer conn.Close()

	switch v := payload.(type) {
	case models.TurnUpdate:
		if event == "change-turn" {
			cache.Set(e.table.gameID, v.CurrentPlayer, &conn)
		}
	case models.PlayerStats:
		if event == "player-stats" {
			name := e.table.controller.Game.PlayerByID(v.PlayerID).Name
			key := e.table.gameID + ".leaderboard"
			if v.Bankrupt {
				cache.ZREM(key, name, &conn)
			} else {
				cache.ZADD(key, v.Wealth, name, &conn)
			}
		}
	}
}

func CreateSocketIOServer() {
	log := logging.For("sockets")

	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	// live is read from every connection's goroutine; liveMu guards the
	// pointer itself, the table's own lock guards its connections
	var (
		liveMu sync.RWMutex
		live   *table
	)
	currentTable := func() *table {
		liveMu.RLock()
		defer liveMu.RUnlock()
		return live
	}
	closeTable := func(t *table) {
		liveMu.Lock()
		if live != t {
			liveMu.Unlock()
			return
		}
		live = nil
		liveMu.Unlock()

		queries.MarkGameFinished(t.gameID, db)
		conn := pool.Get()
		queries.CleanupGame(t.gameID, db, &conn)
		conn.Close()
		log.WithField("game", t.gameID).Info("table closed")
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		id, ok := result["game_id"]
		if !ok || !queries.VerifyGame(id, db) {
			s.Emit("error-message", "Invalid game")
			return
		}
		userID, ok := result["user_id"]
		if !ok {
			s.Emit("error-message", "User not authenticated")
			return
		}
		user, err := queries.GetUserData(userID, db)
		if err != nil {
			s.Emit("error-message", "User retrieval failed")
			return
		}
		if err := queries.CreatePlayer(models.LobbyPlayer{
			Game_id:  id,
			User_id:  userID,
			Username: user.Username,
		}, db); err != nil {
			log.WithError(err).Error("create player")
			s.Emit("error-message", "Failed creating player")
			return
		}

		s.SetContext(userID)
		s.Join(id)
		server.BroadcastToRoom("/", id, "player-join", user.Username)
		log.WithFields(logrus.Fields{"user": userID, "game": id}).Info("joined")
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		s.Leave(result["game_id"])
		queries.DeletePlayer(result["user_id"], result["game_id"], db)
		server.BroadcastToRoom("/", result["game_id"], "player-left")
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, gameID string) {
		if currentTable() != nil {
			s.Emit("error-message", "A game is already running")
			return
		}
		players, err := queries.PlayersForGame(gameID, db)
		if err != nil || len(players) < 2 {
			s.Emit("error-message", "Unable to start game")
			return
		}

		// build the whole table, engine included, before publication
		t := newTable(gameID, players)
		emitter := &roomEmitter{server: server, table: t, pool: pool, log: log}
		names := make([]string, len(players))
		for i, p := range players {
			names[i] = p.Username
		}
		g := game.NewGame(names, game.NewDice(), emitter)
		t.controller = game.NewController(g)

		liveMu.Lock()
		if live != nil {
			liveMu.Unlock()
			s.Emit("error-message", "A game is already running")
			return
		}
		live = t
		liveMu.Unlock()

		queries.MarkGameStarted(gameID, db)

		snapshot, _ := json.Marshal(g.Snapshot())
		server.BroadcastToRoom("/", gameID, "game-start", string(snapshot))
		first, _ := json.Marshal(models.TurnUpdate{CurrentPlayer: g.Turn.Current().ID, TurnCount: 1})
		server.BroadcastToRoom("/", gameID, "change-turn", string(first))
		log.WithField("game", gameID).Info("game started")
	})

	// register wires one socket event to one engine command, with the
	// named json field as the argument
	register := func(event, command, argKey string) {
		server.OnEvent("/", event, func(s socketio.Conn, jsonStr string) {
			var result map[string]string
			json.Unmarshal([]byte(jsonStr), &result)

			t := currentTable()
			if t == nil {
				s.Emit("error-message", "Game has not started")
				return
			}
			seat, ok := t.seatOf(result["user_id"])
			if !ok {
				s.Emit("error-message", "You are not seated at this table")
				return
			}
			t.registerConn(seat, s)

			arg := ""
			if argKey != "" {
				arg = result[argKey]
			}
			if err := t.controller.HandleCommand(command, seat, arg); err != nil {
				s.Emit("error-message", err.Error())
			}
			if t.controller.GameOver() {
				closeTable(t)
			}
		})
	}

	// clients call sync after game-start so targeted events (purchase
	// offers, trade requests) can reach them before their first command
	server.OnEvent("/", "sync", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		t := currentTable()
		if t == nil {
			s.Emit("error-message", "Game has not started")
			return
		}
		seat, ok := t.seatOf(result["user_id"])
		if !ok {
			s.Emit("error-message", "You are not seated at this table")
			return
		}
		t.registerConn(seat, s)

		snapshot, _ := json.Marshal(t.controller.Snapshot())
		s.Emit("game-state", string(snapshot))
	})

	register("roll-dice", "ROLL", "")
	register("request-buy", "BUY", "")
	register("decline-buy", "PASS", "")
	register("place-bid", "BID", "amount")
	register("propose-trade", "TRADE", "offer")
	register("accept-trade", "ACCEPT_TRADE", "")
	register("reject-trade", "REJECT_TRADE", "")
	register("buy-house", "BUILD", "card_pos")
	register("mortgage", "MORTGAGE", "card_pos")
	register("unmortgage", "UNMORTGAGE", "card_pos")
	register("pay-out-jail", "PAY_JAIL", "")
	register("use-jail-card", "USE_JAIL_CARD", "")
	register("end-turn", "END_TURN", "")
	register("undo", "UNDO", "")
	register("redo", "REDO", "")
	register("get-top-k", "GET_TOP_K", "k")

	server.OnError("/", func(s socketio.Conn, e error) {
		log.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		userID, _ := s.Context().(string)
		if t := currentTable(); t != nil && userID != "" {
			if seat, ok := t.seatOf(userID); ok {
				t.controller.HandleDisconnect(seat)
				if t.controller.GameOver() {
					closeTable(t)
				}
			}
		}
		for _, room := range s.Rooms() {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("CLIENT_ORIGIN")},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}
