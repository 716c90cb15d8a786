package queries

import (
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/go-pg/pg/v10"
	"github.com/gomodule/redigo/redis"
)

// Lobby persistence. Postgres owns who signed up for which table; live
// game state never touches the database.

func VerifyGame(id string, db *pg.DB) bool {
	game := &models.Game{Id: id}
	return db.Model(game).WherePK().Select() == nil
}

func GetUserData(userID string, db *pg.DB) (*models.User, error) {
	user := &models.User{Id: userID}
	if err := db.Model(user).WherePK().Select(); err != nil {
		return nil, err
	}
	return user, nil
}

func CreatePlayer(player models.LobbyPlayer, db *pg.DB) error {
	_, err := db.Model(&player).Insert()
	return err
}

func DeletePlayer(userID, gameID string, db *pg.DB) error {
	player := new(models.LobbyPlayer)
	_, err := db.Model(player).Where("user_id = ? and game_id = ?", userID, gameID).Delete()
	return err
}

func PlayersForGame(gameID string, db *pg.DB) ([]models.LobbyPlayer, error) {
	var players []models.LobbyPlayer
	err := db.Model(&players).Where("game_id = ?", gameID).Order("user_id ASC").Select()
	return players, err
}

func MarkGameStarted(gameID string, db *pg.DB) error {
	game := &models.Game{Id: gameID}
	_, err := db.Model(game).WherePK().Set("status = ?", "in progress").Update()
	return err
}

func MarkGameFinished(gameID string, db *pg.DB) error {
	game := &models.Game{Id: gameID}
	_, err := db.Model(game).WherePK().Set("status = ?", "finished").Update()
	return err
}

// CleanupGame drops the seat rows and the live redis keys of a finished
// table. The game row itself stays behind, marked finished.
func CleanupGame(gameID string, db *pg.DB, conn *redis.Conn) {
	player := new(models.LobbyPlayer)
	db.Model(player).Where("game_id = ?", gameID).Delete()

	cache.Del(gameID, conn)
	cache.Del(fmt.Sprintf("%s.leaderboard", gameID), conn)
}
