package controllers

import (
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/pkg"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func CreateGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	game := &models.Game{
		Id:     pkg.RandString(8),
		Name:   gameCreateDto.Name,
		Status: "open",
	}

	if _, err := db.Model(game).Insert(); err != nil {
		logrus.WithError(err).Error("create game")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"id": game.Id})
}

func GetAllAvailGames(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	var games []models.Game
	if err := db.Model(&games).Where("status = ?", "open").Select(); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(games)
}

func FindAvailGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	game := new(models.Game)
	if err := db.Model(game).Where("status = ?", "open").Limit(1).Select(); err != nil {
		return c.JSON(fiber.Map{"found": false})
	}
	return c.JSON(fiber.Map{"found": true, "id": game.Id})
}

func VerifyGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return err
	}

	game := &models.Game{Id: verifyGameDto.Code}
	if err := db.Model(game).WherePK().Select(); err != nil {
		return c.JSON(fiber.Map{"status": false})
	}
	return c.JSON(fiber.Map{"status": true})
}

// CurrentTurn reports whose turn a running table is on, from the redis key
// the engine keeps in sync on every change-turn.
func CurrentTurn(c *fiber.Ctx) error {
	gameID := c.Query("game_id")
	if gameID == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	pool := cache.CreateRedisPool()
	defer pool.Close()
	conn := pool.Get()
	defer conn.Close()

	current, err := cache.Get(gameID, &conn)
	if err != nil {
		return c.JSON(fiber.Map{"running": false})
	}
	return c.JSON(fiber.Map{"running": true, "currentPlayer": current})
}

// Leaderboard serves the live wealth standings the engine mirrors into
// redis, so clients can poll without holding a socket.
func Leaderboard(c *fiber.Ctx) error {
	gameID := c.Query("game_id")
	if gameID == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	pool := cache.CreateRedisPool()
	defer pool.Close()
	conn := pool.Get()
	defer conn.Close()

	names, scores, err := cache.ZREVTOP(gameID+".leaderboard", 10, &conn)
	if err != nil {
		return c.JSON([]models.LeaderboardEntry{})
	}
	entries := make([]models.LeaderboardEntry, len(names))
	for i := range names {
		entries[i] = models.LeaderboardEntry{Name: names[i], Wealth: scores[i]}
	}
	return c.JSON(entries)
}
