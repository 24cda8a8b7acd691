package handlers

import (
	"farkle-backend/services"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the API surface: the five game endpoints plus a
// health probe for deployment checks.
func SetupRoutes(app *fiber.App, playerService *services.PlayerService, matchService *services.MatchService, statsService *services.StatsService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/create-player", playerService.CreatePlayer)
	app.Post("/game-result", matchService.SubmitGameResult)
	app.Get("/player-stats", statsService.GetPlayerStats)
	app.Get("/leaderboard", statsService.GetLeaderboard)
	app.Get("/user-players", playerService.ListUserPlayers)
}
