package handlers

import (
	"github.com/gofiber/fiber/v2"

	"impostor-game-server/middleware"
	"impostor-game-server/services"
)

func SetupGameRoutes(app *fiber.App, gameService *services.GameService) {
	// Public reads — no session required
	app.Get("/categories", gameService.GetCategories)
	app.Get("/games/code/:code", gameService.GetGameByCode)
	app.Get("/games/:id", gameService.GetGame)
	app.Get("/games/:id/players", gameService.GetPlayers)
	app.Get("/games/:id/clues", gameService.GetClues)
	app.Get("/games/:id/current-turn", gameService.GetCurrentTurnPlayer)
	app.Get("/games/:id/required-letter", gameService.GetRequiredLetter)
	app.Get("/games/:id/votes", gameService.GetVotes)
	app.Get("/games/:id/vote-count", gameService.GetVoteCount)
	app.Get("/games/:id/results", gameService.GetRoundResults)

	// Idempotent forced turn advance — fired by idle clients or the sweeper
	app.Post("/games/:id/timeout", gameService.TimeoutTurn)

	// Session-scoped routes — require the device identity header
	session := app.Group("/", middleware.SessionMiddleware())

	session.Post("/games", gameService.CreateGame)
	session.Post("/games/join", gameService.JoinGame)
	session.Post("/games/:id/leave", gameService.LeaveGame)
	session.Get("/games/:id/me", gameService.GetMe)
	session.Get("/games/:id/role", gameService.GetMyRole)

	session.Post("/games/:id/kick", gameService.KickPlayer)
	session.Patch("/games/:id/settings", gameService.UpdateSettings)
	session.Post("/games/:id/start", gameService.StartGame)
	session.Post("/games/:id/ready", gameService.ReadyForClues)
	session.Post("/games/:id/clues", gameService.SubmitClue)
	session.Post("/games/:id/turn-done", gameService.MarkTurnDone)
	session.Post("/games/:id/start-voting", gameService.StartVoting)
	session.Post("/games/:id/votes", gameService.SubmitVote)
	session.Post("/games/:id/next-round", gameService.NextRound)
	session.Post("/games/:id/play-again", gameService.PlayAgain)
}
