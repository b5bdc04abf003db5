package services

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"impostor-game-server/rounds"
	"impostor-game-server/wordbank"
)

// GameService exposes the round state machine over HTTP. All rule
// enforcement lives in the engine; this layer only parses requests and maps
// rejections to statuses.
type GameService struct {
	Engine *rounds.Engine
}

func NewGameService(engine *rounds.Engine) *GameService {
	return &GameService{Engine: engine}
}

func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch rounds.CodeOf(err) {
	case rounds.CodeNotFound:
		status = fiber.StatusNotFound
	case rounds.CodePermissionDenied:
		status = fiber.StatusForbidden
	case rounds.CodeValidationFailed:
		status = fiber.StatusBadRequest
	case rounds.CodeInvalidPhase, rounds.CodeOutOfTurn,
		rounds.CodeDuplicateAction, rounds.CodeCapacityExceeded:
		status = fiber.StatusConflict
	default:
		log.Printf("[GameService] internal error: %v", err)
		return c.Status(status).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func sessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals("session_id").(string)
	return sid
}

// CreateGame opens a lobby and returns the game with its host player.
func (s *GameService) CreateGame(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	game, host, err := s.Engine.CreateGame(req.Name, sessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"game":   game,
		"player": host,
	})
}

// JoinGame adds the calling session to a lobby by join code.
func (s *GameService) JoinGame(c *fiber.Ctx) error {
	var req struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	game, player, err := s.Engine.JoinGame(req.Code, req.Name, sessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"game":   game,
		"player": player,
	})
}

// LeaveGame removes the calling session's player from the game.
func (s *GameService) LeaveGame(c *fiber.Ctx) error {
	if err := s.Engine.LeaveGame(c.Params("id"), sessionID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// KickPlayer removes a player from the lobby on the host's behalf.
func (s *GameService) KickPlayer(c *fiber.Ctx) error {
	var req struct {
		PlayerID string `json:"player_id"`
		TargetID string `json:"target_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := s.Engine.KickPlayer(c.Params("id"), req.PlayerID, req.TargetID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateSettings patches lobby configuration.
func (s *GameService) UpdateSettings(c *fiber.Ctx) error {
	var req struct {
		PlayerID string `json:"player_id"`
		rounds.Settings
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := s.Engine.UpdateSettings(c.Params("id"), req.PlayerID, req.Settings); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type playerAction struct {
	PlayerID string `json:"player_id"`
}

// StartGame deals roles and the secret word, moving lobby → reveal.
func (s *GameService) StartGame(c *fiber.Ctx) error {
	var req playerAction
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := s.Engine.StartGame(c.Params("id"), req.PlayerID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReadyForClues moves reveal → clues.
func (s *GameService) ReadyForClues(c *fiber.Ctx) error {
	var req playerAction
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := s.Engine.ReadyForClues(c.Params("id"), req.PlayerID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SubmitClue records the current player's text clue.
func (s *GameService) SubmitClue(c *fiber.Ctx) error {
	var req struct {
		PlayerID string `json:"player_id"`
		Clue     string `json:"clue"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := s.Engine.SubmitClue(c.Params("id"), req.PlayerID, req.Clue); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkTurnDone records a spoken (text-free) turn.
func (s *GameService) MarkTurnDone(c *fiber.Ctx) error {
	var req playerAction
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := s.Engine.MarkTurnDone(c.Params("id"), req.PlayerID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StartVoting moves clues → voting on the host's order.
func (s *GameService) StartVoting(c *fiber.Ctx) error {
	var req playerAction
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := s.Engine.StartVoting(c.Params("id"), req.PlayerID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TimeoutTurn force-advances an expired turn. Safe to call repeatedly.
func (s *GameService) TimeoutTurn(c *fiber.Ctx) error {
	if err := s.Engine.TimeoutTurn(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SubmitVote upserts the caller's vote; omitting target_id casts a skip.
func (s *GameService) SubmitVote(c *fiber.Ctx) error {
	var req struct {
		VoterID  string  `json:"voter_id"`
		TargetID *string `json:"target_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := s.Engine.SubmitVote(c.Params("id"), req.VoterID, req.TargetID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// NextRound applies elimination and scoring, then advances or finishes.
func (s *GameService) NextRound(c *fiber.Ctx) error {
	var req playerAction
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := s.Engine.NextRound(c.Params("id"), req.PlayerID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PlayAgain rewinds a finished game to the lobby.
func (s *GameService) PlayAgain(c *fiber.Ctx) error {
	var req playerAction
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := s.Engine.PlayAgain(c.Params("id"), req.PlayerID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetGame returns the game by id.
func (s *GameService) GetGame(c *fiber.Ctx) error {
	game, err := s.Engine.Game(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(game)
}

// GetGameByCode returns the game for a join code.
func (s *GameService) GetGameByCode(c *fiber.Ctx) error {
	game, err := s.Engine.GameByCode(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(game)
}

// GetPlayers lists the game's players.
func (s *GameService) GetPlayers(c *fiber.Ctx) error {
	players, err := s.Engine.Players(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(players)
}

// GetMe resolves the calling session's player.
func (s *GameService) GetMe(c *fiber.Ctx) error {
	player, err := s.Engine.Me(c.Params("id"), sessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(player)
}

// GetMyRole returns the caller's private role view.
func (s *GameService) GetMyRole(c *fiber.Ctx) error {
	role, err := s.Engine.MyRole(c.Params("id"), sessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(role)
}

// GetClues lists the clues of a round (defaults to the current one).
func (s *GameService) GetClues(c *fiber.Ctx) error {
	gameID := c.Params("id")
	round, err := s.roundParam(c, gameID)
	if err != nil {
		return respondError(c, err)
	}
	clues, err := s.Engine.Clues(gameID, round)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(clues)
}

// GetCurrentTurnPlayer returns whose turn it is, or null.
func (s *GameService) GetCurrentTurnPlayer(c *fiber.Ctx) error {
	player, err := s.Engine.CurrentTurnPlayer(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(player)
}

// GetRequiredLetter returns the chained-clues letter constraint, if any.
func (s *GameService) GetRequiredLetter(c *fiber.Ctx) error {
	letter, err := s.Engine.RequiredLetter(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"letter": letter})
}

// GetVotes lists a round's votes, subject to the secret-voting filter.
func (s *GameService) GetVotes(c *fiber.Ctx) error {
	gameID := c.Params("id")
	round, err := s.roundParam(c, gameID)
	if err != nil {
		return respondError(c, err)
	}
	votes, err := s.Engine.Votes(gameID, round)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(votes)
}

// GetVoteCount reports voting progress for the current round.
func (s *GameService) GetVoteCount(c *fiber.Ctx) error {
	count, err := s.Engine.VoteCount(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(count)
}

// GetRoundResults returns the tally and elimination preview.
func (s *GameService) GetRoundResults(c *fiber.Ctx) error {
	results, err := s.Engine.RoundResults(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(results)
}

// GetCategories lists the word-bank categories.
func (s *GameService) GetCategories(c *fiber.Ctx) error {
	return c.JSON(wordbank.Categories())
}

func (s *GameService) roundParam(c *fiber.Ctx, gameID string) (int, error) {
	if raw := c.Query("round"); raw != "" {
		round, err := strconv.Atoi(raw)
		if err == nil && round > 0 {
			return round, nil
		}
	}
	game, err := s.Engine.Game(gameID)
	if err != nil {
		return 0, err
	}
	return game.CurrentRound, nil
}
