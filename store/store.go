// Package store holds the session-store port the round state machine operates
// through, with a gorm-backed implementation for the hosted deployment and an
// in-memory one for the offline mirror and tests.
package store

import (
	"errors"

	"impostor-game-server/models"
)

// ErrNotFound is returned by every getter when the record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the mutation surface the state machine runs against. Every state
// transition executes inside Atomic, so concurrent mutations of the same game
// observe each other all-or-nothing.
type Store interface {
	// Atomic runs fn inside a transaction. If fn returns an error, no write
	// issued through tx is visible afterwards.
	Atomic(fn func(tx Store) error) error

	GetGame(id string) (*models.Game, error)
	GetGameByCode(code string) (*models.Game, error)
	// GamesWithRunningTimers lists clues-phase games whose turn timer is
	// started, for the timeout sweeper.
	GamesWithRunningTimers() ([]models.Game, error)
	InsertGame(g *models.Game) error
	SaveGame(g *models.Game) error
	DeleteGame(id string) error

	GetPlayer(id string) (*models.Player, error)
	PlayersByGame(gameID string) ([]models.Player, error) // joinedAt ascending
	PlayerBySession(gameID, sessionID string) (*models.Player, error)
	InsertPlayer(p *models.Player) error
	SavePlayer(p *models.Player) error
	DeletePlayer(id string) error

	CluesByRound(gameID string, round int) ([]models.Clue, error) // turn order ascending
	InsertClue(c *models.Clue) error
	DeleteCluesByGame(gameID string) error

	VotesByRound(gameID string, round int) ([]models.Vote, error)
	VoteByVoter(gameID string, round int, voterID string) (*models.Vote, error)
	InsertVote(v *models.Vote) error
	SaveVote(v *models.Vote) error
	DeleteVotesByGame(gameID string) error
}
