// Package rounds implements the authoritative round state machine for the
// impostor word game: phase transitions, turn advancement, clue acceptance,
// vote tallying, elimination, scoring and win conditions. It runs against the
// session-store port, so the hosted (gorm) and offline (in-memory)
// deployments share one implementation of the rules.
package rounds

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"impostor-game-server/models"
	"impostor-game-server/store"
)

const codeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

type Engine struct {
	store store.Store

	rngMu sync.Mutex
	rng   *rand.Rand

	now func() time.Time
}

type Option func(*Engine)

// WithRand injects the randomness source used for impostor assignment,
// shuffles and the random tiebreak draw. Tests pass a seeded source.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithClock injects the wall clock used for join times and turn timers.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(st store.Store, opts ...Option) *Engine {
	e := &Engine{
		store: st,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) intn(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Intn(n)
}

func (e *Engine) shuffle(ids []string) []string {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return shuffledOrder(e.rng, ids)
}

func (e *Engine) generateCode() string {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	code := make([]byte, models.CodeLength)
	for i := range code {
		code[i] = codeAlphabet[e.rng.Intn(len(codeAlphabet))]
	}
	return string(code)
}

// CreateGame opens a new lobby with a globally unique join code and its host
// player. The game row is inserted first and the host reference patched in
// afterwards, since each needs the other's id.
func (e *Engine) CreateGame(hostName, sessionID string) (*models.Game, *models.Player, error) {
	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		return nil, nil, errValidationFailed("name is required")
	}
	if sessionID == "" {
		return nil, nil, errValidationFailed("session id is required")
	}

	var game *models.Game
	var host *models.Player
	err := e.store.Atomic(func(tx store.Store) error {
		code := e.generateCode()
		for {
			_, err := tx.GetGameByCode(code)
			if errors.Is(err, store.ErrNotFound) {
				break
			}
			if err != nil {
				return err
			}
			code = e.generateCode()
		}

		game = &models.Game{
			ID:            uuid.NewString(),
			Code:          code,
			Status:        models.StatusLobby,
			Category:      "animales",
			ImpostorCount: 1,
			TurnMode:      models.TurnModeRandom,
			TieBreaker:    models.TieBreakerNone,
		}
		if err := tx.InsertGame(game); err != nil {
			return err
		}

		host = &models.Player{
			ID:        uuid.NewString(),
			GameID:    game.ID,
			Name:      hostName,
			SessionID: sessionID,
			JoinedAt:  e.now(),
		}
		if err := tx.InsertPlayer(host); err != nil {
			return err
		}

		game.HostID = host.ID
		return tx.SaveGame(game)
	})
	if err != nil {
		return nil, nil, err
	}
	return game, host, nil
}

// JoinGame adds a player to a lobby by join code. A session already in the
// game gets its existing player back instead of a duplicate seat.
func (e *Engine) JoinGame(code, name, sessionID string) (*models.Game, *models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, errValidationFailed("name is required")
	}
	if sessionID == "" {
		return nil, nil, errValidationFailed("session id is required")
	}

	var game *models.Game
	var player *models.Player
	err := e.store.Atomic(func(tx store.Store) error {
		var err error
		game, err = tx.GetGameByCode(strings.ToLower(strings.TrimSpace(code)))
		if errors.Is(err, store.ErrNotFound) {
			return errNotFound("game not found")
		}
		if err != nil {
			return err
		}

		if !game.InLobby() {
			return errInvalidPhase("game already started")
		}

		existing, err := tx.PlayerBySession(game.ID, sessionID)
		if err == nil {
			player = existing
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		players, err := tx.PlayersByGame(game.ID)
		if err != nil {
			return err
		}
		if len(players) >= models.MaxPlayers {
			return errCapacityExceeded("game is full (max %d players)", models.MaxPlayers)
		}

		player = &models.Player{
			ID:        uuid.NewString(),
			GameID:    game.ID,
			Name:      name,
			SessionID: sessionID,
			JoinedAt:  e.now(),
		}
		return tx.InsertPlayer(player)
	})
	if err != nil {
		return nil, nil, err
	}
	return game, player, nil
}

// LeaveGame removes the session's player. A host leaving a lobby tears the
// whole game down, players and all. Leaving a game that is already gone is
// not an error.
func (e *Engine) LeaveGame(gameID, sessionID string) error {
	return e.store.Atomic(func(tx store.Store) error {
		player, err := tx.PlayerBySession(gameID, sessionID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		game, err := tx.GetGame(gameID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if game.HostID == player.ID && game.InLobby() {
			return deleteGameCascade(tx, game.ID)
		}
		return tx.DeletePlayer(player.ID)
	})
}

// KickPlayer lets the host remove a player while still in the lobby.
func (e *Engine) KickPlayer(gameID, hostID, targetID string) error {
	return e.store.Atomic(func(tx store.Store) error {
		game, err := getGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.HostID != hostID {
			return errPermissionDenied("only the host can kick players")
		}
		if !game.InLobby() {
			return errInvalidPhase("players can only be kicked in the lobby")
		}
		if targetID == hostID {
			return errValidationFailed("host cannot kick themselves")
		}

		target, err := tx.GetPlayer(targetID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && target.GameID != gameID) {
			return errNotFound("player not found")
		}
		if err != nil {
			return err
		}
		return tx.DeletePlayer(target.ID)
	})
}

// Settings is the patch a host applies in the lobby; nil fields are left
// untouched. MaxRounds and TurnTimeLimit treat 0 as "unset".
type Settings struct {
	Category            *string `json:"category,omitempty"`
	ImpostorCount       *int    `json:"impostor_count,omitempty"`
	AllImpostors        *bool   `json:"all_impostors,omitempty"`
	MaxRounds           *int    `json:"max_rounds,omitempty"`
	TurnTimeLimit       *int    `json:"turn_time_limit,omitempty"`
	TurnMode            *string `json:"turn_mode,omitempty"`
	RequireClueText     *bool   `json:"require_clue_text,omitempty"`
	ShowCategory        *bool   `json:"show_category,omitempty"`
	SecretVoting        *bool   `json:"secret_voting,omitempty"`
	AllowSkipVote       *bool   `json:"allow_skip_vote,omitempty"`
	TieBreaker          *string `json:"tie_breaker,omitempty"`
	ChainedClues        *bool   `json:"chained_clues,omitempty"`
	ChangeWordEachRound *bool   `json:"change_word_each_round,omitempty"`
}

// UpdateSettings patches game configuration. Host-only, lobby-only.
func (e *Engine) UpdateSettings(gameID, playerID string, s Settings) error {
	return e.store.Atomic(func(tx store.Store) error {
		game, err := getGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.HostID != playerID {
			return errPermissionDenied("only the host can update settings")
		}
		if !game.InLobby() {
			return errInvalidPhase("settings can only be changed in the lobby")
		}

		if s.Category != nil {
			game.Category = *s.Category
		}
		if s.ImpostorCount != nil {
			if *s.ImpostorCount < 1 {
				return errValidationFailed("impostor count must be at least 1")
			}
			game.ImpostorCount = *s.ImpostorCount
		}
		if s.AllImpostors != nil {
			game.AllImpostors = *s.AllImpostors
		}
		if s.MaxRounds != nil {
			if *s.MaxRounds < 0 {
				return errValidationFailed("max rounds cannot be negative")
			}
			if *s.MaxRounds == 0 {
				game.MaxRounds = nil
			} else {
				game.MaxRounds = s.MaxRounds
			}
		}
		if s.TurnTimeLimit != nil {
			if *s.TurnTimeLimit < 0 {
				return errValidationFailed("turn time limit cannot be negative")
			}
			if *s.TurnTimeLimit == 0 {
				game.TurnTimeLimit = nil
			} else {
				game.TurnTimeLimit = s.TurnTimeLimit
			}
		}
		if s.TurnMode != nil {
			if *s.TurnMode != models.TurnModeRandom && *s.TurnMode != models.TurnModeFixed {
				return errValidationFailed("invalid turn mode %q", *s.TurnMode)
			}
			game.TurnMode = *s.TurnMode
		}
		if s.RequireClueText != nil {
			game.RequireClueText = *s.RequireClueText
		}
		if s.ShowCategory != nil {
			game.ShowCategory = *s.ShowCategory
		}
		if s.SecretVoting != nil {
			game.SecretVoting = *s.SecretVoting
		}
		if s.AllowSkipVote != nil {
			game.AllowSkipVote = *s.AllowSkipVote
		}
		if s.TieBreaker != nil {
			switch *s.TieBreaker {
			case models.TieBreakerNone, models.TieBreakerAll, models.TieBreakerRandom:
				game.TieBreaker = *s.TieBreaker
			default:
				return errValidationFailed("invalid tie breaker %q", *s.TieBreaker)
			}
		}
		if s.ChainedClues != nil {
			game.ChainedClues = *s.ChainedClues
		}
		if s.ChangeWordEachRound != nil {
			game.ChangeWordEachRound = *s.ChangeWordEachRound
		}

		return tx.SaveGame(game)
	})
}

func getGame(tx store.Store, gameID string) (*models.Game, error) {
	game, err := tx.GetGame(gameID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errNotFound("game not found")
	}
	return game, err
}

func getGamePlayer(tx store.Store, gameID, playerID string) (*models.Player, error) {
	player, err := tx.GetPlayer(playerID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && player.GameID != gameID) {
		return nil, errNotFound("player not found")
	}
	return player, err
}

func deleteGameCascade(tx store.Store, gameID string) error {
	players, err := tx.PlayersByGame(gameID)
	if err != nil {
		return err
	}
	for _, p := range players {
		if err := tx.DeletePlayer(p.ID); err != nil {
			return err
		}
	}
	if err := tx.DeleteCluesByGame(gameID); err != nil {
		return err
	}
	if err := tx.DeleteVotesByGame(gameID); err != nil {
		return err
	}
	return tx.DeleteGame(gameID)
}
