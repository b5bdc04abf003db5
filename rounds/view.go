package rounds

import (
	"errors"

	"impostor-game-server/models"
	"impostor-game-server/store"
)

// Read-side projections. What a caller may see depends on their role and the
// current phase: impostors never receive the secret word, and secret voting
// withholds ballots until the round closes.

// Game returns the game by id.
func (e *Engine) Game(gameID string) (*models.Game, error) {
	return getGame(e.store, gameID)
}

// GameByCode returns the game for a join code.
func (e *Engine) GameByCode(code string) (*models.Game, error) {
	game, err := e.store.GetGameByCode(code)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errNotFound("game not found")
	}
	return game, err
}

// Players lists the game's players in join order.
func (e *Engine) Players(gameID string) ([]models.Player, error) {
	return e.store.PlayersByGame(gameID)
}

// Me resolves the calling session's player in the game.
func (e *Engine) Me(gameID, sessionID string) (*models.Player, error) {
	player, err := e.store.PlayerBySession(gameID, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errNotFound("player not found")
	}
	return player, err
}

// RoleView is a player's private view of their assignment. SecretWord is nil
// for impostors; they only get the category, and that only when the host
// enabled showCategory.
type RoleView struct {
	IsImpostor bool     `json:"is_impostor"`
	SecretWord *string  `json:"secret_word"`
	TabooWords []string `json:"taboo_words,omitempty"`
	Category   *string  `json:"category,omitempty"`
}

// MyRole projects the calling session's role.
func (e *Engine) MyRole(gameID, sessionID string) (*RoleView, error) {
	game, err := getGame(e.store, gameID)
	if err != nil {
		return nil, err
	}
	player, err := e.Me(gameID, sessionID)
	if err != nil {
		return nil, err
	}

	view := &RoleView{IsImpostor: player.IsImpostor}
	if !player.IsImpostor {
		word := game.SecretWord
		view.SecretWord = &word
		view.TabooWords = append([]string(nil), game.TabooWords...)
	}
	if game.ShowCategory {
		category := game.Category
		view.Category = &category
	}
	return view, nil
}

// Clues lists the clues of a round in turn order.
func (e *Engine) Clues(gameID string, round int) ([]models.Clue, error) {
	return e.store.CluesByRound(gameID, round)
}

// CurrentTurnPlayer returns whose turn it is, or nil when no turn is active.
func (e *Engine) CurrentTurnPlayer(gameID string) (*models.Player, error) {
	game, err := getGame(e.store, gameID)
	if err != nil {
		return nil, err
	}
	if len(game.TurnOrder) == 0 {
		return nil, nil
	}
	players, err := e.store.PlayersByGame(gameID)
	if err != nil {
		return nil, err
	}
	order := activeOrder(game.TurnOrder, players)
	if game.CurrentTurnIndex >= len(order) {
		return nil, nil
	}
	for i := range players {
		if players[i].ID == order[game.CurrentTurnIndex] {
			return &players[i], nil
		}
	}
	return nil, nil
}

// RequiredLetter returns the letter the next chained clue must start with,
// or "" when chaining imposes nothing right now.
func (e *Engine) RequiredLetter(gameID string) (string, error) {
	game, err := getGame(e.store, gameID)
	if err != nil {
		return "", err
	}
	if !game.ChainedClues {
		return "", nil
	}
	clues, err := e.store.CluesByRound(gameID, game.CurrentRound)
	if err != nil {
		return "", err
	}
	return chainLetter(clues), nil
}

// Votes lists a round's votes, filtered by phase: hidden entirely during
// secret voting, live during public voting, always visible once the round
// reached results or the game finished.
func (e *Engine) Votes(gameID string, round int) ([]models.Vote, error) {
	game, err := getGame(e.store, gameID)
	if err != nil {
		return nil, err
	}
	votes, err := e.store.VotesByRound(gameID, round)
	if err != nil {
		return nil, err
	}

	switch game.Status {
	case models.StatusResults, models.StatusFinished:
		return votes, nil
	case models.StatusVoting:
		if game.SecretVoting {
			return []models.Vote{}, nil
		}
		return votes, nil
	default:
		return []models.Vote{}, nil
	}
}

// VoteCountView is the aggregate exposed during secret voting.
type VoteCountView struct {
	Count int `json:"count"`
	Total int `json:"total"`
}

// VoteCount reports how many of the active players have voted this round.
func (e *Engine) VoteCount(gameID string) (*VoteCountView, error) {
	game, err := getGame(e.store, gameID)
	if err != nil {
		return nil, err
	}
	votes, err := e.store.VotesByRound(gameID, game.CurrentRound)
	if err != nil {
		return nil, err
	}
	players, err := e.store.PlayersByGame(gameID)
	if err != nil {
		return nil, err
	}
	return &VoteCountView{Count: len(votes), Total: countActive(players)}, nil
}

// ResultsView is the round outcome shown after voting closes.
type ResultsView struct {
	VoteCounts map[string]int  `json:"vote_counts"`
	SkipVotes  int             `json:"skip_votes"`
	Eliminated []models.Player `json:"eliminated_players"`
	IsTie      bool            `json:"is_tie"`
	WasSkipped bool            `json:"was_skipped"`
	TieBreaker string          `json:"tie_breaker"`

	SecretWord   string `json:"secret_word"`
	CurrentRound int    `json:"current_round"`
	MaxRounds    *int   `json:"max_rounds,omitempty"`
}

// RoundResults previews the current round's tally and elimination. With the
// random tiebreaker the full tied set is listed as pending: the binding draw
// happens in NextRound, so the preview can differ from who actually falls.
func (e *Engine) RoundResults(gameID string) (*ResultsView, error) {
	game, err := getGame(e.store, gameID)
	if err != nil {
		return nil, err
	}
	if game.Status != models.StatusResults && game.Status != models.StatusFinished {
		return nil, errInvalidPhase("results are not available yet")
	}

	votes, err := e.store.VotesByRound(gameID, game.CurrentRound)
	if err != nil {
		return nil, err
	}
	t := tallyVotes(votes)

	var eliminatedIDs []string
	isTie := len(t.Top) > 1
	wasSkipped := false
	switch {
	case t.SkipVotes > t.MaxVotes:
		wasSkipped = true
	case isTie:
		// none → nobody; all and random → show the whole tied set.
		if game.TieBreaker != models.TieBreakerNone {
			eliminatedIDs = t.Top
		}
	case len(t.Top) == 1:
		eliminatedIDs = t.Top
	}

	players, err := e.store.PlayersByGame(gameID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	eliminated := make([]models.Player, 0, len(eliminatedIDs))
	for _, id := range eliminatedIDs {
		if p, ok := byID[id]; ok {
			eliminated = append(eliminated, p)
		}
	}

	return &ResultsView{
		VoteCounts:   t.Counts,
		SkipVotes:    t.SkipVotes,
		Eliminated:   eliminated,
		IsTie:        isTie,
		WasSkipped:   wasSkipped,
		TieBreaker:   game.TieBreaker,
		SecretWord:   game.SecretWord,
		CurrentRound: game.CurrentRound,
		MaxRounds:    game.MaxRounds,
	}, nil
}
