package rounds

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"impostor-game-server/models"
	"impostor-game-server/store"
	"impostor-game-server/wordbank"
)

// StartGame assigns roles, picks the secret word and computes the turn order.
// Host-only, lobby-only, needs at least three players.
func (e *Engine) StartGame(gameID, playerID string) error {
	return e.store.Atomic(func(tx store.Store) error {
		game, err := getGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.HostID != playerID {
			return errPermissionDenied("only the host can start the game")
		}
		if !game.InLobby() {
			return errInvalidPhase("game already started")
		}

		players, err := tx.PlayersByGame(gameID)
		if err != nil {
			return err
		}
		if len(players) < models.MinPlayers {
			return errValidationFailed("need at least %d players", models.MinPlayers)
		}

		// Impostor assignment: shuffle ids and take a prefix, so every
		// subset of the required size is equally likely.
		impostorCount := game.ImpostorCount
		if game.AllImpostors {
			impostorCount = len(players)
		} else if impostorCount > len(players)-1 {
			// Always leave at least one player who knows the word.
			impostorCount = len(players) - 1
		}
		shuffled := e.shuffle(playerIDs(players))
		impostors := make(map[string]bool, impostorCount)
		for _, id := range shuffled[:impostorCount] {
			impostors[id] = true
		}

		for i := range players {
			players[i].IsImpostor = impostors[players[i].ID]
			players[i].IsEliminated = false
			if err := tx.SavePlayer(&players[i]); err != nil {
				return err
			}
		}

		e.rngMu.Lock()
		word, taboo := wordbank.Pick(e.rng, game.Category)
		e.rngMu.Unlock()

		if game.TurnMode == models.TurnModeFixed {
			game.TurnOrder = fixedOrder(players, 0)
		} else {
			game.TurnOrder = e.shuffle(playerIDs(players))
		}

		game.Status = models.StatusReveal
		game.CurrentRound = 1
		game.SecretWord = word
		game.TabooWords = taboo
		game.CurrentTurnIndex = 0
		game.TurnStartedAt = nil
		return tx.SaveGame(game)
	})
}

// ReadyForClues moves reveal → clues and starts the first turn's timer when
// one is configured. Host-only.
func (e *Engine) ReadyForClues(gameID, playerID string) error {
	return e.store.Atomic(func(tx store.Store) error {
		game, err := getGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.HostID != playerID {
			return errPermissionDenied("only the host can advance")
		}
		if game.Status != models.StatusReveal {
			return errInvalidPhase("not in reveal phase")
		}

		game.Status = models.StatusClues
		game.TurnStartedAt = nil
		if game.TurnTimeLimit != nil {
			now := e.now()
			game.TurnStartedAt = &now
		}
		return tx.SaveGame(game)
	})
}

// SubmitClue records the current player's text clue and advances the turn.
// When every active player has spoken and clue text is required, voting
// starts automatically; otherwise the host starts it explicitly.
func (e *Engine) SubmitClue(gameID, playerID, clueText string) error {
	clueText = strings.TrimSpace(clueText)
	if clueText == "" {
		return errValidationFailed("clue text is required")
	}
	return e.takeTurn(gameID, playerID, models.ClueKindText, clueText)
}

// MarkTurnDone records the turn without text, for games where clues are
// spoken aloud. Never auto-advances to voting.
func (e *Engine) MarkTurnDone(gameID, playerID string) error {
	return e.takeTurn(gameID, playerID, models.ClueKindDone, "")
}

func (e *Engine) takeTurn(gameID, playerID, kind, clueText string) error {
	return e.store.Atomic(func(tx store.Store) error {
		game, err := getGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.Status != models.StatusClues {
			return errInvalidPhase("not in clues phase")
		}

		player, err := getGamePlayer(tx, gameID, playerID)
		if err != nil {
			return err
		}
		if player.IsEliminated {
			return errOutOfTurn("eliminated players cannot give clues")
		}
		if len(game.TurnOrder) == 0 {
			return errInvalidPhase("turn order not set")
		}

		players, err := tx.PlayersByGame(gameID)
		if err != nil {
			return err
		}
		order := activeOrder(game.TurnOrder, players)
		if game.CurrentTurnIndex >= len(order) || order[game.CurrentTurnIndex] != playerID {
			return errOutOfTurn("not your turn")
		}

		clues, err := tx.CluesByRound(gameID, game.CurrentRound)
		if err != nil {
			return err
		}
		for _, c := range clues {
			if c.PlayerID == playerID {
				return errDuplicateAction("already gave a clue this round")
			}
		}

		if kind == models.ClueKindText && game.ChainedClues {
			if err := checkChain(clues, clueText); err != nil {
				return err
			}
		}

		if err := tx.InsertClue(&models.Clue{
			ID:       uuid.NewString(),
			GameID:   gameID,
			Round:    game.CurrentRound,
			PlayerID: playerID,
			Kind:     kind,
			Text:     clueText,
			Order:    game.CurrentTurnIndex,
		}); err != nil {
			return err
		}

		autoVoting := kind == models.ClueKindText && game.RequireClueText
		return e.advanceTurn(tx, game, len(order), autoVoting)
	})
}

// advanceTurn moves to the next seat, or closes the clue phase when the last
// active player has taken their turn. autoVoting controls whether exhausting
// the order transitions straight to voting.
func (e *Engine) advanceTurn(tx store.Store, game *models.Game, activeCount int, autoVoting bool) error {
	next := game.CurrentTurnIndex + 1
	if next >= activeCount {
		if !autoVoting {
			// Host decides when voting starts.
			return tx.SaveGame(game)
		}
		game.Status = models.StatusVoting
		game.CurrentTurnIndex = 0
		game.TurnStartedAt = nil
		return tx.SaveGame(game)
	}

	game.CurrentTurnIndex = next
	game.TurnStartedAt = nil
	if game.TurnTimeLimit != nil {
		now := e.now()
		game.TurnStartedAt = &now
	}
	return tx.SaveGame(game)
}

// StartVoting forces clues → voting. Host-only; the path used when clue text
// is not required.
func (e *Engine) StartVoting(gameID, playerID string) error {
	return e.store.Atomic(func(tx store.Store) error {
		game, err := getGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.HostID != playerID {
			return errPermissionDenied("only the host can start voting")
		}
		if game.Status != models.StatusClues {
			return errInvalidPhase("not in clues phase")
		}

		game.Status = models.StatusVoting
		game.CurrentTurnIndex = 0
		game.TurnStartedAt = nil
		return tx.SaveGame(game)
	})
}

// TimeoutTurn force-advances the current turn after its timer elapsed,
// recording a timeout marker for the player. Any number of clients may call
// it after the deadline; it no-ops once the turn has already moved on.
func (e *Engine) TimeoutTurn(gameID string) error {
	return e.store.Atomic(func(tx store.Store) error {
		game, err := getGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.Status != models.StatusClues {
			// The phase already moved on; a late timeout is not an error.
			return nil
		}
		if game.TurnTimeLimit == nil {
			return errValidationFailed("no turn time limit configured")
		}
		if len(game.TurnOrder) == 0 {
			return errInvalidPhase("turn order not set")
		}

		players, err := tx.PlayersByGame(gameID)
		if err != nil {
			return err
		}
		order := activeOrder(game.TurnOrder, players)
		if game.CurrentTurnIndex >= len(order) {
			return nil
		}
		currentID := order[game.CurrentTurnIndex]

		clues, err := tx.CluesByRound(gameID, game.CurrentRound)
		if err != nil {
			return err
		}
		for _, c := range clues {
			if c.PlayerID == currentID {
				// Raced with the player's own submission.
				return nil
			}
		}

		if err := tx.InsertClue(&models.Clue{
			ID:       uuid.NewString(),
			GameID:   gameID,
			Round:    game.CurrentRound,
			PlayerID: currentID,
			Kind:     models.ClueKindTimeout,
			Order:    game.CurrentTurnIndex,
		}); err != nil {
			return err
		}

		return e.advanceTurn(tx, game, len(order), game.RequireClueText)
	})
}

// SubmitVote upserts the voter's choice for the round; a nil target is a
// skip vote. Once every active player has voted the game moves to results.
func (e *Engine) SubmitVote(gameID, voterID string, targetID *string) error {
	return e.store.Atomic(func(tx store.Store) error {
		game, err := getGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.Status != models.StatusVoting {
			return errInvalidPhase("not in voting phase")
		}

		voter, err := getGamePlayer(tx, gameID, voterID)
		if err != nil {
			return err
		}
		if voter.IsEliminated {
			return errOutOfTurn("eliminated players cannot vote")
		}

		if targetID == nil {
			if !game.AllowSkipVote {
				return errValidationFailed("skip vote is not allowed")
			}
		} else {
			target, err := tx.GetPlayer(*targetID)
			if errors.Is(err, store.ErrNotFound) || (err == nil && target.GameID != gameID) {
				return errNotFound("vote target not found")
			}
			if err != nil {
				return err
			}
			if target.IsEliminated {
				return errValidationFailed("cannot vote for an eliminated player")
			}
		}

		existing, err := tx.VoteByVoter(gameID, game.CurrentRound, voterID)
		switch {
		case err == nil:
			existing.TargetID = targetID
			if err := tx.SaveVote(existing); err != nil {
				return err
			}
		case errors.Is(err, store.ErrNotFound):
			if err := tx.InsertVote(&models.Vote{
				ID:       uuid.NewString(),
				GameID:   gameID,
				Round:    game.CurrentRound,
				VoterID:  voterID,
				TargetID: targetID,
			}); err != nil {
				return err
			}
		default:
			return err
		}

		players, err := tx.PlayersByGame(gameID)
		if err != nil {
			return err
		}
		votes, err := tx.VotesByRound(gameID, game.CurrentRound)
		if err != nil {
			return err
		}
		if len(votes) >= countActive(players) {
			game.Status = models.StatusResults
			return tx.SaveGame(game)
		}
		return nil
	})
}

// NextRound applies the round's elimination and scoring, then either ends
// the game or deals the next round. Host-only, from results.
func (e *Engine) NextRound(gameID, playerID string) error {
	return e.store.Atomic(func(tx store.Store) error {
		game, err := getGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.HostID != playerID {
			return errPermissionDenied("only the host can advance")
		}
		if game.Status != models.StatusResults {
			return errInvalidPhase("not in results phase")
		}

		votes, err := tx.VotesByRound(gameID, game.CurrentRound)
		if err != nil {
			return err
		}
		players, err := tx.PlayersByGame(gameID)
		if err != nil {
			return err
		}

		// The random tiebreak draw happens here, not in the results
		// preview; this is the binding one.
		result := tallyVotes(votes).resolve(game.TieBreaker, e.intn)

		byID := make(map[string]*models.Player, len(players))
		for i := range players {
			byID[players[i].ID] = &players[i]
		}
		applyElimination(byID, votes, result.Eliminated)

		remaining := make([]models.Player, 0, len(players))
		impostorsLeft, innocentsLeft := 0, 0
		for _, p := range players {
			if p.IsEliminated {
				continue
			}
			remaining = append(remaining, p)
			if p.IsImpostor {
				impostorsLeft++
			} else {
				innocentsLeft++
			}
		}

		nextRound := game.CurrentRound + 1
		maxRoundsReached := game.MaxRounds != nil && nextRound > *game.MaxRounds

		switch {
		case impostorsLeft == 0:
			// Crew caught every impostor.
			game.Status = models.StatusFinished
		case impostorsLeft >= innocentsLeft:
			// Impostors win by outnumbering.
			game.Status = models.StatusFinished
		case maxRoundsReached:
			// Impostors win by surviving all rounds.
			for id, p := range byID {
				if p.IsImpostor && !p.IsEliminated {
					byID[id].Score += 20
				}
			}
			game.Status = models.StatusFinished
		default:
			if game.ChangeWordEachRound {
				e.rngMu.Lock()
				word, taboo := wordbank.Pick(e.rng, game.Category)
				e.rngMu.Unlock()
				game.SecretWord = word
				game.TabooWords = taboo
			}
			if game.TurnMode == models.TurnModeFixed {
				game.TurnOrder = fixedOrder(remaining, game.CurrentRound%len(remaining))
			} else {
				game.TurnOrder = e.shuffle(playerIDs(remaining))
			}
			game.Status = models.StatusReveal
			game.CurrentRound = nextRound
			game.CurrentTurnIndex = 0
			game.TurnStartedAt = nil
		}

		for i := range players {
			if err := tx.SavePlayer(&players[i]); err != nil {
				return err
			}
		}
		return tx.SaveGame(game)
	})
}

// PlayAgain rewinds a finished game to the lobby: roles and eliminations
// cleared, clues and votes purged. Scores carry over across games so the
// lobby keeps a running leaderboard.
func (e *Engine) PlayAgain(gameID, playerID string) error {
	return e.store.Atomic(func(tx store.Store) error {
		game, err := getGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.HostID != playerID {
			return errPermissionDenied("only the host can restart")
		}
		if game.Status != models.StatusFinished {
			return errInvalidPhase("game is not finished")
		}

		players, err := tx.PlayersByGame(gameID)
		if err != nil {
			return err
		}
		for i := range players {
			players[i].IsImpostor = false
			players[i].IsEliminated = false
			if err := tx.SavePlayer(&players[i]); err != nil {
				return err
			}
		}

		if err := tx.DeleteCluesByGame(gameID); err != nil {
			return err
		}
		if err := tx.DeleteVotesByGame(gameID); err != nil {
			return err
		}

		game.Status = models.StatusLobby
		game.CurrentRound = 0
		game.SecretWord = ""
		game.TabooWords = nil
		game.TurnOrder = nil
		game.CurrentTurnIndex = 0
		game.TurnStartedAt = nil
		return tx.SaveGame(game)
	})
}

func countActive(players []models.Player) int {
	n := 0
	for _, p := range players {
		if !p.IsEliminated {
			n++
		}
	}
	return n
}
