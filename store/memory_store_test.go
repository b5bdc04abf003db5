package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impostor-game-server/models"
)

func TestMemoryStoreGameRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	game := &models.Game{ID: "g1", Code: "abc123", Status: models.StatusLobby}
	require.NoError(t, s.InsertGame(game))

	got, err := s.GetGame("g1")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.Code)

	byCode, err := s.GetGameByCode("abc123")
	require.NoError(t, err)
	assert.Equal(t, "g1", byCode.ID)

	_, err = s.GetGame("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = s.GetGameByCode("zzzzzz")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, s.DeleteGame("g1"))
	_, err = s.GetGame("g1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreReadsAreCopies(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.InsertGame(&models.Game{
		ID:        "g1",
		Code:      "abc123",
		TurnOrder: []string{"p1", "p2"},
	}))

	got, err := s.GetGame("g1")
	require.NoError(t, err)
	got.TurnOrder[0] = "tampered"
	got.Code = "tampered"

	fresh, err := s.GetGame("g1")
	require.NoError(t, err)
	assert.Equal(t, "abc123", fresh.Code)
	assert.Equal(t, []string{"p1", "p2"}, fresh.TurnOrder)
}

func TestMemoryStorePlayersByGameOrdering(t *testing.T) {
	s := NewMemoryStore()
	base := time.Now()
	require.NoError(t, s.InsertPlayer(&models.Player{ID: "p2", GameID: "g1", JoinedAt: base.Add(time.Second)}))
	require.NoError(t, s.InsertPlayer(&models.Player{ID: "p1", GameID: "g1", JoinedAt: base}))
	require.NoError(t, s.InsertPlayer(&models.Player{ID: "p3", GameID: "g1", JoinedAt: base.Add(2 * time.Second)}))
	require.NoError(t, s.InsertPlayer(&models.Player{ID: "px", GameID: "other", JoinedAt: base}))

	players, err := s.PlayersByGame("g1")
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, "p1", players[0].ID)
	assert.Equal(t, "p2", players[1].ID)
	assert.Equal(t, "p3", players[2].ID)
}

func TestMemoryStorePlayerBySession(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.InsertPlayer(&models.Player{ID: "p1", GameID: "g1", SessionID: "sess"}))

	p, err := s.PlayerBySession("g1", "sess")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = s.PlayerBySession("other", "sess")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreCluesByRoundOrdering(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.InsertClue(&models.Clue{ID: "c2", GameID: "g1", Round: 1, Order: 1}))
	require.NoError(t, s.InsertClue(&models.Clue{ID: "c1", GameID: "g1", Round: 1, Order: 0}))
	require.NoError(t, s.InsertClue(&models.Clue{ID: "c3", GameID: "g1", Round: 2, Order: 0}))

	clues, err := s.CluesByRound("g1", 1)
	require.NoError(t, err)
	require.Len(t, clues, 2)
	assert.Equal(t, "c1", clues[0].ID)
	assert.Equal(t, "c2", clues[1].ID)
}

func TestMemoryStoreVotesInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	target := "p9"
	require.NoError(t, s.InsertVote(&models.Vote{ID: "v1", GameID: "g1", Round: 1, VoterID: "a", TargetID: &target}))
	require.NoError(t, s.InsertVote(&models.Vote{ID: "v2", GameID: "g1", Round: 1, VoterID: "b"}))
	require.NoError(t, s.InsertVote(&models.Vote{ID: "v3", GameID: "g1", Round: 1, VoterID: "c"}))

	votes, err := s.VotesByRound("g1", 1)
	require.NoError(t, err)
	require.Len(t, votes, 3)
	assert.Equal(t, "v1", votes[0].ID)
	assert.Equal(t, "v2", votes[1].ID)
	assert.Equal(t, "v3", votes[2].ID)

	v, err := s.VoteByVoter("g1", 1, "b")
	require.NoError(t, err)
	assert.Equal(t, "v2", v.ID)
	assert.Nil(t, v.TargetID)
}

func TestMemoryStoreDeleteByGame(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.InsertClue(&models.Clue{ID: "c1", GameID: "g1", Round: 1}))
	require.NoError(t, s.InsertClue(&models.Clue{ID: "c2", GameID: "g2", Round: 1}))
	require.NoError(t, s.InsertVote(&models.Vote{ID: "v1", GameID: "g1", Round: 1, VoterID: "a"}))

	require.NoError(t, s.DeleteCluesByGame("g1"))
	require.NoError(t, s.DeleteVotesByGame("g1"))

	clues, err := s.CluesByRound("g1", 1)
	require.NoError(t, err)
	assert.Empty(t, clues)
	clues, err = s.CluesByRound("g2", 1)
	require.NoError(t, err)
	assert.Len(t, clues, 1)
	votes, err := s.VotesByRound("g1", 1)
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func TestMemoryStoreAtomicCommit(t *testing.T) {
	s := NewMemoryStore()

	err := s.Atomic(func(tx Store) error {
		if err := tx.InsertGame(&models.Game{ID: "g1", Code: "abc123"}); err != nil {
			return err
		}
		return tx.InsertPlayer(&models.Player{ID: "p1", GameID: "g1"})
	})
	require.NoError(t, err)

	_, err = s.GetGame("g1")
	require.NoError(t, err)
	_, err = s.GetPlayer("p1")
	require.NoError(t, err)
}

func TestMemoryStoreAtomicRollback(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.InsertGame(&models.Game{ID: "g1", Code: "abc123", Status: models.StatusLobby}))

	boom := errors.New("boom")
	err := s.Atomic(func(tx Store) error {
		game, err := tx.GetGame("g1")
		if err != nil {
			return err
		}
		game.Status = models.StatusClues
		if err := tx.SaveGame(game); err != nil {
			return err
		}
		if err := tx.InsertPlayer(&models.Player{ID: "p1", GameID: "g1"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Nothing from the failed transition is visible.
	game, err := s.GetGame("g1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusLobby, game.Status)
	_, err = s.GetPlayer("p1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreNestedAtomicJoins(t *testing.T) {
	s := NewMemoryStore()

	err := s.Atomic(func(tx Store) error {
		return tx.Atomic(func(inner Store) error {
			return inner.InsertGame(&models.Game{ID: "g1", Code: "abc123"})
		})
	})
	require.NoError(t, err)

	_, err = s.GetGame("g1")
	require.NoError(t, err)
}

func TestMemoryStoreGamesWithRunningTimers(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	limit := 10
	require.NoError(t, s.InsertGame(&models.Game{
		ID: "running", Code: "aaa111",
		Status:        models.StatusClues,
		TurnStartedAt: &now,
		TurnTimeLimit: &limit,
	}))
	require.NoError(t, s.InsertGame(&models.Game{
		ID: "no-timer", Code: "bbb222",
		Status: models.StatusClues,
	}))
	require.NoError(t, s.InsertGame(&models.Game{
		ID: "wrong-phase", Code: "ccc333",
		Status:        models.StatusVoting,
		TurnStartedAt: &now,
		TurnTimeLimit: &limit,
	}))

	games, err := s.GamesWithRunningTimers()
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "running", games[0].ID)
}
