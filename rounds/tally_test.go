package rounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impostor-game-server/models"
)

func vote(voter string, target *string) models.Vote {
	return models.Vote{VoterID: voter, TargetID: target}
}

func target(id string) *string { return &id }

func TestTallyVotes(t *testing.T) {
	votes := []models.Vote{
		vote("v1", target("a")),
		vote("v2", nil),
		vote("v3", target("b")),
		vote("v4", target("a")),
	}

	tl := tallyVotes(votes)
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, tl.Counts)
	assert.Equal(t, 1, tl.SkipVotes)
	assert.Equal(t, 2, tl.MaxVotes)
	assert.Equal(t, []string{"a"}, tl.Top)
}

func TestTallyTopKeepsFirstVoteOrder(t *testing.T) {
	votes := []models.Vote{
		vote("v1", target("b")),
		vote("v2", target("a")),
		vote("v3", target("a")),
		vote("v4", target("b")),
	}

	tl := tallyVotes(votes)
	assert.Equal(t, []string{"b", "a"}, tl.Top, "tied set follows first-ballot order")
}

func TestResolveUniqueMax(t *testing.T) {
	tl := tallyVotes([]models.Vote{
		vote("v1", target("a")),
		vote("v2", target("a")),
		vote("v3", target("b")),
	})

	out := tl.resolve(models.TieBreakerNone, nil)
	assert.Equal(t, []string{"a"}, out.Eliminated)
	assert.False(t, out.IsTie)
	assert.False(t, out.WasSkipped)
}

func TestResolveSkipBeatsEverything(t *testing.T) {
	tl := tallyVotes([]models.Vote{
		vote("v1", nil),
		vote("v2", nil),
		vote("v3", target("a")),
	})

	// Even the "all" tiebreaker never fires when skip wins outright.
	out := tl.resolve(models.TieBreakerAll, nil)
	assert.True(t, out.WasSkipped)
	assert.Empty(t, out.Eliminated)
}

func TestResolveSkipTieDoesNotSkip(t *testing.T) {
	tl := tallyVotes([]models.Vote{
		vote("v1", nil),
		vote("v2", target("a")),
	})

	out := tl.resolve(models.TieBreakerNone, nil)
	assert.False(t, out.WasSkipped, "skip must strictly exceed the max to win")
	assert.Equal(t, []string{"a"}, out.Eliminated)
}

func TestResolveTiePolicies(t *testing.T) {
	tl := tallyVotes([]models.Vote{
		vote("v1", target("a")),
		vote("v2", target("b")),
	})

	out := tl.resolve(models.TieBreakerNone, nil)
	assert.True(t, out.IsTie)
	assert.Empty(t, out.Eliminated)

	out = tl.resolve(models.TieBreakerAll, nil)
	assert.True(t, out.IsTie)
	assert.ElementsMatch(t, []string{"a", "b"}, out.Eliminated)

	out = tl.resolve(models.TieBreakerRandom, func(n int) int {
		require.Equal(t, 2, n)
		return 1
	})
	assert.True(t, out.IsTie)
	assert.Equal(t, []string{"b"}, out.Eliminated)
}

func TestResolveNoVotes(t *testing.T) {
	out := tallyVotes(nil).resolve(models.TieBreakerNone, nil)
	assert.Empty(t, out.Eliminated)
	assert.False(t, out.IsTie)
	assert.False(t, out.WasSkipped)
}

func testPlayers(impostorID string, ids ...string) map[string]*models.Player {
	byID := make(map[string]*models.Player, len(ids))
	for _, id := range ids {
		byID[id] = &models.Player{ID: id, IsImpostor: id == impostorID}
	}
	return byID
}

func TestApplyEliminationImpostorCaught(t *testing.T) {
	byID := testPlayers("imp", "imp", "a", "b", "c")
	votes := []models.Vote{
		vote("a", target("imp")),
		vote("b", target("imp")),
		vote("c", target("a")),
		vote("imp", target("a")),
	}

	applyElimination(byID, votes, []string{"imp"})

	assert.True(t, byID["imp"].IsEliminated)
	assert.Zero(t, byID["imp"].Score)
	assert.Equal(t, 15, byID["a"].Score, "accuser bonus plus survival bonus")
	assert.Equal(t, 15, byID["b"].Score)
	assert.Equal(t, 5, byID["c"].Score, "survival bonus only for missed votes")
}

func TestApplyEliminationInnocentLost(t *testing.T) {
	byID := testPlayers("imp", "imp", "a", "b")
	votes := []models.Vote{
		vote("imp", target("a")),
		vote("b", target("a")),
		vote("a", target("imp")),
	}

	applyElimination(byID, votes, []string{"a"})

	assert.True(t, byID["a"].IsEliminated)
	assert.Equal(t, 15, byID["imp"].Score)
	assert.Zero(t, byID["b"].Score)
	assert.Zero(t, byID["a"].Score)
}

func TestApplyEliminationNobody(t *testing.T) {
	byID := testPlayers("imp", "imp", "a", "b")

	applyElimination(byID, nil, nil)

	for _, p := range byID {
		assert.False(t, p.IsEliminated)
		assert.Zero(t, p.Score)
	}
}
