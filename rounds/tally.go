package rounds

import (
	"impostor-game-server/models"
)

// tally is the per-round vote count: votes per target plus skips, with the
// top-voted set tracked in first-vote order so resolution is deterministic
// for a given ballot sequence.
type tally struct {
	Counts    map[string]int
	SkipVotes int

	MaxVotes int
	Top      []string
}

func tallyVotes(votes []models.Vote) tally {
	t := tally{Counts: make(map[string]int)}
	var order []string
	for _, v := range votes {
		if v.TargetID == nil {
			t.SkipVotes++
			continue
		}
		if t.Counts[*v.TargetID] == 0 {
			order = append(order, *v.TargetID)
		}
		t.Counts[*v.TargetID]++
	}
	for _, id := range order {
		switch count := t.Counts[id]; {
		case count > t.MaxVotes:
			t.MaxVotes = count
			t.Top = []string{id}
		case count == t.MaxVotes:
			t.Top = append(t.Top, id)
		}
	}
	return t
}

// outcome is the binding elimination decision for a round.
type outcome struct {
	Eliminated []string
	IsTie      bool
	WasSkipped bool
}

// resolve decides who is eliminated. Skip winning outright beats everything,
// including the tiebreaker; ties then fall to the configured policy. intn
// draws the random tiebreak pick.
func (t tally) resolve(tieBreaker string, intn func(int) int) outcome {
	isTie := len(t.Top) > 1

	if t.SkipVotes > t.MaxVotes {
		return outcome{WasSkipped: true, IsTie: isTie}
	}

	if isTie {
		switch tieBreaker {
		case models.TieBreakerAll:
			return outcome{Eliminated: t.Top, IsTie: true}
		case models.TieBreakerRandom:
			return outcome{Eliminated: []string{t.Top[intn(len(t.Top))]}, IsTie: true}
		default:
			return outcome{IsTie: true}
		}
	}

	if len(t.Top) == 1 {
		return outcome{Eliminated: t.Top}
	}
	return outcome{}
}

// applyElimination flags the eliminated players and distributes scores:
// catching an impostor pays the accusers +10 and every surviving crew member
// +5; losing an innocent pays each surviving impostor +15.
func applyElimination(byID map[string]*models.Player, votes []models.Vote, eliminated []string) {
	for _, elimID := range eliminated {
		victim, ok := byID[elimID]
		if !ok {
			continue
		}
		victim.IsEliminated = true

		if victim.IsImpostor {
			for _, v := range votes {
				if v.TargetID == nil || *v.TargetID != elimID {
					continue
				}
				if voter, ok := byID[v.VoterID]; ok && !voter.IsImpostor {
					voter.Score += 10
				}
			}
			for _, p := range byID {
				if !p.IsImpostor && !p.IsEliminated {
					p.Score += 5
				}
			}
		} else {
			for _, p := range byID {
				if p.IsImpostor && !p.IsEliminated {
					p.Score += 15
				}
			}
		}
	}
}
