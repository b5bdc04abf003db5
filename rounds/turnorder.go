package rounds

import (
	"math/rand"

	"impostor-game-server/models"
)

// shuffledOrder returns a uniform random permutation of the player ids
// (Fisher-Yates). The input is not modified.
func shuffledOrder(rng *rand.Rand, ids []string) []string {
	order := append([]string(nil), ids...)
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// fixedOrder builds the fixed-mode turn order: players sorted by join time,
// rotated left so each round opens with a different player while keeping the
// relative sequence. Callers pass round % playerCount as the rotation.
func fixedOrder(players []models.Player, rotateBy int) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	if len(ids) == 0 || rotateBy == 0 {
		return ids
	}
	rotateBy %= len(ids)
	return append(ids[rotateBy:], ids[:rotateBy]...)
}

// activeOrder filters the stored turn order down to non-eliminated players,
// preserving relative sequence. Eliminated players stay in the stored order
// and are only dropped here, at read time; currentTurnIndex always refers to
// a position in this filtered view.
func activeOrder(order []string, players []models.Player) []string {
	active := make(map[string]bool, len(players))
	for _, p := range players {
		if !p.IsEliminated {
			active[p.ID] = true
		}
	}
	filtered := make([]string, 0, len(order))
	for _, id := range order {
		if active[id] {
			filtered = append(filtered, id)
		}
	}
	return filtered
}

func playerIDs(players []models.Player) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}
