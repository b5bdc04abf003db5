package store

import (
	"sort"
	"sync"
	"time"

	"impostor-game-server/models"
)

// MemoryStore keeps the whole session in process memory. It backs the
// offline deployment and the engine tests. One mutex per store stands in for
// the database transaction: Atomic holds it for the whole transition and
// rolls back to a snapshot if the transition fails, so rejected actions never
// leave partial state behind.
type MemoryStore struct {
	mu sync.Mutex

	games   map[string]models.Game
	players map[string]models.Player
	clues   map[string]models.Clue
	votes   map[string]models.Vote

	seq    int64 // insertion order for stable vote listing
	voteAt map[string]int64

	inTx bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games:   make(map[string]models.Game),
		players: make(map[string]models.Player),
		clues:   make(map[string]models.Clue),
		votes:   make(map[string]models.Vote),
		voteAt:  make(map[string]int64),
	}
}

func (s *MemoryStore) Atomic(fn func(tx Store) error) error {
	if s.inTx {
		// Nested Atomic joins the enclosing transaction.
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot()
	tx := &MemoryStore{
		games:   s.games,
		players: s.players,
		clues:   s.clues,
		votes:   s.votes,
		seq:     s.seq,
		voteAt:  s.voteAt,
		inTx:    true,
	}
	if err := fn(tx); err != nil {
		s.games = snapshot.games
		s.players = snapshot.players
		s.clues = snapshot.clues
		s.votes = snapshot.votes
		s.voteAt = snapshot.voteAt
		return err
	}
	s.seq = tx.seq
	return nil
}

func (s *MemoryStore) snapshot() *MemoryStore {
	cp := &MemoryStore{
		games:   make(map[string]models.Game, len(s.games)),
		players: make(map[string]models.Player, len(s.players)),
		clues:   make(map[string]models.Clue, len(s.clues)),
		votes:   make(map[string]models.Vote, len(s.votes)),
		voteAt:  make(map[string]int64, len(s.voteAt)),
	}
	for k, v := range s.games {
		cp.games[k] = cloneGame(v)
	}
	for k, v := range s.players {
		cp.players[k] = v
	}
	for k, v := range s.clues {
		cp.clues[k] = v
	}
	for k, v := range s.votes {
		cp.votes[k] = cloneVote(v)
	}
	for k, v := range s.voteAt {
		cp.voteAt[k] = v
	}
	return cp
}

func (s *MemoryStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *MemoryStore) GetGame(id string) (*models.Game, error) {
	defer s.lock()()
	g, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	g = cloneGame(g)
	return &g, nil
}

func (s *MemoryStore) GetGameByCode(code string) (*models.Game, error) {
	defer s.lock()()
	for _, g := range s.games {
		if g.Code == code {
			g = cloneGame(g)
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GamesWithRunningTimers() ([]models.Game, error) {
	defer s.lock()()
	var games []models.Game
	for _, g := range s.games {
		if g.Status == models.StatusClues && g.TurnStartedAt != nil && g.TurnTimeLimit != nil {
			games = append(games, cloneGame(g))
		}
	}
	return games, nil
}

func (s *MemoryStore) InsertGame(g *models.Game) error {
	defer s.lock()()
	s.games[g.ID] = cloneGame(*g)
	return nil
}

func (s *MemoryStore) SaveGame(g *models.Game) error {
	defer s.lock()()
	s.games[g.ID] = cloneGame(*g)
	return nil
}

func (s *MemoryStore) DeleteGame(id string) error {
	defer s.lock()()
	delete(s.games, id)
	return nil
}

func (s *MemoryStore) GetPlayer(id string) (*models.Player, error) {
	defer s.lock()()
	p, ok := s.players[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) PlayersByGame(gameID string) ([]models.Player, error) {
	defer s.lock()()
	var players []models.Player
	for _, p := range s.players {
		if p.GameID == gameID {
			players = append(players, p)
		}
	}
	sort.Slice(players, func(i, j int) bool {
		if !players[i].JoinedAt.Equal(players[j].JoinedAt) {
			return players[i].JoinedAt.Before(players[j].JoinedAt)
		}
		return players[i].ID < players[j].ID
	})
	return players, nil
}

func (s *MemoryStore) PlayerBySession(gameID, sessionID string) (*models.Player, error) {
	defer s.lock()()
	for _, p := range s.players {
		if p.GameID == gameID && p.SessionID == sessionID {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) InsertPlayer(p *models.Player) error {
	defer s.lock()()
	s.players[p.ID] = *p
	return nil
}

func (s *MemoryStore) SavePlayer(p *models.Player) error {
	defer s.lock()()
	s.players[p.ID] = *p
	return nil
}

func (s *MemoryStore) DeletePlayer(id string) error {
	defer s.lock()()
	delete(s.players, id)
	return nil
}

func (s *MemoryStore) CluesByRound(gameID string, round int) ([]models.Clue, error) {
	defer s.lock()()
	var clues []models.Clue
	for _, c := range s.clues {
		if c.GameID == gameID && c.Round == round {
			clues = append(clues, c)
		}
	}
	sort.Slice(clues, func(i, j int) bool { return clues[i].Order < clues[j].Order })
	return clues, nil
}

func (s *MemoryStore) InsertClue(c *models.Clue) error {
	defer s.lock()()
	s.clues[c.ID] = *c
	return nil
}

func (s *MemoryStore) DeleteCluesByGame(gameID string) error {
	defer s.lock()()
	for id, c := range s.clues {
		if c.GameID == gameID {
			delete(s.clues, id)
		}
	}
	return nil
}

func (s *MemoryStore) VotesByRound(gameID string, round int) ([]models.Vote, error) {
	defer s.lock()()
	var votes []models.Vote
	for _, v := range s.votes {
		if v.GameID == gameID && v.Round == round {
			votes = append(votes, cloneVote(v))
		}
	}
	sort.Slice(votes, func(i, j int) bool {
		return s.voteAt[votes[i].ID] < s.voteAt[votes[j].ID]
	})
	return votes, nil
}

func (s *MemoryStore) VoteByVoter(gameID string, round int, voterID string) (*models.Vote, error) {
	defer s.lock()()
	for _, v := range s.votes {
		if v.GameID == gameID && v.Round == round && v.VoterID == voterID {
			v = cloneVote(v)
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) InsertVote(v *models.Vote) error {
	defer s.lock()()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	s.seq++
	s.voteAt[v.ID] = s.seq
	s.votes[v.ID] = cloneVote(*v)
	return nil
}

func (s *MemoryStore) SaveVote(v *models.Vote) error {
	defer s.lock()()
	s.votes[v.ID] = cloneVote(*v)
	return nil
}

func (s *MemoryStore) DeleteVotesByGame(gameID string) error {
	defer s.lock()()
	for id, v := range s.votes {
		if v.GameID == gameID {
			delete(s.votes, id)
			delete(s.voteAt, id)
		}
	}
	return nil
}

// Stored values are copied on every read and write so callers can never
// mutate store state through a shared slice or pointer.

func cloneGame(g models.Game) models.Game {
	g.TabooWords = append([]string(nil), g.TabooWords...)
	g.TurnOrder = append([]string(nil), g.TurnOrder...)
	if g.MaxRounds != nil {
		v := *g.MaxRounds
		g.MaxRounds = &v
	}
	if g.TurnTimeLimit != nil {
		v := *g.TurnTimeLimit
		g.TurnTimeLimit = &v
	}
	if g.TurnStartedAt != nil {
		v := *g.TurnStartedAt
		g.TurnStartedAt = &v
	}
	return g
}

func cloneVote(v models.Vote) models.Vote {
	if v.TargetID != nil {
		t := *v.TargetID
		v.TargetID = &t
	}
	return v
}
