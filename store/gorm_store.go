package store

import (
	"errors"

	"gorm.io/gorm"

	"impostor-game-server/models"
)

// GormStore backs the session store with a relational database (postgres in
// production, sqlite in tests). Atomic maps to a database transaction, which
// is what gives two concurrent submitClue calls for the same game a single
// winner.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Migrate creates the game tables.
func (s *GormStore) Migrate() error {
	return s.DB.AutoMigrate(
		&models.Game{},
		&models.Player{},
		&models.Clue{},
		&models.Vote{},
	)
}

func (s *GormStore) Atomic(fn func(tx Store) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}

func (s *GormStore) GetGame(id string) (*models.Game, error) {
	var game models.Game
	if err := s.DB.First(&game, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

func (s *GormStore) GetGameByCode(code string) (*models.Game, error) {
	var game models.Game
	if err := s.DB.First(&game, "code = ?", code).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

func (s *GormStore) GamesWithRunningTimers() ([]models.Game, error) {
	var games []models.Game
	err := s.DB.Where(
		"status = ? AND turn_started_at IS NOT NULL AND turn_time_limit IS NOT NULL",
		models.StatusClues,
	).Find(&games).Error
	return games, err
}

func (s *GormStore) InsertGame(g *models.Game) error {
	return s.DB.Create(g).Error
}

func (s *GormStore) SaveGame(g *models.Game) error {
	return s.DB.Save(g).Error
}

func (s *GormStore) DeleteGame(id string) error {
	return s.DB.Delete(&models.Game{}, "id = ?", id).Error
}

func (s *GormStore) GetPlayer(id string) (*models.Player, error) {
	var player models.Player
	if err := s.DB.First(&player, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &player, nil
}

func (s *GormStore) PlayersByGame(gameID string) ([]models.Player, error) {
	var players []models.Player
	err := s.DB.Where("game_id = ?", gameID).
		Order("joined_at asc, id asc").
		Find(&players).Error
	return players, err
}

func (s *GormStore) PlayerBySession(gameID, sessionID string) (*models.Player, error) {
	var player models.Player
	err := s.DB.First(&player, "game_id = ? AND session_id = ?", gameID, sessionID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &player, nil
}

func (s *GormStore) InsertPlayer(p *models.Player) error {
	return s.DB.Create(p).Error
}

func (s *GormStore) SavePlayer(p *models.Player) error {
	return s.DB.Save(p).Error
}

func (s *GormStore) DeletePlayer(id string) error {
	return s.DB.Delete(&models.Player{}, "id = ?", id).Error
}

func (s *GormStore) CluesByRound(gameID string, round int) ([]models.Clue, error) {
	var clues []models.Clue
	err := s.DB.Where("game_id = ? AND round = ?", gameID, round).
		Order("turn_order asc").
		Find(&clues).Error
	return clues, err
}

func (s *GormStore) InsertClue(c *models.Clue) error {
	return s.DB.Create(c).Error
}

func (s *GormStore) DeleteCluesByGame(gameID string) error {
	return s.DB.Delete(&models.Clue{}, "game_id = ?", gameID).Error
}

func (s *GormStore) VotesByRound(gameID string, round int) ([]models.Vote, error) {
	var votes []models.Vote
	err := s.DB.Where("game_id = ? AND round = ?", gameID, round).
		Order("created_at asc").
		Find(&votes).Error
	return votes, err
}

func (s *GormStore) VoteByVoter(gameID string, round int, voterID string) (*models.Vote, error) {
	var vote models.Vote
	err := s.DB.First(&vote, "game_id = ? AND round = ? AND voter_id = ?", gameID, round, voterID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &vote, nil
}

func (s *GormStore) InsertVote(v *models.Vote) error {
	return s.DB.Create(v).Error
}

func (s *GormStore) SaveVote(v *models.Vote) error {
	return s.DB.Save(v).Error
}

func (s *GormStore) DeleteVotesByGame(gameID string) error {
	return s.DB.Delete(&models.Vote{}, "game_id = ?", gameID).Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
