package models

import "time"

// Clue kinds. Non-text turns carry a tag instead of a sentinel string, so
// turn advancement and chaining never compare magic values.
const (
	ClueKindText    = "text"    // free-text clue, Text holds the word
	ClueKindDone    = "done"    // turn confirmed without text
	ClueKindTimeout = "timeout" // turn timer expired before a clue arrived
)

// Clue records one turn taken. At most one row exists per
// (game, round, player); rows are immutable once inserted.
type Clue struct {
	ID       string `json:"id" gorm:"primaryKey"`
	GameID   string `json:"game_id" gorm:"index:idx_clue_round;not null"`
	Round    int    `json:"round" gorm:"index:idx_clue_round;not null"`
	PlayerID string `json:"player_id" gorm:"not null"`
	Kind     string `json:"kind" gorm:"default:'text'"`
	Text     string `json:"text"`
	Order    int    `json:"order" gorm:"column:turn_order"` // turn index at submission time

	CreatedAt time.Time `json:"created_at"`
}

// HasText reports whether the clue carries chainable text.
func (c *Clue) HasText() bool {
	return c.Kind == ClueKindText && c.Text != ""
}
