package models

import "time"

// Vote is one voter's choice for the current round. TargetID nil means a
// skip/abstain vote. Revoting before the round closes updates the row in
// place; there is never more than one per (game, round, voter).
type Vote struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	GameID   string  `json:"game_id" gorm:"index:idx_vote_round;uniqueIndex:idx_vote_voter;not null"`
	Round    int     `json:"round" gorm:"index:idx_vote_round;uniqueIndex:idx_vote_voter;not null"`
	VoterID  string  `json:"voter_id" gorm:"uniqueIndex:idx_vote_voter;not null"`
	TargetID *string `json:"target_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSkip reports whether the vote abstains from eliminating anyone.
func (v *Vote) IsSkip() bool {
	return v.TargetID == nil
}
