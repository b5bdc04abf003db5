package models

import "time"

type Player struct {
	ID     string `json:"id" gorm:"primaryKey"`
	GameID string `json:"game_id" gorm:"index;uniqueIndex:idx_game_session;not null"`
	Name   string `json:"name" gorm:"not null"`

	// Device identity. A session joining the same game twice gets its
	// existing player back instead of a duplicate.
	SessionID string `json:"session_id" gorm:"uniqueIndex:idx_game_session;not null"`

	IsImpostor   bool `json:"is_impostor"`
	IsEliminated bool `json:"is_eliminated"`
	Score        int  `json:"score"`

	JoinedAt  time.Time `json:"joined_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
