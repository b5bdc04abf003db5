package models

import "time"

// Game phases
const (
	StatusLobby    = "lobby"
	StatusReveal   = "reveal"
	StatusClues    = "clues"
	StatusVoting   = "voting"
	StatusResults  = "results"
	StatusFinished = "finished"
)

// Turn order modes
const (
	TurnModeRandom = "random" // reshuffled at every round start
	TurnModeFixed  = "fixed"  // join order, rotated one seat per round
)

// Tie breaker policies
const (
	TieBreakerNone   = "none"   // nobody eliminated on a tie
	TieBreakerAll    = "all"    // every tied player eliminated
	TieBreakerRandom = "random" // one tied player eliminated at random
)

const (
	MinPlayers = 3
	MaxPlayers = 20
	CodeLength = 6
)

type Game struct {
	ID     string `json:"id" gorm:"primaryKey"`
	Code   string `json:"code" gorm:"uniqueIndex;not null"` // 6-char lowercase join code
	Status string `json:"status" gorm:"default:'lobby'"`

	// Back-filled after the host player is inserted (two-step creation).
	HostID string `json:"host_id"`

	// Settings — host-editable while in lobby only
	Category            string `json:"category" gorm:"default:'animales'"`
	ImpostorCount       int    `json:"impostor_count" gorm:"default:1"`
	AllImpostors        bool   `json:"all_impostors"`
	MaxRounds           *int   `json:"max_rounds,omitempty"`
	TurnTimeLimit       *int   `json:"turn_time_limit,omitempty"` // seconds
	TurnMode            string `json:"turn_mode" gorm:"default:'random'"`
	RequireClueText     bool   `json:"require_clue_text"`
	ShowCategory        bool   `json:"show_category"`
	SecretVoting        bool   `json:"secret_voting"`
	AllowSkipVote       bool   `json:"allow_skip_vote"`
	TieBreaker          string `json:"tie_breaker" gorm:"default:'none'"`
	ChainedClues        bool   `json:"chained_clues"`
	ChangeWordEachRound bool   `json:"change_word_each_round"`

	// Round state
	CurrentRound     int        `json:"current_round"`
	SecretWord       string     `json:"secret_word,omitempty"`
	TabooWords       []string   `json:"taboo_words,omitempty" gorm:"serializer:json"`
	TurnOrder        []string   `json:"turn_order,omitempty" gorm:"serializer:json"` // player ids, eliminated included
	CurrentTurnIndex int        `json:"current_turn_index"`                          // index into the active-filtered order
	TurnStartedAt    *time.Time `json:"turn_started_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InLobby reports whether settings changes and joins are still allowed.
func (g *Game) InLobby() bool {
	return g.Status == StatusLobby
}

// TurnDeadline returns the wall-clock deadline of the current turn, or the
// zero time when no timer is running.
func (g *Game) TurnDeadline() time.Time {
	if g.TurnStartedAt == nil || g.TurnTimeLimit == nil {
		return time.Time{}
	}
	return g.TurnStartedAt.Add(time.Duration(*g.TurnTimeLimit) * time.Second)
}
