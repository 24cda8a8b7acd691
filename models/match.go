package models

import "time"

// Match records one completed game session. Its results are written in the
// same transaction as the match row, so a match is never partially recorded.
type Match struct {
	ID       string        `json:"match_id" gorm:"primaryKey"`
	PlayedAt time.Time     `json:"played_at"`
	Results  []MatchResult `json:"results,omitempty" gorm:"foreignKey:MatchID"`
}

// MatchResult is one player's outcome within one match. Rows are immutable:
// created with their match, never updated or deleted. Won is derived on
// ingestion (rank 1 wins) rather than trusted from the client.
type MatchResult struct {
	ID       string `json:"result_id" gorm:"primaryKey"`
	MatchID  string `json:"match_id" gorm:"index;not null"`
	PlayerID string `json:"player_id" gorm:"index;not null"`
	Score    int64  `json:"score" gorm:"not null"`
	Rank     int    `json:"rank" gorm:"not null"`
	Won      bool   `json:"won" gorm:"not null"`
	Turns    int    `json:"turns" gorm:"default:0"`
	Farkles  int    `json:"farkles" gorm:"default:0"`
}
