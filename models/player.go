package models

import "time"

// Player is a named local profile owned by a User. One account can hold
// several profiles (pass-and-play on a shared device), each accruing its
// own match history and stats.
type Player struct {
	ID          string    `json:"player_id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	DisplayName string    `json:"name" gorm:"not null"`
	Handle      string    `json:"handle"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	Results []MatchResult `json:"-" gorm:"foreignKey:PlayerID"`
}
