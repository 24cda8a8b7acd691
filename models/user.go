package models

import "time"

const LoginTypeAnonymous = "anonymous"

// User is the account a player profile belongs to. The primary key is the
// external identifier handed to us by the client (a Google Play Games ID,
// or a locally generated UUID for anonymous accounts), so no separate
// internal id is kept.
type User struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	LoginType string    `json:"login_type" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Players []Player `json:"players,omitempty" gorm:"foreignKey:UserID"`
}
