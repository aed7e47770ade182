package entities

import (
	"github.com/google/uuid"
)

type SavedGame struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_saved_games_user_game" json:"user_id"`
	GameID   int       `gorm:"uniqueIndex:idx_saved_games_user_game" json:"game_id"`
	GameData string    `gorm:"type:text" json:"game_data"` // serialized domain.GameData
	Rating   *int      `json:"rating,omitempty"`           // personal rating 1-5
	Notes    string    `gorm:"type:text" json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
