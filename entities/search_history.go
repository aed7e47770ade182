package entities

import (
	"github.com/google/uuid"
	"time"
)

type SearchHistory struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"index" json:"user_id"`
	Genres       string    `gorm:"type:text" json:"genres"` // serialized []string
	ResultsCount int       `json:"results_count"`
	Metadata     string    `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt    time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
