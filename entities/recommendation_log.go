package entities

import (
	"github.com/google/uuid"
	"time"
)

// RecommendationLog rows are append-only: every generation writes a new row
// and reads always take the most recent one.
type RecommendationLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"index" json:"user_id"`
	Recommendations string    `gorm:"type:text" json:"recommendations"`    // serialized []domain.EnrichedRecommendation
	BasedOnGameIDs  string    `gorm:"type:text" json:"based_on_game_ids"`  // serialized []int
	CreatedAt       time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
