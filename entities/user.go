package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username       string    `gorm:"uniqueIndex" json:"username"`
	FullName       string    `json:"full_name"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	Password       string    `json:"-"`
	Role           string    `json:"role"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	FavoriteGenres string    `gorm:"type:text" json:"favorite_genres"` // serialized []string
	IsVerified     bool      `json:"is_verified"`

	Timestamp
}
