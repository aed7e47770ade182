package game

import (
	"GameVault-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	GameRepository interface {
		CreateSearchHistory(ctx context.Context, history *entities.SearchHistory) error
	}

	gameRepository struct {
		db *gorm.DB
	}
)

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) CreateSearchHistory(ctx context.Context, history *entities.SearchHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}
