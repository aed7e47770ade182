package savedgame

import (
	"GameVault-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	SavedGameRepository interface {
		CreateSavedGame(ctx context.Context, savedGame *entities.SavedGame) error
		GetSavedGame(ctx context.Context, userID string, gameID int) (*entities.SavedGame, error)
		GetSavedGames(ctx context.Context, userID string, page, limit int) ([]*entities.SavedGame, int64, error)
		GetAllSavedGames(ctx context.Context, userID string) ([]*entities.SavedGame, error)
		UpdateSavedGame(ctx context.Context, savedGame *entities.SavedGame) error
		DeleteSavedGame(ctx context.Context, userID string, gameID int) error
		IsGameSaved(ctx context.Context, userID string, gameID int) (bool, error)
	}

	savedGameRepository struct {
		db *gorm.DB
	}
)

func NewSavedGameRepository(db *gorm.DB) SavedGameRepository {
	return &savedGameRepository{db: db}
}

func (r *savedGameRepository) CreateSavedGame(ctx context.Context, savedGame *entities.SavedGame) error {
	return r.db.WithContext(ctx).Create(savedGame).Error
}

func (r *savedGameRepository) GetSavedGame(ctx context.Context, userID string, gameID int) (*entities.SavedGame, error) {
	var savedGame entities.SavedGame
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&savedGame).Error; err != nil {
		return nil, err
	}
	return &savedGame, nil
}

func (r *savedGameRepository) GetSavedGames(ctx context.Context, userID string, page, limit int) ([]*entities.SavedGame, int64, error) {
	var savedGames []*entities.SavedGame
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.SavedGame{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&savedGames).Error; err != nil {
		return nil, 0, err
	}

	return savedGames, count, nil
}

func (r *savedGameRepository) GetAllSavedGames(ctx context.Context, userID string) ([]*entities.SavedGame, error) {
	var savedGames []*entities.SavedGame
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&savedGames).Error; err != nil {
		return nil, err
	}
	return savedGames, nil
}

func (r *savedGameRepository) UpdateSavedGame(ctx context.Context, savedGame *entities.SavedGame) error {
	return r.db.WithContext(ctx).Save(savedGame).Error
}

func (r *savedGameRepository) DeleteSavedGame(ctx context.Context, userID string, gameID int) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&entities.SavedGame{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *savedGameRepository) IsGameSaved(ctx context.Context, userID string, gameID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.SavedGame{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return count > 0, nil
}
