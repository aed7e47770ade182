package savedgame

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/entities"
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SavedGameService interface {
		SaveGame(ctx context.Context, req domain.SaveGameRequest, userID string) (domain.SavedGame, error)
		UnsaveGame(ctx context.Context, gameID int, userID string) error
		GetSavedGames(ctx context.Context, page, limit int, userID string) ([]domain.SavedGame, int64, error)
		UpdateSavedGame(ctx context.Context, gameID int, req domain.UpdateSavedGameRequest, userID string) (domain.SavedGame, error)
	}

	savedGameService struct {
		savedGameRepository SavedGameRepository
	}
)

func NewSavedGameService(savedGameRepository SavedGameRepository) SavedGameService {
	return &savedGameService{savedGameRepository: savedGameRepository}
}

func (s *savedGameService) SaveGame(ctx context.Context, req domain.SaveGameRequest, userID string) (domain.SavedGame, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SavedGame{}, domain.ErrParseUUID
	}

	saved, err := s.savedGameRepository.IsGameSaved(ctx, userID, req.GameID)
	if err != nil {
		return domain.SavedGame{}, err
	}
	if saved {
		return domain.SavedGame{}, domain.ErrGameAlreadySaved
	}

	gameData := domain.GameData{
		Name:            req.Name,
		BackgroundImage: req.BackgroundImage,
		Genres:          req.Genres,
		Rating:          req.Rating,
		Released:        req.Released,
	}
	if gameData.Genres == nil {
		gameData.Genres = []string{}
	}

	dataJSON, err := json.Marshal(gameData)
	if err != nil {
		return domain.SavedGame{}, err
	}

	savedGame := entities.SavedGame{
		ID:       uuid.New(),
		UserID:   userUUID,
		GameID:   req.GameID,
		GameData: string(dataJSON),
	}

	if err := s.savedGameRepository.CreateSavedGame(ctx, &savedGame); err != nil {
		return domain.SavedGame{}, err
	}

	return toDomainSavedGame(&savedGame), nil
}

func (s *savedGameService) UnsaveGame(ctx context.Context, gameID int, userID string) error {
	if err := s.savedGameRepository.DeleteSavedGame(ctx, userID, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSavedGameNotFound
		}
		return err
	}
	return nil
}

func (s *savedGameService) GetSavedGames(ctx context.Context, page, limit int, userID string) ([]domain.SavedGame, int64, error) {
	savedGames, count, err := s.savedGameRepository.GetSavedGames(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.SavedGame, 0, len(savedGames))
	for _, savedGame := range savedGames {
		result = append(result, toDomainSavedGame(savedGame))
	}

	return result, count, nil
}

func (s *savedGameService) UpdateSavedGame(ctx context.Context, gameID int, req domain.UpdateSavedGameRequest, userID string) (domain.SavedGame, error) {
	savedGame, err := s.savedGameRepository.GetSavedGame(ctx, userID, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SavedGame{}, domain.ErrSavedGameNotFound
		}
		return domain.SavedGame{}, err
	}

	if req.Rating != nil {
		savedGame.Rating = req.Rating
	}
	if req.Notes != "" {
		savedGame.Notes = req.Notes
	}

	if err := s.savedGameRepository.UpdateSavedGame(ctx, savedGame); err != nil {
		return domain.SavedGame{}, err
	}

	return toDomainSavedGame(savedGame), nil
}

func toDomainSavedGame(savedGame *entities.SavedGame) domain.SavedGame {
	var gameData domain.GameData
	if err := json.Unmarshal([]byte(savedGame.GameData), &gameData); err != nil {
		gameData = domain.GameData{}
	}

	return domain.SavedGame{
		ID:        savedGame.ID.String(),
		GameID:    savedGame.GameID,
		GameData:  gameData,
		Rating:    savedGame.Rating,
		Notes:     savedGame.Notes,
		CreatedAt: savedGame.CreatedAt,
	}
}
