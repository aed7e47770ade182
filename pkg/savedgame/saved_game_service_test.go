package savedgame

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/entities"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeSavedGameRepository keeps rows in a slice, newest first, mirroring the
// created_at desc ordering of the real queries.
type fakeSavedGameRepository struct {
	games []*entities.SavedGame
}

func (r *fakeSavedGameRepository) CreateSavedGame(ctx context.Context, savedGame *entities.SavedGame) error {
	r.games = append([]*entities.SavedGame{savedGame}, r.games...)
	return nil
}

func (r *fakeSavedGameRepository) GetSavedGame(ctx context.Context, userID string, gameID int) (*entities.SavedGame, error) {
	for _, savedGame := range r.games {
		if savedGame.UserID.String() == userID && savedGame.GameID == gameID {
			return savedGame, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSavedGameRepository) GetSavedGames(ctx context.Context, userID string, page, limit int) ([]*entities.SavedGame, int64, error) {
	var owned []*entities.SavedGame
	for _, savedGame := range r.games {
		if savedGame.UserID.String() == userID {
			owned = append(owned, savedGame)
		}
	}
	count := int64(len(owned))

	start := (page - 1) * limit
	if start > len(owned) {
		start = len(owned)
	}
	end := start + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], count, nil
}

func (r *fakeSavedGameRepository) GetAllSavedGames(ctx context.Context, userID string) ([]*entities.SavedGame, error) {
	var owned []*entities.SavedGame
	for _, savedGame := range r.games {
		if savedGame.UserID.String() == userID {
			owned = append(owned, savedGame)
		}
	}
	return owned, nil
}

func (r *fakeSavedGameRepository) UpdateSavedGame(ctx context.Context, savedGame *entities.SavedGame) error {
	for i, existing := range r.games {
		if existing.ID == savedGame.ID {
			r.games[i] = savedGame
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeSavedGameRepository) DeleteSavedGame(ctx context.Context, userID string, gameID int) error {
	for i, savedGame := range r.games {
		if savedGame.UserID.String() == userID && savedGame.GameID == gameID {
			r.games = append(r.games[:i], r.games[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeSavedGameRepository) IsGameSaved(ctx context.Context, userID string, gameID int) (bool, error) {
	for _, savedGame := range r.games {
		if savedGame.UserID.String() == userID && savedGame.GameID == gameID {
			return true, nil
		}
	}
	return false, nil
}

func TestSaveGame(t *testing.T) {
	repo := &fakeSavedGameRepository{}
	service := NewSavedGameService(repo)
	userID := uuid.NewString()

	saved, err := service.SaveGame(context.Background(), domain.SaveGameRequest{
		GameID:          42,
		Name:            "Hades",
		BackgroundImage: "https://img.example/hades.jpg",
		Genres:          []string{"Action", "Indie"},
		Rating:          4.7,
		Released:        "2020-09-17",
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, 42, saved.GameID)
	assert.Equal(t, "Hades", saved.GameData.Name)
	assert.Equal(t, []string{"Action", "Indie"}, saved.GameData.Genres)
	assert.Equal(t, 4.7, saved.GameData.Rating)

	// The stored row carries the full serialized snapshot.
	require.Len(t, repo.games, 1)
	var gameData domain.GameData
	require.NoError(t, json.Unmarshal([]byte(repo.games[0].GameData), &gameData))
	assert.Equal(t, "https://img.example/hades.jpg", gameData.BackgroundImage)
}

func TestSaveGameDuplicate(t *testing.T) {
	repo := &fakeSavedGameRepository{}
	service := NewSavedGameService(repo)
	userID := uuid.NewString()

	_, err := service.SaveGame(context.Background(), domain.SaveGameRequest{GameID: 42, Name: "Hades"}, userID)
	require.NoError(t, err)

	_, err = service.SaveGame(context.Background(), domain.SaveGameRequest{GameID: 42, Name: "Hades"}, userID)
	assert.ErrorIs(t, err, domain.ErrGameAlreadySaved)
	assert.Len(t, repo.games, 1)
}

func TestSaveGameSameGameDifferentUsers(t *testing.T) {
	repo := &fakeSavedGameRepository{}
	service := NewSavedGameService(repo)

	_, err := service.SaveGame(context.Background(), domain.SaveGameRequest{GameID: 42, Name: "Hades"}, uuid.NewString())
	require.NoError(t, err)
	_, err = service.SaveGame(context.Background(), domain.SaveGameRequest{GameID: 42, Name: "Hades"}, uuid.NewString())
	require.NoError(t, err)
	assert.Len(t, repo.games, 2)
}

func TestSaveGameInvalidUserID(t *testing.T) {
	service := NewSavedGameService(&fakeSavedGameRepository{})

	_, err := service.SaveGame(context.Background(), domain.SaveGameRequest{GameID: 42, Name: "Hades"}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestSaveGameDefaultsGenres(t *testing.T) {
	service := NewSavedGameService(&fakeSavedGameRepository{})

	saved, err := service.SaveGame(context.Background(), domain.SaveGameRequest{GameID: 42, Name: "Hades"}, uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, saved.GameData.Genres)
	assert.Empty(t, saved.GameData.Genres)
}

func TestUnsaveGame(t *testing.T) {
	repo := &fakeSavedGameRepository{}
	service := NewSavedGameService(repo)
	userID := uuid.NewString()

	_, err := service.SaveGame(context.Background(), domain.SaveGameRequest{GameID: 42, Name: "Hades"}, userID)
	require.NoError(t, err)

	require.NoError(t, service.UnsaveGame(context.Background(), 42, userID))
	assert.Empty(t, repo.games)

	// Removing it again reports not found.
	err = service.UnsaveGame(context.Background(), 42, userID)
	assert.ErrorIs(t, err, domain.ErrSavedGameNotFound)
}

func TestGetSavedGames(t *testing.T) {
	repo := &fakeSavedGameRepository{}
	service := NewSavedGameService(repo)
	userID := uuid.NewString()

	for gameID := 1; gameID <= 5; gameID++ {
		_, err := service.SaveGame(context.Background(), domain.SaveGameRequest{GameID: gameID, Name: "Game"}, userID)
		require.NoError(t, err)
	}

	firstPage, count, err := service.GetSavedGames(context.Background(), 1, 2, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	require.Len(t, firstPage, 2)

	lastPage, _, err := service.GetSavedGames(context.Background(), 3, 2, userID)
	require.NoError(t, err)
	assert.Len(t, lastPage, 1)

	// Another user sees nothing.
	otherPage, otherCount, err := service.GetSavedGames(context.Background(), 1, 10, uuid.NewString())
	require.NoError(t, err)
	assert.Zero(t, otherCount)
	assert.Empty(t, otherPage)
}

func TestUpdateSavedGame(t *testing.T) {
	repo := &fakeSavedGameRepository{}
	service := NewSavedGameService(repo)
	userID := uuid.NewString()

	_, err := service.SaveGame(context.Background(), domain.SaveGameRequest{GameID: 42, Name: "Hades"}, userID)
	require.NoError(t, err)

	rating := 5
	updated, err := service.UpdateSavedGame(context.Background(), 42, domain.UpdateSavedGameRequest{
		Rating: &rating,
		Notes:  "all heat levels cleared",
	}, userID)
	require.NoError(t, err)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 5, *updated.Rating)
	assert.Equal(t, "all heat levels cleared", updated.Notes)

	// A partial update keeps the previous rating.
	updated, err = service.UpdateSavedGame(context.Background(), 42, domain.UpdateSavedGameRequest{
		Notes: "replaying",
	}, userID)
	require.NoError(t, err)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 5, *updated.Rating)
	assert.Equal(t, "replaying", updated.Notes)
}

func TestUpdateSavedGameNotFound(t *testing.T) {
	service := NewSavedGameService(&fakeSavedGameRepository{})

	rating := 3
	_, err := service.UpdateSavedGame(context.Background(), 42, domain.UpdateSavedGameRequest{Rating: &rating}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrSavedGameNotFound)
}
