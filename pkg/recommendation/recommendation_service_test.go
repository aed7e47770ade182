package recommendation

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/entities"
	"GameVault-Backend/pkg/catalog"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecommendationRepository struct {
	logs      []*entities.RecommendationLog
	createErr error
	latestErr error
}

func (r *fakeRecommendationRepository) CreateLog(ctx context.Context, log *entities.RecommendationLog) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeRecommendationRepository) GetLatestLog(ctx context.Context, userID string) (*entities.RecommendationLog, error) {
	if r.latestErr != nil {
		return nil, r.latestErr
	}
	var latest *entities.RecommendationLog
	for _, log := range r.logs {
		if log.UserID.String() != userID {
			continue
		}
		if latest == nil || log.CreatedAt.After(latest.CreatedAt) {
			latest = log
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

type fakeSavedGameRepository struct {
	games []*entities.SavedGame
	err   error
}

func (r *fakeSavedGameRepository) CreateSavedGame(ctx context.Context, savedGame *entities.SavedGame) error {
	return nil
}

func (r *fakeSavedGameRepository) GetSavedGame(ctx context.Context, userID string, gameID int) (*entities.SavedGame, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSavedGameRepository) GetSavedGames(ctx context.Context, userID string, page, limit int) ([]*entities.SavedGame, int64, error) {
	return r.games, int64(len(r.games)), nil
}

func (r *fakeSavedGameRepository) GetAllSavedGames(ctx context.Context, userID string) ([]*entities.SavedGame, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.games, nil
}

func (r *fakeSavedGameRepository) UpdateSavedGame(ctx context.Context, savedGame *entities.SavedGame) error {
	return nil
}

func (r *fakeSavedGameRepository) DeleteSavedGame(ctx context.Context, userID string, gameID int) error {
	return nil
}

func (r *fakeSavedGameRepository) IsGameSaved(ctx context.Context, userID string, gameID int) (bool, error) {
	return false, nil
}

type fakeUserRepository struct {
	user *entities.User
	err  error
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error { return nil }

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.user, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error { return nil }

type fakeGenerator struct {
	candidates  []domain.RecommendationCandidate
	err         error
	chatMessage string
	calls       int
	lastContext domain.UserContext
}

func (g *fakeGenerator) Generate(ctx context.Context, userContext domain.UserContext) ([]domain.RecommendationCandidate, error) {
	g.calls++
	g.lastContext = userContext
	if g.err != nil {
		return nil, g.err
	}
	return g.candidates, nil
}

func (g *fakeGenerator) GenerateChat(ctx context.Context, message string) (string, []domain.RecommendationCandidate, error) {
	g.calls++
	if g.err != nil {
		return "", nil, g.err
	}
	return g.chatMessage, g.candidates, nil
}

type countingSearcher struct {
	calls  int
	result *catalog.SearchResult
}

func (s *countingSearcher) SearchGames(ctx context.Context, params catalog.SearchParams) (*catalog.SearchResult, error) {
	s.calls++
	if s.result != nil {
		return s.result, nil
	}
	return &catalog.SearchResult{}, nil
}

func savedGameEntity(t *testing.T, userID uuid.UUID, gameID int, data domain.GameData) *entities.SavedGame {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return &entities.SavedGame{
		ID:       uuid.New(),
		UserID:   userID,
		GameID:   gameID,
		GameData: string(raw),
	}
}

func TestGenerateRecommendationsNoSavedGames(t *testing.T) {
	generator := &fakeGenerator{}
	searcher := &countingSearcher{}
	service := NewRecommendationService(
		&fakeRecommendationRepository{},
		&fakeSavedGameRepository{},
		&fakeUserRepository{err: gorm.ErrRecordNotFound},
		generator,
		searcher,
	)

	_, err := service.GenerateRecommendations(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNoSavedGames)

	// An empty library short-circuits before any external call.
	assert.Zero(t, generator.calls)
	assert.Zero(t, searcher.calls)
}

func TestGenerateRecommendations(t *testing.T) {
	userID := uuid.New()
	savedGameRepo := &fakeSavedGameRepository{games: []*entities.SavedGame{
		savedGameEntity(t, userID, 10, domain.GameData{Name: "Hades", Genres: []string{"Action"}, Rating: 4.7}),
		savedGameEntity(t, userID, 20, domain.GameData{Name: "Celeste", Genres: []string{"Platformer"}}),
	}}
	recommendationRepo := &fakeRecommendationRepository{}
	generator := &fakeGenerator{candidates: []domain.RecommendationCandidate{
		{Title: "Dead Cells", Genres: []string{"Action"}, EstimatedRating: "4.5"},
	}}
	searcher := &countingSearcher{result: &catalog.SearchResult{Results: []domain.Game{
		{ID: 99, Name: "Dead Cells", BackgroundImage: "https://img.example/dc.jpg"},
	}}}
	favoriteGenres, _ := json.Marshal([]string{"action", "indie"})
	userRepo := &fakeUserRepository{user: &entities.User{
		ID:             userID,
		Username:       "alice",
		FavoriteGenres: string(favoriteGenres),
	}}

	service := NewRecommendationService(recommendationRepo, savedGameRepo, userRepo, generator, searcher)

	response, err := service.GenerateRecommendations(context.Background(), userID.String())
	require.NoError(t, err)

	assert.Equal(t, 2, response.BasedOn)
	require.Len(t, response.Recommendations, 1)
	assert.Equal(t, "Dead Cells", response.Recommendations[0].Title)
	require.NotNil(t, response.Recommendations[0].GameID)
	assert.Equal(t, 99, *response.Recommendations[0].GameID)
	assert.False(t, response.GeneratedAt.IsZero())

	// The generator saw the full taste profile.
	assert.Equal(t, "alice", generator.lastContext.Username)
	assert.Equal(t, []string{"action", "indie"}, generator.lastContext.FavoriteGenres)
	require.Len(t, generator.lastContext.SavedGames, 2)
	require.NotNil(t, generator.lastContext.SavedGames[0].Rating)
	assert.Equal(t, 4.7, *generator.lastContext.SavedGames[0].Rating)

	// A snapshot landed in the log.
	require.Len(t, recommendationRepo.logs, 1)
	log := recommendationRepo.logs[0]
	assert.Equal(t, userID, log.UserID)

	var basedOn []int
	require.NoError(t, json.Unmarshal([]byte(log.BasedOnGameIDs), &basedOn))
	sort.Ints(basedOn)
	assert.Equal(t, []int{10, 20}, basedOn)
}

func TestGenerateRecommendationsSurvivesStoreFailure(t *testing.T) {
	userID := uuid.New()
	savedGameRepo := &fakeSavedGameRepository{games: []*entities.SavedGame{
		savedGameEntity(t, userID, 10, domain.GameData{Name: "Hades"}),
	}}
	service := NewRecommendationService(
		&fakeRecommendationRepository{createErr: errors.New("connection refused")},
		savedGameRepo,
		&fakeUserRepository{err: gorm.ErrRecordNotFound},
		&fakeGenerator{candidates: []domain.RecommendationCandidate{{Title: "Dead Cells"}}},
		&countingSearcher{},
	)

	response, err := service.GenerateRecommendations(context.Background(), userID.String())
	require.NoError(t, err, "a failed cache write never fails the request")
	require.Len(t, response.Recommendations, 1)
}

func TestGenerateRecommendationsSurvivesProfileFailure(t *testing.T) {
	userID := uuid.New()
	savedGameRepo := &fakeSavedGameRepository{games: []*entities.SavedGame{
		savedGameEntity(t, userID, 10, domain.GameData{Name: "Hades"}),
	}}
	generator := &fakeGenerator{candidates: []domain.RecommendationCandidate{{Title: "Dead Cells"}}}
	service := NewRecommendationService(
		&fakeRecommendationRepository{},
		savedGameRepo,
		&fakeUserRepository{err: errors.New("connection refused")},
		generator,
		&countingSearcher{},
	)

	_, err := service.GenerateRecommendations(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Empty(t, generator.lastContext.Username)
	assert.Len(t, generator.lastContext.SavedGames, 1)
}

func TestGenerateRecommendationsGeneratorFailure(t *testing.T) {
	userID := uuid.New()
	savedGameRepo := &fakeSavedGameRepository{games: []*entities.SavedGame{
		savedGameEntity(t, userID, 10, domain.GameData{Name: "Hades"}),
	}}
	recommendationRepo := &fakeRecommendationRepository{}
	service := NewRecommendationService(
		recommendationRepo,
		savedGameRepo,
		&fakeUserRepository{err: gorm.ErrRecordNotFound},
		&fakeGenerator{err: domain.ErrRecommendationUnavailable},
		&countingSearcher{},
	)

	_, err := service.GenerateRecommendations(context.Background(), userID.String())
	assert.ErrorIs(t, err, domain.ErrRecommendationUnavailable)
	assert.Empty(t, recommendationRepo.logs, "nothing is logged for a failed generation")
}

func TestGetLatestRecommendations(t *testing.T) {
	userID := uuid.New()
	savedGameRepo := &fakeSavedGameRepository{games: []*entities.SavedGame{
		savedGameEntity(t, userID, 10, domain.GameData{Name: "Hades"}),
	}}
	recommendationRepo := &fakeRecommendationRepository{}
	image := "https://img.example/dc.jpg"
	gameID := 99
	generator := &fakeGenerator{candidates: []domain.RecommendationCandidate{
		{Title: "Dead Cells", Reasoning: "fast roguelike", Genres: []string{"Action"}, EstimatedRating: "4.5"},
	}}
	searcher := &countingSearcher{result: &catalog.SearchResult{Results: []domain.Game{
		{ID: gameID, BackgroundImage: image},
	}}}
	service := NewRecommendationService(
		recommendationRepo,
		savedGameRepo,
		&fakeUserRepository{err: gorm.ErrRecordNotFound},
		generator,
		searcher,
	)

	generated, err := service.GenerateRecommendations(context.Background(), userID.String())
	require.NoError(t, err)

	// Reading the cache returns exactly what generation produced, round-tripped
	// through the serialized log.
	latest, err := service.GetLatestRecommendations(context.Background(), userID.String())
	require.NoError(t, err)
	assert.True(t, latest.Cached)
	assert.Equal(t, generated.Recommendations, latest.Recommendations)

	// Reads are idempotent.
	again, err := service.GetLatestRecommendations(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, latest.Recommendations, again.Recommendations)
	assert.Equal(t, latest.GeneratedAt, again.GeneratedAt)
}

func TestGetLatestRecommendationsErrors(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeRecommendationRepository
	}{
		{name: "no rows", repo: &fakeRecommendationRepository{}},
		{name: "missing table", repo: &fakeRecommendationRepository{latestErr: gorm.ErrRecordNotFound}},
		{name: "database down", repo: &fakeRecommendationRepository{latestErr: errors.New("connection refused")}},
		{name: "corrupt row", repo: &fakeRecommendationRepository{logs: []*entities.RecommendationLog{
			{UserID: uuid.Nil, Recommendations: "{not json"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewRecommendationService(
				tt.repo,
				&fakeSavedGameRepository{},
				&fakeUserRepository{err: gorm.ErrRecordNotFound},
				&fakeGenerator{},
				&countingSearcher{},
			)

			_, err := service.GetLatestRecommendations(context.Background(), uuid.Nil.String())
			assert.ErrorIs(t, err, domain.ErrNoRecommendations)
		})
	}
}

func TestChatRecommendations(t *testing.T) {
	generator := &fakeGenerator{
		chatMessage: "Try Hollow Knight!",
		candidates:  []domain.RecommendationCandidate{{Title: "Hollow Knight"}},
	}
	searcher := &countingSearcher{result: &catalog.SearchResult{Results: []domain.Game{
		{ID: 5, BackgroundImage: "https://img.example/hk.jpg"},
	}}}
	service := NewRecommendationService(
		&fakeRecommendationRepository{},
		&fakeSavedGameRepository{},
		&fakeUserRepository{err: gorm.ErrRecordNotFound},
		generator,
		searcher,
	)

	response, err := service.ChatRecommendations(
		context.Background(),
		domain.ChatRecommendationRequest{Message: "something like Ori?"},
		uuid.NewString(),
	)
	require.NoError(t, err)
	assert.Equal(t, "Try Hollow Knight!", response.Message)
	require.Len(t, response.Recommendations, 1)
	require.NotNil(t, response.Recommendations[0].GameID)
	assert.Equal(t, 5, *response.Recommendations[0].GameID)
}

func TestChatRecommendationsWithoutCandidates(t *testing.T) {
	searcher := &countingSearcher{}
	service := NewRecommendationService(
		&fakeRecommendationRepository{},
		&fakeSavedGameRepository{},
		&fakeUserRepository{err: gorm.ErrRecordNotFound},
		&fakeGenerator{chatMessage: "What genres do you enjoy?"},
		searcher,
	)

	response, err := service.ChatRecommendations(
		context.Background(),
		domain.ChatRecommendationRequest{Message: "hi"},
		uuid.NewString(),
	)
	require.NoError(t, err)
	assert.Equal(t, "What genres do you enjoy?", response.Message)
	assert.NotNil(t, response.Recommendations)
	assert.Empty(t, response.Recommendations)
	assert.Zero(t, searcher.calls)
}
