package recommendation

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/entities"
	"GameVault-Backend/internal/utils/logging"
	"GameVault-Backend/pkg/savedgame"
	"GameVault-Backend/pkg/user"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecommendationService interface {
		GenerateRecommendations(ctx context.Context, userID string) (domain.GenerateRecommendationsResponse, error)
		GetLatestRecommendations(ctx context.Context, userID string) (domain.LatestRecommendationsResponse, error)
		ChatRecommendations(ctx context.Context, req domain.ChatRecommendationRequest, userID string) (domain.ChatRecommendationResponse, error)
	}

	recommendationService struct {
		recommendationRepository RecommendationRepository
		savedGameRepository      savedgame.SavedGameRepository
		userRepository           user.UserRepository
		generator                Generator
		searcher                 GameSearcher
	}
)

func NewRecommendationService(
	recommendationRepository RecommendationRepository,
	savedGameRepository savedgame.SavedGameRepository,
	userRepository user.UserRepository,
	generator Generator,
	searcher GameSearcher,
) RecommendationService {
	return &recommendationService{
		recommendationRepository: recommendationRepository,
		savedGameRepository:      savedGameRepository,
		userRepository:           userRepository,
		generator:                generator,
		searcher:                 searcher,
	}
}

func (s *recommendationService) GenerateRecommendations(ctx context.Context, userID string) (domain.GenerateRecommendationsResponse, error) {
	savedGames, err := s.savedGameRepository.GetAllSavedGames(ctx, userID)
	if err != nil {
		return domain.GenerateRecommendationsResponse{}, err
	}

	if len(savedGames) == 0 {
		return domain.GenerateRecommendationsResponse{}, domain.ErrNoSavedGames
	}

	userContext := s.buildUserContext(ctx, userID, savedGames)

	candidates, err := s.generator.Generate(ctx, userContext)
	if err != nil {
		return domain.GenerateRecommendationsResponse{}, err
	}

	enriched := Enrich(ctx, s.searcher, candidates)

	// The cache write is best-effort: the generated recommendations go back
	// to the caller whether or not the snapshot lands.
	if err := s.persistLog(ctx, userID, savedGames, enriched); err != nil {
		logging.Logger.Warn().
			Err(err).
			Str("user_id", userID).
			Msg("could not save recommendation log")
	}

	return domain.GenerateRecommendationsResponse{
		Recommendations: enriched,
		BasedOn:         len(savedGames),
		GeneratedAt:     time.Now(),
	}, nil
}

func (s *recommendationService) GetLatestRecommendations(ctx context.Context, userID string) (domain.LatestRecommendationsResponse, error) {
	log, err := s.recommendationRepository.GetLatestLog(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logging.Logger.Warn().
				Err(err).
				Str("user_id", userID).
				Msg("could not read recommendation log")
		}
		return domain.LatestRecommendationsResponse{}, domain.ErrNoRecommendations
	}

	var recommendations []domain.EnrichedRecommendation
	if err := json.Unmarshal([]byte(log.Recommendations), &recommendations); err != nil {
		logging.Logger.Warn().
			Err(err).
			Str("user_id", userID).
			Msg("corrupt recommendation log entry")
		return domain.LatestRecommendationsResponse{}, domain.ErrNoRecommendations
	}

	return domain.LatestRecommendationsResponse{
		Recommendations: recommendations,
		GeneratedAt:     log.CreatedAt,
		Cached:          true,
	}, nil
}

func (s *recommendationService) ChatRecommendations(ctx context.Context, req domain.ChatRecommendationRequest, userID string) (domain.ChatRecommendationResponse, error) {
	message, candidates, err := s.generator.GenerateChat(ctx, req.Message)
	if err != nil {
		return domain.ChatRecommendationResponse{}, err
	}

	enriched := []domain.EnrichedRecommendation{}
	if len(candidates) > 0 {
		enriched = Enrich(ctx, s.searcher, candidates)
	}

	return domain.ChatRecommendationResponse{
		Message:         message,
		Recommendations: enriched,
	}, nil
}

// buildUserContext assembles the transient generation input from the saved
// games plus the user's profile. Profile lookup failures only cost the
// username and favorite-genre hints, never the generation itself.
func (s *recommendationService) buildUserContext(ctx context.Context, userID string, savedGames []*entities.SavedGame) domain.UserContext {
	userContext := domain.UserContext{
		SavedGames: make([]domain.OwnedGameSummary, 0, len(savedGames)),
	}

	for _, savedGame := range savedGames {
		var gameData domain.GameData
		if err := json.Unmarshal([]byte(savedGame.GameData), &gameData); err != nil {
			continue
		}

		summary := domain.OwnedGameSummary{
			Name:   gameData.Name,
			Genres: gameData.Genres,
		}
		if gameData.Rating > 0 {
			rating := gameData.Rating
			summary.Rating = &rating
		}
		userContext.SavedGames = append(userContext.SavedGames, summary)
	}

	if profile, err := s.userRepository.GetUserByID(ctx, userID); err == nil {
		userContext.Username = profile.Username

		var favoriteGenres []string
		if err := json.Unmarshal([]byte(profile.FavoriteGenres), &favoriteGenres); err == nil {
			userContext.FavoriteGenres = favoriteGenres
		}
	}

	return userContext
}

func (s *recommendationService) persistLog(ctx context.Context, userID string, savedGames []*entities.SavedGame, enriched []domain.EnrichedRecommendation) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	recommendationsJSON, err := json.Marshal(enriched)
	if err != nil {
		return err
	}

	basedOnIDs := make([]int, 0, len(savedGames))
	for _, savedGame := range savedGames {
		basedOnIDs = append(basedOnIDs, savedGame.GameID)
	}
	basedOnJSON, err := json.Marshal(basedOnIDs)
	if err != nil {
		return err
	}

	log := entities.RecommendationLog{
		ID:              uuid.New(),
		UserID:          userUUID,
		Recommendations: string(recommendationsJSON),
		BasedOnGameIDs:  string(basedOnJSON),
		CreatedAt:       time.Now(),
	}

	return s.recommendationRepository.CreateLog(ctx, &log)
}
