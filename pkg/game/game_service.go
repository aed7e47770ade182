package game

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/entities"
	"GameVault-Backend/internal/utils/logging"
	"GameVault-Backend/pkg/catalog"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type (
	GameService interface {
		SearchGames(ctx context.Context, req domain.GameSearchRequest, userID string) (domain.GameListResponse, error)
		GetSpecialGames(ctx context.Context, listType, year string) (domain.SpecialListResponse, error)
		GetGameDetail(ctx context.Context, gameID int) (domain.GameDetailResponse, error)
		GetGenres(ctx context.Context) ([]domain.Genre, error)
	}

	gameService struct {
		gameRepository GameRepository
		catalogClient  catalog.Client
	}
)

func NewGameService(gameRepository GameRepository, catalogClient catalog.Client) GameService {
	return &gameService{
		gameRepository: gameRepository,
		catalogClient:  catalogClient,
	}
}

func (s *gameService) SearchGames(ctx context.Context, req domain.GameSearchRequest, userID string) (domain.GameListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	genresFormatted := ""
	if len(req.Genres) > 0 {
		genresFormatted = catalog.FormatGenresForAPI(req.Genres)
	}

	result, err := s.catalogClient.SearchGames(ctx, catalog.SearchParams{
		Genres:   genresFormatted,
		Page:     page,
		PageSize: 40,
		Search:   req.Search,
		Ordering: "-rating",
	})
	if err != nil {
		return domain.GameListResponse{}, err
	}

	if userID != "" && len(req.Genres) > 0 {
		s.recordSearchHistory(ctx, userID, req, result.Count)
	}

	games := result.Results
	if games == nil {
		games = []domain.Game{}
	}

	return domain.GameListResponse{
		Games:   games,
		Count:   result.Count,
		HasMore: result.Next != nil,
		Page:    page,
	}, nil
}

func (s *gameService) GetSpecialGames(ctx context.Context, listType, year string) (domain.SpecialListResponse, error) {
	var params catalog.SearchParams

	switch listType {
	case "best-of-year":
		if year == "" {
			year = fmt.Sprintf("%d", time.Now().Year())
		}
		params = catalog.SearchParams{
			Dates:    fmt.Sprintf("%s-01-01,%s-12-31", year, year),
			Ordering: "-metacritic,-rating",
			PageSize: 40,
		}
	case "top-50":
		params = catalog.SearchParams{
			Ordering: "-rating,-metacritic",
			PageSize: 50,
		}
	default:
		return domain.SpecialListResponse{}, domain.ErrInvalidSpecialType
	}

	result, err := s.catalogClient.SearchGames(ctx, params)
	if err != nil {
		return domain.SpecialListResponse{}, err
	}

	games := result.Results
	if games == nil {
		games = []domain.Game{}
	}

	return domain.SpecialListResponse{
		Games: games,
		Count: result.Count,
	}, nil
}

func (s *gameService) GetGameDetail(ctx context.Context, gameID int) (domain.GameDetailResponse, error) {
	var (
		details     map[string]interface{}
		screenshots []domain.Screenshot
		trailers    []domain.Trailer
		detailsErr  error
	)

	done := make(chan struct{}, 3)

	go func() {
		details, detailsErr = s.catalogClient.GetGameDetails(ctx, gameID)
		done <- struct{}{}
	}()
	go func() {
		// Screenshot and trailer failures degrade to empty lists, the detail
		// page still renders without them.
		result, err := s.catalogClient.GetGameScreenshots(ctx, gameID)
		if err == nil {
			screenshots = result
		}
		done <- struct{}{}
	}()
	go func() {
		result, err := s.catalogClient.GetGameTrailers(ctx, gameID)
		if err == nil {
			trailers = result
		}
		done <- struct{}{}
	}()

	for i := 0; i < 3; i++ {
		<-done
	}

	if detailsErr != nil {
		return domain.GameDetailResponse{}, detailsErr
	}

	if screenshots == nil {
		screenshots = []domain.Screenshot{}
	}
	if trailers == nil {
		trailers = []domain.Trailer{}
	}

	return domain.GameDetailResponse{
		Game:        details,
		Screenshots: screenshots,
		Trailers:    trailers,
	}, nil
}

func (s *gameService) GetGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.catalogClient.GetGenres(ctx)
}

// recordSearchHistory is best-effort, a failed insert never fails the search.
func (s *gameService) recordSearchHistory(ctx context.Context, userID string, req domain.GameSearchRequest, resultsCount int) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return
	}

	genresJSON, _ := json.Marshal(req.Genres)
	metadata, _ := json.Marshal(map[string]interface{}{
		"page":            req.Page,
		"has_search_term": req.Search != "",
	})

	history := entities.SearchHistory{
		ID:           uuid.New(),
		UserID:       userUUID,
		Genres:       string(genresJSON),
		ResultsCount: resultsCount,
		Metadata:     string(metadata),
		CreatedAt:    time.Now(),
	}

	if err := s.gameRepository.CreateSearchHistory(ctx, &history); err != nil {
		logging.Logger.Warn().
			Err(err).
			Str("user_id", userID).
			Msg("could not save search history")
	}
}
