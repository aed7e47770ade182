package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateRecommendations = "success generate recommendations"
	MessageSuccessGetRecommendations      = "success get recommendations"
	MessageSuccessChatRecommendations     = "success get chat recommendations"

	MessageFailedGenerateRecommendations = "failed to generate recommendations"
	MessageFailedGetRecommendations      = "failed to get recommendations"
	MessageFailedChatRecommendations     = "failed to process chat message"

	MessageNoSavedGames      = "Save some games first to receive personalized recommendations"
	MessageNoRecommendations = "No previous recommendations. Generate new ones."

	ErrNoSavedGames              = errors.New("no saved games available for recommendation generation")
	ErrRecommendationUnavailable = errors.New("recommendation API processing failed")
	ErrRecommendationParse       = errors.New("failed to parse recommendation response")
	ErrNoRecommendations         = errors.New("no previous recommendations found")
)

type (
	// OwnedGameSummary is one saved game as presented to the generative model.
	OwnedGameSummary struct {
		Name   string   `json:"name"`
		Genres []string `json:"genres,omitempty"`
		Rating *float64 `json:"rating,omitempty"`
	}

	// UserContext is the transient generation input, rebuilt per request from
	// the user's saved games and profile.
	UserContext struct {
		SavedGames     []OwnedGameSummary
		FavoriteGenres []string
		Username       string
	}

	RecommendationCandidate struct {
		Title           string   `json:"title"`
		Reasoning       string   `json:"reasoning"`
		Genres          []string `json:"genres"`
		EstimatedRating string   `json:"estimatedRating"`
	}

	// EnrichedRecommendation carries the candidate plus a best-effort catalog
	// lookup result. Image and GameID are both nil when the lookup failed,
	// timed out, or matched nothing.
	EnrichedRecommendation struct {
		RecommendationCandidate
		Image  *string `json:"image"`
		GameID *int    `json:"gameId"`
	}

	GenerateRecommendationsResponse struct {
		Recommendations []EnrichedRecommendation `json:"recommendations"`
		BasedOn         int                      `json:"based_on"`
		GeneratedAt     time.Time                `json:"generated_at"`
	}

	LatestRecommendationsResponse struct {
		Recommendations []EnrichedRecommendation `json:"recommendations"`
		GeneratedAt     time.Time                `json:"generated_at"`
		Cached          bool                     `json:"cached"`
	}

	ChatRecommendationRequest struct {
		Message string `json:"message" validate:"required,max=500"`
	}

	ChatRecommendationResponse struct {
		Message         string                   `json:"message"`
		Recommendations []EnrichedRecommendation `json:"recommendations"`
	}
)
