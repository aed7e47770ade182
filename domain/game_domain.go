package domain

import (
	"errors"
)

var (
	MessageSuccessGetGames      = "success get games"
	MessageSuccessGetGameDetail = "success get game detail"
	MessageSuccessGetGenres     = "success get genres"

	MessageFailedGetGames      = "failed to get games"
	MessageFailedGetGameDetail = "failed to get game detail"
	MessageFailedGetGenres     = "failed to get genres"

	ErrCatalogUnavailable = errors.New("game catalog API unavailable")
	ErrInvalidGameID      = errors.New("invalid game ID")
	ErrInvalidSpecialType = errors.New("invalid special list type")
)

type (
	GameSearchRequest struct {
		Genres []string `json:"genres,omitempty"`
		Page   int      `json:"page,omitempty"`
		Search string   `json:"search,omitempty"`
	}

	Genre struct {
		ID              int    `json:"id"`
		Name            string `json:"name"`
		Slug            string `json:"slug"`
		GamesCount      int    `json:"games_count,omitempty"`
		ImageBackground string `json:"image_background,omitempty"`
	}

	Game struct {
		ID              int     `json:"id"`
		Name            string  `json:"name"`
		Slug            string  `json:"slug"`
		BackgroundImage string  `json:"background_image"`
		Rating          float64 `json:"rating"`
		RatingsCount    int     `json:"ratings_count"`
		Released        string  `json:"released"`
		Metacritic      *int    `json:"metacritic"`
		Playtime        int     `json:"playtime"`
		Genres          []Genre `json:"genres"`
	}

	Screenshot struct {
		ID    int    `json:"id"`
		Image string `json:"image"`
	}

	Trailer struct {
		ID      int               `json:"id"`
		Name    string            `json:"name"`
		Preview string            `json:"preview"`
		Data    map[string]string `json:"data"`
	}

	GameListResponse struct {
		Games   []Game `json:"games"`
		Count   int    `json:"count"`
		HasMore bool   `json:"has_more"`
		Page    int    `json:"page"`
	}

	SpecialListResponse struct {
		Games []Game `json:"games"`
		Count int    `json:"count"`
	}

	GameDetailResponse struct {
		Game        map[string]interface{} `json:"game"`
		Screenshots []Screenshot           `json:"screenshots"`
		Trailers    []Trailer              `json:"trailers"`
	}
)
