package catalog

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/internal/utils"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type (
	// Client is a typed pass-through to the RAWG catalog API. It does no
	// caching and no retries; every upstream failure surfaces as
	// domain.ErrCatalogUnavailable for the caller to handle.
	Client interface {
		SearchGames(ctx context.Context, params SearchParams) (*SearchResult, error)
		GetGameDetails(ctx context.Context, gameID int) (map[string]interface{}, error)
		GetGenres(ctx context.Context) ([]domain.Genre, error)
		GetGameScreenshots(ctx context.Context, gameID int) ([]domain.Screenshot, error)
		GetGameTrailers(ctx context.Context, gameID int) ([]domain.Trailer, error)
		GetSimilarGames(ctx context.Context, gameID int) ([]domain.Game, error)
	}

	SearchParams struct {
		Genres        string // comma-separated genre IDs, e.g. "4,51"
		Page          int
		PageSize      int
		Search        string
		SearchPrecise bool
		Ordering      string // e.g. "-rating", "-metacritic,-rating"
		Platforms     string
		Dates         string // "YYYY-MM-DD,YYYY-MM-DD"
	}

	SearchResult struct {
		Results []domain.Game `json:"results"`
		Count   int           `json:"count"`
		Next    *string       `json:"next"`
	}

	genreListResult struct {
		Results []domain.Genre `json:"results"`
	}

	screenshotListResult struct {
		Results []domain.Screenshot `json:"results"`
	}

	trailerListResult struct {
		Results []domain.Trailer `json:"results"`
	}

	gameListResult struct {
		Results []domain.Game `json:"results"`
	}

	client struct {
		http   *resty.Client
		apiKey string
	}
)

func NewClient() Client {
	return &client{
		http: resty.New().
			SetBaseURL(utils.GetConfig("RAWG_BASE_URL")).
			SetTimeout(10 * time.Second),
		apiKey: utils.GetConfig("RAWG_API_KEY"),
	}
}

// NewClientWith builds a client against a specific base URL and key. Used by
// tests and by callers that manage their own configuration.
func NewClientWith(baseURL, apiKey string) Client {
	return &client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(10 * time.Second),
		apiKey: apiKey,
	}
}

func (c *client) SearchGames(ctx context.Context, params SearchParams) (*SearchResult, error) {
	pageSize := params.PageSize
	if pageSize == 0 {
		pageSize = 20
	}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetQueryParam("page_size", strconv.Itoa(pageSize))

	if params.Genres != "" {
		req.SetQueryParam("genres", params.Genres)
	}
	if params.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(params.Page))
	}
	if params.Search != "" {
		req.SetQueryParam("search", params.Search)
	}
	if params.SearchPrecise {
		req.SetQueryParam("search_precise", "true")
	}
	if params.Ordering != "" {
		req.SetQueryParam("ordering", params.Ordering)
	}
	if params.Platforms != "" {
		req.SetQueryParam("platforms", params.Platforms)
	}
	if params.Dates != "" {
		req.SetQueryParam("dates", params.Dates)
	}

	var result SearchResult
	resp, err := req.SetResult(&result).Get("/games")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, resp.Status())
	}

	return &result, nil
}

func (c *client) GetGameDetails(ctx context.Context, gameID int) (map[string]interface{}, error) {
	var result map[string]interface{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetResult(&result).
		Get(fmt.Sprintf("/games/%d", gameID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, resp.Status())
	}

	return result, nil
}

func (c *client) GetGenres(ctx context.Context) ([]domain.Genre, error) {
	var result genreListResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetQueryParam("page_size", "40").
		SetResult(&result).
		Get("/genres")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, resp.Status())
	}

	return result.Results, nil
}

func (c *client) GetGameScreenshots(ctx context.Context, gameID int) ([]domain.Screenshot, error) {
	var result screenshotListResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetResult(&result).
		Get(fmt.Sprintf("/games/%d/screenshots", gameID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, resp.Status())
	}

	return result.Results, nil
}

func (c *client) GetGameTrailers(ctx context.Context, gameID int) ([]domain.Trailer, error) {
	var result trailerListResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetResult(&result).
		Get(fmt.Sprintf("/games/%d/movies", gameID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, resp.Status())
	}

	return result.Results, nil
}

func (c *client) GetSimilarGames(ctx context.Context, gameID int) ([]domain.Game, error) {
	var result gameListResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetResult(&result).
		Get(fmt.Sprintf("/games/%d/game-series", gameID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, resp.Status())
	}

	return result.Results, nil
}

// genreIDs maps RAWG genre slugs to their numeric IDs.
var genreIDs = map[string]int{
	"action":                 4,
	"indie":                  51,
	"adventure":              3,
	"rpg":                    5,
	"strategy":               10,
	"shooter":                2,
	"casual":                 40,
	"simulation":             14,
	"puzzle":                 7,
	"arcade":                 11,
	"platformer":             83,
	"racing":                 1,
	"massively-multiplayer":  59,
	"sports":                 15,
	"fighting":               6,
	"family":                 19,
	"board-games":            28,
	"educational":            34,
	"card":                   17,
}

// FormatGenresForAPI converts genre slugs into the comma-separated ID list
// the RAWG API expects. Unknown slugs are skipped.
func FormatGenresForAPI(genreSlugs []string) string {
	ids := make([]string, 0, len(genreSlugs))
	for _, slug := range genreSlugs {
		if id, ok := genreIDs[slug]; ok {
			ids = append(ids, strconv.Itoa(id))
		}
	}
	return strings.Join(ids, ",")
}
