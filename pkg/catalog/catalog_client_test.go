package catalog

import (
	"GameVault-Backend/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWith(server.URL, "test-key"), server
}

func writeJSON(t *testing.T, w http.ResponseWriter, payload interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(payload))
}

func TestSearchGames(t *testing.T) {
	var query url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games", r.URL.Path)
		query = r.URL.Query()
		writeJSON(t, w, map[string]interface{}{
			"count": 120,
			"next":  "https://api.example/games?page=2",
			"results": []map[string]interface{}{
				{"id": 1, "name": "Hades", "background_image": "https://img.example/hades.jpg", "rating": 4.7},
			},
		})
	})

	result, err := client.SearchGames(context.Background(), SearchParams{
		Genres:        "4,51",
		Page:          2,
		PageSize:      40,
		Search:        "hades",
		SearchPrecise: true,
		Ordering:      "-rating",
		Dates:         "2024-01-01,2024-12-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", query.Get("key"))
	assert.Equal(t, "4,51", query.Get("genres"))
	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, "40", query.Get("page_size"))
	assert.Equal(t, "hades", query.Get("search"))
	assert.Equal(t, "true", query.Get("search_precise"))
	assert.Equal(t, "-rating", query.Get("ordering"))
	assert.Equal(t, "2024-01-01,2024-12-31", query.Get("dates"))

	assert.Equal(t, 120, result.Count)
	require.NotNil(t, result.Next)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Hades", result.Results[0].Name)
	assert.Equal(t, 4.7, result.Results[0].Rating)
}

func TestSearchGamesDefaults(t *testing.T) {
	var query url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(t, w, map[string]interface{}{"count": 0, "results": []interface{}{}})
	})

	_, err := client.SearchGames(context.Background(), SearchParams{})
	require.NoError(t, err)

	assert.Equal(t, "20", query.Get("page_size"))
	for _, omitted := range []string{"genres", "page", "search", "search_precise", "ordering", "platforms", "dates"} {
		assert.False(t, query.Has(omitted), "param %q should be omitted when unset", omitted)
	}
}

func TestSearchGamesUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := client.SearchGames(context.Background(), SearchParams{Search: "hades"})
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestGetGameDetails(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games/42", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		writeJSON(t, w, map[string]interface{}{
			"id":          42,
			"name":        "The Witness",
			"description": "<p>puzzles</p>",
		})
	})

	details, err := client.GetGameDetails(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "The Witness", details["name"])
	assert.Equal(t, "<p>puzzles</p>", details["description"])
}

func TestGetGameDetailsNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "Not found."}`, http.StatusNotFound)
	})

	_, err := client.GetGameDetails(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestGetGenres(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genres", r.URL.Path)
		assert.Equal(t, "40", r.URL.Query().Get("page_size"))
		writeJSON(t, w, map[string]interface{}{
			"results": []map[string]interface{}{
				{"id": 4, "name": "Action", "slug": "action"},
				{"id": 51, "name": "Indie", "slug": "indie"},
			},
		})
	})

	genres, err := client.GetGenres(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "action", genres[0].Slug)
	assert.Equal(t, 51, genres[1].ID)
}

func TestGetGameScreenshotsAndTrailers(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/games/7/screenshots":
			writeJSON(t, w, map[string]interface{}{
				"results": []map[string]interface{}{{"id": 1, "image": "https://img.example/1.jpg"}},
			})
		case "/games/7/movies":
			writeJSON(t, w, map[string]interface{}{
				"results": []map[string]interface{}{
					{"id": 2, "name": "Launch Trailer", "preview": "https://img.example/p.jpg", "data": map[string]string{"max": "https://vid.example/t.mp4"}},
				},
			})
		default:
			http.NotFound(w, r)
		}
	})

	screenshots, err := client.GetGameScreenshots(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, screenshots, 1)
	assert.Equal(t, "https://img.example/1.jpg", screenshots[0].Image)

	trailers, err := client.GetGameTrailers(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, trailers, 1)
	assert.Equal(t, "Launch Trailer", trailers[0].Name)
	assert.Equal(t, "https://vid.example/t.mp4", trailers[0].Data["max"])
}

func TestGetSimilarGames(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games/7/game-series", r.URL.Path)
		writeJSON(t, w, map[string]interface{}{
			"results": []map[string]interface{}{{"id": 8, "name": "Hades II"}},
		})
	})

	games, err := client.GetSimilarGames(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Hades II", games[0].Name)
}

func TestFormatGenresForAPI(t *testing.T) {
	tests := []struct {
		name  string
		slugs []string
		want  string
	}{
		{name: "known slugs", slugs: []string{"action", "indie"}, want: "4,51"},
		{name: "unknown slugs skipped", slugs: []string{"action", "visual-novel"}, want: "4"},
		{name: "all unknown", slugs: []string{"visual-novel"}, want: ""},
		{name: "empty", slugs: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatGenresForAPI(tt.slugs))
		})
	}
}
