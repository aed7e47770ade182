package recommendation

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type (
	// Generator produces recommendation candidates from a user's taste profile
	// by calling the OpenAI chat completions API. The model's suggestions are
	// accepted as-is; titles are only verified downstream by the best-effort
	// catalog enrichment.
	Generator interface {
		Generate(ctx context.Context, userContext domain.UserContext) ([]domain.RecommendationCandidate, error)
		GenerateChat(ctx context.Context, message string) (string, []domain.RecommendationCandidate, error)
	}

	openAIGenerator struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}

	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatCompletionRequest struct {
		Model          string            `json:"model"`
		Messages       []chatMessage     `json:"messages"`
		Temperature    float64           `json:"temperature"`
		MaxTokens      int               `json:"max_tokens"`
		ResponseFormat map[string]string `json:"response_format,omitempty"`
	}

	chatCompletionResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
)

func NewGenerator() Generator {
	return &openAIGenerator{
		apiKey:     utils.GetConfig("OPENAI_API_KEY"),
		model:      utils.GetConfig("OPENAI_MODEL"),
		baseURL:    utils.GetConfig("OPENAI_BASE_URL"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewGeneratorWith builds a generator against a specific endpoint. Used by tests.
func NewGeneratorWith(baseURL, apiKey, model string) Generator {
	return &openAIGenerator{
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *openAIGenerator) Generate(ctx context.Context, userContext domain.UserContext) ([]domain.RecommendationCandidate, error) {
	prompt := buildRecommendationPrompt(userContext)

	responseText, err := g.complete(ctx, chatCompletionRequest{
		Model: g.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a video game recommendation expert. You reply ONLY with valid JSON, no additional text.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Temperature:    0.8,
		MaxTokens:      1500,
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return nil, err
	}

	return parseRecommendations(responseText)
}

func (g *openAIGenerator) GenerateChat(ctx context.Context, message string) (string, []domain.RecommendationCandidate, error) {
	prompt := fmt.Sprintf(
		"The user says: %q\n\n"+
			"Reply as an enthusiastic video game expert. If the message asks for game suggestions, "+
			"include up to 6 of them; otherwise leave the list empty.\n\n"+
			"Return ONLY valid JSON with this exact format (no additional text):\n"+
			"{\"message\": \"your conversational reply\", \"recommendations\": "+
			"[{\"title\": \"Game name\", \"reasoning\": \"why it fits\", \"genres\": [\"Genre1\"], \"estimatedRating\": \"4.5\"}]}",
		message,
	)

	responseText, err := g.complete(ctx, chatCompletionRequest{
		Model: g.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are an enthusiastic video game expert giving personalized recommendations. You reply ONLY with valid JSON.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Temperature:    0.7,
		MaxTokens:      1000,
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return "", nil, err
	}

	var reply struct {
		Message         string                           `json:"message"`
		Recommendations []domain.RecommendationCandidate `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(responseText)), &reply); err != nil {
		return "", nil, domain.ErrRecommendationParse
	}
	if reply.Message == "" {
		return "", nil, domain.ErrRecommendationParse
	}

	return reply.Message, reply.Recommendations, nil
}

func (g *openAIGenerator) complete(ctx context.Context, reqBody chatCompletionRequest) (string, error) {
	requestJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRecommendationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: %s - %s", domain.ErrRecommendationUnavailable, resp.Status, string(bodyBytes))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRecommendationUnavailable, err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", domain.ErrRecommendationUnavailable
	}

	return completion.Choices[0].Message.Content, nil
}

func buildRecommendationPrompt(userContext domain.UserContext) string {
	var games strings.Builder
	for _, game := range userContext.SavedGames {
		games.WriteString("- ")
		games.WriteString(game.Name)
		if len(game.Genres) > 0 {
			games.WriteString(fmt.Sprintf(" (%s)", strings.Join(game.Genres, ", ")))
		}
		if game.Rating != nil {
			games.WriteString(fmt.Sprintf(" - Rating: %.1f/5", *game.Rating))
		}
		games.WriteString("\n")
	}

	genresText := ""
	if len(userContext.FavoriteGenres) > 0 {
		genresText = fmt.Sprintf("\nThe user's favorite genres: %s\n", strings.Join(userContext.FavoriteGenres, ", "))
	}

	userGreeting := ""
	if userContext.Username != "" {
		userGreeting = fmt.Sprintf(" for %s", userContext.Username)
	}

	return fmt.Sprintf(
		"You are a video game expert with deep knowledge of every genre and title.\n\n"+
			"Based on the following games the user%s likes:\n\n%s%s\n"+
			"Please recommend 6 video games they will probably love. For each game:\n"+
			"1. Give the exact game title\n"+
			"2. Briefly explain (2-3 lines) why it is a good recommendation based on their tastes\n"+
			"3. List the game's main genres\n"+
			"4. Give an estimate of the average rating\n\n"+
			"Return ONLY valid JSON with this exact format (no additional text):\n"+
			"[\n  {\n    \"title\": \"Game name\",\n    \"reasoning\": \"Why it is recommended\",\n"+
			"    \"genres\": [\"Genre1\", \"Genre2\"],\n    \"estimatedRating\": \"4.5\"\n  }\n]\n\n"+
			"Recommend varied games aligned with the user's tastes. Include both classics and more recent titles.",
		userGreeting,
		games.String(),
		genresText,
	)
}

// parseRecommendations normalizes the two reply shapes the model produces: a
// bare JSON array of candidates, or an object wrapping the array in a
// "recommendations" field. Everything else is a parse error.
func parseRecommendations(responseText string) ([]domain.RecommendationCandidate, error) {
	responseText = strings.TrimSpace(responseText)

	var candidates []domain.RecommendationCandidate
	if err := json.Unmarshal([]byte(responseText), &candidates); err == nil {
		return candidates, nil
	}

	var wrapped struct {
		Recommendations []domain.RecommendationCandidate `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(responseText), &wrapped); err != nil {
		return nil, domain.ErrRecommendationParse
	}
	if wrapped.Recommendations == nil {
		return nil, domain.ErrRecommendationParse
	}

	return wrapped.Recommendations, nil
}
