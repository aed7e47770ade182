package handlers

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/internal/api/presenters"
	"GameVault-Backend/pkg/game"
	"GameVault-Backend/pkg/jwt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type (
	GameHandler interface {
		GetGames(c *fiber.Ctx) error
		GetSpecialGames(c *fiber.Ctx) error
		GetGameDetail(c *fiber.Ctx) error
		GetGenres(c *fiber.Ctx) error
	}

	gameHandler struct {
		gameService game.GameService
		jwtService  jwt.JWTService
	}
)

func NewGameHandler(gameService game.GameService, jwtService jwt.JWTService) GameHandler {
	return &gameHandler{
		gameService: gameService,
		jwtService:  jwtService,
	}
}

func (h *gameHandler) GetGames(c *fiber.Ctx) error {
	req := domain.GameSearchRequest{
		Search: c.Query("search", ""),
	}

	if genres := c.Query("genres", ""); genres != "" {
		req.Genres = strings.Split(genres, ",")
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	req.Page = page

	// Search is public; the identity, when present, is only used to record
	// search history.
	userID := h.optionalUserID(c)

	res, err := h.gameService.SearchGames(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetGames, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGames)
}

func (h *gameHandler) GetSpecialGames(c *fiber.Ctx) error {
	listType := c.Query("type", "")
	year := c.Query("year", "")

	res, err := h.gameService.GetSpecialGames(c.Context(), listType, year)
	if err != nil {
		if err == domain.ErrInvalidSpecialType {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGames, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetGames, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGames)
}

func (h *gameHandler) GetGameDetail(c *fiber.Ctx) error {
	gameID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGameDetail, domain.ErrInvalidGameID)
	}

	res, err := h.gameService.GetGameDetail(c.Context(), gameID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetGameDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGameDetail)
}

func (h *gameHandler) GetGenres(c *fiber.Ctx) error {
	res, err := h.gameService.GetGenres(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetGenres, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"genres": res}, fiber.StatusOK, domain.MessageSuccessGetGenres)
}

func (h *gameHandler) optionalUserID(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}

	userID, _, err := h.jwtService.GetUserIDByToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return ""
	}
	return userID
}
