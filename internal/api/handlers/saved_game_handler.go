package handlers

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/internal/api/presenters"
	"GameVault-Backend/pkg/savedgame"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SavedGameHandler interface {
		SaveGame(c *fiber.Ctx) error
		UnsaveGame(c *fiber.Ctx) error
		GetSavedGames(c *fiber.Ctx) error
		UpdateSavedGame(c *fiber.Ctx) error
	}

	savedGameHandler struct {
		savedGameService savedgame.SavedGameService
		validator        *validator.Validate
	}
)

func NewSavedGameHandler(savedGameService savedgame.SavedGameService, validator *validator.Validate) SavedGameHandler {
	return &savedGameHandler{
		savedGameService: savedGameService,
		validator:        validator,
	}
}

func (h *savedGameHandler) SaveGame(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveGameRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveGame, err)
	}

	res, err := h.savedGameService.SaveGame(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveGame, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveGame)
}

func (h *savedGameHandler) UnsaveGame(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	gameID, err := strconv.Atoi(c.Params("gameId"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnsaveGame, domain.ErrInvalidGameID)
	}

	if err := h.savedGameService.UnsaveGame(c.Context(), gameID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnsaveGame, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsaveGame)
}

func (h *savedGameHandler) GetSavedGames(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	savedGames, count, err := h.savedGameService.GetSavedGames(c.Context(), page, limit, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSavedGames, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"saved_games": savedGames,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetSavedGames)
}

func (h *savedGameHandler) UpdateSavedGame(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	gameID, err := strconv.Atoi(c.Params("gameId"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSaved, domain.ErrInvalidGameID)
	}

	req := new(domain.UpdateSavedGameRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSaved, err)
	}

	res, err := h.savedGameService.UpdateSavedGame(c.Context(), gameID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSaved, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateSaved)
}
