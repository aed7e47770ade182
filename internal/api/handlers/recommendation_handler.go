package handlers

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/internal/api/presenters"
	"GameVault-Backend/pkg/recommendation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecommendationHandler interface {
		GenerateRecommendations(c *fiber.Ctx) error
		GetLatestRecommendations(c *fiber.Ctx) error
		ChatRecommendations(c *fiber.Ctx) error
	}

	recommendationHandler struct {
		recommendationService recommendation.RecommendationService
		validator             *validator.Validate
	}
)

func NewRecommendationHandler(recommendationService recommendation.RecommendationService, validator *validator.Validate) RecommendationHandler {
	return &recommendationHandler{
		recommendationService: recommendationService,
		validator:             validator,
	}
}

func (h *recommendationHandler) GenerateRecommendations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recommendationService.GenerateRecommendations(c.Context(), userID)
	if err != nil {
		if err == domain.ErrNoSavedGames {
			return presenters.SuccessResponse(c, fiber.Map{
				"recommendations": []domain.EnrichedRecommendation{},
				"message":         domain.MessageNoSavedGames,
			}, fiber.StatusOK, "no saved games available")
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGenerateRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateRecommendations)
}

func (h *recommendationHandler) GetLatestRecommendations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recommendationService.GetLatestRecommendations(c.Context(), userID)
	if err != nil {
		if err == domain.ErrNoRecommendations {
			return presenters.SuccessResponse(c, fiber.Map{
				"recommendations": []domain.EnrichedRecommendation{},
				"message":         domain.MessageNoRecommendations,
			}, fiber.StatusOK, "no previous recommendations")
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recommendationHandler) ChatRecommendations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ChatRecommendationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChatRecommendations, err)
	}

	res, err := h.recommendationService.ChatRecommendations(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedChatRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessChatRecommendations)
}
