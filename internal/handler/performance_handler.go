package handler

import (
	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/middleware"
	"doc-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PerformanceHandler struct {
	service service.PerformanceService
}

func NewPerformanceHandler(service service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{service: service}
}

// SubmitPerformance godoc
// @Summary Record a quiz attempt
// @Description Scores the submitted answers against the stored collection
// @Tags performance
// @Accept json
// @Produce json
// @Param request body dto.SubmitPerformanceRequest true "Answers"
// @Success 201 {object} domain.Performance
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /performance [post]
func (h *PerformanceHandler) SubmitPerformance(c *fiber.Ctx) error {
	var req dto.SubmitPerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	performance, err := h.service.Submit(c.UserContext(), middleware.CurrentUser(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(performance)
}

// GetPerformanceHistory godoc
// @Summary List quiz attempts
// @Tags performance
// @Produce json
// @Success 200 {array} dto.PerformanceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /performance [get]
func (h *PerformanceHandler) GetPerformanceHistory(c *fiber.Ctx) error {
	history, err := h.service.History(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(history)
}
