package handler

import (
	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/middleware"
	"doc-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GenerationIDHeader carries the id under which a generation result is cached.
const GenerationIDHeader = "X-Generation-ID"

// GenerationHandler serves the catalog and question generation endpoints.
type GenerationHandler struct {
	service service.GenerationService
}

func NewGenerationHandler(service service.GenerationService) *GenerationHandler {
	return &GenerationHandler{service: service}
}

// GetCatalog godoc
// @Summary List documentation domains
// @Description Returns every documentation domain with its topics
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.CatalogEntry
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /catalog [get]
func (h *GenerationHandler) GetCatalog(c *fiber.Ctx) error {
	entries, err := h.service.Catalog(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// Generate godoc
// @Summary Generate questions
// @Description Generates multiple-choice questions from one documentation topic. A random topic is used when topicId is omitted.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Generation request"
// @Success 200 {array} domain.GeneratedQuestion
// @Header 200 {string} X-Generation-ID "Cached result id"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /generate [post]
func (h *GenerationHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	result, err := h.service.Generate(c.UserContext(), middleware.CurrentUser(c), &req)
	if err != nil {
		return err
	}
	if result.Cached {
		c.Set(GenerationIDHeader, result.ID)
	}
	return c.JSON(result.Questions)
}

// GetGeneration godoc
// @Summary Get a cached generation result
// @Tags generate
// @Produce json
// @Param id path string true "Generation id"
// @Success 200 {array} domain.GeneratedQuestion
// @Failure 404 {object} dto.ErrorResponse
// @Router /generations/{id} [get]
func (h *GenerationHandler) GetGeneration(c *fiber.Ctx) error {
	questions, err := h.service.GetResult(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(questions)
}
