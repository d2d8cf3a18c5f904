package handler

import (
	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/middleware"
	"doc-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CollectionHandler struct {
	service service.CollectionService
}

func NewCollectionHandler(service service.CollectionService) *CollectionHandler {
	return &CollectionHandler{service: service}
}

// ListCollections godoc
// @Summary List collections
// @Description Returns the caller's collections followed by the shared demo collections
// @Tags collections
// @Produce json
// @Success 200 {array} dto.CollectionSummary
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /collections [get]
func (h *CollectionHandler) ListCollections(c *fiber.Ctx) error {
	summaries, err := h.service.List(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(summaries)
}

// CreateCollection godoc
// @Summary Save a collection
// @Tags collections
// @Accept json
// @Produce json
// @Param request body dto.CreateCollectionRequest true "Collection"
// @Success 201 {object} domain.Collection
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /collections [post]
func (h *CollectionHandler) CreateCollection(c *fiber.Ctx) error {
	var req dto.CreateCollectionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	collection, err := h.service.Create(c.UserContext(), middleware.CurrentUser(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(collection)
}

// GetCollection godoc
// @Summary Get a collection
// @Tags collections
// @Produce json
// @Param id path string true "Collection id"
// @Success 200 {object} domain.Collection
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /collections/{id} [get]
func (h *CollectionHandler) GetCollection(c *fiber.Ctx) error {
	collection, err := h.service.Get(c.UserContext(), middleware.CurrentUser(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(collection)
}
