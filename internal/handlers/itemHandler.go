package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"payment-tracker/internal/domain/dto"
	"payment-tracker/internal/domain/models"
	"payment-tracker/internal/repository"
	"payment-tracker/internal/services"
)

type CatalogService interface {
	CreateItem(ctx context.Context, item models.Item) (uuid.UUID, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

type ItemHandler struct {
	log            *slog.Logger
	catalogService CatalogService
}

func NewItemHandler(log *slog.Logger, catalogService CatalogService) *ItemHandler {
	return &ItemHandler{
		log:            log,
		catalogService: catalogService,
	}
}

// CreateItem
// @Summary Add a catalog item
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body dto.ItemRequest true "Item fields"
// @Success 201 {object} map[string]string "Created"
// @Failure 400 {object} dto.ErrorResponse "Bad request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var input dto.ItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.catalogService.CreateItem(c.Request.Context(), models.Item{
		Identifier:  input.Identifier,
		Name:        input.Name,
		Description: input.Description,
		Value:       input.Value,
		Currency:    input.Currency,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// GetItem
// @Summary Get one catalog item
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /api/items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	item, err := h.catalogService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListItems
// @Summary List catalog items
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Item
// @Router /api/items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.catalogService.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateItem
// @Summary Update a catalog item
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.ItemRequest true "Item fields"
// @Success 200 {string} string "Updated"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /api/items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var input dto.ItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.catalogService.UpdateItem(c.Request.Context(), models.Item{
		ID:          itemID,
		Identifier:  input.Identifier,
		Name:        input.Name,
		Description: input.Description,
		Value:       input.Value,
		Currency:    input.Currency,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// DeleteItem
// @Summary Delete a catalog item
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {string} string "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /api/items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	if err := h.catalogService.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}
