package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"payment-tracker/internal/domain/models"
)

const defaultCurrency = "USD"

type CatalogService struct {
	log               *slog.Logger
	catalogRepository CatalogRepository
}

type CatalogRepository interface {
	SaveItem(ctx context.Context, item models.Item) (uuid.UUID, error)
	GetItemByID(ctx context.Context, itemID uuid.UUID) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

var ErrInvalidItem = errors.New("item requires name, description and a positive value")

func NewCatalogService(log *slog.Logger, catalogRepository CatalogRepository) *CatalogService {
	return &CatalogService{
		log:               log,
		catalogRepository: catalogRepository,
	}
}

func (s *CatalogService) CreateItem(ctx context.Context, item models.Item) (uuid.UUID, error) {
	const op = "services.CatalogService.CreateItem"

	log := s.log.With(
		slog.String("op", op),
		slog.String("name", item.Name),
	)

	if err := validateItem(item); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if item.Currency == "" {
		item.Currency = defaultCurrency
	}

	id, err := s.catalogRepository.SaveItem(ctx, item)
	if err != nil {
		log.Error("failed to save item", slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("item created", slog.String("item_id", id.String()))

	return id, nil
}

func (s *CatalogService) GetItem(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	const op = "services.CatalogService.GetItem"

	item, err := s.catalogRepository.GetItemByID(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (s *CatalogService) ListItems(ctx context.Context) ([]models.Item, error) {
	const op = "services.CatalogService.ListItems"

	items, err := s.catalogRepository.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *CatalogService) UpdateItem(ctx context.Context, item models.Item) error {
	const op = "services.CatalogService.UpdateItem"

	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", item.ID.String()),
	)

	if err := validateItem(item); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if item.Currency == "" {
		item.Currency = defaultCurrency
	}

	if err := s.catalogRepository.UpdateItem(ctx, item); err != nil {
		log.Error("failed to update item", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("item updated")

	return nil
}

func (s *CatalogService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	const op = "services.CatalogService.DeleteItem"

	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", itemID.String()),
	)

	if err := s.catalogRepository.DeleteItem(ctx, itemID); err != nil {
		log.Error("failed to delete item", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("item deleted")

	return nil
}

func validateItem(item models.Item) error {
	if item.Name == "" || item.Description == "" || !item.Value.IsPositive() {
		return ErrInvalidItem
	}
	return nil
}
