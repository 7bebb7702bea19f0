package service

import (
	"context"
	"log/slog"

	"productcatalog/internal/apperr"
	"productcatalog/internal/model"
	"productcatalog/internal/repository"
)

// CategoryService exposes validated category operations.
type CategoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create validates and inserts a new category, returning the assigned id.
func (cs *CategoryService) Create(ctx context.Context, c *model.Category) (int64, error) {
	if c.Name == "" {
		return 0, apperr.NewValidation("category name is required")
	}

	id, err := cs.categories.Create(ctx, c)
	if err != nil {
		return 0, err
	}
	slog.Info("category created", slog.Int64("category_id", id), slog.String("name", c.Name))
	return id, nil
}

// Get returns the category with the given id.
func (cs *CategoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	return cs.categories.FindByID(ctx, id)
}

// List returns every category.
func (cs *CategoryService) List(ctx context.Context) ([]*model.Category, error) {
	return cs.categories.ListAll(ctx)
}

// Delete removes a category. It fails with a referential-integrity error if
// products or child categories still reference it; a missing id succeeds.
func (cs *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := cs.categories.DeleteByID(ctx, id); err != nil {
		return err
	}
	slog.Info("category deleted", slog.Int64("category_id", id))
	return nil
}
