package service

import (
	"context"
	"log/slog"

	"productcatalog/internal/apperr"
	"productcatalog/internal/metrics"
	"productcatalog/internal/model"
	"productcatalog/internal/repository"
)

// ProductService exposes the validated product operations. It is the only
// layer application code calls for product mutations.
type ProductService struct {
	products repository.ProductRepository
	history  repository.HistoryRepository
}

// NewProductService creates a new ProductService.
func NewProductService(products repository.ProductRepository, history repository.HistoryRepository) *ProductService {
	return &ProductService{
		products: products,
		history:  history,
	}
}

// validateProduct collects every violated constraint so the caller sees all
// of them at once.
func validateProduct(p *model.Product) error {
	var violations []string
	if p.Name == "" {
		violations = append(violations, "product name is required")
	}
	if p.Price.IsNegative() {
		violations = append(violations, "price cannot be negative")
	}
	if p.StockQuantity < 0 {
		violations = append(violations, "stock quantity cannot be negative")
	}
	if len(violations) > 0 {
		return apperr.NewValidation(violations...)
	}
	return nil
}

// GetAll returns every product.
func (ps *ProductService) GetAll(ctx context.Context) ([]*model.Product, error) {
	return ps.products.ListAll(ctx)
}

// List returns a page of products, newest first.
func (ps *ProductService) List(ctx context.Context, query repository.Query) ([]*model.Product, error) {
	return ps.products.List(ctx, query)
}

// Get returns the product with the given id.
func (ps *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	return ps.products.FindByID(ctx, id)
}

// Create validates and inserts a new product, returning the assigned id.
func (ps *ProductService) Create(ctx context.Context, p *model.Product) (int64, error) {
	if err := validateProduct(p); err != nil {
		return 0, err
	}

	id, err := ps.products.Create(ctx, p)
	if err != nil {
		return 0, err
	}

	metrics.ProductsCreated.Inc()
	slog.Info("product created", slog.Int64("product_id", id), slog.String("name", p.Name))
	return id, nil
}

// Update validates and replaces the full record. The id must exist.
func (ps *ProductService) Update(ctx context.Context, p *model.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}

	if err := ps.products.Update(ctx, p); err != nil {
		return err
	}

	metrics.ProductsUpdated.Inc()
	slog.Info("product updated", slog.Int64("product_id", p.ID))
	return nil
}

// Delete removes a product and, through the repository, its history rows.
// Deleting a nonexistent id succeeds.
func (ps *ProductService) Delete(ctx context.Context, id int64) error {
	if err := ps.products.DeleteByID(ctx, id); err != nil {
		return err
	}

	metrics.ProductsDeleted.Inc()
	slog.Info("product deleted", slog.Int64("product_id", id))
	return nil
}

// UpdateStock sets the stock quantity of one product, touching no other
// field.
func (ps *ProductService) UpdateStock(ctx context.Context, id int64, quantity int) error {
	if quantity < 0 {
		return apperr.NewValidation("stock quantity cannot be negative")
	}

	if err := ps.products.UpdateStock(ctx, id, quantity); err != nil {
		return err
	}

	metrics.StockUpdates.Inc()
	slog.Info("stock updated", slog.Int64("product_id", id), slog.Int("quantity", quantity))
	return nil
}

// RecordHistory appends an audit row for a product. History is never written
// automatically by Update; callers decide when to record.
func (ps *ProductService) RecordHistory(ctx context.Context, h *model.ProductHistory) (int64, error) {
	if h.Action == "" || len(h.Action) > 10 {
		return 0, apperr.NewValidation("history action must be a short non-empty code")
	}
	return ps.history.Create(ctx, h)
}
