package service

import (
	"context"
	"log/slog"

	"productcatalog/internal/apperr"
	"productcatalog/internal/model"
	"productcatalog/internal/repository"
)

// SupplierService exposes validated supplier operations.
type SupplierService struct {
	suppliers repository.SupplierRepository
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(suppliers repository.SupplierRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// Create validates and inserts a new supplier, returning the assigned id.
func (ss *SupplierService) Create(ctx context.Context, s *model.Supplier) (int64, error) {
	if s.Name == "" {
		return 0, apperr.NewValidation("supplier name is required")
	}

	id, err := ss.suppliers.Create(ctx, s)
	if err != nil {
		return 0, err
	}
	slog.Info("supplier created", slog.Int64("supplier_id", id), slog.String("name", s.Name))
	return id, nil
}

// Get returns the supplier with the given id.
func (ss *SupplierService) Get(ctx context.Context, id int64) (*model.Supplier, error) {
	return ss.suppliers.FindByID(ctx, id)
}

// List returns every supplier.
func (ss *SupplierService) List(ctx context.Context) ([]*model.Supplier, error) {
	return ss.suppliers.ListAll(ctx)
}

// Delete removes a supplier. Referencing products lose their supplier
// reference instead of blocking the delete; a missing id succeeds.
func (ss *SupplierService) Delete(ctx context.Context, id int64) error {
	if err := ss.suppliers.DeleteByID(ctx, id); err != nil {
		return err
	}
	slog.Info("supplier deleted", slog.Int64("supplier_id", id))
	return nil
}
