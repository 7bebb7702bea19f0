package service

import (
	"context"

	"github.com/shopspring/decimal"

	"productcatalog/internal/apperr"
	"productcatalog/internal/model"
	"productcatalog/internal/repository"
)

const (
	// DefaultRecentCount bounds RecentProducts when no count is given.
	DefaultRecentCount = 10
	// DefaultLowStockThreshold is the stock level at or below which a
	// product counts as low stock.
	DefaultLowStockThreshold = 10
)

// ReportService exposes the read-only query helpers. None of them mutate
// storage.
type ReportService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	history    repository.HistoryRepository
	stats      repository.StatsRepository
}

// NewReportService creates a new ReportService.
func NewReportService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	history repository.HistoryRepository,
	stats repository.StatsRepository,
) *ReportService {
	return &ReportService{
		products:   products,
		categories: categories,
		suppliers:  suppliers,
		history:    history,
		stats:      stats,
	}
}

// ProductsWithDetails returns products with category and supplier attached,
// newest first.
func (rs *ReportService) ProductsWithDetails(ctx context.Context) ([]*model.Product, error) {
	return rs.products.ListWithDetails(ctx)
}

// CategoryHierarchy returns the root categories with children eagerly
// attached.
func (rs *ReportService) CategoryHierarchy(ctx context.Context) ([]*model.Category, error) {
	return rs.categories.Hierarchy(ctx)
}

// ProductsByCategory returns the products of one category, newest first.
func (rs *ReportService) ProductsByCategory(ctx context.Context, categoryID int64) ([]*model.Product, error) {
	return rs.products.ListByCategory(ctx, categoryID)
}

// RecentProducts returns the most recently created products. A non-positive
// count falls back to the default.
func (rs *ReportService) RecentProducts(ctx context.Context, count int) ([]*model.Product, error) {
	if count <= 0 {
		count = DefaultRecentCount
	}
	return rs.products.ListRecent(ctx, count)
}

// HistoryForProduct returns the audit trail of one product, newest first.
func (rs *ReportService) HistoryForProduct(ctx context.Context, productID int64) ([]*model.ProductHistory, error) {
	return rs.history.ListByProduct(ctx, productID)
}

// LowStockProducts returns products at or below the threshold, ascending by
// stock. A negative threshold falls back to the default.
func (rs *ReportService) LowStockProducts(ctx context.Context, threshold int) ([]*model.Product, error) {
	if threshold < 0 {
		threshold = DefaultLowStockThreshold
	}
	return rs.products.ListLowStock(ctx, threshold)
}

// ProductsByPriceRange returns products priced within [minPrice, maxPrice],
// ascending by price.
func (rs *ReportService) ProductsByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*model.Product, error) {
	if minPrice.GreaterThan(maxPrice) {
		return nil, apperr.NewValidation("minimum price cannot exceed maximum price")
	}
	return rs.products.ListByPriceRange(ctx, minPrice, maxPrice)
}

// SupplierPerformance returns suppliers ordered by descending product count.
func (rs *ReportService) SupplierPerformance(ctx context.Context) ([]*model.Supplier, error) {
	return rs.suppliers.Performance(ctx)
}

// CategoryStatistics returns categories ordered by descending product count.
func (rs *ReportService) CategoryStatistics(ctx context.Context) ([]*model.Category, error) {
	return rs.categories.Statistics(ctx)
}

// Stats returns the latest externally refreshed summary row.
func (rs *ReportService) Stats(ctx context.Context) (*model.ProductStats, error) {
	return rs.stats.Latest(ctx)
}
