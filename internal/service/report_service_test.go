package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productcatalog/internal/apperr"
	"productcatalog/internal/model"
	"productcatalog/internal/service"
)

func newReportService(products *MockProductRepository, categories *MockCategoryRepository,
	suppliers *MockSupplierRepository, history *MockHistoryRepository, stats *MockStatsRepository,
) *service.ReportService {
	return service.NewReportService(products, categories, suppliers, history, stats)
}

func TestReportServiceRecentProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit count is passed through", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockProducts.On("ListRecent", ctx, 5).Return([]*model.Product{{ID: 1}}, nil)

		rs := newReportService(mockProducts, nil, nil, nil, nil)
		products, err := rs.RecentProducts(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, products, 1)
		mockProducts.AssertExpectations(t)
	})

	t.Run("non-positive count uses the default", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockProducts.On("ListRecent", ctx, service.DefaultRecentCount).Return([]*model.Product{}, nil)

		rs := newReportService(mockProducts, nil, nil, nil, nil)
		_, err := rs.RecentProducts(ctx, 0)
		require.NoError(t, err)
		mockProducts.AssertExpectations(t)
	})
}

func TestReportServiceLowStockProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("zero threshold is honored", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockProducts.On("ListLowStock", ctx, 0).Return([]*model.Product{}, nil)

		rs := newReportService(mockProducts, nil, nil, nil, nil)
		_, err := rs.LowStockProducts(ctx, 0)
		require.NoError(t, err)
		mockProducts.AssertExpectations(t)
	})

	t.Run("negative threshold uses the default", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockProducts.On("ListLowStock", ctx, service.DefaultLowStockThreshold).Return([]*model.Product{}, nil)

		rs := newReportService(mockProducts, nil, nil, nil, nil)
		_, err := rs.LowStockProducts(ctx, -1)
		require.NoError(t, err)
		mockProducts.AssertExpectations(t)
	})
}

func TestReportServiceProductsByPriceRange(t *testing.T) {
	ctx := context.Background()

	t.Run("inverted range is rejected", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		rs := newReportService(mockProducts, nil, nil, nil, nil)

		_, err := rs.ProductsByPriceRange(ctx,
			decimal.RequireFromString("20.00"), decimal.RequireFromString("10.00"))
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		mockProducts.AssertNotCalled(t, "ListByPriceRange")
	})

	t.Run("valid range queries storage", func(t *testing.T) {
		minPrice := decimal.RequireFromString("10.00")
		maxPrice := decimal.RequireFromString("20.00")

		mockProducts := new(MockProductRepository)
		mockProducts.On("ListByPriceRange", ctx, minPrice, maxPrice).
			Return([]*model.Product{{ID: 1}}, nil)

		rs := newReportService(mockProducts, nil, nil, nil, nil)
		products, err := rs.ProductsByPriceRange(ctx, minPrice, maxPrice)
		require.NoError(t, err)
		assert.Len(t, products, 1)
		mockProducts.AssertExpectations(t)
	})
}

func TestReportServiceStats(t *testing.T) {
	ctx := context.Background()

	mockStats := new(MockStatsRepository)
	mockStats.On("Latest", ctx).Return(&model.ProductStats{TotalProducts: 120}, nil)

	rs := newReportService(nil, nil, nil, nil, mockStats)
	stats, err := rs.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, stats.TotalProducts)
	mockStats.AssertExpectations(t)
}

func TestReportServiceCategoryHierarchy(t *testing.T) {
	ctx := context.Background()

	root := &model.Category{ID: 1, Name: "Electronics"}
	root.SubCategories = []*model.Category{{ID: 2, Name: "Laptops"}}

	mockCategories := new(MockCategoryRepository)
	mockCategories.On("Hierarchy", ctx).Return([]*model.Category{root}, nil)

	rs := newReportService(nil, mockCategories, nil, nil, nil)
	roots, err := rs.CategoryHierarchy(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Len(t, roots[0].SubCategories, 1)
	mockCategories.AssertExpectations(t)
}
