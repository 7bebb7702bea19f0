// Package repository defines the data-access contracts. This is the only
// boundary application code calls for storage; the SQL implementations live
// in the sql subpackage.
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"productcatalog/internal/model"
)

// ProductRepository manages Product rows and the product-centric report
// queries.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) (int64, error)
	Update(ctx context.Context, p *model.Product) error
	UpdateStock(ctx context.Context, id int64, quantity int) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	ListAll(ctx context.Context) ([]*model.Product, error)
	List(ctx context.Context, query Query) ([]*model.Product, error)
	// DeleteByID cascades to the product's history rows. Missing ids are a
	// successful no-op.
	DeleteByID(ctx context.Context, id int64) error

	ListWithDetails(ctx context.Context) ([]*model.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*model.Product, error)
	ListRecent(ctx context.Context, limit int) ([]*model.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]*model.Product, error)
	ListByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*model.Product, error)
}

// CategoryRepository manages the self-referencing category tree.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	ListAll(ctx context.Context) ([]*model.Category, error)
	// DeleteByID is restricted: it fails if products or child categories
	// still reference the row.
	DeleteByID(ctx context.Context, id int64) error

	Hierarchy(ctx context.Context) ([]*model.Category, error)
	Statistics(ctx context.Context) ([]*model.Category, error)
}

// SupplierRepository manages Supplier rows.
type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Supplier, error)
	ListAll(ctx context.Context) ([]*model.Supplier, error)
	// DeleteByID nulls out SupplierId on referencing products before
	// removing the row.
	DeleteByID(ctx context.Context, id int64) error

	Performance(ctx context.Context) ([]*model.Supplier, error)
}

// HistoryRepository appends and reads the product audit trail. Rows are
// immutable once inserted.
type HistoryRepository interface {
	Create(ctx context.Context, h *model.ProductHistory) (int64, error)
	ListByProduct(ctx context.Context, productID int64) ([]*model.ProductHistory, error)
}

// StatsRepository reads the externally refreshed summary row.
type StatsRepository interface {
	Latest(ctx context.Context) (*model.ProductStats, error)
}
