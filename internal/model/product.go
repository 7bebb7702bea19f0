package model

import (
	"time"

	"github.com/shopspring/decimal"

	"productcatalog/internal/schema"
)

// Product represents a catalog product and its stock state.
type Product struct {
	ID             int64
	Name           string
	Description    string
	Price          decimal.Decimal
	StockQuantity  int
	CategoryID     int64
	SupplierID     *int64
	SKU            string
	Weight         *decimal.Decimal
	Dimensions     string
	IsDiscontinued schema.BoolInt
	ReorderLevel   int
	CreatedDate    time.Time
	ModifiedDate   *time.Time

	// Attached by the report queries, never written back from here.
	Category *Category
	Supplier *Supplier
	History  []*ProductHistory
}

// InitMeta initializes the creation timestamp for a new product.
func (p *Product) InitMeta() {
	p.CreatedDate = time.Now().UTC()
	p.ModifiedDate = nil
}

// Touch records a modification timestamp.
func (p *Product) Touch() {
	now := time.Now().UTC()
	p.ModifiedDate = &now
}
