package model

import "productcatalog/internal/schema"

// Supplier represents a product supplier. The association from products is
// optional: a product may have no supplier.
type Supplier struct {
	ID            int64
	Name          string
	Address       string
	ContactPerson string
	Phone         string
	Email         string
	IsActive      schema.BoolInt

	// Attached by the report queries.
	Products     []*Product
	ProductCount int
}
