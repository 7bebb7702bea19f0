package model

import "time"

// Category is a node in the self-referencing category tree. A category has at
// most one parent; roots have ParentCategoryID unset.
type Category struct {
	ID               int64
	Name             string
	Description      string
	ParentCategoryID *int64
	CreatedDate      time.Time

	// Attached by the report queries.
	SubCategories []*Category
	Products      []*Product
	ProductCount  int
}

// InitMeta initializes the creation timestamp for a new category.
func (c *Category) InitMeta() {
	c.CreatedDate = time.Now().UTC()
}
