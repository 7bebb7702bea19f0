package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// History action codes. The column is capped at 10 characters.
const (
	HistoryActionCreate = "create"
	HistoryActionUpdate = "update"
	HistoryActionDelete = "delete"
)

// ProductHistory is an append-only audit row for a product. Rows are never
// updated after insertion; deleting a product cascades to its history.
type ProductHistory struct {
	ID         int64
	ProductID  int64
	Action     string
	OldPrice   *decimal.Decimal
	NewPrice   *decimal.Decimal
	OldStock   *int
	NewStock   *int
	ActionDate time.Time
	ModifiedBy string
}

// InitMeta initializes the action timestamp for a new history row.
func (h *ProductHistory) InitMeta() {
	h.ActionDate = time.Now().UTC()
}
