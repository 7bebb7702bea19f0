package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStats is a standalone summary row refreshed by an external process.
// This service only reads it.
type ProductStats struct {
	ID                int64
	TotalProducts     int
	AveragePrice      decimal.Decimal
	TotalStockValue   decimal.Decimal
	LowStockCount     int
	DiscontinuedCount int
	LastUpdated       time.Time
}
