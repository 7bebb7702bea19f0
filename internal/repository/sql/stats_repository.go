package sql

import (
	"context"
	"database/sql"
	"fmt"

	"productcatalog/internal/apperr"
	"productcatalog/internal/model"
	"productcatalog/internal/repository"
	"productcatalog/internal/schema"
)

// StatsRepository reads the summary row an external process refreshes. There
// is deliberately no write path here.
type StatsRepository struct {
	db      *sql.DB
	mapping *schema.Mapping
}

// NewStatsRepository creates a new StatsRepository instance.
func NewStatsRepository(db *sql.DB, mapping *schema.Mapping) repository.StatsRepository {
	return &StatsRepository{db: db, mapping: mapping}
}

// Latest returns the most recently refreshed stats row.
func (r *StatsRepository) Latest(ctx context.Context) (*model.ProductStats, error) {
	t := r.mapping.Table(schema.EntityProductStats)
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s DESC LIMIT 1",
		t.ColumnList(), t.Qualified(), t.Column("LastUpdated"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, apperr.NewStorage("select product stats", err)
	}
	defer stmt.Close()

	var s model.ProductStats
	err = stmt.QueryRowContext(ctx).Scan(&s.ID, &s.TotalProducts, &s.AveragePrice,
		&s.TotalStockValue, &s.LowStockCount, &s.DiscontinuedCount, &s.LastUpdated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NewNotFound("product stats", 0)
		}
		return nil, apperr.NewStorage("select product stats", err)
	}
	return &s, nil
}
