package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"productcatalog/internal/apperr"
	"productcatalog/internal/model"
	"productcatalog/internal/repository"
	"productcatalog/internal/schema"
)

var historyFields = []string{
	"ProductId", "Action", "OldPrice", "NewPrice", "OldStock", "NewStock",
	"ActionDate", "ModifiedBy",
}

// HistoryRepository implements repository.HistoryRepository against Postgres.
// Rows are append-only; no update path exists.
type HistoryRepository struct {
	db      *sql.DB
	mapping *schema.Mapping
}

// NewHistoryRepository creates a new HistoryRepository instance.
func NewHistoryRepository(db *sql.DB, mapping *schema.Mapping) repository.HistoryRepository {
	return &HistoryRepository{db: db, mapping: mapping}
}

func (r *HistoryRepository) table() *schema.Table {
	return r.mapping.Table(schema.EntityProductHistory)
}

// Create appends an audit row and returns the assigned id.
func (r *HistoryRepository) Create(ctx context.Context, h *model.ProductHistory) (int64, error) {
	if err := schema.CheckNumericPtr("OldPrice", h.OldPrice); err != nil {
		return 0, apperr.NewValidation(err.Error())
	}
	if err := schema.CheckNumericPtr("NewPrice", h.NewPrice); err != nil {
		return 0, apperr.NewValidation(err.Error())
	}
	if h.ActionDate.IsZero() {
		h.InitMeta()
	}

	t := r.table()
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Qualified(), t.ColumnList(historyFields...), placeholders(len(historyFields)), t.Column("HistoryId"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return 0, apperr.NewStorage("insert product history", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx,
		h.ProductID, h.Action, nullDecimal(h.OldPrice), nullDecimal(h.NewPrice),
		nullInt(h.OldStock), nullInt(h.NewStock), h.ActionDate, nullString(h.ModifiedBy),
	).Scan(&h.ID)
	if err != nil {
		return 0, apperr.NewStorage("insert product history", err)
	}
	return h.ID, nil
}

// ListByProduct returns the audit trail of one product, newest first.
func (r *HistoryRepository) ListByProduct(ctx context.Context, productID int64) ([]*model.ProductHistory, error) {
	t := r.table()
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC",
		t.ColumnList(), t.Qualified(), t.Column("ProductId"),
		t.Column("ActionDate"), t.Column("HistoryId"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, apperr.NewStorage("list product history", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, productID)
	if err != nil {
		return nil, apperr.NewStorage("list product history", err)
	}
	defer rows.Close()

	var entries []*model.ProductHistory
	for rows.Next() {
		var (
			h                  model.ProductHistory
			oldPrice, newPrice decimal.NullDecimal
			oldStock, newStock sql.NullInt64
			modifiedBy         sql.NullString
		)
		err := rows.Scan(&h.ID, &h.ProductID, &h.Action, &oldPrice, &newPrice,
			&oldStock, &newStock, &h.ActionDate, &modifiedBy)
		if err != nil {
			return nil, apperr.NewStorage("list product history", err)
		}
		h.OldPrice = decimalPtr(oldPrice)
		h.NewPrice = decimalPtr(newPrice)
		h.OldStock = intPtr(oldStock)
		h.NewStock = intPtr(newStock)
		h.ModifiedBy = modifiedBy.String
		entries = append(entries, &h)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.NewStorage("list product history", err)
	}
	return entries, nil
}
