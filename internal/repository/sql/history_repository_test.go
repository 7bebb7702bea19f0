package sql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productcatalog/internal/apperr"
	"productcatalog/internal/model"
	"productcatalog/internal/repository"
	"productcatalog/internal/schema"
)

var historyColumns = []string{
	"history_id", "product_id", "action", "old_price", "new_price",
	"old_stock", "new_stock", "action_date", "modified_by",
}

func newHistoryRepo(t *testing.T) (repository.HistoryRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mapping, err := schema.NewMapping(schema.ProfileSnake)
	require.NoError(t, err)

	return NewHistoryRepository(db, mapping), mock, func() { db.Close() }
}

func TestHistoryRepository_Create(t *testing.T) {
	repo, mock, closeDB := newHistoryRepo(t)
	defer closeDB()
	ctx := context.Background()

	t.Run("successful append", func(t *testing.T) {
		oldPrice := decimal.RequireFromString("10.00")
		newPrice := decimal.RequireFromString("12.50")
		entry := &model.ProductHistory{
			ProductID: 3,
			Action:    model.HistoryActionUpdate,
			OldPrice:  &oldPrice,
			NewPrice:  &newPrice,
		}

		mock.ExpectPrepare(`INSERT INTO "public"."product_history"`).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"history_id"}).AddRow(int64(11)))

		id, err := repo.Create(ctx, entry)
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		assert.False(t, entry.ActionDate.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("price with excess precision is rejected", func(t *testing.T) {
		badPrice := decimal.RequireFromString("10.001")
		entry := &model.ProductHistory{
			ProductID: 3,
			Action:    model.HistoryActionUpdate,
			NewPrice:  &badPrice,
		}

		_, err := repo.Create(ctx, entry)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHistoryRepository_ListByProduct(t *testing.T) {
	repo, mock, closeDB := newHistoryRepo(t)
	defer closeDB()
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(historyColumns).
		AddRow(int64(2), int64(3), "update", "10.00", "12.50", int64(5), int64(8), now, "alice").
		AddRow(int64(1), int64(3), "create", nil, "10.00", nil, int64(5), now.Add(-time.Hour), nil)

	mock.ExpectPrepare(`SELECT .+ FROM "public"."product_history" WHERE "product_id" = \$1 ORDER BY "action_date" DESC, "history_id" DESC`).
		ExpectQuery().
		WithArgs(int64(3)).
		WillReturnRows(rows)

	entries, err := repo.ListByProduct(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "update", entries[0].Action)
	require.NotNil(t, entries[0].OldPrice)
	assert.True(t, entries[0].OldPrice.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "alice", entries[0].ModifiedBy)

	assert.Nil(t, entries[1].OldPrice)
	assert.Nil(t, entries[1].OldStock)
	require.NotNil(t, entries[1].NewStock)
	assert.Equal(t, 5, *entries[1].NewStock)

	assert.NoError(t, mock.ExpectationsWereMet())
}
