package sql

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productcatalog/internal/apperr"
	"productcatalog/internal/model"
	"productcatalog/internal/repository"
	"productcatalog/internal/schema"
)

var categoryColumns = []string{"category_id", "name", "description", "parent_category_id", "created_date"}

func newCategoryRepo(t *testing.T) (repository.CategoryRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mapping, err := schema.NewMapping(schema.ProfileSnake)
	require.NoError(t, err)

	return NewCategoryRepository(db, mapping), mock, func() { db.Close() }
}

func TestCategoryRepository_Create(t *testing.T) {
	repo, mock, closeDB := newCategoryRepo(t)
	defer closeDB()
	ctx := context.Background()

	category := &model.Category{Name: "Electronics", Description: "Gadgets"}

	mock.ExpectPrepare(`INSERT INTO "public"."categories"`).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"category_id"}).AddRow(int64(1)))

	id, err := repo.Create(ctx, category)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.False(t, category.CreatedDate.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_FindByID(t *testing.T) {
	repo, mock, closeDB := newCategoryRepo(t)
	defer closeDB()
	ctx := context.Background()

	t.Run("successful find", func(t *testing.T) {
		rows := sqlmock.NewRows(categoryColumns).
			AddRow(int64(2), "Laptops", nil, int64(1), time.Now())

		mock.ExpectPrepare(`SELECT .+ FROM "public"."categories" WHERE "category_id" = \$1`).
			ExpectQuery().
			WithArgs(int64(2)).
			WillReturnRows(rows)

		category, err := repo.FindByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Laptops", category.Name)
		require.NotNil(t, category.ParentCategoryID)
		assert.Equal(t, int64(1), *category.ParentCategoryID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("category not found", func(t *testing.T) {
		mock.ExpectPrepare(`SELECT .+ FROM "public"."categories" WHERE "category_id" = \$1`).
			ExpectQuery().
			WithArgs(int64(999)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByID(ctx, 999)
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryRepository_DeleteByID(t *testing.T) {
	repo, mock, closeDB := newCategoryRepo(t)
	defer closeDB()
	ctx := context.Background()

	t.Run("unreferenced category is deleted", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "public"."products" WHERE "category_id" = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "public"."categories" WHERE "parent_category_id" = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`DELETE FROM "public"."categories" WHERE "category_id" = \$1`).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteByID(ctx, 5)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("referenced by products is rejected", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "public"."products"`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectRollback()

		err := repo.DeleteByID(ctx, 5)
		require.Error(t, err)
		assert.True(t, apperr.IsReferentialIntegrity(err))
		assert.Contains(t, err.Error(), "3 products")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("referenced by child categories is rejected", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "public"."products"`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "public"."categories" WHERE "parent_category_id" = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectRollback()

		err := repo.DeleteByID(ctx, 5)
		require.Error(t, err)
		assert.True(t, apperr.IsReferentialIntegrity(err))
		assert.Contains(t, err.Error(), "2 child categories")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing category is a no-op", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "public"."products"`).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "public"."categories" WHERE "parent_category_id" = \$1`).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`DELETE FROM "public"."categories"`).
			WithArgs(int64(999)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.DeleteByID(ctx, 999)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryRepository_Hierarchy(t *testing.T) {
	repo, mock, closeDB := newCategoryRepo(t)
	defer closeDB()
	ctx := context.Background()

	now := time.Now()
	rootRows := sqlmock.NewRows(categoryColumns).
		AddRow(int64(1), "Electronics", nil, nil, now).
		AddRow(int64(2), "Office", nil, nil, now)
	childRows := sqlmock.NewRows(categoryColumns).
		AddRow(int64(3), "Laptops", nil, int64(1), now).
		AddRow(int64(4), "Phones", nil, int64(1), now)

	mock.ExpectPrepare(`SELECT .+ FROM "public"."categories" WHERE "parent_category_id" IS NULL`).
		ExpectQuery().
		WillReturnRows(rootRows)
	mock.ExpectPrepare(`SELECT .+ FROM "public"."categories" WHERE "parent_category_id" IS NOT NULL`).
		ExpectQuery().
		WillReturnRows(childRows)

	roots, err := repo.Hierarchy(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Len(t, roots[0].SubCategories, 2)
	assert.Empty(t, roots[1].SubCategories)
	assert.Equal(t, "Laptops", roots[0].SubCategories[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Statistics(t *testing.T) {
	repo, mock, closeDB := newCategoryRepo(t)
	defer closeDB()
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(append(categoryColumns, "count")).
		AddRow(int64(1), "Electronics", nil, nil, now, 7).
		AddRow(int64(2), "Office", nil, nil, now, 2)

	mock.ExpectPrepare(`SELECT .+ FROM "public"."categories" c LEFT JOIN "public"."products" p`).
		ExpectQuery().
		WillReturnRows(rows)

	categories, err := repo.Statistics(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, 7, categories[0].ProductCount)
	assert.Equal(t, 2, categories[1].ProductCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}
