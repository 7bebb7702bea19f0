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

var categoryFields = []string{"Name", "Description", "ParentCategoryId", "CreatedDate"}

// CategoryRepository implements repository.CategoryRepository against
// Postgres.
type CategoryRepository struct {
	db      *sql.DB
	mapping *schema.Mapping
}

// NewCategoryRepository creates a new CategoryRepository instance.
func NewCategoryRepository(db *sql.DB, mapping *schema.Mapping) repository.CategoryRepository {
	return &CategoryRepository{db: db, mapping: mapping}
}

func (r *CategoryRepository) table() *schema.Table {
	return r.mapping.Table(schema.EntityCategory)
}

// Create inserts a new category and returns the assigned id.
func (r *CategoryRepository) Create(ctx context.Context, c *model.Category) (int64, error) {
	if c.CreatedDate.IsZero() {
		c.InitMeta()
	}

	t := r.table()
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Qualified(), t.ColumnList(categoryFields...), placeholders(len(categoryFields)), t.Column("CategoryId"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return 0, apperr.NewStorage("insert category", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx,
		c.Name, nullString(c.Description), nullInt64(c.ParentCategoryID), c.CreatedDate,
	).Scan(&c.ID)
	if err != nil {
		return 0, apperr.NewStorage("insert category", err)
	}
	return c.ID, nil
}

// FindByID retrieves a single category by id.
func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	t := r.table()
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		t.ColumnList(), t.Qualified(), t.Column("CategoryId"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, apperr.NewStorage("select category", err)
	}
	defer stmt.Close()

	c, err := scanCategory(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NewNotFound("category", id)
		}
		return nil, apperr.NewStorage("select category", err)
	}
	return c, nil
}

// ListAll returns every category.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]*model.Category, error) {
	t := r.table()
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		t.ColumnList(), t.Qualified(), t.Column("CategoryId"))
	return r.queryCategories(ctx, "list categories", query)
}

// DeleteByID removes a category unless products or child categories still
// reference it. A missing id is a successful no-op.
func (r *CategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	ct := r.table()
	pt := r.mapping.Table(schema.EntityProduct)

	countProducts := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", pt.Qualified(), pt.Column("CategoryId"))
	countChildren := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", ct.Qualified(), ct.Column("ParentCategoryId"))
	deleteCategory := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", ct.Qualified(), ct.Column("CategoryId"))

	return withTx(ctx, r.db, "delete category", func(tx *sql.Tx) error {
		var productCount int
		if err := tx.QueryRowContext(ctx, countProducts, id).Scan(&productCount); err != nil {
			return apperr.NewStorage("delete category", err)
		}
		if productCount > 0 {
			return apperr.NewReferentialIntegrity("category", id,
				fmt.Sprintf("%d products reference it", productCount))
		}

		var childCount int
		if err := tx.QueryRowContext(ctx, countChildren, id).Scan(&childCount); err != nil {
			return apperr.NewStorage("delete category", err)
		}
		if childCount > 0 {
			return apperr.NewReferentialIntegrity("category", id,
				fmt.Sprintf("%d child categories reference it", childCount))
		}

		if _, err := tx.ExecContext(ctx, deleteCategory, id); err != nil {
			return classifyDelete("category", id, "delete category", err)
		}
		return nil
	})
}

// Hierarchy returns the root categories with their direct children attached.
func (r *CategoryRepository) Hierarchy(ctx context.Context) ([]*model.Category, error) {
	t := r.table()

	rootsQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s IS NULL ORDER BY %s",
		t.ColumnList(), t.Qualified(), t.Column("ParentCategoryId"), t.Column("CategoryId"))
	roots, err := r.queryCategories(ctx, "list category hierarchy", rootsQuery)
	if err != nil {
		return nil, err
	}

	childrenQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s",
		t.ColumnList(), t.Qualified(), t.Column("ParentCategoryId"), t.Column("CategoryId"))
	children, err := r.queryCategories(ctx, "list category hierarchy", childrenQuery)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Category, len(roots))
	for _, root := range roots {
		byID[root.ID] = root
	}
	for _, child := range children {
		if parent, ok := byID[*child.ParentCategoryID]; ok {
			parent.SubCategories = append(parent.SubCategories, child)
		}
	}
	return roots, nil
}

// Statistics returns categories ordered by descending product count.
func (r *CategoryRepository) Statistics(ctx context.Context) ([]*model.Category, error) {
	ct := r.table()
	pt := r.mapping.Table(schema.EntityProduct)

	query := fmt.Sprintf(
		"SELECT %s, COUNT(p.%s) FROM %s c LEFT JOIN %s p ON p.%s = c.%s GROUP BY %s ORDER BY COUNT(p.%s) DESC, c.%s",
		ct.AliasedColumnList("c"), pt.Column("ProductId"),
		ct.Qualified(), pt.Qualified(), pt.Column("CategoryId"), ct.Column("CategoryId"),
		ct.AliasedColumnList("c"), pt.Column("ProductId"), ct.Column("CategoryId"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, apperr.NewStorage("category statistics", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, apperr.NewStorage("category statistics", err)
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		var (
			c      model.Category
			desc   sql.NullString
			parent sql.NullInt64
		)
		if err := rows.Scan(&c.ID, &c.Name, &desc, &parent, &c.CreatedDate, &c.ProductCount); err != nil {
			return nil, apperr.NewStorage("category statistics", err)
		}
		c.Description = desc.String
		c.ParentCategoryID = int64Ptr(parent)
		categories = append(categories, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.NewStorage("category statistics", err)
	}
	return categories, nil
}

func (r *CategoryRepository) queryCategories(ctx context.Context, op, query string, args ...any) ([]*model.Category, error) {
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, apperr.NewStorage(op, err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, apperr.NewStorage(op, err)
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, apperr.NewStorage(op, err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.NewStorage(op, err)
	}
	return categories, nil
}

func scanCategory(s rowScanner) (*model.Category, error) {
	var (
		c      model.Category
		desc   sql.NullString
		parent sql.NullInt64
	)
	if err := s.Scan(&c.ID, &c.Name, &desc, &parent, &c.CreatedDate); err != nil {
		return nil, err
	}
	c.Description = desc.String
	c.ParentCategoryID = int64Ptr(parent)
	return &c, nil
}
