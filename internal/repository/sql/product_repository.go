package sql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"productcatalog/internal/apperr"
	"productcatalog/internal/model"
	"productcatalog/internal/repository"
	"productcatalog/internal/schema"
)

// productFields are the persisted fields in column order, without the key.
var productFields = []string{
	"Name", "Description", "Price", "StockQuantity", "CategoryId",
	"SupplierId", "SKU", "Weight", "Dimensions", "IsDiscontinued",
	"ReorderLevel", "CreatedDate", "ModifiedDate",
}

// productUpdateFields excludes CreatedDate: the creation timestamp is
// immutable and anchors the keyset pagination cursor.
var productUpdateFields = []string{
	"Name", "Description", "Price", "StockQuantity", "CategoryId",
	"SupplierId", "SKU", "Weight", "Dimensions", "IsDiscontinued",
	"ReorderLevel", "ModifiedDate",
}

// ProductRepository implements repository.ProductRepository against Postgres.
type ProductRepository struct {
	db      *sql.DB
	mapping *schema.Mapping
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *sql.DB, mapping *schema.Mapping) repository.ProductRepository {
	return &ProductRepository{db: db, mapping: mapping}
}

func (r *ProductRepository) table() *schema.Table {
	return r.mapping.Table(schema.EntityProduct)
}

func checkProductNumerics(p *model.Product) error {
	if err := schema.CheckNumeric("Price", p.Price); err != nil {
		return apperr.NewValidation(err.Error())
	}
	if err := schema.CheckNumericPtr("Weight", p.Weight); err != nil {
		return apperr.NewValidation(err.Error())
	}
	return nil
}

func (r *ProductRepository) productArgs(p *model.Product) []any {
	return []any{
		p.Name, nullString(p.Description), p.Price, p.StockQuantity,
		p.CategoryID, nullInt64(p.SupplierID), nullString(p.SKU),
		nullDecimal(p.Weight), nullString(p.Dimensions), p.IsDiscontinued,
		p.ReorderLevel, p.CreatedDate, nullTime(p.ModifiedDate),
	}
}

func (r *ProductRepository) productUpdateArgs(p *model.Product) []any {
	return []any{
		p.Name, nullString(p.Description), p.Price, p.StockQuantity,
		p.CategoryID, nullInt64(p.SupplierID), nullString(p.SKU),
		nullDecimal(p.Weight), nullString(p.Dimensions), p.IsDiscontinued,
		p.ReorderLevel, nullTime(p.ModifiedDate),
	}
}

// Create inserts a new product and returns the assigned id.
func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	if err := checkProductNumerics(p); err != nil {
		return 0, err
	}
	if p.CreatedDate.IsZero() {
		p.InitMeta()
	}

	t := r.table()
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Qualified(), t.ColumnList(productFields...), placeholders(len(productFields)), t.Column("ProductId"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return 0, apperr.NewStorage("insert product", err)
	}
	defer stmt.Close()

	if err := stmt.QueryRowContext(ctx, r.productArgs(p)...).Scan(&p.ID); err != nil {
		return 0, apperr.NewStorage("insert product", err)
	}
	return p.ID, nil
}

// Update replaces every mutable field of the record; the creation timestamp
// stays untouched. The id must already exist.
func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	if err := checkProductNumerics(p); err != nil {
		return err
	}
	p.Touch()

	t := r.table()
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		t.Qualified(), assignList(t, productUpdateFields), t.Column("ProductId"), len(productUpdateFields)+1)

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return apperr.NewStorage("update product", err)
	}
	defer stmt.Close()

	args := append(r.productUpdateArgs(p), p.ID)
	result, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return apperr.NewStorage("update product", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.NewStorage("update product", err)
	}
	if affected == 0 {
		return apperr.NewNotFound("product", p.ID)
	}
	return nil
}

// UpdateStock mutates only the stock quantity of the given product.
func (r *ProductRepository) UpdateStock(ctx context.Context, id int64, quantity int) error {
	t := r.table()
	query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2",
		t.Qualified(), t.Column("StockQuantity"), t.Column("ProductId"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return apperr.NewStorage("update stock", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, quantity, id)
	if err != nil {
		return apperr.NewStorage("update stock", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.NewStorage("update stock", err)
	}
	if affected == 0 {
		return apperr.NewNotFound("product", id)
	}
	return nil
}

// FindByID retrieves a single product by id.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	t := r.table()
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		t.ColumnList(), t.Qualified(), t.Column("ProductId"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, apperr.NewStorage("select product", err)
	}
	defer stmt.Close()

	p, err := scanProduct(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NewNotFound("product", id)
		}
		return nil, apperr.NewStorage("select product", err)
	}
	return p, nil
}

// ListAll returns every product with no implicit filter.
func (r *ProductRepository) ListAll(ctx context.Context) ([]*model.Product, error) {
	t := r.table()
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		t.ColumnList(), t.Qualified(), t.Column("ProductId"))
	return r.queryProducts(ctx, "list products", query)
}

// List retrieves a page of products using keyset pagination, newest first.
func (r *ProductRepository) List(ctx context.Context, query repository.Query) ([]*model.Product, error) {
	t := r.table()

	var queryBuilder strings.Builder
	fmt.Fprintf(&queryBuilder, "SELECT %s FROM %s WHERE 1=1", t.ColumnList(), t.Qualified())

	var args []any
	argIndex := 1

	if query.Paginator != nil {
		fmt.Fprintf(&queryBuilder, " AND (%s, %s) < ($%d, $%d)",
			t.Column("CreatedDate"), t.Column("ProductId"), argIndex, argIndex+1)
		args = append(args, query.Paginator.LastCreatedAt, query.Paginator.LastID)
		argIndex += 2
	}

	fmt.Fprintf(&queryBuilder, " ORDER BY %s DESC, %s DESC",
		t.Column("CreatedDate"), t.Column("ProductId"))

	limit := query.Limit
	if limit <= 0 {
		limit = repository.DefaultPaginationLimit
	}
	fmt.Fprintf(&queryBuilder, " LIMIT $%d", argIndex)
	args = append(args, limit)

	return r.queryProducts(ctx, "list products", queryBuilder.String(), args...)
}

// DeleteByID removes a product and all its history rows. A missing id is a
// successful no-op.
func (r *ProductRepository) DeleteByID(ctx context.Context, id int64) error {
	pt := r.table()
	ht := r.mapping.Table(schema.EntityProductHistory)

	deleteHistory := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", ht.Qualified(), ht.Column("ProductId"))
	deleteProduct := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", pt.Qualified(), pt.Column("ProductId"))

	return withTx(ctx, r.db, "delete product", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteHistory, id); err != nil {
			return classifyDelete("product", id, "delete product history", err)
		}
		if _, err := tx.ExecContext(ctx, deleteProduct, id); err != nil {
			return classifyDelete("product", id, "delete product", err)
		}
		return nil
	})
}

// ListWithDetails returns products with category and supplier attached,
// newest first.
func (r *ProductRepository) ListWithDetails(ctx context.Context) ([]*model.Product, error) {
	pt := r.table()
	ct := r.mapping.Table(schema.EntityCategory)
	st := r.mapping.Table(schema.EntitySupplier)

	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s p JOIN %s c ON p.%s = c.%s LEFT JOIN %s s ON p.%s = s.%s ORDER BY p.%s DESC, p.%s DESC",
		pt.AliasedColumnList("p"), ct.AliasedColumnList("c"), st.AliasedColumnList("s"),
		pt.Qualified(), ct.Qualified(), pt.Column("CategoryId"), ct.Column("CategoryId"),
		st.Qualified(), pt.Column("SupplierId"), st.Column("SupplierId"),
		pt.Column("CreatedDate"), pt.Column("ProductId"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, apperr.NewStorage("list products with details", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, apperr.NewStorage("list products with details", err)
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		p, err := scanProductWithDetails(rows)
		if err != nil {
			return nil, apperr.NewStorage("list products with details", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.NewStorage("list products with details", err)
	}
	return products, nil
}

// ListByCategory returns the products of one category, newest first.
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*model.Product, error) {
	t := r.table()
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC",
		t.ColumnList(), t.Qualified(), t.Column("CategoryId"),
		t.Column("CreatedDate"), t.Column("ProductId"))
	return r.queryProducts(ctx, "list products by category", query, categoryID)
}

// ListRecent returns the most recently created products, bounded by limit.
func (r *ProductRepository) ListRecent(ctx context.Context, limit int) ([]*model.Product, error) {
	t := r.table()
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s DESC, %s DESC LIMIT $1",
		t.ColumnList(), t.Qualified(), t.Column("CreatedDate"), t.Column("ProductId"))
	return r.queryProducts(ctx, "list recent products", query, limit)
}

// ListLowStock returns products at or below the threshold, ascending by
// stock.
func (r *ProductRepository) ListLowStock(ctx context.Context, threshold int) ([]*model.Product, error) {
	t := r.table()
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s <= $1 ORDER BY %s, %s",
		t.ColumnList(), t.Qualified(), t.Column("StockQuantity"),
		t.Column("StockQuantity"), t.Column("ProductId"))
	return r.queryProducts(ctx, "list low stock products", query, threshold)
}

// ListByPriceRange returns products priced within [min, max], ascending by
// price.
func (r *ProductRepository) ListByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*model.Product, error) {
	t := r.table()
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s >= $1 AND %s <= $2 ORDER BY %s, %s",
		t.ColumnList(), t.Qualified(), t.Column("Price"), t.Column("Price"),
		t.Column("Price"), t.Column("ProductId"))
	return r.queryProducts(ctx, "list products by price range", query, minPrice, maxPrice)
}

func (r *ProductRepository) queryProducts(ctx context.Context, op, query string, args ...any) ([]*model.Product, error) {
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

	var products []*model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, apperr.NewStorage(op, err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.NewStorage(op, err)
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(s rowScanner) (*model.Product, error) {
	var (
		p               model.Product
		desc, sku, dims sql.NullString
		supplierID      sql.NullInt64
		weight          decimal.NullDecimal
		modified        sql.NullTime
	)
	err := s.Scan(&p.ID, &p.Name, &desc, &p.Price, &p.StockQuantity,
		&p.CategoryID, &supplierID, &sku, &weight, &dims,
		&p.IsDiscontinued, &p.ReorderLevel, &p.CreatedDate, &modified)
	if err != nil {
		return nil, err
	}
	p.Description = desc.String
	p.SupplierID = int64Ptr(supplierID)
	p.SKU = sku.String
	p.Weight = decimalPtr(weight)
	p.Dimensions = dims.String
	p.ModifiedDate = timePtr(modified)
	return &p, nil
}

func scanProductWithDetails(s rowScanner) (*model.Product, error) {
	var (
		p               model.Product
		desc, sku, dims sql.NullString
		supplierID      sql.NullInt64
		weight          decimal.NullDecimal
		modified        sql.NullTime

		c       model.Category
		cDesc   sql.NullString
		cParent sql.NullInt64

		sID                    sql.NullInt64
		sName, sAddr, sContact sql.NullString
		sPhone, sEmail         sql.NullString
		sActive                schema.BoolInt
	)
	err := s.Scan(
		&p.ID, &p.Name, &desc, &p.Price, &p.StockQuantity,
		&p.CategoryID, &supplierID, &sku, &weight, &dims,
		&p.IsDiscontinued, &p.ReorderLevel, &p.CreatedDate, &modified,
		&c.ID, &c.Name, &cDesc, &cParent, &c.CreatedDate,
		&sID, &sName, &sAddr, &sContact, &sPhone, &sEmail, &sActive,
	)
	if err != nil {
		return nil, err
	}
	p.Description = desc.String
	p.SupplierID = int64Ptr(supplierID)
	p.SKU = sku.String
	p.Weight = decimalPtr(weight)
	p.Dimensions = dims.String
	p.ModifiedDate = timePtr(modified)

	c.Description = cDesc.String
	c.ParentCategoryID = int64Ptr(cParent)
	p.Category = &c

	if sID.Valid {
		p.Supplier = &model.Supplier{
			ID:            sID.Int64,
			Name:          sName.String,
			Address:       sAddr.String,
			ContactPerson: sContact.String,
			Phone:         sPhone.String,
			Email:         sEmail.String,
			IsActive:      sActive,
		}
	}
	return &p, nil
}

// assignList renders "col1 = $1, col2 = $2, ..." for an UPDATE.
func assignList(t *schema.Table, fields []string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s = $%d", t.Column(f), i+1)
	}
	return strings.Join(parts, ", ")
}
