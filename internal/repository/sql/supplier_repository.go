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

var supplierFields = []string{"Name", "Address", "ContactPerson", "Phone", "Email", "IsActive"}

// SupplierRepository implements repository.SupplierRepository against
// Postgres.
type SupplierRepository struct {
	db      *sql.DB
	mapping *schema.Mapping
}

// NewSupplierRepository creates a new SupplierRepository instance.
func NewSupplierRepository(db *sql.DB, mapping *schema.Mapping) repository.SupplierRepository {
	return &SupplierRepository{db: db, mapping: mapping}
}

func (r *SupplierRepository) table() *schema.Table {
	return r.mapping.Table(schema.EntitySupplier)
}

// Create inserts a new supplier and returns the assigned id.
func (r *SupplierRepository) Create(ctx context.Context, s *model.Supplier) (int64, error) {
	t := r.table()
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Qualified(), t.ColumnList(supplierFields...), placeholders(len(supplierFields)), t.Column("SupplierId"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return 0, apperr.NewStorage("insert supplier", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx,
		s.Name, nullString(s.Address), nullString(s.ContactPerson),
		nullString(s.Phone), nullString(s.Email), s.IsActive,
	).Scan(&s.ID)
	if err != nil {
		return 0, apperr.NewStorage("insert supplier", err)
	}
	return s.ID, nil
}

// FindByID retrieves a single supplier by id.
func (r *SupplierRepository) FindByID(ctx context.Context, id int64) (*model.Supplier, error) {
	t := r.table()
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		t.ColumnList(), t.Qualified(), t.Column("SupplierId"))

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, apperr.NewStorage("select supplier", err)
	}
	defer stmt.Close()

	s, err := scanSupplier(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NewNotFound("supplier", id)
		}
		return nil, apperr.NewStorage("select supplier", err)
	}
	return s, nil
}

// ListAll returns every supplier.
func (r *SupplierRepository) ListAll(ctx context.Context) ([]*model.Supplier, error) {
	t := r.table()
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		t.ColumnList(), t.Qualified(), t.Column("SupplierId"))
	return r.querySuppliers(ctx, "list suppliers", query, false)
}

// DeleteByID nulls out the supplier reference on every product that carries
// it, then removes the supplier. A missing id is a successful no-op.
func (r *SupplierRepository) DeleteByID(ctx context.Context, id int64) error {
	st := r.table()
	pt := r.mapping.Table(schema.EntityProduct)

	clearProducts := fmt.Sprintf("UPDATE %s SET %s = NULL WHERE %s = $1",
		pt.Qualified(), pt.Column("SupplierId"), pt.Column("SupplierId"))
	deleteSupplier := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		st.Qualified(), st.Column("SupplierId"))

	return withTx(ctx, r.db, "delete supplier", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, clearProducts, id); err != nil {
			return apperr.NewStorage("clear product suppliers", err)
		}
		if _, err := tx.ExecContext(ctx, deleteSupplier, id); err != nil {
			return classifyDelete("supplier", id, "delete supplier", err)
		}
		return nil
	})
}

// Performance returns suppliers ordered by descending product count.
func (r *SupplierRepository) Performance(ctx context.Context) ([]*model.Supplier, error) {
	st := r.table()
	pt := r.mapping.Table(schema.EntityProduct)

	query := fmt.Sprintf(
		"SELECT %s, COUNT(p.%s) FROM %s s LEFT JOIN %s p ON p.%s = s.%s GROUP BY %s ORDER BY COUNT(p.%s) DESC, s.%s",
		st.AliasedColumnList("s"), pt.Column("ProductId"),
		st.Qualified(), pt.Qualified(), pt.Column("SupplierId"), st.Column("SupplierId"),
		st.AliasedColumnList("s"), pt.Column("ProductId"), st.Column("SupplierId"))

	return r.querySuppliers(ctx, "supplier performance", query, true)
}

func (r *SupplierRepository) querySuppliers(ctx context.Context, op, query string, withCount bool, args ...any) ([]*model.Supplier, error) {
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

	var suppliers []*model.Supplier
	for rows.Next() {
		var (
			s                           model.Supplier
			addr, contact, phone, email sql.NullString
		)
		dest := []any{&s.ID, &s.Name, &addr, &contact, &phone, &email, &s.IsActive}
		if withCount {
			dest = append(dest, &s.ProductCount)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, apperr.NewStorage(op, err)
		}
		s.Address = addr.String
		s.ContactPerson = contact.String
		s.Phone = phone.String
		s.Email = email.String
		suppliers = append(suppliers, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.NewStorage(op, err)
	}
	return suppliers, nil
}

func scanSupplier(s rowScanner) (*model.Supplier, error) {
	var (
		sup                         model.Supplier
		addr, contact, phone, email sql.NullString
	)
	if err := s.Scan(&sup.ID, &sup.Name, &addr, &contact, &phone, &email, &sup.IsActive); err != nil {
		return nil, err
	}
	sup.Address = addr.String
	sup.ContactPerson = contact.String
	sup.Phone = phone.String
	sup.Email = email.String
	return &sup, nil
}
