// Package schema binds the logical entity model to physical table and column
// identifiers. The binding is built once at startup from the active naming
// profile and is immutable afterwards; repositories resolve every identifier
// through it and never hard-code physical names.
package schema

import (
	"fmt"
	"strings"
)

// Profile selects the physical naming convention for a deployment.
type Profile string

const (
	// ProfilePascal keeps the logical PascalCase names in the default schema.
	ProfilePascal Profile = "pascal"
	// ProfileSnake maps to snake_case names in the "public" schema.
	ProfileSnake Profile = "snake"
	// ProfileLower maps to flat lowercase names in the custom schema.
	ProfileLower Profile = "lower"
	// ProfileLowerMod is ProfileLower with a "_mod" suffix on every column.
	ProfileLowerMod Profile = "lowermod"
)

const customSchema = "productmanagement_dbo"

// ParseProfile validates a profile name from configuration.
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case ProfilePascal, ProfileSnake, ProfileLower, ProfileLowerMod:
		return Profile(s), nil
	}
	return "", fmt.Errorf("unknown schema profile %q", s)
}

// Entity identifies one of the mapped logical entities.
type Entity string

const (
	EntityProduct        Entity = "Product"
	EntityCategory       Entity = "Category"
	EntitySupplier       Entity = "Supplier"
	EntityProductHistory Entity = "ProductHistory"
	EntityProductStats   Entity = "ProductStats"
)

// entityDef declares the logical table name and the persisted fields of an
// entity, in column order. Physical names are always derived from these, so
// each entity is declared exactly once regardless of the active profile.
type entityDef struct {
	table  string
	fields []string
}

var entities = map[Entity]entityDef{
	EntityProduct: {
		table: "Products",
		fields: []string{
			"ProductId", "Name", "Description", "Price", "StockQuantity",
			"CategoryId", "SupplierId", "SKU", "Weight", "Dimensions",
			"IsDiscontinued", "ReorderLevel", "CreatedDate", "ModifiedDate",
		},
	},
	EntityCategory: {
		table: "Categories",
		fields: []string{
			"CategoryId", "Name", "Description", "ParentCategoryId", "CreatedDate",
		},
	},
	EntitySupplier: {
		table: "Suppliers",
		fields: []string{
			"SupplierId", "Name", "Address", "ContactPerson", "Phone", "Email", "IsActive",
		},
	},
	EntityProductHistory: {
		table: "ProductHistory",
		fields: []string{
			"HistoryId", "ProductId", "Action", "OldPrice", "NewPrice",
			"OldStock", "NewStock", "ActionDate", "ModifiedBy",
		},
	},
	EntityProductStats: {
		table: "ProductStats",
		fields: []string{
			"StatId", "TotalProducts", "AveragePrice", "TotalStockValue",
			"LowStockCount", "DiscontinuedCount", "LastUpdated",
		},
	},
}

// Mapping is the resolved, immutable binding for one profile.
type Mapping struct {
	profile Profile
	tables  map[Entity]*Table
}

// Table is the resolved physical identity of one entity.
type Table struct {
	Schema string
	Name   string
	fields []string
	cols   map[string]string
}

// NewMapping resolves every entity under the given profile.
func NewMapping(profile Profile) (*Mapping, error) {
	if _, err := ParseProfile(string(profile)); err != nil {
		return nil, err
	}

	m := &Mapping{
		profile: profile,
		tables:  make(map[Entity]*Table, len(entities)),
	}
	for entity, def := range entities {
		t := &Table{
			Schema: profileSchema(profile),
			Name:   tableName(profile, def.table),
			fields: def.fields,
			cols:   make(map[string]string, len(def.fields)),
		}
		for _, f := range def.fields {
			t.cols[f] = columnName(profile, f)
		}
		m.tables[entity] = t
	}
	return m, nil
}

// Profile reports the active profile.
func (m *Mapping) Profile() Profile { return m.profile }

// Table resolves an entity. Unknown entities are a programming error.
func (m *Mapping) Table(e Entity) *Table {
	t, ok := m.tables[e]
	if !ok {
		panic(fmt.Sprintf("schema: unmapped entity %q", e))
	}
	return t
}

// Qualified returns the quoted, schema-qualified table identifier.
func (t *Table) Qualified() string {
	if t.Schema == "" {
		return quote(t.Name)
	}
	return quote(t.Schema) + "." + quote(t.Name)
}

// Column resolves a logical field to its quoted physical column. Unknown
// fields are a programming error.
func (t *Table) Column(field string) string {
	col, ok := t.cols[field]
	if !ok {
		panic(fmt.Sprintf("schema: unmapped field %q on table %q", field, t.Name))
	}
	return quote(col)
}

// Fields returns the logical fields in column order.
func (t *Table) Fields() []string { return t.fields }

// ColumnList joins the resolved columns of the given fields. Without
// arguments it covers every field in declaration order.
func (t *Table) ColumnList(fields ...string) string {
	if len(fields) == 0 {
		fields = t.fields
	}
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = t.Column(f)
	}
	return strings.Join(cols, ", ")
}

// AliasedColumnList is ColumnList with every column prefixed by a table
// alias, for joined queries.
func (t *Table) AliasedColumnList(alias string, fields ...string) string {
	if len(fields) == 0 {
		fields = t.fields
	}
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = alias + "." + t.Column(f)
	}
	return strings.Join(cols, ", ")
}

func profileSchema(p Profile) string {
	switch p {
	case ProfileSnake:
		return "public"
	case ProfileLower, ProfileLowerMod:
		return customSchema
	}
	return ""
}

func tableName(p Profile, logical string) string {
	switch p {
	case ProfileSnake:
		return toSnake(logical)
	case ProfileLower, ProfileLowerMod:
		return strings.ToLower(logical)
	}
	return logical
}

func columnName(p Profile, logical string) string {
	switch p {
	case ProfileSnake:
		return toSnake(logical)
	case ProfileLower:
		return strings.ToLower(logical)
	case ProfileLowerMod:
		return strings.ToLower(logical) + "_mod"
	}
	return logical
}

// toSnake converts PascalCase to snake_case, keeping acronym runs together:
// "ProductId" -> "product_id", "SKU" -> "sku".
func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			prevLower := i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z'
			nextLower := i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z'
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func quote(ident string) string {
	return `"` + ident + `"`
}
